package routes

import (
	"roamly/auth"
	"roamly/customers"
	"roamly/guides"
	"roamly/middleware"
	"roamly/notify"
	"roamly/ratelim"
	"roamly/travelplans"

	"github.com/julienschmidt/httprouter"
)

func AddUserRoutes(router *httprouter.Router, h *auth.Handlers, a *middleware.Auth, rl *ratelim.RateLimiter) {
	router.GET("/api/users", h.GetUsers)
	router.POST("/api/users/signup", rl.Limit(h.Signup))
	router.POST("/api/users/login", rl.Limit(h.Login))
	router.POST("/api/users/reset-password", a.Authenticate(h.ResetPassword))
	router.DELETE("/api/users/deleteuser/:id", h.DeleteUser)
}

func AddCustomerRoutes(router *httprouter.Router, h *customers.Handlers, rl *ratelim.RateLimiter) {
	router.GET("/api/customers/getCustomer", h.GetCustomers)
	router.POST("/api/customers/addCustomer", rl.Limit(h.AddCustomer))
	router.GET("/api/customers/getCustomerById/:id", h.GetCustomerByID)
	router.GET("/api/customers/getCustomersByUser/:userId", h.GetCustomersByUser)
	router.GET("/api/customers/getCustomerByEmail/:email", h.GetCustomerByEmail)
	router.PUT("/api/customers/updateCustomer/:id", h.UpdateCustomer)
	router.DELETE("/api/customers/deleteCustomer/:id", h.DeleteCustomer)
}

func AddGuideRoutes(router *httprouter.Router, h *guides.Handlers, rl *ratelim.RateLimiter) {
	router.GET("/api/guides/getGuide", h.GetGuides)
	router.POST("/api/guides/addGuide", rl.Limit(h.AddGuide))
	router.GET("/api/guides/getGuidebyId/:id", h.GetGuideByID)
	router.GET("/api/guides/getGuidesByUser/:userId", h.GetGuidesByUser)
	router.PUT("/api/guides/updateGuide/:id", h.UpdateGuide)
	router.DELETE("/api/guides/deleteGuide/:id", h.DeleteGuide)
}

func AddTravelPlanRoutes(router *httprouter.Router, h *travelplans.Handlers, rl *ratelim.RateLimiter) {
	router.GET("/api/plan/getAll", h.GetAllPlans)
	router.GET("/api/plan/getplan/:planId", h.GetPlansByUser)
	router.POST("/api/plan/create", rl.Limit(h.CreatePlan))
	router.PUT("/api/plan/updateplan/:id", h.UpdatePlan)
	router.DELETE("/api/plan/deleteplan/:id", h.DeletePlan)
	router.GET("/api/plan/export/:id", h.ExportPlan)
}

func AddNotifyRoutes(router *httprouter.Router, h *notify.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/notify/send", rl.Limit(h.SendMail))
	router.GET("/api/notify/test", h.TestMail)
}
