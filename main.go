package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roamly/auth"
	"roamly/config"
	"roamly/customers"
	"roamly/db"
	"roamly/globals"
	"roamly/guides"
	"roamly/middleware"
	"roamly/mq"
	"roamly/notify"
	"roamly/ratelim"
	"roamly/rdx"
	"roamly/routes"
	"roamly/travelplans"
	"roamly/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// requestID tags each request with a unique id for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), globals.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		id, _ := r.Context().Value(globals.RequestIDKey).(string)
		log.Printf("%s %s %s from %s - %v", id, r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "Server is Running")
}

func setupRouter(cfg config.Config, store *db.DB, cache *rdx.Cache, emitter *mq.Emitter) *httprouter.Router {
	authMW := middleware.NewAuth(cfg.JWTSecret)
	rateLimiter := ratelim.NewRateLimiter()
	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	router := httprouter.New()
	// catch-all: anything unforeseen becomes a generic 500 instead of a
	// dropped connection
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v interface{}) {
		log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, v)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
	router.GET("/health", Index)

	routes.AddUserRoutes(router, auth.NewHandlers(store, authMW, cache), authMW, rateLimiter)
	routes.AddCustomerRoutes(router, customers.NewHandlers(store, emitter), rateLimiter)
	routes.AddGuideRoutes(router, guides.NewHandlers(store, emitter), rateLimiter)
	routes.AddTravelPlanRoutes(router, travelplans.NewHandlers(store, emitter), rateLimiter)
	routes.AddNotifyRoutes(router, notify.NewHandlers(mailer), rateLimiter)

	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	utils.Dev = cfg.IsDevelopment()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := db.Connect(ctx, cfg.MongoURL, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer store.Close()
	log.Println("MongoDB connected")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = store.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Redis is a best-effort cache: run without it when unreachable.
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	cache, err := rdx.New(ctx, cfg.RedisAddr)
	cancel()
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		cache = nil
	}
	defer cache.Close()

	emitter := mq.NewEmitter(cache)
	router := setupRouter(cfg, store, cache, emitter)

	// background worker for entity events
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go emitter.StartWorker(workerCtx)

	// apply middleware: CORS → security headers → request id → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigin,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(requestID(securityHeaders(corsHandler)))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
