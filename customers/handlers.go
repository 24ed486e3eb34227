package customers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"roamly/apperr"
	"roamly/db"
	"roamly/models"
	"roamly/mq"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbTimeout = 5 * time.Second

// Handlers serves /api/customers.
type Handlers struct {
	DB      *db.DB
	Emitter *mq.Emitter
}

func NewHandlers(database *db.DB, emitter *mq.Emitter) *Handlers {
	return &Handlers{DB: database, Emitter: emitter}
}

func validateCustomer(c models.Customer) error {
	if c.Name == "" {
		return apperr.Validation("Customer Name is required")
	}
	if c.Address == "" {
		return apperr.Validation("Address is required")
	}
	if c.PhoneNumber == "" {
		return apperr.Validation("Phone number is required")
	}
	if !utils.ValidPhone(c.PhoneNumber) {
		return apperr.Validation("Invalid phone number format. Must be 10 digits and start with 07 or 09")
	}
	if c.Email == "" {
		return apperr.Validation("Email is required")
	}
	if !utils.ValidEmail(c.Email) {
		return apperr.Validation("Invalid email format")
	}
	return nil
}

// AddCustomer creates a customer. POST /api/customers/addCustomer
func (h *Handlers) AddCustomer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid input"))
		return
	}

	if err := validateCustomer(customer); err != nil {
		utils.WriteErr(w, err)
		return
	}

	now := time.Now()
	customer.ID = primitive.NilObjectID
	customer.CreatedAt = now
	customer.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	// Unique indexes on email and phonenumber close the check-then-insert
	// race; a duplicate insert fails at the store.
	res, err := h.DB.Customers.InsertOne(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.WriteErr(w, apperr.Conflict("Phone number or email already exists"))
			return
		}
		utils.WriteErr(w, apperr.Internal("Failed to create customer", err))
		return
	}
	customer.ID = res.InsertedID.(primitive.ObjectID)

	h.Emitter.Emit(ctx, "customer", customer.ID.Hex(), "created")
	utils.RespondWithJSON(w, http.StatusCreated, customer)
}

// GetCustomers lists all customers. GET /api/customers/getCustomer
func (h *Handlers) GetCustomers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.DB.Customers.Find(ctx, bson.M{})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching customers", err))
		return
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		utils.WriteErr(w, apperr.Internal("Error decoding customers", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, customers)
}

// GetCustomersByUser lists the customers owned by a guide.
// GET /api/customers/getCustomersByUser/:userId
func (h *Handlers) GetCustomersByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.DB.Customers.Find(ctx, bson.M{"guide": ps.ByName("userId")})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching customers", err))
		return
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		utils.WriteErr(w, apperr.Internal("Error decoding customers", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, customers)
}

// GetCustomerByID fetches one customer.
// GET /api/customers/getCustomerById/:id
func (h *Handlers) GetCustomerByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid customer id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	var customer models.Customer
	err = h.DB.Customers.FindOne(ctx, bson.M{"_id": oid}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		utils.WriteErr(w, apperr.NotFound("Customer not found"))
		return
	} else if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching customer", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, customer)
}

// GetCustomerByEmail fetches one customer by email.
// GET /api/customers/getCustomerByEmail/:email
func (h *Handlers) GetCustomerByEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	var customer models.Customer
	err := h.DB.Customers.FindOne(ctx, bson.M{"email": ps.ByName("email")}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		utils.WriteErr(w, apperr.NotFound("Customer not found"))
		return
	} else if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching customer", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, customer)
}

// UpdateCustomer merges the supplied fields into an existing customer.
// PUT /api/customers/updateCustomer/:id
func (h *Handlers) UpdateCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid customer id"))
		return
	}

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid input"))
		return
	}
	delete(fields, "_id")
	if phone, ok := fields["phonenumber"].(string); ok && !utils.ValidPhone(phone) {
		utils.WriteErr(w, apperr.Validation("Invalid phone number format. Must be 10 digits and start with 07 or 09"))
		return
	}
	if email, ok := fields["email"].(string); ok && !utils.ValidEmail(email) {
		utils.WriteErr(w, apperr.Validation("Invalid email format"))
		return
	}
	fields["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	var customer models.Customer
	err = h.DB.Customers.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		utils.WriteErr(w, apperr.NotFound("Customer not found"))
		return
	} else if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.WriteErr(w, apperr.Conflict("Phone number or email already exists"))
			return
		}
		utils.WriteErr(w, apperr.Internal("Failed to update customer", err))
		return
	}

	h.Emitter.Emit(ctx, "customer", customer.ID.Hex(), "updated")
	utils.RespondWithJSON(w, http.StatusOK, customer)
}

// DeleteCustomer removes a customer. Plans referencing it are untouched.
// DELETE /api/customers/deleteCustomer/:id
func (h *Handlers) DeleteCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid customer id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	res, err := h.DB.Customers.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to delete customer", err))
		return
	}
	if res.DeletedCount == 0 {
		utils.WriteErr(w, apperr.NotFound("Customer not found"))
		return
	}

	h.Emitter.Emit(ctx, "customer", oid.Hex(), "deleted")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Customer deleted successfully"})
}
