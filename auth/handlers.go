package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"roamly/apperr"
	"roamly/middleware"
	"roamly/models"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const dbTimeout = 5 * time.Second

// Signup registers a new user. POST /api/users/signup
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input signupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid input"))
		return
	}

	if err := validateSignup(input); err != nil {
		utils.WriteErr(w, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to hash password", err))
		return
	}

	now := time.Now()
	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashed),
		UserType:  normalizeUserType(input.UserType),
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	// The unique index on email turns a duplicate signup into a
	// duplicate-key error; no query-then-insert window.
	res, err := h.DB.Users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.WriteErr(w, apperr.Conflict("Email already exists"))
			return
		}
		utils.WriteErr(w, apperr.Internal("Failed to register user", err))
		return
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	if err := h.Cache.Set(ctx, "users:"+user.ID.Hex(), user.Username); err != nil {
		log.Printf("Failed to cache username: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, user.Public())
}

// Login authenticates by email and password and issues a token.
// POST /api/users/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid input"))
		return
	}

	if input.Email == "" {
		utils.WriteErr(w, apperr.Validation("Email is Required"))
		return
	}
	if !utils.ValidEmail(input.Email) {
		utils.WriteErr(w, apperr.Validation("Invalid email format"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	var user models.User
	err := h.DB.Users.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.WriteErr(w, apperr.NotFound("No user found"))
		return
	} else if err != nil {
		utils.WriteErr(w, apperr.Internal("Database error", err))
		return
	}

	if err := validateLogin(input); err != nil {
		utils.WriteErr(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.WriteErr(w, apperr.Auth("Incorrect password. Please try again."))
		return
	}

	token, err := h.Auth.IssueToken(user.ID.Hex(), user.Email, user.Username)
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to generate token", err))
		return
	}

	if err := h.Cache.SetWithExpiry(ctx, "session:"+user.ID.Hex(), token, middleware.TokenTTL); err != nil {
		log.Printf("Failed to cache session token: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"token":   token,
		"user":    user.Public(),
	})
}

// ResetPassword rehashes the authenticated user's password.
// POST /api/users/reset-password (protected)
func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErr(w, apperr.Auth("Missing token"))
		return
	}

	var input struct {
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid input"))
		return
	}

	if input.NewPassword == "" {
		utils.WriteErr(w, apperr.Validation("New Password is Required"))
		return
	}
	if !utils.StrongPassword(input.NewPassword) {
		utils.WriteErr(w, apperr.Validation("Password must be at least 6 characters long and include uppercase, lowercase, number, and special character."))
		return
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		utils.WriteErr(w, apperr.Auth("Invalid token"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to hash password", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	res, err := h.DB.Users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"password": string(hashed), "updated_at": time.Now()}},
	)
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to update password", err))
		return
	}
	if res.MatchedCount == 0 {
		utils.WriteErr(w, apperr.NotFound("User not found"))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Password reset successful",
	})
}

// GetUsers lists all users without password hashes. GET /api/users
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.DB.Users.Find(ctx, bson.M{})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching users", err))
		return
	}
	defer cursor.Close(ctx)

	var all []models.User
	if err := cursor.All(ctx, &all); err != nil {
		utils.WriteErr(w, apperr.Internal("Error decoding users", err))
		return
	}

	users := make([]models.PublicUser, 0, len(all))
	for _, user := range all {
		users = append(users, user.Public())
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

// DeleteUser removes a user by id. DELETE /api/users/deleteuser/:id
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid user id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	res, err := h.DB.Users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to delete user", err))
		return
	}
	if res.DeletedCount == 0 {
		utils.WriteErr(w, apperr.NotFound("User not found"))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "User deleted successfully"})
}
