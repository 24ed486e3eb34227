package guides

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

// Handlers serves /api/guides.
type Handlers struct {
	DB      *db.DB
	Emitter *mq.Emitter
}

func NewHandlers(database *db.DB, emitter *mq.Emitter) *Handlers {
	return &Handlers{DB: database, Emitter: emitter}
}

func validateGuide(g models.Guide) error {
	if g.Name == "" {
		return apperr.Validation("Guide Name is required")
	}
	if g.Address == "" {
		return apperr.Validation("Address is required")
	}
	if g.PhoneNumber == "" {
		return apperr.Validation("Phone number is required")
	}
	if !utils.ValidPhone(g.PhoneNumber) {
		return apperr.Validation("Invalid phone number format. Must be 10 digits and start with 07 or 09")
	}
	if g.Email == "" {
		return apperr.Validation("Email is required")
	}
	if !utils.ValidEmail(g.Email) {
		return apperr.Validation("Invalid email format")
	}
	return nil
}

// AddGuide creates a guide. POST /api/guides/addGuide
func (h *Handlers) AddGuide(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var guide models.Guide
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid input"))
		return
	}

	if err := validateGuide(guide); err != nil {
		utils.WriteErr(w, err)
		return
	}

	now := time.Now()
	guide.ID = primitive.NilObjectID
	guide.CreatedAt = now
	guide.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	res, err := h.DB.Guides.InsertOne(ctx, guide)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.WriteErr(w, apperr.Conflict("Phone number or email already exists"))
			return
		}
		utils.WriteErr(w, apperr.Internal("Failed to create guide", err))
		return
	}
	guide.ID = res.InsertedID.(primitive.ObjectID)

	h.Emitter.Emit(ctx, "guide", guide.ID.Hex(), "created")
	utils.RespondWithJSON(w, http.StatusCreated, guide)
}

// GetGuides lists all guides. GET /api/guides/getGuide
func (h *Handlers) GetGuides(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.DB.Guides.Find(ctx, bson.M{})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching guides", err))
		return
	}
	defer cursor.Close(ctx)

	guides := []models.Guide{}
	if err := cursor.All(ctx, &guides); err != nil {
		utils.WriteErr(w, apperr.Internal("Error decoding guides", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, guides)
}

// GetGuideByID fetches one guide. GET /api/guides/getGuidebyId/:id
func (h *Handlers) GetGuideByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid guide id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	var guide models.Guide
	err = h.DB.Guides.FindOne(ctx, bson.M{"_id": oid}).Decode(&guide)
	if err == mongo.ErrNoDocuments {
		utils.WriteErr(w, apperr.NotFound("Guide not found"))
		return
	} else if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching guide", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, guide)
}

// GetGuidesByUser lists the guides tied to a user.
// GET /api/guides/getGuidesByUser/:userId
func (h *Handlers) GetGuidesByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.DB.Guides.Find(ctx, bson.M{"user": ps.ByName("userId")})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching guides", err))
		return
	}
	defer cursor.Close(ctx)

	guides := []models.Guide{}
	if err := cursor.All(ctx, &guides); err != nil {
		utils.WriteErr(w, apperr.Internal("Error decoding guides", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, guides)
}

// UpdateGuide merges the supplied fields into an existing guide.
// PUT /api/guides/updateGuide/:id
func (h *Handlers) UpdateGuide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid guide id"))
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

	var guide models.Guide
	err = h.DB.Guides.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&guide)
	if err == mongo.ErrNoDocuments {
		utils.WriteErr(w, apperr.NotFound("Guide not found"))
		return
	} else if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.WriteErr(w, apperr.Conflict("Phone number or email already exists"))
			return
		}
		utils.WriteErr(w, apperr.Internal("Failed to update guide", err))
		return
	}

	h.Emitter.Emit(ctx, "guide", guide.ID.Hex(), "updated")
	utils.RespondWithJSON(w, http.StatusOK, guide)
}

// DeleteGuide removes a guide. DELETE /api/guides/deleteGuide/:id
func (h *Handlers) DeleteGuide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid guide id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	res, err := h.DB.Guides.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to delete guide", err))
		return
	}
	if res.DeletedCount == 0 {
		utils.WriteErr(w, apperr.NotFound("Guide not found"))
		return
	}

	h.Emitter.Emit(ctx, "guide", oid.Hex(), "deleted")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Guide deleted successfully"})
}
