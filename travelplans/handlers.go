package travelplans

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

// Handlers serves /api/plan.
type Handlers struct {
	DB      *db.DB
	Emitter *mq.Emitter
}

func NewHandlers(database *db.DB, emitter *mq.Emitter) *Handlers {
	return &Handlers{DB: database, Emitter: emitter}
}

// CreatePlan creates a travel plan with a computed total.
// POST /api/plan/create
func (h *Handlers) CreatePlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var plan models.TravelPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid request payload"))
		return
	}

	if err := validatePlan(plan); err != nil {
		utils.WriteErr(w, err)
		return
	}

	now := time.Now()
	plan.ID = primitive.NilObjectID
	plan.TotalCost = TotalCost(plan.Days)
	plan.Status = models.PlanStatusDraft
	if plan.GuideSatisLevel == "" {
		plan.GuideSatisLevel = "100%"
	}
	plan.CreatedAt = now
	plan.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	res, err := h.DB.TravelPlans.InsertOne(ctx, plan)
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Error inserting travel plan", err))
		return
	}
	plan.ID = res.InsertedID.(primitive.ObjectID)

	h.Emitter.Emit(ctx, "travelplan", plan.ID.Hex(), "created")
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":    "Travel plan created successfully",
		"travelPlan": plan,
	})
}

// GetAllPlans lists every plan. GET /api/plan/getAll
func (h *Handlers) GetAllPlans(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.DB.TravelPlans.Find(ctx, bson.M{})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching travel plans", err))
		return
	}
	defer cursor.Close(ctx)

	plans := []models.TravelPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		utils.WriteErr(w, apperr.Internal("Error decoding travel plans", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, plans)
}

// GetPlansByUser lists the plans belonging to a user.
// GET /api/plan/getplan/:planId (the param carries the user id, as the
// consuming frontend sends it)
func (h *Handlers) GetPlansByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.DB.TravelPlans.Find(ctx, bson.M{"user": ps.ByName("planId")})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching travel plans", err))
		return
	}
	defer cursor.Close(ctx)

	plans := []models.TravelPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		utils.WriteErr(w, apperr.Internal("Error decoding travel plans", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, plans)
}

// UpdatePlan performs a field-level merge. When days are part of the
// payload the total is recomputed from them; otherwise the stored total
// stands.
// PUT /api/plan/updateplan/:id
func (h *Handlers) UpdatePlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid plan id"))
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid request payload"))
		return
	}
	delete(raw, "_id")
	delete(raw, "totalCost")

	fields := bson.M{}
	for k, v := range raw {
		var val interface{}
		if err := json.Unmarshal(v, &val); err != nil {
			utils.WriteErr(w, apperr.Validation("Invalid request payload"))
			return
		}
		fields[k] = val
	}

	if rawDays, ok := raw["days"]; ok {
		var days []models.Day
		if err := json.Unmarshal(rawDays, &days); err != nil {
			utils.WriteErr(w, apperr.Validation("Invalid days payload"))
			return
		}
		for _, day := range days {
			for _, act := range day.Activities {
				if !models.ValidActivityType(act.Type) {
					utils.WriteErr(w, apperr.Validation("Invalid activity type: "+act.Type))
					return
				}
				if act.Cost < 0 {
					utils.WriteErr(w, apperr.Validation("Activity cost cannot be negative"))
					return
				}
			}
		}
		fields["days"] = days
		fields["totalCost"] = TotalCost(days)
	}

	if rawStatus, ok := raw["status"]; ok {
		var status string
		if err := json.Unmarshal(rawStatus, &status); err != nil || !models.ValidPlanStatus(status) {
			utils.WriteErr(w, apperr.Validation("Invalid plan status"))
			return
		}
	}

	fields["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	var plan models.TravelPlan
	err = h.DB.TravelPlans.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&plan)
	if err == mongo.ErrNoDocuments {
		utils.WriteErr(w, apperr.NotFound("Plan not found"))
		return
	} else if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to update travel plan", err))
		return
	}

	h.Emitter.Emit(ctx, "travelplan", plan.ID.Hex(), "updated")
	utils.RespondWithJSON(w, http.StatusOK, plan)
}

// DeletePlan removes a plan. DELETE /api/plan/deleteplan/:id
func (h *Handlers) DeletePlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid plan id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	res, err := h.DB.TravelPlans.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to delete travel plan", err))
		return
	}
	if res.DeletedCount == 0 {
		utils.WriteErr(w, apperr.NotFound("Plan not found"))
		return
	}

	h.Emitter.Emit(ctx, "travelplan", oid.Hex(), "deleted")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Plan deleted successfully"})
}
