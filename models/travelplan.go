package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan status values
const (
	PlanStatusDraft     = "draft"
	PlanStatusConfirmed = "confirmed"
	PlanStatusCompleted = "completed"
	PlanStatusCancelled = "cancelled"
)

// Activity type values
const (
	ActivityHotel    = "hotel"
	ActivityFood     = "food"
	ActivityTravel   = "travel"
	ActivityGuide    = "guide"
	ActivityActivity = "activity"
)

type Activity struct {
	Type        string  `json:"type" bson:"type"`
	Title       string  `json:"title,omitempty" bson:"title,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	StartTime   string  `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime     string  `json:"endTime,omitempty" bson:"endTime,omitempty"`
	ReferenceID *string `json:"referenceId,omitempty" bson:"referenceId,omitempty"`
	Cost        float64 `json:"cost" bson:"cost"`
}

type Day struct {
	DayNumber  int        `json:"dayNumber" bson:"dayNumber"`
	Date       string     `json:"date" bson:"date"`
	Activities []Activity `json:"activities" bson:"activities"`
}

type TravelPlan struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PlanName        string             `json:"planName" bson:"planName"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	User            string             `json:"user" bson:"user"`
	Customer        string             `json:"customer" bson:"customer"`
	StartDate       string             `json:"startDate" bson:"startDate"`
	EndDate         string             `json:"endDate" bson:"endDate"`
	Days            []Day              `json:"days" bson:"days"`
	TotalCost       float64            `json:"totalCost" bson:"totalCost"`
	Status          string             `json:"status" bson:"status"`
	GuideSatisLevel string             `json:"guideSatisLevel" bson:"guideSatisLevel"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// ValidActivityType reports whether t is one of the known activity types.
func ValidActivityType(t string) bool {
	switch t {
	case ActivityHotel, ActivityFood, ActivityTravel, ActivityGuide, ActivityActivity:
		return true
	}
	return false
}

// ValidPlanStatus reports whether s is one of the known plan statuses.
func ValidPlanStatus(s string) bool {
	switch s {
	case PlanStatusDraft, PlanStatusConfirmed, PlanStatusCompleted, PlanStatusCancelled:
		return true
	}
	return false
}
