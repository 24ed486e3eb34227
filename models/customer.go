package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is the canonical customer shape. The booking form collects the
// preference fields; Guide is the owning user.
type Customer struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Age           int                `json:"age,omitempty" bson:"age,omitempty"`
	Address       string             `json:"address" bson:"address"`
	PhoneNumber   string             `json:"phonenumber" bson:"phonenumber"`
	Email         string             `json:"email" bson:"email"`
	Foods         []string           `json:"foods,omitempty" bson:"foods,omitempty"`
	Beverages     []string           `json:"beverages,omitempty" bson:"beverages,omitempty"`
	Accommodation string             `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	TravelMode    string             `json:"travelmode,omitempty" bson:"travelmode,omitempty"`
	Duration      string             `json:"duration,omitempty" bson:"duration,omitempty"`
	Budget        string             `json:"budget,omitempty" bson:"budget,omitempty"`
	Guide         string             `json:"guide,omitempty" bson:"guide,omitempty"` // owning user id
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
