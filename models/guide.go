package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Guide struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Age           int                `json:"age,omitempty" bson:"age,omitempty"`
	Address       string             `json:"address" bson:"address"`
	PhoneNumber   string             `json:"phonenumber" bson:"phonenumber"`
	Email         string             `json:"email" bson:"email"`
	Accommodation string             `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	TravelMode    string             `json:"travelmode,omitempty" bson:"travelmode,omitempty"`
	Foods         []string           `json:"foods,omitempty" bson:"foods,omitempty"`
	Beverages     []string           `json:"beverages,omitempty" bson:"beverages,omitempty"`
	Duration      string             `json:"duration,omitempty" bson:"duration,omitempty"`
	User          string             `json:"user,omitempty" bson:"user,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
