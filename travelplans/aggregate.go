package travelplans

import (
	"roamly/apperr"
	"roamly/models"
)

// TotalCost sums every activity's cost across all days. A missing cost
// decodes to 0 and contributes nothing. totalCost is a denormalized cache
// of this sum, recomputed whenever days are supplied.
func TotalCost(days []models.Day) float64 {
	var total float64
	for _, day := range days {
		for _, act := range day.Activities {
			total += act.Cost
		}
	}
	return total
}

func validatePlan(p models.TravelPlan) error {
	if p.PlanName == "" || p.User == "" || p.Customer == "" || p.StartDate == "" || p.EndDate == "" {
		return apperr.Validation("Required fields are missing")
	}
	for _, day := range p.Days {
		for _, act := range day.Activities {
			if !models.ValidActivityType(act.Type) {
				return apperr.Validation("Invalid activity type: " + act.Type)
			}
			if act.Cost < 0 {
				return apperr.Validation("Activity cost cannot be negative")
			}
		}
	}
	return nil
}
