package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"roamly/apperr"
)

// Dev toggles whether internal error detail is surfaced to clients.
// Set once at startup from config.
var Dev bool

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteErr translates an error into its status code and JSON body.
// Internal errors are logged with full detail and answered generically.
func WriteErr(w http.ResponseWriter, err error) {
	code := apperr.Status(err)
	if code == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	RespondWithError(w, code, apperr.Message(err, Dev))
}

type M map[string]interface{}
