package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"roamly/apperr"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers serves /api/notify.
type Handlers struct {
	Mailer *Mailer
}

func NewHandlers(mailer *Mailer) *Handlers {
	return &Handlers{Mailer: mailer}
}

// SendMail delivers a transactional email. POST /api/notify/send
func (h *Handlers) SendMail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		Text    string `json:"text"`
		HTML    string `json:"html"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid input"))
		return
	}

	if input.To == "" || input.Subject == "" || (input.Text == "" && input.HTML == "") {
		utils.WriteErr(w, apperr.Validation("Missing required fields: to, subject, and content (text or html)"))
		return
	}
	if !utils.ValidEmail(input.To) {
		utils.WriteErr(w, apperr.Validation("Invalid email format"))
		return
	}

	if !h.Mailer.Configured() {
		utils.WriteErr(w, apperr.Internal("Email service not configured", ErrNotConfigured))
		return
	}

	if err := h.Mailer.Send(input.To, input.Subject, input.Text, input.HTML); err != nil {
		log.Printf("Email send error: %v", err)
		utils.WriteErr(w, apperr.Internal("Failed to send email", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Email sent successfully",
	})
}

// TestMail reports whether the mail transport is configured.
// GET /api/notify/test
func (h *Handlers) TestMail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"emailConfigured": h.Mailer.Configured(),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}
