package notify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerConfigured(t *testing.T) {
	assert.False(t, NewMailer("smtp.gmail.com", "587", "", "").Configured())
	assert.False(t, NewMailer("smtp.gmail.com", "587", "user@x.com", "").Configured())
	assert.True(t, NewMailer("smtp.gmail.com", "587", "user@x.com", "pass").Configured())
}

func TestSendUnconfigured(t *testing.T) {
	err := NewMailer("smtp.gmail.com", "587", "", "").Send("to@x.com", "hi", "body", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBuildMessage(t *testing.T) {
	m := NewMailer("smtp.gmail.com", "587", "sender@x.com", "pass")

	text := m.buildMessage("to@x.com", "Booking confirmed", "see you soon", "")
	assert.Contains(t, text, "From: sender@x.com\r\n")
	assert.Contains(t, text, "To: to@x.com\r\n")
	assert.Contains(t, text, "Subject: Booking confirmed\r\n")
	assert.Contains(t, text, "text/plain")
	assert.Contains(t, text, "see you soon")

	html := m.buildMessage("to@x.com", "Booking confirmed", "ignored", "<b>hi</b>")
	assert.Contains(t, html, "text/html")
	assert.Contains(t, html, "<b>hi</b>")
	assert.NotContains(t, html, "ignored")
}

func TestSendMailValidation(t *testing.T) {
	h := NewHandlers(NewMailer("smtp.gmail.com", "587", "", ""))

	for _, tc := range []struct {
		name string
		body string
		want int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"missing to", `{"subject":"s","text":"t"}`, http.StatusBadRequest},
		{"missing subject", `{"to":"a@b.co","text":"t"}`, http.StatusBadRequest},
		{"missing content", `{"to":"a@b.co","subject":"s"}`, http.StatusBadRequest},
		{"bad recipient", `{"to":"nope","subject":"s","text":"t"}`, http.StatusBadRequest},
		{"unconfigured transport", `{"to":"a@b.co","subject":"s","text":"t"}`, http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/notify/send", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			h.SendMail(w, r, nil)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestTestMail(t *testing.T) {
	h := NewHandlers(NewMailer("smtp.gmail.com", "587", "user@x.com", "pass"))

	r := httptest.NewRequest(http.MethodGet, "/api/notify/test", nil)
	w := httptest.NewRecorder()
	h.TestMail(w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"emailConfigured":true`)
}
