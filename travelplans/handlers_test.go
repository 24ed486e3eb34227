package travelplans

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestCreatePlanRejectsMissingFieldsBeforeStore(t *testing.T) {
	h := &Handlers{}

	body := `{"planName":"Coast trip","user":"u1"}`
	r := httptest.NewRequest(http.MethodPost, "/api/plan/create", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CreatePlan(w, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Required fields are missing")
}

func TestUpdatePlanRejectsBadID(t *testing.T) {
	h := &Handlers{}

	r := httptest.NewRequest(http.MethodPut, "/api/plan/updateplan/xyz", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	h.UpdatePlan(w, r, httprouter.Params{{Key: "id", Value: "xyz"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePlanValidatesDaysPayload(t *testing.T) {
	h := &Handlers{}
	id := "64f000000000000000000001"

	for _, tc := range []struct {
		name string
		body string
		want string
	}{
		{"unknown activity type", `{"days":[{"dayNumber":1,"activities":[{"type":"spa","cost":10}]}]}`, "Invalid activity type"},
		{"negative cost", `{"days":[{"dayNumber":1,"activities":[{"type":"hotel","cost":-1}]}]}`, "cannot be negative"},
		{"bad status", `{"status":"archived"}`, "Invalid plan status"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/api/plan/updateplan/"+id, strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			h.UpdatePlan(w, r, httprouter.Params{{Key: "id", Value: id}})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestExportPlanRejectsBadID(t *testing.T) {
	h := &Handlers{}

	r := httptest.NewRequest(http.MethodGet, "/api/plan/export/xyz", nil)
	w := httptest.NewRecorder()
	h.ExportPlan(w, r, httprouter.Params{{Key: "id", Value: "xyz"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
