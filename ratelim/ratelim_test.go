package ratelim

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestClientIPStripsPort(t *testing.T) {
	assert.Equal(t, "10.0.0.1", clientIP("10.0.0.1:54321"))
	assert.Equal(t, "::1", clientIP("[::1]:8080"))
	assert.Equal(t, "garbage", clientIP("garbage"))
}

func TestLimitSharesBucketAcrossPorts(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// Burst of 10 from the same host over rotating ports.
	for i := 0; i < 10; i++ {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = fmt.Sprintf("10.0.0.1:%d", 40000+i)
		w := httptest.NewRecorder()
		handler(w, r, nil)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	// The 11th connection reuses the same bucket even on a fresh port.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:49999"
	w := httptest.NewRecorder()
	handler(w, r, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	// A different host is unaffected.
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.2:40000"
	w = httptest.NewRecorder()
	handler(w, r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
