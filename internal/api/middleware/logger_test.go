package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerPassesThroughResponse(t *testing.T) {
	var seen *responseMeta
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.(*responseMeta)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/files/abc", nil)
	Logger(inner).ServeHTTP(w, r)

	require.NotNil(t, seen)
	assert.Equal(t, http.StatusNotFound, seen.status)
	assert.Equal(t, len(`{"error":"Not found"}`), seen.bytes)

	// The wrapped writer must not alter what the client receives.
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestLoggerDefaultsToOK(t *testing.T) {
	var seen *responseMeta
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.(*responseMeta)
		_, _ = w.Write([]byte("OK"))
	})

	w := httptest.NewRecorder()
	Logger(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.NotNil(t, seen)
	assert.Equal(t, http.StatusOK, seen.status)
	assert.Equal(t, 2, seen.bytes)
}
