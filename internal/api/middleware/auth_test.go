package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
)

// newAPIRouter wires Auth the way cmd/main does: on the whole /api/v1
// subrouter, read routes included.
func newAPIRouter(handler http.HandlerFunc) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(Auth)
	api.HandleFunc("/students", handler).Methods(http.MethodGet)
	return r
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	called := false
	router := newAPIRouter(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/students", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "header X-User-ID wajib diisi", resp.Message)
}

func TestAuthStoresUserID(t *testing.T) {
	var gotUserID string
	router := newAPIRouter(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)
	req.Header.Set("X-User-ID", "42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", gotUserID)
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	assert.Equal(t, "", GetUserID(req))
}
