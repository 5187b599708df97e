package authservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nopLogger{})
}

func TestGetProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/profiles/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","email":"admin@bimbelceria.id","role":"admin"}`))
	})

	profile, err := client.GetProfile(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", profile.ID)
	assert.Equal(t, "admin", profile.Role)
	assert.True(t, profile.IsAdmin())
}

func TestGetProfileNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetProfile(context.Background(), "42")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfileBadResponse(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			_, err := client.GetProfile(context.Background(), "42")
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestGetRole(t *testing.T) {
	t.Run("role returned", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"42","role":"staff"}`))
		})

		role, err := client.GetRole(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, "staff", role)
	})

	t.Run("missing profile passes through", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetRole(context.Background(), "42")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("outage degrades", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // unreachable on purpose
		client := NewClient(srv.URL, time.Second, nopLogger{})

		_, err := client.GetRole(context.Background(), "42")
		assert.ErrorIs(t, err, ErrServiceDegraded)
	})
}
