package middleware

import (
	"context"
	"net/http"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth requires the X-User-ID header set by the gateway and stores its value
// in the request context. Role checks happen in the services, against the
// auth service.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondUnauthorized(w, "header X-User-ID wajib diisi")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user ID stored by Auth, or "" when
// Auth did not run on the request
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}
