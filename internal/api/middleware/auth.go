package middleware

import (
	"context"
	"net/http"

	"github.com/rohandas-dev/cabinet/internal/repositories"
	"github.com/rohandas-dev/cabinet/internal/utils"
)

type contextKey string

const UserIDKey contextKey = "userID"

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "X-Token"

// Auth resolves the x-token header to a user id through the session store
// and rejects the request with 401 when the token is missing, unknown, or
// expired.
func Auth(sessions repositories.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(TokenHeader)
			if token == "" {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := sessions.Get(r.Context(), token)
			if err != nil || userID == "" {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFrom returns the authenticated user id placed by Auth, or "".
func UserIDFrom(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}
