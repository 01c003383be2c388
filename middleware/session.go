package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"betterBiteAPI/internal/types/user"
)

type contextKey string

const UserIDKey contextKey = "userID"

// SessionResolver returns the currently logged in user.
type SessionResolver interface {
	CurrentUser(ctx context.Context) (*user.User, error)
}

// SessionMiddleware rejects requests without a logged in user and puts the
// user id into the request context.
func SessionMiddleware(sessions SessionResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := sessions.CurrentUser(r.Context())
			if err != nil {
				logger.Debug("session rejected", zap.Error(err), zap.String("trace_id", GetTraceID(r.Context())))
				respondWithError(w, http.StatusUnauthorized, "User not logged in")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, u.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSessionMiddleware adds the user id when someone is logged in and
// lets the request through either way.
func OptionalSessionMiddleware(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u, err := sessions.CurrentUser(r.Context()); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), UserIDKey, u.ID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserID extracts the logged in user id from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
