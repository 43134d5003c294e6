package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/jwt"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether the tokens of an account were revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, userID uuid.UUID) (bool, error)
}

type userIDKey struct{}

// SetUserIDToContext stores the authenticated account id in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext returns the authenticated account id, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}

// AuthMiddleware returns a middleware that verifies the bearer token with tokener
// and puts the token subject into the request context. Subjects reported by
// revocations are rejected; a nil revocations skips the check.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, claims.UserID)
				if err != nil {
					logger.Log.Errorw("failed to check token revocation", "user_id", claims.UserID, "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					logger.Log.Infow("revoked token rejected", "user_id", claims.UserID)
					writeError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, claims.UserID)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
