package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
)

//go:generate mockgen -source=user_get.go -destination=user_get_mock_test.go -package=handlers

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	SessionType(ctx context.Context, id uuid.UUID) (string, error)
}

// UserResponse represents a user profile response
// swagger:model UserResponse
type UserResponse struct {
	Success     bool           `json:"success"`
	User        *models.UserDB `json:"user"`
	SessionType string         `json:"sessionType,omitempty"` // Account type of the caller's live session, own profile only
}

// NewUserGetHandler returns an HTTP handler that fetches a user profile.
// @Summary Get user profile
// @Description Returns a user with its followers and following lists. On the caller's own
// @Description profile the account type of the live session is included.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewUserGetHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, targetID, ok := callerAndTarget(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), targetID)
		if err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		resp := UserResponse{Success: true, User: user}
		if callerID == targetID {
			sessionType, err := svc.SessionType(r.Context(), callerID)
			if err != nil {
				logger.Log.Warnw("session type unavailable", "user_id", callerID, "error", err)
			}
			resp.SessionType = sessionType
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
