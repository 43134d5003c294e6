package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"github.com/sbilibin2017/gw-social-accounts/internal/services"
)

//go:generate mockgen -source=user_update.go -destination=user_update_mock_test.go -package=handlers

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, callerID, targetID uuid.UUID, in services.UpdateInput) (*models.UserDB, error)
}

// UpdateRequest represents the JSON body for a profile update. Omitted fields are kept.
// swagger:model UpdateRequest
type UpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UserUpdateResponse represents a successful update response
// swagger:model UserUpdateResponse
type UserUpdateResponse struct {
	Success bool           `json:"success"`
	Msg     string         `json:"msg"`
	User    *models.UserDB `json:"user"`
}

// NewUserUpdateHandler returns an HTTP handler that updates the caller's profile.
// @Summary Update user
// @Description Updates the provided fields of the caller's own profile. A new password is re-hashed.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param updateRequest body handlers.UpdateRequest true "Fields to update"
// @Success 200 {object} handlers.UserUpdateResponse "User updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input / user already exists"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
// @Security BearerAuth
func NewUserUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, targetID, ok := callerAndTarget(w, r)
		if !ok {
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.Update(r.Context(), callerID, targetID, services.UpdateInput(req))
		if err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusOK, UserUpdateResponse{
			Success: true,
			Msg:     "User updated successfully",
			User:    user,
		})
	}
}
