package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user_delete.go -destination=user_delete_mock_test.go -package=handlers

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, callerID, targetID uuid.UUID) error
}

// NewUserDeleteHandler returns an HTTP handler that deletes the caller's account.
// @Summary Delete user
// @Description Deletes the caller's account, its posts and its follow relationships
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.MessageResponse "User deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewUserDeleteHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, targetID, ok := callerAndTarget(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), callerID, targetID); err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Msg: "User deleted successfully"})
	}
}
