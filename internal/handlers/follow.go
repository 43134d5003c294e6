package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

//go:generate mockgen -source=follow.go -destination=follow_mock_test.go -package=handlers

// Follower defines the interface that the service must implement.
type Follower interface {
	Follow(ctx context.Context, callerID, targetID uuid.UUID) error
}

// Unfollower defines the interface that the service must implement.
type Unfollower interface {
	Unfollow(ctx context.Context, callerID, targetID uuid.UUID) error
}

// NewFollowHandler returns an HTTP handler that makes the caller follow a user.
// @Summary Follow user
// @Tags users
// @Produce json
// @Param id path string true "ID of the user to follow"
// @Success 200 {object} handlers.MessageResponse "User followed"
// @Failure 400 {object} handlers.ErrorResponse "Cannot follow yourself"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "User already followed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/follow [post]
// @Security BearerAuth
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, targetID, ok := callerAndTarget(w, r)
		if !ok {
			return
		}

		if err := svc.Follow(r.Context(), callerID, targetID); err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Msg: "User followed successfully"})
	}
}

// NewUnfollowHandler returns an HTTP handler that makes the caller unfollow a user.
// @Summary Unfollow user
// @Tags users
// @Produce json
// @Param id path string true "ID of the user to unfollow"
// @Success 200 {object} handlers.MessageResponse "User unfollowed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found / user not followed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/unfollow [post]
// @Security BearerAuth
func NewUnfollowHandler(svc Unfollower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, targetID, ok := callerAndTarget(w, r)
		if !ok {
			return
		}

		if err := svc.Unfollow(r.Context(), callerID, targetID); err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Msg: "User unfollowed successfully"})
	}
}
