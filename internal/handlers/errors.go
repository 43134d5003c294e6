package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
	"github.com/sbilibin2017/gw-social-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-social-accounts/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse represents a successful response carrying only a message
// swagger:model MessageResponse
type MessageResponse struct {
	// Always true
	Success bool `json:"success"`

	// Result message
	Msg string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps a service error to a status code and a client-safe
// message. subject names the account kind in not-found and duplicate messages.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, subject string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, services.ErrDuplicateAccount):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s already exists", subject))
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "password incorrect")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("%s not found", subject))
	case errors.Is(err, services.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
	case errors.Is(err, services.ErrAlreadyFollowing):
		writeError(w, http.StatusConflict, "User already followed")
	case errors.Is(err, services.ErrNotFollowing):
		writeError(w, http.StatusNotFound, "User not followed")
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.GetRequestIDFromContext(r.Context()),
			"err", err,
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// callerAndTarget returns the authenticated caller and the {id} path parameter.
// It writes the error response itself and reports false when either is unusable.
func callerAndTarget(w http.ResponseWriter, r *http.Request) (callerID, targetID uuid.UUID, ok bool) {
	callerID, ok = middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return uuid.Nil, uuid.Nil, false
	}
	return callerID, targetID, true
}
