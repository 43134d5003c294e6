package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"github.com/sbilibin2017/gw-social-accounts/internal/services"
)

//go:generate mockgen -source=post_create.go -destination=post_create_mock_test.go -package=handlers

// PostCreator defines the interface that the service must implement.
type PostCreator interface {
	Create(ctx context.Context, callerID uuid.UUID, in services.PostInput) (*models.PostDB, error)
}

// PostRequest represents the JSON body for a new post
// swagger:model PostRequest
type PostRequest struct {
	// Title, at most 100 characters
	// required: true
	// default: Hello
	Title string `json:"title"`

	// Content, at most 5000 characters
	// required: true
	// default: My first post
	Content string `json:"content"`
}

// PostCreateResponse represents a successful post creation response
// swagger:model PostCreateResponse
type PostCreateResponse struct {
	Success bool           `json:"success"`
	Msg     string         `json:"msg"`
	Post    *models.PostDB `json:"post"`
}

// NewPostCreateHandler returns an HTTP handler that creates a post owned by the caller.
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param postRequest body handlers.PostRequest true "New post"
// @Success 201 {object} handlers.PostCreateResponse "Post created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /posts [post]
// @Security BearerAuth
func NewPostCreateHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		post, err := svc.Create(r.Context(), callerID, services.PostInput(req))
		if err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusCreated, PostCreateResponse{
			Success: true,
			Msg:     "Post created successfully",
			Post:    post,
		})
	}
}
