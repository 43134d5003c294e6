package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"github.com/sbilibin2017/gw-social-accounts/internal/services"
)

//go:generate mockgen -source=moderator.go -destination=moderator_mock_test.go -package=handlers

// ModeratorSignuper defines the interface that the service must implement.
type ModeratorSignuper interface {
	Signup(ctx context.Context, in services.SignupInput) (*models.ModeratorDB, string, error)
}

// ModeratorLoginer defines the interface that the service must implement.
type ModeratorLoginer interface {
	Login(ctx context.Context, in services.LoginInput) (*models.ModeratorDB, string, error)
}

// PostsLister defines the interface that the service must implement.
type PostsLister interface {
	ListPosts(ctx context.Context) ([]models.PostDB, error)
}

// ModeratorSignupResponse represents a successful moderator signup response
// swagger:model ModeratorSignupResponse
type ModeratorSignupResponse struct {
	Success bool                `json:"success"`
	Msg     string              `json:"msg"`
	ModObj  *models.ModeratorDB `json:"modObj"`
	Token   string              `json:"token"`
}

// ModeratorLoginResponse represents a successful moderator login response
// swagger:model ModeratorLoginResponse
type ModeratorLoginResponse struct {
	Success bool                `json:"success"`
	Msg     string              `json:"msg"`
	Mod     *models.ModeratorDB `json:"mod"`
	Token   string              `json:"token"`
}

// PostView is a post as shown to moderators, without its creator.
// swagger:model PostView
type PostView struct {
	PostID      uuid.UUID `json:"_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	DateCreated time.Time `json:"dateCreated"`
}

// PostsResponse represents the list of all posts
// swagger:model PostsResponse
type PostsResponse struct {
	Success bool       `json:"success"`
	Posts   []PostView `json:"posts"`
}

// NewModeratorSignupHandler returns an HTTP handler for moderator signup.
// @Summary Sign up a new moderator
// @Tags moderator
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Moderator signup request"
// @Success 201 {object} handlers.ModeratorSignupResponse "Moderator created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input / moderator already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /moderator/signup [post]
func NewModeratorSignupHandler(svc ModeratorSignuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		mod, token, err := svc.Signup(r.Context(), services.SignupInput(req))
		if err != nil {
			writeServiceError(w, r, err, "Moderator")
			return
		}

		writeJSON(w, http.StatusCreated, ModeratorSignupResponse{
			Success: true,
			Msg:     "sign up successful",
			ModObj:  mod,
			Token:   token,
		})
	}
}

// NewModeratorLoginHandler returns an HTTP handler for moderator login.
// @Summary Moderator login
// @Tags moderator
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.ModeratorLoginResponse "Token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input / password incorrect"
// @Failure 404 {object} handlers.ErrorResponse "Moderator not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /moderator/login [post]
func NewModeratorLoginHandler(svc ModeratorLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		mod, token, err := svc.Login(r.Context(), services.LoginInput(req))
		if err != nil {
			writeServiceError(w, r, err, "Moderator")
			return
		}

		writeJSON(w, http.StatusOK, ModeratorLoginResponse{
			Success: true,
			Msg:     "login successful",
			Mod:     mod,
			Token:   token,
		})
	}
}

// NewModeratorPostsHandler returns an HTTP handler that lists every post.
// @Summary List posts
// @Description Returns every post ordered by creation date. Requires a moderator token.
// @Tags moderator
// @Produce json
// @Success 200 {object} handlers.PostsResponse "All posts"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /moderator/posts [get]
// @Security BearerAuth
func NewModeratorPostsHandler(svc PostsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.ListPosts(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Moderator")
			return
		}

		views := make([]PostView, 0, len(posts))
		for _, p := range posts {
			views = append(views, PostView{
				PostID:      p.PostID,
				Title:       p.Title,
				Content:     p.Content,
				DateCreated: p.DateCreated,
			})
		}

		writeJSON(w, http.StatusOK, PostsResponse{Success: true, Posts: views})
	}
}
