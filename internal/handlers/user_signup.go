package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"github.com/sbilibin2017/gw-social-accounts/internal/services"
)

//go:generate mockgen -source=user_signup.go -destination=user_signup_mock_test.go -package=handlers

// UserSignuper defines the interface that the service must implement.
type UserSignuper interface {
	Signup(ctx context.Context, in services.SignupInput) (*models.UserDB, string, error)
}

// SignupRequest represents the JSON body for account signup
// swagger:model SignupRequest
type SignupRequest struct {
	// First name, 3 to 30 characters
	// required: true
	// default: John
	FirstName string `json:"firstName"`

	// Last name, 3 to 30 characters
	// required: true
	// default: Smith
	LastName string `json:"lastName"`

	// Username, 8 to 30 characters
	// required: true
	// default: john_doe1
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, 6 to 15 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UserSignupResponse represents a successful user signup response
// swagger:model UserSignupResponse
type UserSignupResponse struct {
	Success bool           `json:"success"`
	Msg     string         `json:"msg"`
	UserObj *models.UserDB `json:"userObj"`
	Token   string         `json:"token"`
}

// NewUserSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a user account with a bcrypt-hashed password and returns a token valid for 24 hours.
// @Tags users
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.UserSignupResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input / user already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/signup [post]
func NewUserSignupHandler(svc UserSignuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, token, err := svc.Signup(r.Context(), services.SignupInput(req))
		if err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusCreated, UserSignupResponse{
			Success: true,
			Msg:     "sign up successful",
			UserObj: user,
			Token:   token,
		})
	}
}
