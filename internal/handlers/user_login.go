package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"github.com/sbilibin2017/gw-social-accounts/internal/services"
)

//go:generate mockgen -source=user_login.go -destination=user_login_mock_test.go -package=handlers

// UserLoginer defines the interface that the login service must implement.
type UserLoginer interface {
	Login(ctx context.Context, in services.LoginInput) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe1
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UserLoginResponse represents a successful user login response
// swagger:model UserLoginResponse
type UserLoginResponse struct {
	Success bool           `json:"success"`
	Msg     string         `json:"msg"`
	User    *models.UserDB `json:"user"`
	Token   string         `json:"token"`
}

// NewUserLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates a user and returns a token valid for 7 days
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.UserLoginResponse "Token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input / password incorrect"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/login [post]
func NewUserLoginHandler(svc UserLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, token, err := svc.Login(r.Context(), services.LoginInput(req))
		if err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusOK, UserLoginResponse{
			Success: true,
			Msg:     "login successful",
			User:    user,
			Token:   token,
		})
	}
}
