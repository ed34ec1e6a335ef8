package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/models"
	"github.com/schartrand77/makerworks-auth/internal/services"
)

// Loginer defines the interface that the signin service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// SigninRequest represents the JSON body for user login
// swagger:model SigninRequest
type SigninRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SigninResponse represents a successful login response
// swagger:model SigninResponse
type SigninResponse struct {
	// Authenticated user
	User models.UserOut `json:"user"`

	// Bearer token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// SigninErrorResponse represents an error response for login
// swagger:model SigninErrorResponse
type SigninErrorResponse struct {
	// Error message
	// default: Invalid credentials
	Error string `json:"error"`
}

// NewSigninHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user by email and password, return the user and a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param signinRequest body handlers.SigninRequest true "Login request"
// @Success 200 {object} handlers.SigninResponse "User and bearer token"
// @Failure 400 {object} handlers.SigninErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.SigninErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func NewSigninHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SigninRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SigninErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				// Same response for unknown email and wrong password.
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(SigninErrorResponse{
					Error: "Invalid credentials",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SigninErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SigninResponse{
			User:  user.Out(),
			Token: token,
		})
	}
}
