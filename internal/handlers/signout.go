package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/middlewares"
)

// Logouter defines the interface that the signout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// SignoutResponse represents a successful signout response
// swagger:model SignoutResponse
type SignoutResponse struct {
	// Success message
	// default: Signed out
	Message string `json:"message"`
}

// NewSignoutHandler returns an HTTP handler for signout. Signout is
// idempotent: it acknowledges even when no session exists for the token.
// @Summary Sign out
// @Description Deletes the server-side session for the bearer token. The token itself stays valid until its expiry.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.SignoutResponse "Signed out"
// @Failure 500 {object} handlers.SignupErrorResponse "Internal server error"
// @Router /auth/signout [post]
func NewSignoutHandler(extractor middlewares.TokenExtractor, svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := extractor.GetTokenFromRequest(r.Context(), r)
		if err == nil {
			if err := svc.Logout(r.Context(), token); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SignoutResponse{
			Message: "Signed out",
		})
	}
}
