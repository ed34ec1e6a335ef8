package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/middlewares"
)

// AvatarSetter defines the interface that the avatar update service must implement.
type AvatarSetter interface {
	SetAvatar(ctx context.Context, tokenString string, userID int64, avatarURL string) error
}

// AvatarRequest represents the JSON body for an avatar update
// swagger:model AvatarRequest
type AvatarRequest struct {
	// Avatar URL
	// required: true
	// default: https://cdn.example.com/avatars/42.png
	AvatarURL string `json:"avatar_url"`
}

// StatusResponse is the generic acknowledgement body for session updates
// swagger:model StatusResponse
type StatusResponse struct {
	// Status
	// default: ok
	Status string `json:"status"`
}

// NewAvatarHandler returns an HTTP handler that updates the avatar URL of
// the authenticated user's session record.
// @Summary Set avatar
// @Description Updates the avatar URL stored in the session record
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param avatarRequest body handlers.AvatarRequest true "Avatar update request"
// @Success 200 {object} handlers.StatusResponse "Acknowledged"
// @Failure 401 {object} handlers.SigninErrorResponse "Could not validate credentials"
// @Router /session/avatar [post]
func NewAvatarHandler(svc AvatarSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SigninErrorResponse{
				Error: "could not validate credentials",
			})
			return
		}

		var req AvatarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SigninErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token := middlewares.GetBearerTokenFromContext(r.Context())

		if err := svc.SetAvatar(r.Context(), token, userID, req.AvatarURL); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SigninErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Status: "ok"})
	}
}
