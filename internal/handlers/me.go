package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/middlewares"
	"github.com/schartrand77/makerworks-auth/internal/models"
	"github.com/schartrand77/makerworks-auth/internal/services"
)

// UserGetter defines the interface that the "who am I" service must implement.
type UserGetter interface {
	Me(ctx context.Context, userID int64) (*models.UserDB, error)
}

// NewMeHandler returns an HTTP handler for the current-user endpoint. The
// request must have passed the auth middleware, which stores the user id in
// the request context.
// @Summary Current user
// @Description Returns the public fields of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserOut "Current user"
// @Failure 401 {object} handlers.SigninErrorResponse "Could not validate credentials"
// @Router /auth/me [get]
func NewMeHandler(svc UserGetter) http.HandlerFunc {
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

		user, err := svc.Me(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(SigninErrorResponse{
					Error: "could not validate credentials",
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
		json.NewEncoder(w).Encode(user.Out())
	}
}
