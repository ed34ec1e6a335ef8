package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/middlewares"
	"github.com/schartrand77/makerworks-auth/internal/models"
)

// SessionGetter defines the interface that the session read service must implement.
type SessionGetter interface {
	Get(ctx context.Context, tokenString string, userID int64) (*models.Session, error)
}

// NewSessionHandler returns an HTTP handler that reads the session record of
// the authenticated user. An absent record reads as an empty one.
// @Summary Get session
// @Description Returns the session record (identity, avatar URL, cart) of the authenticated user
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Session "Session record"
// @Failure 401 {object} handlers.SigninErrorResponse "Could not validate credentials"
// @Router /session [get]
func NewSessionHandler(svc SessionGetter) http.HandlerFunc {
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

		token := middlewares.GetBearerTokenFromContext(r.Context())

		sess, err := svc.Get(r.Context(), token, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SigninErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sess)
	}
}
