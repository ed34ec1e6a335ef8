package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/middlewares"
	"github.com/schartrand77/makerworks-auth/internal/models"
)

// CartSetter defines the interface that the cart update service must implement.
type CartSetter interface {
	SetCart(ctx context.Context, tokenString string, userID int64, items []models.CartItem) error
}

// CartRequest represents the JSON body for a cart update
// swagger:model CartRequest
type CartRequest struct {
	// Cart items, stored in the order sent
	// required: true
	Items []models.CartItem `json:"items"`
}

// NewCartHandler returns an HTTP handler that replaces the cart in the
// authenticated user's session record.
// @Summary Set cart
// @Description Replaces the cart stored in the session record with the given ordered item list
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cartRequest body handlers.CartRequest true "Cart update request"
// @Success 200 {object} handlers.StatusResponse "Acknowledged"
// @Failure 401 {object} handlers.SigninErrorResponse "Could not validate credentials"
// @Router /session/cart [post]
func NewCartHandler(svc CartSetter) http.HandlerFunc {
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

		var req CartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SigninErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token := middlewares.GetBearerTokenFromContext(r.Context())

		if err := svc.SetCart(r.Context(), token, userID, req.Items); err != nil {
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
