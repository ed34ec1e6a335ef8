package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/schartrand77/makerworks-auth/internal/jwt"
	"github.com/schartrand77/makerworks-auth/internal/logger"
)

// TokenExtractor pulls the bearer token out of an incoming request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a bearer token to a user id. Implementations return
// jwt.ErrInvalidToken for every validation failure; any other error means a
// backing store was unreachable.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (int64, error)
}

// AuthMiddleware returns a middleware that authenticates requests by bearer
// token and stores the resolved user id and the raw token in the request
// context. Validation failures get a uniform 401 with a Bearer challenge; a
// store outage is surfaced as 503, never as 401, so a Redis blip does not
// deauthenticate valid users.
func AuthMiddleware(extractor TokenExtractor, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := extractor.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			userID, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				if errors.Is(err, jwt.ErrInvalidToken) {
					logger.Log.Errorw("authorization failed", "err", err)
					writeUnauthorized(w)
					return
				}
				logger.Log.Errorw("authentication store unavailable", "err", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{"error": "service unavailable"})
				return
			}

			ctx = context.WithValue(ctx, userIDKey, userID)
			ctx = context.WithValue(ctx, tokenKey, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "could not validate credentials"})
}

type userIDKeyType struct{}
type tokenKeyType struct{}

var (
	userIDKey = userIDKeyType{}
	tokenKey  = tokenKeyType{}
)

// GetUserIDFromContext returns the authenticated user id set by AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetBearerTokenFromContext returns the raw bearer token set by AuthMiddleware,
// or an empty string if the request was not authenticated.
func GetBearerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
