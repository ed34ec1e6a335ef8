package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/schartrand77/makerworks-auth/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		mockSetup        func(e *MockTokenExtractor, a *MockAuthenticator)
		expectedStatus   int
		expectChallenge  bool
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
		},
		{
			name: "InvalidToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				a.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(int64(0), jwt.ErrInvalidToken)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
		},
		{
			name: "StoreUnavailable",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				a.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(int64(0), errors.New("redis unavailable"))
			},
			// A store outage must not read as "signed out".
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "ValidToken",
			mockSetup: func(e *MockTokenExtractor, a *MockAuthenticator) {
				e.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				a.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(int64(7), nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockExtractor := NewMockTokenExtractor(ctrl)
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockExtractor, mockAuth)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				userID, ok := GetUserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, int64(7), userID)
				assert.Equal(t, "validtoken", GetBearerTokenFromContext(r.Context()))

				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockExtractor, mockAuth)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectChallenge {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestGetUserIDFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserIDFromContext(req.Context())
	assert.False(t, ok)
	assert.Empty(t, GetBearerTokenFromContext(req.Context()))
}
