package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/schartrand77/makerworks-auth/internal/models"
	"github.com/schartrand77/makerworks-auth/internal/repositories"
	"github.com/schartrand77/makerworks-auth/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		email     string
		username  string
		password  string
		savedUser *models.UserDB
		writerErr error
		wantErr   error
	}{
		{
			name:      "successful registration",
			email:     "alice@example.com",
			username:  "alice",
			password:  "pass123",
			savedUser: &models.UserDB{ID: 1, Email: "alice@example.com", Username: "alice", CreatedAt: time.Now()},
		},
		{
			name:      "duplicate email or username",
			email:     "bob@example.com",
			username:  "bob",
			password:  "pass123",
			writerErr: repositories.ErrUniqueViolation,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "writer error",
			email:     "eve@example.com",
			username:  "eve",
			password:  "pass123",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockSessions := services.NewMockSessionStore(ctrl)
			mockJWT := services.NewMockJWTProvider(ctrl)
			mockEvents := services.NewMockKafkaWriter(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockJWT, mockEvents)

			mockWriter.EXPECT().
				Save(gomock.Any(), tt.email, tt.username, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _, passwordHash string) (*models.UserDB, error) {
					if tt.writerErr != nil {
						return nil, tt.writerErr
					}
					// The stored hash must verify against the plaintext.
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
					return tt.savedUser, nil
				})

			if tt.wantErr == nil {
				mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			user, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.savedUser, user)
			}
		})
	}
}

func TestAuthService_Login_TokenKeyed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	storedUser := &models.UserDB{
		ID:           7,
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: string(hash),
	}

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockJWT := services.NewMockJWTProvider(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockJWT, nil)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(storedUser, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), int64(7)).Return("TOKEN", nil)
	mockSessions.EXPECT().Mode().Return(models.SessionKeyByToken).AnyTimes()
	mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:TOKEN")
	mockSessions.EXPECT().
		Save(gomock.Any(), "session:TOKEN", &models.Session{
			UserID:   7,
			Username: "alice",
			Email:    "alice@example.com",
		}).
		Return(nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "pass123")
	assert.NoError(t, err)
	assert.Equal(t, storedUser, user)
	assert.Equal(t, "TOKEN", token)
}

func TestAuthService_Login_UserKeyedPreservesProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	storedUser := &models.UserDB{
		ID:           7,
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: string(hash),
	}
	cart := []models.CartItem{{ID: "sku-1", Name: "Benchy", Price: 9.99, Quantity: 2}}

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockJWT := services.NewMockJWTProvider(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockJWT, nil)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(storedUser, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), int64(7)).Return("TOKEN", nil)
	mockSessions.EXPECT().Mode().Return(models.SessionKeyByUser).AnyTimes()
	mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:7")
	mockSessions.EXPECT().Get(gomock.Any(), "session:7").Return(&models.Session{
		UserID:    7,
		AvatarURL: "https://cdn.example.com/a.png",
		Cart:      cart,
	}, nil)
	mockSessions.EXPECT().
		Save(gomock.Any(), "session:7", &models.Session{
			UserID:    7,
			Username:  "alice",
			Email:     "alice@example.com",
			AvatarURL: "https://cdn.example.com/a.png",
			Cart:      cart,
		}).
		Return(nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "pass123")
	assert.NoError(t, err)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	tests := []struct {
		name string
		user *models.UserDB
	}{
		{name: "user does not exist", user: nil},
		{name: "wrong password", user: &models.UserDB{ID: 7, Email: "alice@example.com", PasswordHash: string(hash)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockSessions := services.NewMockSessionStore(ctrl)
			mockJWT := services.NewMockJWTProvider(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockJWT, nil)

			mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(tt.user, nil)

			// Unknown email and wrong password must be indistinguishable.
			_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
			assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("redis unavailable")

	tests := []struct {
		name       string
		mode       models.SessionKeyMode
		jwtErr     error
		exists     bool
		existsErr  error
		wantUserID int64
		wantErr    error
	}{
		{
			name:       "valid token with session",
			mode:       models.SessionKeyByToken,
			exists:     true,
			wantUserID: 7,
		},
		{
			name:    "codec-invalid token",
			mode:    models.SessionKeyByToken,
			jwtErr:  services.ErrInvalidToken,
			wantErr: services.ErrInvalidToken,
		},
		{
			name:    "valid token but session revoked",
			mode:    models.SessionKeyByToken,
			exists:  false,
			wantErr: services.ErrInvalidToken,
		},
		{
			name:      "store outage is not unauthorized",
			mode:      models.SessionKeyByToken,
			existsErr: storeErr,
			wantErr:   storeErr,
		},
		{
			name:       "user-keyed mode skips session check",
			mode:       models.SessionKeyByUser,
			wantUserID: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockSessions := services.NewMockSessionStore(ctrl)
			mockJWT := services.NewMockJWTProvider(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockJWT, nil)

			if tt.jwtErr != nil {
				mockJWT.EXPECT().GetUserID(gomock.Any(), "TOKEN").Return(int64(0), tt.jwtErr)
			} else {
				mockJWT.EXPECT().GetUserID(gomock.Any(), "TOKEN").Return(int64(7), nil)
				mockSessions.EXPECT().Mode().Return(tt.mode).AnyTimes()

				if tt.mode == models.SessionKeyByToken {
					mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:TOKEN")
					mockSessions.EXPECT().Exists(gomock.Any(), "session:TOKEN").Return(tt.exists, tt.existsErr)
					if tt.exists && tt.existsErr == nil {
						mockSessions.EXPECT().Refresh(gomock.Any(), "session:TOKEN").Return(nil)
					}
				}
			}

			userID, err := svc.Authenticate(context.Background(), "TOKEN")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUserID, userID)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("token-keyed deletes the session", func(t *testing.T) {
		mockSessions := services.NewMockSessionStore(ctrl)
		mockJWT := services.NewMockJWTProvider(ctrl)

		svc := services.NewAuthService(nil, nil, mockSessions, mockJWT, nil)

		mockJWT.EXPECT().GetUserID(gomock.Any(), "TOKEN").Return(int64(7), nil)
		mockSessions.EXPECT().Mode().Return(models.SessionKeyByToken)
		mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:TOKEN")
		mockSessions.EXPECT().Delete(gomock.Any(), "session:TOKEN").Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "TOKEN"))
	})

	t.Run("user-keyed keeps the profile record", func(t *testing.T) {
		mockSessions := services.NewMockSessionStore(ctrl)
		mockJWT := services.NewMockJWTProvider(ctrl)

		svc := services.NewAuthService(nil, nil, mockSessions, mockJWT, nil)

		mockJWT.EXPECT().GetUserID(gomock.Any(), "TOKEN").Return(int64(7), nil)
		mockSessions.EXPECT().Mode().Return(models.SessionKeyByUser)

		assert.NoError(t, svc.Logout(context.Background(), "TOKEN"))
	})

	t.Run("unparseable token acknowledges", func(t *testing.T) {
		mockSessions := services.NewMockSessionStore(ctrl)
		mockJWT := services.NewMockJWTProvider(ctrl)

		svc := services.NewAuthService(nil, nil, mockSessions, mockJWT, nil)

		mockJWT.EXPECT().GetUserID(gomock.Any(), "garbage").Return(int64(0), services.ErrInvalidToken)

		assert.NoError(t, svc.Logout(context.Background(), "garbage"))
	})
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name: "user found",
			user: &models.UserDB{ID: 7, Email: "alice@example.com", Username: "alice"},
		},
		{
			name:    "user missing is unauthorized",
			wantErr: services.ErrInvalidToken,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)

			svc := services.NewAuthService(mockReader, nil, nil, nil, nil)

			mockReader.EXPECT().GetByID(gomock.Any(), int64(7)).Return(tt.user, tt.readerErr)

			user, err := svc.Me(context.Background(), 7)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}
