package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/schartrand77/makerworks-auth/internal/models"
	"github.com/schartrand77/makerworks-auth/internal/services"
)

func TestSessionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("existing record", func(t *testing.T) {
		mockSessions := services.NewMockSessionStore(ctrl)
		svc := services.NewSessionService(mockSessions)

		stored := &models.Session{UserID: 7, AvatarURL: "https://cdn.example.com/a.png"}

		mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:7")
		mockSessions.EXPECT().Get(gomock.Any(), "session:7").Return(stored, nil)

		sess, err := svc.Get(context.Background(), "TOKEN", 7)
		assert.NoError(t, err)
		assert.Equal(t, stored, sess)
	})

	t.Run("absent record defaults to empty", func(t *testing.T) {
		mockSessions := services.NewMockSessionStore(ctrl)
		svc := services.NewSessionService(mockSessions)

		mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:7")
		mockSessions.EXPECT().Get(gomock.Any(), "session:7").Return(nil, nil)

		sess, err := svc.Get(context.Background(), "TOKEN", 7)
		assert.NoError(t, err)
		assert.Equal(t, &models.Session{UserID: 7}, sess)
	})

	t.Run("store error propagates", func(t *testing.T) {
		mockSessions := services.NewMockSessionStore(ctrl)
		svc := services.NewSessionService(mockSessions)

		storeErr := errors.New("redis unavailable")

		mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:7")
		mockSessions.EXPECT().Get(gomock.Any(), "session:7").Return(nil, storeErr)

		_, err := svc.Get(context.Background(), "TOKEN", 7)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestSessionService_SetAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("preserves the rest of the record", func(t *testing.T) {
		mockSessions := services.NewMockSessionStore(ctrl)
		svc := services.NewSessionService(mockSessions)

		cart := []models.CartItem{{ID: "sku-1", Name: "Benchy", Price: 9.99, Quantity: 1}}

		mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:7")
		mockSessions.EXPECT().Get(gomock.Any(), "session:7").Return(&models.Session{UserID: 7, Cart: cart}, nil)
		mockSessions.EXPECT().
			Save(gomock.Any(), "session:7", &models.Session{
				UserID:    7,
				AvatarURL: "https://cdn.example.com/new.png",
				Cart:      cart,
			}).
			Return(nil)

		err := svc.SetAvatar(context.Background(), "TOKEN", 7, "https://cdn.example.com/new.png")
		assert.NoError(t, err)
	})

	t.Run("absent record starts empty", func(t *testing.T) {
		mockSessions := services.NewMockSessionStore(ctrl)
		svc := services.NewSessionService(mockSessions)

		mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:7")
		mockSessions.EXPECT().Get(gomock.Any(), "session:7").Return(nil, nil)
		mockSessions.EXPECT().
			Save(gomock.Any(), "session:7", &models.Session{
				UserID:    7,
				AvatarURL: "https://cdn.example.com/new.png",
			}).
			Return(nil)

		err := svc.SetAvatar(context.Background(), "TOKEN", 7, "https://cdn.example.com/new.png")
		assert.NoError(t, err)
	})
}

func TestSessionService_SetCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSessionStore(ctrl)
	svc := services.NewSessionService(mockSessions)

	items := []models.CartItem{
		{ID: "sku-2", Name: "Calibration cube", Price: 1.50, Quantity: 3},
		{ID: "sku-1", Name: "Benchy", Price: 9.99, Quantity: 1},
	}

	mockSessions.EXPECT().Key("TOKEN", int64(7)).Return("session:7")
	mockSessions.EXPECT().Get(gomock.Any(), "session:7").Return(&models.Session{
		UserID:    7,
		AvatarURL: "https://cdn.example.com/a.png",
	}, nil)
	mockSessions.EXPECT().
		Save(gomock.Any(), "session:7", &models.Session{
			UserID:    7,
			AvatarURL: "https://cdn.example.com/a.png",
			// Item order is kept as sent.
			Cart: items,
		}).
		Return(nil)

	assert.NoError(t, svc.SetCart(context.Background(), "TOKEN", 7, items))
}
