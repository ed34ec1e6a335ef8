package services

import (
	"context"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/models"
)

// SessionService reads and updates session profile fields (avatar, cart).
//
// Field updates are read-modify-write over the whole record without a
// version check: two concurrent updates for the same user resolve
// last-writer-wins on the full record.
type SessionService struct {
	sessions SessionStore
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(sessions SessionStore) *SessionService {
	return &SessionService{sessions: sessions}
}

// Get returns the session record for the authenticated user. An absent
// record reads as an empty record for that user, never as an error.
func (svc *SessionService) Get(ctx context.Context, tokenString string, userID int64) (*models.Session, error) {
	sess, err := svc.sessions.Get(ctx, svc.sessions.Key(tokenString, userID))
	if err != nil {
		logger.Log.Errorw("failed to get session", "err", err)
		return nil, err
	}
	if sess == nil {
		sess = &models.Session{UserID: userID}
	}
	return sess, nil
}

// SetAvatar updates the avatar URL, preserving the rest of the record.
func (svc *SessionService) SetAvatar(ctx context.Context, tokenString string, userID int64, avatarURL string) error {
	key := svc.sessions.Key(tokenString, userID)

	sess, err := svc.sessions.Get(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to get session", "err", err)
		return err
	}
	if sess == nil {
		sess = &models.Session{UserID: userID}
	}

	sess.AvatarURL = avatarURL

	return svc.sessions.Save(ctx, key, sess)
}

// SetCart replaces the cart with the given items, preserving the rest of the
// record. Item order is kept as sent.
func (svc *SessionService) SetCart(ctx context.Context, tokenString string, userID int64, items []models.CartItem) error {
	key := svc.sessions.Key(tokenString, userID)

	sess, err := svc.sessions.Get(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to get session", "err", err)
		return err
	}
	if sess == nil {
		sess = &models.Session{UserID: userID}
	}

	sess.Cart = items

	return svc.sessions.Save(ctx, key, sess)
}
