package repositories

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/models"
)

const sessionKeyPrefix = "session:"

// SessionRepository stores session records in Redis as JSON. Key derivation
// follows the configured mode: by bearer token (presence-marker sessions with
// a sliding TTL) or by user id (profile sessions without expiry).
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	mode   models.SessionKeyMode
}

// NewSessionRepository creates a session repository with the given default
// TTL and key mode.
func NewSessionRepository(client *redis.Client, ttl time.Duration, mode models.SessionKeyMode) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
		mode:   mode,
	}
}

// Mode returns the configured key mode.
func (r *SessionRepository) Mode() models.SessionKeyMode {
	return r.mode
}

// Key derives the storage key for a session from the bearer token or the
// user id, depending on the configured mode.
func (r *SessionRepository) Key(token string, userID int64) string {
	if r.mode == models.SessionKeyByUser {
		return sessionKeyPrefix + strconv.FormatInt(userID, 10)
	}
	return sessionKeyPrefix + token
}

// Save writes the full session record, replacing any prior value. Token-keyed
// records get the configured TTL; user-keyed profile records do not expire.
func (r *SessionRepository) Save(ctx context.Context, key string, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	ttl := r.ttl
	if r.mode == models.SessionKeyByUser {
		ttl = 0
	}

	err = r.client.Set(ctx, key, data, ttl).Err()

	logger.Log.Infow("session save",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Get returns the session stored under key. A missing key or a malformed
// payload reads as absent (nil, nil); transport errors propagate unchanged so
// callers can tell "no session" apart from "store unreachable".
func (r *SessionRepository) Get(ctx context.Context, key string) (*models.Session, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("session get failed", "key", key, "error", err)
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		logger.Log.Errorw("malformed session payload, treating as absent", "key", key, "error", err)
		return nil, nil
	}

	return &sess, nil
}

// Delete removes the session stored under key. Deleting an absent key is a
// no-op, so signout stays idempotent.
func (r *SessionRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}

// Refresh resets the key's TTL to the configured duration without rewriting
// the value (sliding expiry).
func (r *SessionRepository) Refresh(ctx context.Context, key string) error {
	return r.client.Expire(ctx, key, r.ttl).Err()
}

// Exists reports whether a session record is present under key.
func (r *SessionRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("session exists check failed", "key", key, "error", err)
		return false, err
	}
	return n > 0, nil
}
