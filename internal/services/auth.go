package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/schartrand77/makerworks-auth/internal/jwt"
	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/models"
	"github.com/schartrand77/makerworks-auth/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email or username already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers every authentication failure on the token path:
	// bad signature, expiry, revoked session, unknown subject. Handlers must
	// not leak which one occurred.
	ErrInvalidToken = jwt.ErrInvalidToken
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string) (*models.UserDB, error)
}

// JWTProvider defines an interface for issuing and validating tokens.
type JWTProvider interface {
	Generate(ctx context.Context, userID int64) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// SessionStore defines the key-value session operations used by the services.
type SessionStore interface {
	Save(ctx context.Context, key string, sess *models.Session) error
	Get(ctx context.Context, key string) (*models.Session, error)
	Delete(ctx context.Context, key string) error
	Refresh(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Key(token string, userID int64) string
	Mode() models.SessionKeyMode
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuthService handles signup, signin, signout and token authentication.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	jwt      JWTProvider
	events   KafkaWriter
}

// NewAuthService creates a new AuthService instance. events may be nil when
// Kafka publishing is not configured.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, jwt JWTProvider, events KafkaWriter) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		jwt:      jwt,
		events:   events,
	}
}

// Register creates a new user with a bcrypt-hashed password. Duplicate email
// or username surfaces as ErrUserAlreadyExists.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (*models.UserDB, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, email, username, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("user already exists", "username", username)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.EventUserRegistered, user.ID)

	return user, nil
}

// Login authenticates a user by email and password, issues a token, and
// writes the session record. A missing user and a wrong password return the
// same ErrInvalidCredentials so callers cannot enumerate emails.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("login failed", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("login failed", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	key := svc.sessions.Key(token, user.ID)
	sess := &models.Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}

	// User-keyed profile records survive across signins; carry the stored
	// avatar and cart forward instead of overwriting them.
	if svc.sessions.Mode() == models.SessionKeyByUser {
		current, err := svc.sessions.Get(ctx, key)
		if err != nil {
			return nil, "", err
		}
		if current != nil {
			sess.AvatarURL = current.AvatarURL
			sess.Cart = current.Cart
		}
	}

	if err := svc.sessions.Save(ctx, key, sess); err != nil {
		return nil, "", err
	}

	svc.publishEvent(ctx, models.EventUserSignin, user.ID)

	return user, token, nil
}

// Authenticate resolves a bearer token to a user id. In token-keyed mode a
// codec-valid token additionally requires its session record to exist, and
// each successful check refreshes the record's TTL (sliding expiry). Every
// validation failure maps to ErrInvalidToken; session store transport errors
// pass through unchanged.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (int64, error) {
	userID, err := svc.jwt.GetUserID(ctx, tokenString)
	if err != nil {
		return 0, ErrInvalidToken
	}

	if svc.sessions.Mode() == models.SessionKeyByToken {
		key := svc.sessions.Key(tokenString, userID)
		ok, err := svc.sessions.Exists(ctx, key)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrInvalidToken
		}
		if err := svc.sessions.Refresh(ctx, key); err != nil {
			// The session was just seen; a failed TTL refresh is not a
			// reason to deauthenticate.
			logger.Log.Errorw("failed to refresh session ttl", "err", err)
		}
	}

	return userID, nil
}

// Logout deletes the token-keyed session record. The JWT itself stays
// cryptographically valid until its expiry; in token-keyed mode deleting the
// record is what revokes it. In user-keyed mode the profile record persists
// across devices and Logout only acknowledges. Idempotent either way.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	userID, err := svc.jwt.GetUserID(ctx, tokenString)
	if err != nil {
		// An unparseable token has nothing to revoke.
		return nil
	}

	if svc.sessions.Mode() == models.SessionKeyByToken {
		if err := svc.sessions.Delete(ctx, svc.sessions.Key(tokenString, userID)); err != nil {
			logger.Log.Errorw("failed to delete session", "err", err)
			return err
		}
	}

	svc.publishEvent(ctx, models.EventUserSignout, userID)

	return nil
}

// Me returns the user record for an authenticated user id. A missing row is
// an authentication failure, not an internal error.
func (svc *AuthService) Me(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// publishEvent publishes an auth lifecycle event to Kafka. Publishing is
// best-effort: failures are logged and never fail the request.
func (svc *AuthService) publishEvent(ctx context.Context, event string, userID int64) {
	if svc.events == nil {
		return
	}

	payload := models.AuthEvent{
		EventID:   uuid.NewString(),
		Event:     event,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorw("failed to marshal auth event", "event", event, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(payload.EventID),
		Value: data,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish auth event", "event", event, "error", err)
		return
	}

	logger.Log.Infow("auth event published", "event", event, "user_id", userID)
}
