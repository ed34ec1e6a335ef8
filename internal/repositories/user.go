package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/schartrand77/makerworks-auth/internal/logger"
	"github.com/schartrand77/makerworks-auth/internal/middlewares"
	"github.com/schartrand77/makerworks-auth/internal/models"
)

// ErrUniqueViolation is returned when an insert hits the email or username
// unique constraint. Uniqueness is enforced by the database in the same
// statement as the insert, so concurrent signups cannot race past it.
var ErrUniqueViolation = errors.New("email or username already exists")

const pgUniqueViolationCode = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, username, password_hash, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, email)

	logger.Log.Infow("users select by email",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, email, username, password_hash, created_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, id)

	logger.Log.Infow("users select by id",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ext returns the request-scoped transaction when the tx middleware installed
// one, and the pooled connection otherwise.
func (r *UserReadRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user in a single statement and returns the created
// record. A duplicate email or username surfaces as ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, email, username, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, username, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, email, username, password_hash, created_at
	`
	args := []any{email, username, passwordHash}

	var ext sqlx.ExtContext = r.db
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		ext = tx
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext, &user, query, args...)

	logger.Log.Infow("users insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
