package models

import "time"

// UserDB represents a user record in the database.
// Records are immutable after signup and never deleted.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserOut is the public projection of a user returned by the API.
type UserOut struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Out returns the public projection of the user.
func (u *UserDB) Out() UserOut {
	return UserOut{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}
