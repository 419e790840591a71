package domain

import (
	"errors"
	"time"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User models a registered account. The password hash never leaves the
// server: it is excluded from JSON and stripped again by Public for
// endpoint responses.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the external projection of a User.
type PublicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Public returns the projection of u safe to expose to callers.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Username: u.Username}
}
