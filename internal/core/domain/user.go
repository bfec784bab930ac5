package domain

import (
	"errors"
	"time"
)

// DefaultRole is assigned to seeded accounts that do not declare one. The
// role is stored and returned as-is; nothing in the service enforces it.
const DefaultRole = "trader"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrStoreNotFound = errors.New("database file not found")
var ErrInvalidToken = errors.New("invalid authentication credentials")

// User models a trading account holder as stored in the users table.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the subset of a user record safe to return to clients.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile projects u onto its external representation. The password hash
// never leaves the service.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email}
}
