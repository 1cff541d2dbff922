package entity

import (
	"time"
)

// User is the aggregate root for accounts.
// Passwords are stored as bcrypt hashes in Password field and never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserSummary is the slice of a user embedded in profile reads.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// Identity is what the Auth Gate resolves from a verified token.
type Identity struct {
	UserID    string
	UserName  string
	TokenID   string
	ExpiresAt time.Time // zero when the token carries no exp
}
