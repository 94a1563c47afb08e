package domain

import (
	"errors"
	"time"
)

// Role is a permission tag carried by a user.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCreator     Role = "creator"
	RoleCommentator Role = "commentator"
)

// TokenLength is the fixed length of a session token as seen on the wire.
const TokenLength = 118

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRole = errors.New("invalid role")

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCreator, RoleCommentator:
		return true
	}
	return false
}

// RoleSet is an unordered collection of roles.
type RoleSet []Role

// Has reports whether the set contains role.
func (s RoleSet) Has(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// Intersects reports whether at least one role is present in both sets.
func (s RoleSet) Intersects(other RoleSet) bool {
	for _, r := range other {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        RoleSet   `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session binds an opaque bearer token to a user. ID is the owning user's ID,
// so a user has at most one live session.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UpdatedAt time.Time `json:"updated_at"`
}
