package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput marks a request the caller must correct before retrying.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials indicates a login failure. The same value is
	// returned for an unknown email and a wrong password so callers cannot
	// probe which addresses are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailExists signals a duplicate email registration.
	ErrEmailExists = errors.New("email already registered")
	// ErrTokenInvalid means a supplied token cannot be validated.
	ErrTokenInvalid = errors.New("token invalid or expired")
	// ErrUserNotFound indicates missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRole indicates the provided role is not supported.
	ErrInvalidRole = errors.New("invalid role")
	// ErrPasswordMismatch indicates the current password is incorrect.
	ErrPasswordMismatch = errors.New("current password does not match")
	// ErrPasswordUnchanged indicates the new password matches the current one.
	ErrPasswordUnchanged = errors.New("new password must be different from current password")
)

// UserRole identifies the privileges assigned to a user.
type UserRole string

const (
	// RoleUser represents a standard community member.
	RoleUser UserRole = "user"
	// RoleAdmin represents a dashboard administrator.
	RoleAdmin UserRole = "admin"
)

// User models the authentication entity persisted in storage. PasswordHash
// never crosses an outward boundary; services clear it before returning.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Credentials captures raw credential input for login.
type Credentials struct {
	Email    string
	Password string
}

// Principal is the identity carried by a verified token. It lives for the
// duration of a single request and is never persisted.
type Principal struct {
	UserID string
	Email  string
}
