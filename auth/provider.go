// Package auth is the identity provider boundary: account creation, password
// sign-in, bearer token resolution, password change and account removal.
package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("a user with this email address has already been registered")
	ErrUserNotFound       = errors.New("user not found")
)

// Identity is the caller a bearer token resolves to.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is returned by a successful password sign-in.
type Session struct {
	AccessToken string
	User        Identity
}

// Provider is implemented by LocalProvider and GoTrueProvider.
type Provider interface {
	CreateUser(ctx context.Context, email, password, name string) (Identity, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	GetUser(ctx context.Context, accessToken string) (Identity, error)
	UpdatePassword(ctx context.Context, userID, newPassword string) error
	DeleteUser(ctx context.Context, userID string) error
}
