package contracts

import (
	"context"
	"pathlab-client/internal/app/models"
)

// SessionStorage is the capability-scoped persistence behind the session
// service: persist when possible, degrade to memory-only when not. Get
// returns "" without error for a missing entry.
type SessionStorage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// SessionService owns the authenticated state for this process.
type SessionService interface {
	TokenProvider

	// Initialize loads any persisted session. Corrupt entries are discarded,
	// never surfaced; Initialize itself cannot fail.
	Initialize(ctx context.Context)
	// Ready reports whether Initialize has completed, so callers can tell
	// "still loading" from "confirmed logged out".
	Ready() bool

	Login(ctx context.Context, email, password, userTypeHint string) (*models.LoginResult, error)
	Logout(ctx context.Context)

	IsAuthenticated() bool
	CurrentUser() *models.UserProfile
}
