package service

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

// SessionStore is the persisted credential state shared with the transport.
type SessionStore interface {
	Save(session *domain.Session) error
	Clear() error
	Current() *domain.Session
}

type AuthService interface {
	// Login authenticates and persists the returned session.
	Login(ctx context.Context, creds *domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, in *domain.Registration) (*domain.User, error)
	// Logout tells the server, then clears the persisted session even if the
	// server call failed.
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
	Session() *domain.Session
}
