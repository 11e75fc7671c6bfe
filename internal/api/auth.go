package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, creds *domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, in *domain.Registration) (*domain.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
}
