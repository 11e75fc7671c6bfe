package service

import (
	"context"
	"errors"

	"github.com/chatboard/chatboard-go/internal/api"
	"github.com/chatboard/chatboard-go/internal/domain"
)

type authService struct {
	auth     api.AuthAPI
	sessions SessionStore
}

func NewAuthService(auth api.AuthAPI, sessions SessionStore) (AuthService, error) {
	if auth == nil {
		return nil, errors.New("auth service requires an auth API client")
	}
	if sessions == nil {
		return nil, errors.New("auth service requires a session store")
	}
	return &authService{auth: auth, sessions: sessions}, nil
}

func (s *authService) Login(ctx context.Context, creds *domain.Credentials) (*domain.Session, error) {
	session, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) Register(ctx context.Context, in *domain.Registration) (*domain.User, error) {
	return s.auth.Register(ctx, in)
}

func (s *authService) Logout(ctx context.Context) error {
	apiErr := s.auth.Logout(ctx)
	if err := s.sessions.Clear(); err != nil {
		return err
	}
	return apiErr
}

func (s *authService) Me(ctx context.Context) (*domain.User, error) {
	return s.auth.Me(ctx)
}

func (s *authService) Session() *domain.Session {
	return s.sessions.Current()
}
