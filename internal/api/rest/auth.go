package rest

import (
	"context"
	"net/http"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type authClient struct {
	client *Client
}

func NewAuthClient(client *Client) *authClient {
	return &authClient{client: client}
}

func (a *authClient) Login(ctx context.Context, creds *domain.Credentials) (*domain.Session, error) {
	session := &domain.Session{}
	if err := a.client.do(ctx, http.MethodPost, "/auth/login", creds, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (a *authClient) Register(ctx context.Context, in *domain.Registration) (*domain.User, error) {
	user := &domain.User{}
	if err := a.client.do(ctx, http.MethodPost, "/auth/register", in, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authClient) Logout(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (a *authClient) Me(ctx context.Context) (*domain.User, error) {
	user := &domain.User{}
	if err := a.client.do(ctx, http.MethodGet, "/auth/me", nil, user); err != nil {
		return nil, err
	}
	return user, nil
}
