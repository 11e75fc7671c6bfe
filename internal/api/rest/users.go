package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type usersClient struct {
	client *Client
}

func NewUsersClient(client *Client) *usersClient {
	return &usersClient{client: client}
}

func (u *usersClient) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := u.client.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *usersClient) Get(ctx context.Context, id string) (*domain.User, error) {
	user := &domain.User{}
	if err := u.client.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s", id), nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *usersClient) Create(ctx context.Context, in *domain.CreateUser) (*domain.User, error) {
	user := &domain.User{}
	if err := u.client.do(ctx, http.MethodPost, "/users", in, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *usersClient) Update(ctx context.Context, id string, in *domain.UpdateUser) (*domain.User, error) {
	user := &domain.User{}
	if err := u.client.do(ctx, http.MethodPut, fmt.Sprintf("/users/%s", id), in, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *usersClient) Delete(ctx context.Context, id string) error {
	return u.client.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%s", id), nil, nil)
}
