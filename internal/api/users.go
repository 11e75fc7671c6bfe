package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type UsersAPI interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in *domain.CreateUser) (*domain.User, error)
	Update(ctx context.Context, id string, in *domain.UpdateUser) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
