package service

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

// UserService wraps the users API and keeps a local copy of the full
// collection. Every mutation re-reads the collection from the server
// instead of patching locally (read-after-write by reload).
type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in *domain.CreateUser) (*domain.User, error)
	Update(ctx context.Context, id string, in *domain.UpdateUser) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	// Users returns a snapshot of the last loaded collection.
	Users() []*domain.User
	// Loading reports whether a collection reload is in flight.
	Loading() bool
}
