package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type DepartmentsAPI interface {
	List(ctx context.Context) ([]*domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, dep *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, dep *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}
