package service

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type RoleService interface {
	GetAll(ctx context.Context) ([]*domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Delete(ctx context.Context, id string) error
}

type DepartmentService interface {
	GetAll(ctx context.Context) ([]*domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, dep *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, dep *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}
