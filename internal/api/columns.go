package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type ColumnsAPI interface {
	ListByBoard(ctx context.Context, boardID string) ([]*domain.Column, error)
	Create(ctx context.Context, column *domain.Column) (*domain.Column, error)
	Update(ctx context.Context, column *domain.Column) (*domain.Column, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, move *domain.ColumnMove) (*domain.Column, error)
}
