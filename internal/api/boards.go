package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type BoardsAPI interface {
	List(ctx context.Context) ([]*domain.Board, error)
	Get(ctx context.Context, id string) (*domain.Board, error)
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) (*domain.Board, error)
	Delete(ctx context.Context, id string) error
}
