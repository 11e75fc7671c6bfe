package service

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type BoardService interface {
	GetAll(ctx context.Context) ([]*domain.Board, error)
	Get(ctx context.Context, id string) (*domain.Board, error)
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) (*domain.Board, error)
	Delete(ctx context.Context, id string) error
}

type ColumnService interface {
	GetByBoard(ctx context.Context, boardID string) ([]*domain.Column, error)
	Create(ctx context.Context, column *domain.Column) (*domain.Column, error)
	Update(ctx context.Context, column *domain.Column) (*domain.Column, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, move *domain.ColumnMove) (*domain.Column, error)
}

type CardService interface {
	GetByColumn(ctx context.Context, columnID string) ([]*domain.Card, error)
	Get(ctx context.Context, id string) (*domain.Card, error)
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, move *domain.CardMove) (*domain.Card, error)
}

type CommentService interface {
	GetByCard(ctx context.Context, cardID string) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
