package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type CardsAPI interface {
	ListByColumn(ctx context.Context, columnID string) ([]*domain.Card, error)
	Get(ctx context.Context, id string) (*domain.Card, error)
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, move *domain.CardMove) (*domain.Card, error)
}
