package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type CommentsAPI interface {
	ListByCard(ctx context.Context, cardID string) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
