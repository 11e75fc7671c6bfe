package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type MessagesAPI interface {
	ListByChat(ctx context.Context, chatID string) ([]*domain.Message, error)
	Send(ctx context.Context, in *domain.SendMessage) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}
