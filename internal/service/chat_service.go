package service

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type ChatService interface {
	GetAll(ctx context.Context) ([]*domain.Chat, error)
	Get(ctx context.Context, id string) (*domain.Chat, error)
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	Delete(ctx context.Context, id string) error
	AddParticipant(ctx context.Context, chatID, userID string) (*domain.Chat, error)
	RemoveParticipant(ctx context.Context, chatID, userID string) (*domain.Chat, error)
}

type MessageService interface {
	GetByChat(ctx context.Context, chatID string) ([]*domain.Message, error)
	Send(ctx context.Context, in *domain.SendMessage) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}
