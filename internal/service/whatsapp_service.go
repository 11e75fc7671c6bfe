package service

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type ConversationService interface {
	GetAll(ctx context.Context) ([]*domain.WhatsAppConversation, error)
	Get(ctx context.Context, id string) (*domain.WhatsAppConversation, error)
	Assign(ctx context.Context, id, userID string) (*domain.WhatsAppConversation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ConversationStatus) (*domain.WhatsAppConversation, error)
}

type WhatsAppMessageService interface {
	GetByConversation(ctx context.Context, conversationID string) ([]*domain.WhatsAppMessage, error)
	Send(ctx context.Context, in *domain.SendWhatsAppMessage) (*domain.WhatsAppMessage, error)
}
