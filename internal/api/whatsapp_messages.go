package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type WhatsAppMessagesAPI interface {
	ListByConversation(ctx context.Context, conversationID string) ([]*domain.WhatsAppMessage, error)
	Send(ctx context.Context, in *domain.SendWhatsAppMessage) (*domain.WhatsAppMessage, error)
}
