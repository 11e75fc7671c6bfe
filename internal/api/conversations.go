package api

import (
	"context"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type ConversationsAPI interface {
	List(ctx context.Context) ([]*domain.WhatsAppConversation, error)
	Get(ctx context.Context, id string) (*domain.WhatsAppConversation, error)
	Assign(ctx context.Context, id, userID string) (*domain.WhatsAppConversation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ConversationStatus) (*domain.WhatsAppConversation, error)
}
