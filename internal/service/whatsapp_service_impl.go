package service

import (
	"context"
	"errors"

	"github.com/chatboard/chatboard-go/internal/api"
	"github.com/chatboard/chatboard-go/internal/domain"
)

type conversationService struct {
	conversations api.ConversationsAPI
}

func NewConversationService(conversations api.ConversationsAPI) (ConversationService, error) {
	if conversations == nil {
		return nil, errors.New("conversation service requires a conversations API client")
	}
	return &conversationService{conversations: conversations}, nil
}

func (s *conversationService) GetAll(ctx context.Context) ([]*domain.WhatsAppConversation, error) {
	return s.conversations.List(ctx)
}

func (s *conversationService) Get(ctx context.Context, id string) (*domain.WhatsAppConversation, error) {
	return s.conversations.Get(ctx, id)
}

func (s *conversationService) Assign(ctx context.Context, id, userID string) (*domain.WhatsAppConversation, error) {
	return s.conversations.Assign(ctx, id, userID)
}

func (s *conversationService) UpdateStatus(ctx context.Context, id string, status domain.ConversationStatus) (*domain.WhatsAppConversation, error) {
	return s.conversations.UpdateStatus(ctx, id, status)
}

type whatsAppMessageService struct {
	messages api.WhatsAppMessagesAPI
}

func NewWhatsAppMessageService(messages api.WhatsAppMessagesAPI) (WhatsAppMessageService, error) {
	if messages == nil {
		return nil, errors.New("whatsapp message service requires a whatsapp messages API client")
	}
	return &whatsAppMessageService{messages: messages}, nil
}

func (s *whatsAppMessageService) GetByConversation(ctx context.Context, conversationID string) ([]*domain.WhatsAppMessage, error) {
	return s.messages.ListByConversation(ctx, conversationID)
}

func (s *whatsAppMessageService) Send(ctx context.Context, in *domain.SendWhatsAppMessage) (*domain.WhatsAppMessage, error) {
	return s.messages.Send(ctx, in)
}
