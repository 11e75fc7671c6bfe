package service

import (
	"context"
	"errors"

	"github.com/chatboard/chatboard-go/internal/api"
	"github.com/chatboard/chatboard-go/internal/domain"
)

type chatService struct {
	chats api.ChatsAPI
}

func NewChatService(chats api.ChatsAPI) (ChatService, error) {
	if chats == nil {
		return nil, errors.New("chat service requires a chats API client")
	}
	return &chatService{chats: chats}, nil
}

func (s *chatService) GetAll(ctx context.Context) ([]*domain.Chat, error) {
	return s.chats.List(ctx)
}

func (s *chatService) Get(ctx context.Context, id string) (*domain.Chat, error) {
	return s.chats.Get(ctx, id)
}

func (s *chatService) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	return s.chats.Create(ctx, chat)
}

func (s *chatService) Delete(ctx context.Context, id string) error {
	return s.chats.Delete(ctx, id)
}

func (s *chatService) AddParticipant(ctx context.Context, chatID, userID string) (*domain.Chat, error) {
	return s.chats.AddParticipant(ctx, chatID, userID)
}

func (s *chatService) RemoveParticipant(ctx context.Context, chatID, userID string) (*domain.Chat, error) {
	return s.chats.RemoveParticipant(ctx, chatID, userID)
}

type messageService struct {
	messages api.MessagesAPI
}

func NewMessageService(messages api.MessagesAPI) (MessageService, error) {
	if messages == nil {
		return nil, errors.New("message service requires a messages API client")
	}
	return &messageService{messages: messages}, nil
}

func (s *messageService) GetByChat(ctx context.Context, chatID string) ([]*domain.Message, error) {
	return s.messages.ListByChat(ctx, chatID)
}

func (s *messageService) Send(ctx context.Context, in *domain.SendMessage) (*domain.Message, error) {
	return s.messages.Send(ctx, in)
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}
