package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type chatsClient struct {
	client *Client
}

func NewChatsClient(client *Client) *chatsClient {
	return &chatsClient{client: client}
}

func (c *chatsClient) List(ctx context.Context) ([]*domain.Chat, error) {
	var chats []*domain.Chat
	if err := c.client.do(ctx, http.MethodGet, "/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (c *chatsClient) Get(ctx context.Context, id string) (*domain.Chat, error) {
	chat := &domain.Chat{}
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/chats/%s", id), nil, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (c *chatsClient) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	created := &domain.Chat{}
	if err := c.client.do(ctx, http.MethodPost, "/chats", chat, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *chatsClient) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/chats/%s", id), nil, nil)
}

func (c *chatsClient) AddParticipant(ctx context.Context, chatID, userID string) (*domain.Chat, error) {
	body := map[string]string{"userId": userID}
	chat := &domain.Chat{}
	if err := c.client.do(ctx, http.MethodPost, fmt.Sprintf("/chats/%s/participants", chatID), body, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (c *chatsClient) RemoveParticipant(ctx context.Context, chatID, userID string) (*domain.Chat, error) {
	chat := &domain.Chat{}
	if err := c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/chats/%s/participants/%s", chatID, userID), nil, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

type messagesClient struct {
	client *Client
}

func NewMessagesClient(client *Client) *messagesClient {
	return &messagesClient{client: client}
}

func (m *messagesClient) ListByChat(ctx context.Context, chatID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	if err := m.client.do(ctx, http.MethodGet, fmt.Sprintf("/chats/%s/messages", chatID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (m *messagesClient) Send(ctx context.Context, in *domain.SendMessage) (*domain.Message, error) {
	sent := &domain.Message{}
	if err := m.client.do(ctx, http.MethodPost, "/messages", in, sent); err != nil {
		return nil, err
	}
	return sent, nil
}

func (m *messagesClient) Delete(ctx context.Context, id string) error {
	return m.client.do(ctx, http.MethodDelete, fmt.Sprintf("/messages/%s", id), nil, nil)
}
