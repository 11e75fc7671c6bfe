package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type conversationsClient struct {
	client *Client
}

func NewConversationsClient(client *Client) *conversationsClient {
	return &conversationsClient{client: client}
}

func (c *conversationsClient) List(ctx context.Context) ([]*domain.WhatsAppConversation, error) {
	var conversations []*domain.WhatsAppConversation
	if err := c.client.do(ctx, http.MethodGet, "/whatsapp/conversations", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *conversationsClient) Get(ctx context.Context, id string) (*domain.WhatsAppConversation, error) {
	conversation := &domain.WhatsAppConversation{}
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/whatsapp/conversations/%s", id), nil, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (c *conversationsClient) Assign(ctx context.Context, id, userID string) (*domain.WhatsAppConversation, error) {
	body := map[string]string{"userId": userID}
	conversation := &domain.WhatsAppConversation{}
	if err := c.client.do(ctx, http.MethodPost, fmt.Sprintf("/whatsapp/conversations/%s/assign", id), body, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (c *conversationsClient) UpdateStatus(ctx context.Context, id string, status domain.ConversationStatus) (*domain.WhatsAppConversation, error) {
	body := map[string]domain.ConversationStatus{"status": status}
	conversation := &domain.WhatsAppConversation{}
	if err := c.client.do(ctx, http.MethodPatch, fmt.Sprintf("/whatsapp/conversations/%s/status", id), body, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

type whatsAppMessagesClient struct {
	client *Client
}

func NewWhatsAppMessagesClient(client *Client) *whatsAppMessagesClient {
	return &whatsAppMessagesClient{client: client}
}

func (w *whatsAppMessagesClient) ListByConversation(ctx context.Context, conversationID string) ([]*domain.WhatsAppMessage, error) {
	var messages []*domain.WhatsAppMessage
	if err := w.client.do(ctx, http.MethodGet, fmt.Sprintf("/whatsapp/conversations/%s/messages", conversationID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (w *whatsAppMessagesClient) Send(ctx context.Context, in *domain.SendWhatsAppMessage) (*domain.WhatsAppMessage, error) {
	sent := &domain.WhatsAppMessage{}
	if err := w.client.do(ctx, http.MethodPost, "/whatsapp/messages", in, sent); err != nil {
		return nil, err
	}
	return sent, nil
}
