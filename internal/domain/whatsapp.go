package domain

import "time"

type ConversationStatus string

const (
	ConversationOpen    ConversationStatus = "OPEN"
	ConversationPending ConversationStatus = "PENDING"
	ConversationClosed  ConversationStatus = "CLOSED"
)

type WhatsAppConversation struct {
	ID            string             `json:"id"`
	ClientPhone   string             `json:"clientPhone"`
	ClientName    string             `json:"clientName"`
	AssignedTo    *string            `json:"assignedTo,omitempty"`
	Status        ConversationStatus `json:"status"`
	LastMessageAt *time.Time         `json:"lastMessageAt,omitempty"`
}

type MessageDirection string

const (
	DirectionInbound  MessageDirection = "INBOUND"
	DirectionOutbound MessageDirection = "OUTBOUND"
)

type WhatsAppMessage struct {
	ID             string           `json:"id"`
	ConversationID string           `json:"conversationId"`
	Direction      MessageDirection `json:"direction"`
	Body           string           `json:"body"`
	SentAt         time.Time        `json:"sentAt"`
	Status         string           `json:"status,omitempty"`
}

type SendWhatsAppMessage struct {
	ConversationID string `json:"conversationId"`
	Body           string `json:"body"`
}
