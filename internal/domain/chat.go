package domain

import "time"

type Chat struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	IsGroup      bool           `json:"isGroup"`
	Participants []*Participant `json:"participants,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type Participant struct {
	UserID   string    `json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}

type Message struct {
	ID       string    `json:"id"`
	ChatID   string    `json:"chatId"`
	SenderID string    `json:"senderId"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sentAt"`
}

type SendMessage struct {
	ChatID string `json:"chatId"`
	Body   string `json:"body"`
}
