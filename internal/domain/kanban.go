package domain

import "time"

type Board struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	Columns   []*Column `json:"columns,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Column struct {
	ID       string  `json:"id"`
	BoardID  string  `json:"boardId"`
	Name     string  `json:"name"`
	Position int     `json:"position"`
	Cards    []*Card `json:"cards,omitempty"`
}

type Card struct {
	ID          string     `json:"id"`
	ColumnID    string     `json:"columnId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  *string    `json:"assigneeId,omitempty"`
	Position    int        `json:"position"`
	DueAt       *time.Time `json:"dueAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	AuthorID  string    `json:"authorId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// CardMove describes a reposition request. Ordering is resolved by the
// server; the client never reorders locally.
type CardMove struct {
	CardID     string `json:"cardId"`
	ToColumnID string `json:"toColumnId"`
	Position   int    `json:"position"`
}

type ColumnMove struct {
	ColumnID string `json:"columnId"`
	Position int    `json:"position"`
}
