package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type boardsClient struct {
	client *Client
}

func NewBoardsClient(client *Client) *boardsClient {
	return &boardsClient{client: client}
}

func (b *boardsClient) List(ctx context.Context) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := b.client.do(ctx, http.MethodGet, "/boards", nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (b *boardsClient) Get(ctx context.Context, id string) (*domain.Board, error) {
	board := &domain.Board{}
	if err := b.client.do(ctx, http.MethodGet, fmt.Sprintf("/boards/%s", id), nil, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (b *boardsClient) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	created := &domain.Board{}
	if err := b.client.do(ctx, http.MethodPost, "/boards", board, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (b *boardsClient) Update(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	updated := &domain.Board{}
	if err := b.client.do(ctx, http.MethodPut, fmt.Sprintf("/boards/%s", board.ID), board, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (b *boardsClient) Delete(ctx context.Context, id string) error {
	return b.client.do(ctx, http.MethodDelete, fmt.Sprintf("/boards/%s", id), nil, nil)
}

type columnsClient struct {
	client *Client
}

func NewColumnsClient(client *Client) *columnsClient {
	return &columnsClient{client: client}
}

func (c *columnsClient) ListByBoard(ctx context.Context, boardID string) ([]*domain.Column, error) {
	var columns []*domain.Column
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/boards/%s/columns", boardID), nil, &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

func (c *columnsClient) Create(ctx context.Context, column *domain.Column) (*domain.Column, error) {
	created := &domain.Column{}
	if err := c.client.do(ctx, http.MethodPost, "/columns", column, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *columnsClient) Update(ctx context.Context, column *domain.Column) (*domain.Column, error) {
	updated := &domain.Column{}
	if err := c.client.do(ctx, http.MethodPut, fmt.Sprintf("/columns/%s", column.ID), column, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *columnsClient) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/columns/%s", id), nil, nil)
}

// Move delegates ordering entirely to the server; the returned column
// carries the server-resolved position.
func (c *columnsClient) Move(ctx context.Context, move *domain.ColumnMove) (*domain.Column, error) {
	moved := &domain.Column{}
	if err := c.client.do(ctx, http.MethodPost, "/columns/move", move, moved); err != nil {
		return nil, err
	}
	return moved, nil
}

type cardsClient struct {
	client *Client
}

func NewCardsClient(client *Client) *cardsClient {
	return &cardsClient{client: client}
}

func (c *cardsClient) ListByColumn(ctx context.Context, columnID string) ([]*domain.Card, error) {
	var cards []*domain.Card
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/columns/%s/cards", columnID), nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *cardsClient) Get(ctx context.Context, id string) (*domain.Card, error) {
	card := &domain.Card{}
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/cards/%s", id), nil, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (c *cardsClient) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	created := &domain.Card{}
	if err := c.client.do(ctx, http.MethodPost, "/cards", card, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *cardsClient) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	updated := &domain.Card{}
	if err := c.client.do(ctx, http.MethodPut, fmt.Sprintf("/cards/%s", card.ID), card, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *cardsClient) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/cards/%s", id), nil, nil)
}

func (c *cardsClient) Move(ctx context.Context, move *domain.CardMove) (*domain.Card, error) {
	moved := &domain.Card{}
	if err := c.client.do(ctx, http.MethodPost, "/cards/move", move, moved); err != nil {
		return nil, err
	}
	return moved, nil
}

type commentsClient struct {
	client *Client
}

func NewCommentsClient(client *Client) *commentsClient {
	return &commentsClient{client: client}
}

func (c *commentsClient) ListByCard(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/cards/%s/comments", cardID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *commentsClient) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	created := &domain.Comment{}
	if err := c.client.do(ctx, http.MethodPost, "/comments", comment, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *commentsClient) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%s", id), nil, nil)
}
