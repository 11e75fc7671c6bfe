package service

import (
	"context"
	"errors"

	"github.com/chatboard/chatboard-go/internal/api"
	"github.com/chatboard/chatboard-go/internal/domain"
)

type boardService struct {
	boards api.BoardsAPI
}

func NewBoardService(boards api.BoardsAPI) (BoardService, error) {
	if boards == nil {
		return nil, errors.New("board service requires a boards API client")
	}
	return &boardService{boards: boards}, nil
}

func (s *boardService) GetAll(ctx context.Context) ([]*domain.Board, error) {
	return s.boards.List(ctx)
}

func (s *boardService) Get(ctx context.Context, id string) (*domain.Board, error) {
	return s.boards.Get(ctx, id)
}

func (s *boardService) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	return s.boards.Create(ctx, board)
}

func (s *boardService) Update(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	return s.boards.Update(ctx, board)
}

func (s *boardService) Delete(ctx context.Context, id string) error {
	return s.boards.Delete(ctx, id)
}

type columnService struct {
	columns api.ColumnsAPI
}

func NewColumnService(columns api.ColumnsAPI) (ColumnService, error) {
	if columns == nil {
		return nil, errors.New("column service requires a columns API client")
	}
	return &columnService{columns: columns}, nil
}

func (s *columnService) GetByBoard(ctx context.Context, boardID string) ([]*domain.Column, error) {
	return s.columns.ListByBoard(ctx, boardID)
}

func (s *columnService) Create(ctx context.Context, column *domain.Column) (*domain.Column, error) {
	return s.columns.Create(ctx, column)
}

func (s *columnService) Update(ctx context.Context, column *domain.Column) (*domain.Column, error) {
	return s.columns.Update(ctx, column)
}

func (s *columnService) Delete(ctx context.Context, id string) error {
	return s.columns.Delete(ctx, id)
}

func (s *columnService) Move(ctx context.Context, move *domain.ColumnMove) (*domain.Column, error) {
	return s.columns.Move(ctx, move)
}

type cardService struct {
	cards api.CardsAPI
}

func NewCardService(cards api.CardsAPI) (CardService, error) {
	if cards == nil {
		return nil, errors.New("card service requires a cards API client")
	}
	return &cardService{cards: cards}, nil
}

func (s *cardService) GetByColumn(ctx context.Context, columnID string) ([]*domain.Card, error) {
	return s.cards.ListByColumn(ctx, columnID)
}

func (s *cardService) Get(ctx context.Context, id string) (*domain.Card, error) {
	return s.cards.Get(ctx, id)
}

func (s *cardService) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	return s.cards.Create(ctx, card)
}

func (s *cardService) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	return s.cards.Update(ctx, card)
}

func (s *cardService) Delete(ctx context.Context, id string) error {
	return s.cards.Delete(ctx, id)
}

func (s *cardService) Move(ctx context.Context, move *domain.CardMove) (*domain.Card, error) {
	return s.cards.Move(ctx, move)
}

type commentService struct {
	comments api.CommentsAPI
}

func NewCommentService(comments api.CommentsAPI) (CommentService, error) {
	if comments == nil {
		return nil, errors.New("comment service requires a comments API client")
	}
	return &commentService{comments: comments}, nil
}

func (s *commentService) GetByCard(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	return s.comments.ListByCard(ctx, cardID)
}

func (s *commentService) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	return s.comments.Create(ctx, comment)
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	return s.comments.Delete(ctx, id)
}
