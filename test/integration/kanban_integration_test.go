package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatboard/chatboard-go/internal/api/rest"
	"github.com/chatboard/chatboard-go/internal/domain"
	"github.com/chatboard/chatboard-go/internal/service"
)

func TestKanbanFlow(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	auth, err := service.NewAuthService(rest.NewAuthClient(e.client), e.sessions)
	require.NoError(t, err)
	boards, err := service.NewBoardService(rest.NewBoardsClient(e.client))
	require.NoError(t, err)
	columns, err := service.NewColumnService(rest.NewColumnsClient(e.client))
	require.NoError(t, err)
	cards, err := service.NewCardService(rest.NewCardsClient(e.client))
	require.NoError(t, err)

	_, err = auth.Login(ctx, &domain.Credentials{Email: "ops@chatboard.dev", Password: "secret"})
	require.NoError(t, err)

	board, err := boards.Create(ctx, &domain.Board{Name: "Sales pipeline"})
	require.NoError(t, err)

	todo, err := columns.Create(ctx, &domain.Column{BoardID: board.ID, Name: "To do"})
	require.NoError(t, err)
	done, err := columns.Create(ctx, &domain.Column{BoardID: board.ID, Name: "Done"})
	require.NoError(t, err)
	assert.Equal(t, 0, todo.Position)
	assert.Equal(t, 1, done.Position)

	card, err := cards.Create(ctx, &domain.Card{ColumnID: todo.ID, Title: "Call the client"})
	require.NoError(t, err)
	assert.Equal(t, todo.ID, card.ColumnID)

	// The server owns ordering; the client just reports the result.
	moved, err := cards.Move(ctx, &domain.CardMove{CardID: card.ID, ToColumnID: done.ID, Position: 0})
	require.NoError(t, err)
	assert.Equal(t, done.ID, moved.ColumnID)

	inTodo, err := cards.GetByColumn(ctx, todo.ID)
	require.NoError(t, err)
	assert.Empty(t, inTodo)

	inDone, err := cards.GetByColumn(ctx, done.ID)
	require.NoError(t, err)
	require.Len(t, inDone, 1)
	assert.Equal(t, card.ID, inDone[0].ID)
}
