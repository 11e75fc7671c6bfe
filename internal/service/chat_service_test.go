package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chatboard/chatboard-go/internal/domain"
)

func TestChatConstructors(t *testing.T) {
	t.Run("rejects nil API clients", func(t *testing.T) {
		_, err := NewChatService(nil)
		require.Error(t, err)

		_, err = NewMessageService(nil)
		require.Error(t, err)

		_, err = NewConversationService(nil)
		require.Error(t, err)

		_, err = NewWhatsAppMessageService(nil)
		require.Error(t, err)
	})
}

func TestChatService_AddParticipant(t *testing.T) {
	t.Run("returns the updated chat", func(t *testing.T) {
		mockChats := new(MockChatsAPI)
		svc, err := NewChatService(mockChats)
		require.NoError(t, err)

		chat := &domain.Chat{
			ID:      "ch1",
			Name:    "support",
			IsGroup: true,
			Participants: []*domain.Participant{
				{UserID: "u1"},
				{UserID: "u2"},
			},
		}

		ctx := context.Background()
		mockChats.On("AddParticipant", mock.Anything, "ch1", "u2").Return(chat, nil).Once()

		result, err := svc.AddParticipant(ctx, "ch1", "u2")

		require.NoError(t, err)
		assert.Len(t, result.Participants, 2)
		mockChats.AssertExpectations(t)
	})
}

func TestMessageService_Send(t *testing.T) {
	t.Run("passes the sent message through", func(t *testing.T) {
		mockMessages := new(MockMessagesAPI)
		svc, err := NewMessageService(mockMessages)
		require.NoError(t, err)

		in := &domain.SendMessage{ChatID: "ch1", Body: "hello"}
		sent := &domain.Message{ID: "m1", ChatID: "ch1", SenderID: "u1", Body: "hello"}

		ctx := context.Background()
		mockMessages.On("Send", mock.Anything, in).Return(sent, nil).Once()

		result, err := svc.Send(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, "m1", result.ID)
		mockMessages.AssertExpectations(t)
	})
}

func TestConversationService_Assign(t *testing.T) {
	t.Run("assigns a staff user to the conversation", func(t *testing.T) {
		mockConversations := new(MockConversationsAPI)
		svc, err := NewConversationService(mockConversations)
		require.NoError(t, err)

		staffID := "u7"
		conversation := &domain.WhatsAppConversation{
			ID:          "wa1",
			ClientPhone: "+5215512345678",
			ClientName:  "Carlos",
			AssignedTo:  &staffID,
			Status:      domain.ConversationOpen,
		}

		ctx := context.Background()
		mockConversations.On("Assign", mock.Anything, "wa1", "u7").Return(conversation, nil).Once()

		result, err := svc.Assign(ctx, "wa1", "u7")

		require.NoError(t, err)
		require.NotNil(t, result.AssignedTo)
		assert.Equal(t, "u7", *result.AssignedTo)
		mockConversations.AssertExpectations(t)
	})
}

func TestWhatsAppMessageService_GetByConversation(t *testing.T) {
	t.Run("returns the thread in order received", func(t *testing.T) {
		mockMessages := new(MockWhatsAppMessagesAPI)
		svc, err := NewWhatsAppMessageService(mockMessages)
		require.NoError(t, err)

		thread := []*domain.WhatsAppMessage{
			{ID: "wm1", ConversationID: "wa1", Direction: domain.DirectionInbound, Body: "hola"},
			{ID: "wm2", ConversationID: "wa1", Direction: domain.DirectionOutbound, Body: "hello!"},
		}

		ctx := context.Background()
		mockMessages.On("ListByConversation", mock.Anything, "wa1").Return(thread, nil).Once()

		result, err := svc.GetByConversation(ctx, "wa1")

		require.NoError(t, err)
		assert.Equal(t, thread, result)
		mockMessages.AssertExpectations(t)
	})
}
