package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type MockUsersAPI struct {
	mock.Mock
}

func (m *MockUsersAPI) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUsersAPI) Get(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUsersAPI) Create(ctx context.Context, in *domain.CreateUser) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUsersAPI) Update(ctx context.Context, id string, in *domain.UpdateUser) (*domain.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUsersAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBoardsAPI struct {
	mock.Mock
}

func (m *MockBoardsAPI) List(ctx context.Context) ([]*domain.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Board), args.Error(1)
}

func (m *MockBoardsAPI) Get(ctx context.Context, id string) (*domain.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardsAPI) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	args := m.Called(ctx, board)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardsAPI) Update(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	args := m.Called(ctx, board)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockColumnsAPI struct {
	mock.Mock
}

func (m *MockColumnsAPI) ListByBoard(ctx context.Context, boardID string) ([]*domain.Column, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Column), args.Error(1)
}

func (m *MockColumnsAPI) Create(ctx context.Context, column *domain.Column) (*domain.Column, error) {
	args := m.Called(ctx, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Column), args.Error(1)
}

func (m *MockColumnsAPI) Update(ctx context.Context, column *domain.Column) (*domain.Column, error) {
	args := m.Called(ctx, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Column), args.Error(1)
}

func (m *MockColumnsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockColumnsAPI) Move(ctx context.Context, move *domain.ColumnMove) (*domain.Column, error) {
	args := m.Called(ctx, move)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Column), args.Error(1)
}

type MockCardsAPI struct {
	mock.Mock
}

func (m *MockCardsAPI) ListByColumn(ctx context.Context, columnID string) ([]*domain.Card, error) {
	args := m.Called(ctx, columnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

func (m *MockCardsAPI) Get(ctx context.Context, id string) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardsAPI) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardsAPI) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCardsAPI) Move(ctx context.Context, move *domain.CardMove) (*domain.Card, error) {
	args := m.Called(ctx, move)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

type MockCommentsAPI struct {
	mock.Mock
}

func (m *MockCommentsAPI) ListByCard(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *MockCommentsAPI) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChatsAPI struct {
	mock.Mock
}

func (m *MockChatsAPI) List(ctx context.Context) ([]*domain.Chat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Chat), args.Error(1)
}

func (m *MockChatsAPI) Get(ctx context.Context, id string) (*domain.Chat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatsAPI) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	args := m.Called(ctx, chat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChatsAPI) AddParticipant(ctx context.Context, chatID, userID string) (*domain.Chat, error) {
	args := m.Called(ctx, chatID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatsAPI) RemoveParticipant(ctx context.Context, chatID, userID string) (*domain.Chat, error) {
	args := m.Called(ctx, chatID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

type MockMessagesAPI struct {
	mock.Mock
}

func (m *MockMessagesAPI) ListByChat(ctx context.Context, chatID string) ([]*domain.Message, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *MockMessagesAPI) Send(ctx context.Context, in *domain.SendMessage) (*domain.Message, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessagesAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockConversationsAPI struct {
	mock.Mock
}

func (m *MockConversationsAPI) List(ctx context.Context) ([]*domain.WhatsAppConversation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WhatsAppConversation), args.Error(1)
}

func (m *MockConversationsAPI) Get(ctx context.Context, id string) (*domain.WhatsAppConversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WhatsAppConversation), args.Error(1)
}

func (m *MockConversationsAPI) Assign(ctx context.Context, id, userID string) (*domain.WhatsAppConversation, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WhatsAppConversation), args.Error(1)
}

func (m *MockConversationsAPI) UpdateStatus(ctx context.Context, id string, status domain.ConversationStatus) (*domain.WhatsAppConversation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WhatsAppConversation), args.Error(1)
}

type MockWhatsAppMessagesAPI struct {
	mock.Mock
}

func (m *MockWhatsAppMessagesAPI) ListByConversation(ctx context.Context, conversationID string) ([]*domain.WhatsAppMessage, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WhatsAppMessage), args.Error(1)
}

func (m *MockWhatsAppMessagesAPI) Send(ctx context.Context, in *domain.SendWhatsAppMessage) (*domain.WhatsAppMessage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WhatsAppMessage), args.Error(1)
}

type MockRolesAPI struct {
	mock.Mock
}

func (m *MockRolesAPI) List(ctx context.Context) ([]*domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Role), args.Error(1)
}

func (m *MockRolesAPI) Get(ctx context.Context, id string) (*domain.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRolesAPI) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRolesAPI) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRolesAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDepartmentsAPI struct {
	mock.Mock
}

func (m *MockDepartmentsAPI) List(ctx context.Context) ([]*domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Department), args.Error(1)
}

func (m *MockDepartmentsAPI) Get(ctx context.Context, id string) (*domain.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentsAPI) Create(ctx context.Context, dep *domain.Department) (*domain.Department, error) {
	args := m.Called(ctx, dep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentsAPI) Update(ctx context.Context, dep *domain.Department) (*domain.Department, error) {
	args := m.Called(ctx, dep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, creds *domain.Credentials) (*domain.Session, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, in *domain.Registration) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthAPI) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(session *domain.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSessionStore) Current() *domain.Session {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Session)
}
