package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chatboard/chatboard-go/internal/domain"
)

func TestNewUserService(t *testing.T) {
	t.Run("rejects nil API client", func(t *testing.T) {
		svc, err := NewUserService(nil)

		require.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "users API client")
	})
}

func TestUserService_Create(t *testing.T) {
	t.Run("reloads the collection after create", func(t *testing.T) {
		mockUsers := new(MockUsersAPI)
		svc, err := NewUserService(mockUsers)
		require.NoError(t, err)

		in := &domain.CreateUser{
			Email:     "alice@example.com",
			Password:  "secret",
			FirstName: "Alice",
			LastName:  "Smith",
			RoleID:    "r1",
		}
		created := &domain.User{
			ID:        "u1",
			Email:     "alice@example.com",
			FirstName: "Alice",
			LastName:  "Smith",
			Status:    domain.UserActive,
			CreatedAt: time.Now(),
		}
		fresh := []*domain.User{created}

		ctx := context.Background()
		mockUsers.On("Create", mock.Anything, in).Return(created, nil).Once()
		mockUsers.On("List", mock.Anything).Return(fresh, nil).Once()

		result, err := svc.Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, "u1", result.ID)
		assert.Equal(t, fresh, svc.Users())
		assert.False(t, svc.Loading())
		mockUsers.AssertExpectations(t)
	})

	t.Run("create error propagates unchanged and skips the reload", func(t *testing.T) {
		mockUsers := new(MockUsersAPI)
		svc, err := NewUserService(mockUsers)
		require.NoError(t, err)

		in := &domain.CreateUser{Email: "bob@example.com"}
		apiErr := errors.New("email already taken")

		ctx := context.Background()
		mockUsers.On("Create", mock.Anything, in).Return(nil, apiErr).Once()

		result, err := svc.Create(ctx, in)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apiErr, err)
		mockUsers.AssertExpectations(t)
	})

	t.Run("reload failure rejects the mutation", func(t *testing.T) {
		mockUsers := new(MockUsersAPI)
		svc, err := NewUserService(mockUsers)
		require.NoError(t, err)

		in := &domain.CreateUser{Email: "carol@example.com"}
		created := &domain.User{ID: "u3", Email: "carol@example.com"}

		ctx := context.Background()
		mockUsers.On("Create", mock.Anything, in).Return(created, nil).Once()
		mockUsers.On("List", mock.Anything).Return(nil, errors.New("server unavailable")).Once()

		result, err := svc.Create(ctx, in)

		require.Error(t, err)
		assert.Nil(t, result)
		mockUsers.AssertExpectations(t)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("local collection reflects a fresh read after update", func(t *testing.T) {
		mockUsers := new(MockUsersAPI)
		svc, err := NewUserService(mockUsers)
		require.NoError(t, err)

		stale := []*domain.User{
			{ID: "u1", FirstName: "Alice"},
			{ID: "u2", FirstName: "Bob"},
		}
		ctx := context.Background()
		mockUsers.On("List", mock.Anything).Return(stale, nil).Once()
		_, err = svc.GetAll(ctx)
		require.NoError(t, err)

		newName := "Robert"
		in := &domain.UpdateUser{FirstName: &newName}
		updated := &domain.User{ID: "u2", FirstName: "Robert"}
		fresh := []*domain.User{
			{ID: "u1", FirstName: "Alice"},
			{ID: "u2", FirstName: "Robert"},
		}

		mockUsers.On("Update", mock.Anything, "u2", in).Return(updated, nil).Once()
		mockUsers.On("List", mock.Anything).Return(fresh, nil).Once()

		result, err := svc.Update(ctx, "u2", in)

		require.NoError(t, err)
		assert.Equal(t, "Robert", result.FirstName)
		assert.Equal(t, fresh, svc.Users())
		mockUsers.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("reloads the collection after delete", func(t *testing.T) {
		mockUsers := new(MockUsersAPI)
		svc, err := NewUserService(mockUsers)
		require.NoError(t, err)

		fresh := []*domain.User{{ID: "u1", FirstName: "Alice"}}

		ctx := context.Background()
		mockUsers.On("Delete", mock.Anything, "u2").Return(nil).Once()
		mockUsers.On("List", mock.Anything).Return(fresh, nil).Once()

		err = svc.Delete(ctx, "u2")

		require.NoError(t, err)
		assert.Equal(t, fresh, svc.Users())
		mockUsers.AssertExpectations(t)
	})

	t.Run("delete error propagates unchanged", func(t *testing.T) {
		mockUsers := new(MockUsersAPI)
		svc, err := NewUserService(mockUsers)
		require.NoError(t, err)

		apiErr := &domain.DomainError{Code: "NOT_FOUND", Message: "user not found"}

		ctx := context.Background()
		mockUsers.On("Delete", mock.Anything, "u999").Return(apiErr).Once()

		err = svc.Delete(ctx, "u999")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Empty(t, svc.Users())
		mockUsers.AssertExpectations(t)
	})
}

func TestUserService_GetAll(t *testing.T) {
	t.Run("failed reload keeps the previous collection", func(t *testing.T) {
		mockUsers := new(MockUsersAPI)
		svc, err := NewUserService(mockUsers)
		require.NoError(t, err)

		first := []*domain.User{{ID: "u1"}}

		ctx := context.Background()
		mockUsers.On("List", mock.Anything).Return(first, nil).Once()
		_, err = svc.GetAll(ctx)
		require.NoError(t, err)

		mockUsers.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()
		_, err = svc.GetAll(ctx)

		require.Error(t, err)
		assert.Equal(t, first, svc.Users())
		assert.False(t, svc.Loading())
		mockUsers.AssertExpectations(t)
	})
}
