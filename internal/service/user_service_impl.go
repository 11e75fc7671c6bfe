package service

import (
	"context"
	"errors"
	"sync"

	"github.com/chatboard/chatboard-go/internal/api"
	"github.com/chatboard/chatboard-go/internal/domain"
)

type userService struct {
	users api.UsersAPI

	mu      sync.RWMutex
	list    []*domain.User
	loading bool
}

func NewUserService(users api.UsersAPI) (UserService, error) {
	if users == nil {
		return nil, errors.New("user service requires a users API client")
	}
	return &userService{users: users}, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*domain.User, error) {
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.Users(), nil
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.Get(ctx, id)
}

func (s *userService) Create(ctx context.Context, in *domain.CreateUser) (*domain.User, error) {
	created, err := s.users.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, in *domain.UpdateUser) (*domain.User, error) {
	updated, err := s.users.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	return s.reload(ctx)
}

func (s *userService) Users() []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.User, len(s.list))
	copy(out, s.list)
	return out
}

func (s *userService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// reload replaces the local collection with a fresh full read. Concurrent
// mutations are not serialized; the last reload to finish wins.
func (s *userService) reload(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	list, err := s.users.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.list = list
	}
	s.mu.Unlock()

	return err
}
