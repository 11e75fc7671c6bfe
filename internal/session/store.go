package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/chatboard/chatboard-go/internal/domain"
)

// Store persists the authenticated session to a JSON file so a restarted
// process picks up where it left off. It satisfies rest.TokenSource.
type Store struct {
	mu      sync.RWMutex
	path    string
	session *domain.Session
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads any previously persisted session. A missing file is not an
// error; it just means nobody is logged in.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	session := &domain.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	s.session = session
	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Store) Save(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	s.session = session
	return nil
}

// Clear drops the in-memory session and removes the persisted file.
// Clearing an already-empty store is a no-op, so the 401 handler can fire
// more than once without consequence.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
