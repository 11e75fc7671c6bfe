package uistate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// storageKey matches the key the web client used for its persisted slice.
const storageKey = "chat-storage"

// PersistedState is the subset of store state that survives restarts.
// Theme is deliberately the only field.
type PersistedState struct {
	Theme Theme `json:"theme"`
}

type Storage interface {
	Load(ctx context.Context) (PersistedState, error)
	Save(ctx context.Context, state PersistedState) error
}

// FileStorage keeps the persisted state in a JSON file named after the
// storage key inside the given directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (f *FileStorage) path() string {
	return filepath.Join(f.dir, storageKey+".json")
}

func (f *FileStorage) Load(_ context.Context) (PersistedState, error) {
	data, err := os.ReadFile(f.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PersistedState{}, nil
		}
		return PersistedState{}, fmt.Errorf("read state file: %w", err)
	}

	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return PersistedState{}, fmt.Errorf("decode state file: %w", err)
	}
	return state, nil
}

func (f *FileStorage) Save(_ context.Context, state PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(f.path(), data, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
