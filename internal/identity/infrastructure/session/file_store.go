// Package session provides the persistent stores for the single opaque
// session token: a JSON file (default) and a SQLite key/value row.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore keeps the session token in a small JSON document on disk.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
}

type sessionFile struct {
	Version int    `json:"version"`
	Token   string `json:"token"`
	SavedAt string `json:"saved_at"`
}

// NewFileStore creates a file-backed session store.
func NewFileStore(filePath string) *FileStore {
	return &FileStore{filePath: filePath}
}

// Get returns the stored token. A missing file reads as an absent token.
func (s *FileStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var file sessionFile
	if err := json.Unmarshal(data, &file); err != nil {
		// A corrupt session file is equivalent to no session.
		return "", nil
	}
	return file.Token, nil
}

// Set persists the token, replacing any previous one.
func (s *FileStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sessionFile{
		Version: 1,
		Token:   token,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return err
	}

	// Restrictive permissions: the token is a credential.
	return os.WriteFile(s.filePath, data, 0600)
}

// Clear removes the stored token. Clearing an empty store is a no-op.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// FilePath returns the path to the session file.
func (s *FileStore) FilePath() string {
	return s.filePath
}
