// Package credstore persists the session credential. The whole persisted
// surface is a single opaque token string under one well-known location,
// written on login or verify success and erased on logout or invalidation.
package credstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds at most one credential.
type Store interface {
	// Load returns the stored credential, or ok=false when none exists.
	Load() (token string, ok bool)
	// Save replaces the stored credential.
	Save(token string) error
	// Clear erases the stored credential. Clearing an empty store is a no-op.
	Clear()
}

// DefaultPath returns the conventional credential file location,
// ~/.tripplanner/token.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tripplanner", "token")
	}
	return filepath.Join(home, ".tripplanner", "token")
}

// FileStore keeps the credential in a single file with 0600 permissions.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore constructs a FileStore at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the credential file. Missing or empty files report no credential.
func (s *FileStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", false
	}
	return tok, true
}

// Save writes the credential, creating the parent directory if needed.
func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Clear removes the credential file.
func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(s.path)
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu    sync.Mutex
	token string
}

// NewMemStore constructs an empty MemStore, optionally pre-seeded.
func NewMemStore(token string) *MemStore {
	return &MemStore{token: token}
}

// Load returns the held credential.
func (s *MemStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Save replaces the held credential.
func (s *MemStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear erases the held credential.
func (s *MemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
