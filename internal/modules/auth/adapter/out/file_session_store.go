package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"studyplanner/internal/modules/auth/domain"
	authout "studyplanner/internal/modules/auth/port/out"
	apperrors "studyplanner/internal/platform/errors"
)

// FileSessionStore keeps the session in memory and mirrors it to a JSON file
// so it survives restarts. The file holds the bearer token, so it is written
// with owner-only permissions.
type FileSessionStore struct {
	mu     sync.Mutex
	path   string
	loaded bool
	cached domain.Session
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

var _ authout.SessionStore = (*FileSessionStore)(nil)

func (s *FileSessionStore) Save(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	s.cached = session
	s.loaded = true
	return nil
}

func (s *FileSessionStore) Load(_ context.Context) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		session, err := s.read()
		if err != nil {
			return domain.Session{}, err
		}
		s.cached = session
		s.loaded = true
	}
	if !s.cached.LoggedIn() {
		return domain.Session{}, apperrors.ErrNotLoggedIn
	}
	return s.cached, nil
}

func (s *FileSessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	s.cached = domain.Session{}
	s.loaded = true
	return nil
}

// Token returns the current bearer token without failing, so it can serve as
// a request token source. It is empty when nobody is logged in.
func (s *FileSessionStore) Token() string {
	session, err := s.Load(context.Background())
	if err != nil {
		return ""
	}
	return session.Token
}

func (s *FileSessionStore) read() (domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("read session file: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return domain.Session{}, fmt.Errorf("parse session file: %w", err)
	}
	return session, nil
}
