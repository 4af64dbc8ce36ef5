package out

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"studyplanner/internal/modules/auth/domain"
	apperrors "studyplanner/internal/platform/errors"
)

func TestSessionSurvivesRestart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	first := NewFileSessionStore(path)
	want := domain.Session{Token: "tok", UserID: "9", Email: "ada@tum.de"}
	if err := first.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := NewFileSessionStore(path)
	got, err := second.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestPartialSessionTreatedAsLoggedOut(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	partial := domain.Session{Token: "tok", Email: "ada@tum.de"}
	data, err := json.Marshal(partial)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewFileSessionStore(path)
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("Load() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Parallel()

	store := NewFileSessionStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("Load() error = %v, want ErrNotLoggedIn", err)
	}
}
