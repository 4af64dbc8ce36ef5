package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	adapterout "studyplanner/internal/modules/auth/adapter/out"
	"studyplanner/internal/modules/auth/domain"
	"studyplanner/internal/modules/auth/dto"
	"studyplanner/internal/modules/auth/service"
	apperrors "studyplanner/internal/platform/errors"
)

type fakeAuthAPI struct {
	session domain.Session
	message string
	err     error
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (domain.Session, string, error) {
	return f.session, f.message, f.err
}

func (f *fakeAuthAPI) Register(context.Context, string, string) (string, error) {
	return f.message, f.err
}

func (f *fakeAuthAPI) Ping(context.Context) error { return f.err }

func newTestInteractor(t *testing.T, api *fakeAuthAPI) (*Interactor, *adapterout.FileSessionStore) {
	t.Helper()
	store := adapterout.NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	svc := service.NewAuthService(store, api)
	return &Interactor{svc: svc}, store
}

func TestLoginPersistsSession(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		session: domain.Session{Token: "tok-abc", UserID: "17", Email: "ada@tum.de"},
		message: "welcome back",
	}
	interactor, store := newTestInteractor(t, api)

	out, err := interactor.Login(context.Background(), dto.LoginInput{Email: "ada@tum.de", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !out.LoggedIn {
		t.Fatalf("Login() LoggedIn = false, want true")
	}
	if out.UserID != "17" || out.Email != "ada@tum.de" {
		t.Fatalf("Login() = %+v, want user 17 / ada@tum.de", out)
	}
	if out.Message != "welcome back" {
		t.Fatalf("Login() Message = %q", out.Message)
	}

	session, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() after login error = %v", err)
	}
	if session.Token != "tok-abc" {
		t.Fatalf("stored token = %q, want tok-abc", session.Token)
	}
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	t.Parallel()

	interactor, _ := newTestInteractor(t, &fakeAuthAPI{})
	if _, err := interactor.Login(context.Background(), dto.LoginInput{Email: "  ", Password: "x"}); err == nil {
		t.Fatalf("Login() with blank email succeeded")
	}
	if _, err := interactor.Login(context.Background(), dto.LoginInput{Email: "ada@tum.de"}); err == nil {
		t.Fatalf("Login() with empty password succeeded")
	}
}

func TestLoginRejectsIncompleteResponse(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{session: domain.Session{Token: "tok-abc", Email: "ada@tum.de"}}
	interactor, store := newTestInteractor(t, api)

	if _, err := interactor.Login(context.Background(), dto.LoginInput{Email: "ada@tum.de", Password: "x"}); err == nil {
		t.Fatalf("Login() with incomplete response succeeded")
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("Load() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{session: domain.Session{Token: "tok", UserID: "1", Email: "a@b.de"}}
	interactor, store := newTestInteractor(t, api)

	if _, err := interactor.Login(context.Background(), dto.LoginInput{Email: "a@b.de", Password: "x"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := interactor.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := interactor.Current(context.Background()); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("Current() after logout error = %v, want ErrNotLoggedIn", err)
	}
	if token := store.Token(); token != "" {
		t.Fatalf("Token() after logout = %q, want empty", token)
	}
}

func TestCurrentWithoutSession(t *testing.T) {
	t.Parallel()

	interactor, _ := newTestInteractor(t, &fakeAuthAPI{})
	if _, err := interactor.Current(context.Background()); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("Current() error = %v, want ErrNotLoggedIn", err)
	}
}
