package service

import (
	"context"
	"fmt"
	"strings"

	"studyplanner/internal/modules/auth/domain"
	authout "studyplanner/internal/modules/auth/port/out"
)

type AuthService struct {
	store authout.SessionStore
	api   authout.AuthAPI
}

func NewAuthService(store authout.SessionStore, api authout.AuthAPI) *AuthService {
	return &AuthService{store: store, api: api}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Session{}, "", fmt.Errorf("email is required")
	}
	if password == "" {
		return domain.Session{}, "", fmt.Errorf("password is required")
	}
	session, message, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, "", err
	}
	if err := session.Validate(); err != nil {
		return domain.Session{}, "", fmt.Errorf("incomplete login response: %w", err)
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, "", err
	}
	return session, message, nil
}

func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("email is required")
	}
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	return s.api.Register(ctx, email, password)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *AuthService) Current(ctx context.Context) (domain.Session, error) {
	return s.store.Load(ctx)
}

func (s *AuthService) Ping(ctx context.Context) error {
	return s.api.Ping(ctx)
}
