package out

import (
	"context"

	"studyplanner/internal/modules/auth/domain"
)

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.Session, string, error)
	Register(ctx context.Context, email, password string) (string, error)
	Ping(ctx context.Context) error
}
