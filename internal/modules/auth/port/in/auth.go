package in

import (
	"context"

	"studyplanner/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.RegisterOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.SessionOutput, error)
	Ping(ctx context.Context) error
}
