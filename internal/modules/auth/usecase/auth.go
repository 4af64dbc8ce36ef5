package usecase

import (
	"context"

	"studyplanner/internal/modules/auth/domain"
	"studyplanner/internal/modules/auth/dto"
	authin "studyplanner/internal/modules/auth/port/in"
	"studyplanner/internal/modules/auth/service"
)

type Interactor struct {
	svc *service.AuthService
}

func NewInteractor(svc *service.AuthService) authin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	session, message, err := i.svc.Login(ctx, input.Email, input.Password)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	out := toSessionOutput(session)
	out.Message = message
	return out, nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.RegisterOutput, error) {
	message, err := i.svc.Register(ctx, input.Email, input.Password)
	if err != nil {
		return dto.RegisterOutput{}, err
	}
	return dto.RegisterOutput{Email: input.Email, Message: message}, nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Ping(ctx context.Context) error {
	return i.svc.Ping(ctx)
}

func toSessionOutput(session domain.Session) dto.SessionOutput {
	out := dto.SessionOutput{
		UserID:   session.UserID,
		Email:    session.Email,
		LoggedIn: session.LoggedIn(),
	}
	if claims, err := session.Claims(); err == nil {
		out.ExpiresAt = claims.ExpiresAt
	}
	return out
}
