package in

import (
	"context"

	"studyplanner/internal/modules/auth/dto"
	authin "studyplanner/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (dto.SessionOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, email, password string) (dto.RegisterOutput, error) {
	return h.usecase.Register(ctx, dto.RegisterInput{Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Ping(ctx context.Context) error {
	return h.usecase.Ping(ctx)
}
