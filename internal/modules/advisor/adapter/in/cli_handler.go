package in

import (
	"context"

	"studyplanner/internal/modules/advisor/dto"
	advisorin "studyplanner/internal/modules/advisor/port/in"
)

type CLIHandler struct {
	usecase advisorin.Usecase
}

func NewCLIHandler(usecase advisorin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) NewSession(ctx context.Context, studyPlanID string) (dto.SessionOutput, error) {
	return h.usecase.NewSession(ctx, studyPlanID)
}

func (h CLIHandler) Ask(ctx context.Context, sessionID, message string) (dto.MessageOutput, error) {
	return h.usecase.Ask(ctx, dto.AskInput{SessionID: sessionID, Message: message})
}

func (h CLIHandler) Session(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	return h.usecase.Session(ctx, sessionID)
}

func (h CLIHandler) CourseInfo(ctx context.Context, courseCode string) (*dto.CourseInfoOutput, error) {
	return h.usecase.CourseInfo(ctx, courseCode)
}

func (h CLIHandler) Health(ctx context.Context) error {
	return h.usecase.Health(ctx)
}
