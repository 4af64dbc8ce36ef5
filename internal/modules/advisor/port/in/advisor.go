package in

import (
	"context"

	"studyplanner/internal/modules/advisor/dto"
)

type Usecase interface {
	NewSession(ctx context.Context, studyPlanID string) (dto.SessionOutput, error)
	Sessions(ctx context.Context) ([]dto.SessionOutput, error)
	Session(ctx context.Context, sessionID string) (dto.SessionOutput, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Ask(ctx context.Context, input dto.AskInput) (dto.MessageOutput, error)
	CourseInfo(ctx context.Context, courseCode string) (*dto.CourseInfoOutput, error)
	Health(ctx context.Context) error
}
