package out

import (
	"context"

	"studyplanner/internal/modules/advisor/domain"
)

type AdvisorAPI interface {
	// Chat sends one message and returns the advisor's reply plus the
	// module ids it referenced.
	Chat(ctx context.Context, message, sessionID, studyPlanID string) (string, []string, error)
	// CourseInfo returns nil without error when the advisor does not know
	// the course.
	CourseInfo(ctx context.Context, courseCode string) (*domain.CourseInfo, error)
	Health(ctx context.Context) error
}
