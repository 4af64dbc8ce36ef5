package in

import (
	"context"

	"studyplanner/internal/modules/planner/dto"
)

type Usecase interface {
	OpenPlan(ctx context.Context, studyPlanID string) (dto.PlanOverview, error)
	Overview(ctx context.Context) (dto.PlanOverview, error)

	AddSemester(ctx context.Context) (dto.PlanOverview, error)
	CreateStartingBlock(ctx context.Context, season string) (dto.PlanOverview, error)
	RenameSemester(ctx context.Context, semesterID, name string) (dto.PlanOverview, error)
	RemoveSemester(ctx context.Context, semesterID string) (dto.PlanOverview, error)

	AddCourse(ctx context.Context, input dto.AddCourseInput) (dto.PlanOverview, error)
	RemoveCourse(ctx context.Context, entryID string) (dto.PlanOverview, error)
	ToggleCourse(ctx context.Context, entryID string) (dto.PlanOverview, error)
	MoveCourse(ctx context.Context, input dto.MoveCourseInput) (dto.PlanOverview, error)
}
