package in

import (
	"context"

	"studyplanner/internal/modules/planner/dto"
	plannerin "studyplanner/internal/modules/planner/port/in"
)

type CLIHandler struct {
	usecase plannerin.Usecase
}

func NewCLIHandler(usecase plannerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) OpenPlan(ctx context.Context, studyPlanID string) (dto.PlanOverview, error) {
	return h.usecase.OpenPlan(ctx, studyPlanID)
}

func (h CLIHandler) AddSemester(ctx context.Context) (dto.PlanOverview, error) {
	return h.usecase.AddSemester(ctx)
}

func (h CLIHandler) CreateStartingBlock(ctx context.Context, season string) (dto.PlanOverview, error) {
	return h.usecase.CreateStartingBlock(ctx, season)
}

func (h CLIHandler) RenameSemester(ctx context.Context, semesterID, name string) (dto.PlanOverview, error) {
	return h.usecase.RenameSemester(ctx, semesterID, name)
}

func (h CLIHandler) RemoveSemester(ctx context.Context, semesterID string) (dto.PlanOverview, error) {
	return h.usecase.RemoveSemester(ctx, semesterID)
}

func (h CLIHandler) AddCourse(ctx context.Context, input dto.AddCourseInput) (dto.PlanOverview, error) {
	return h.usecase.AddCourse(ctx, input)
}

func (h CLIHandler) RemoveCourse(ctx context.Context, entryID string) (dto.PlanOverview, error) {
	return h.usecase.RemoveCourse(ctx, entryID)
}

func (h CLIHandler) ToggleCourse(ctx context.Context, entryID string) (dto.PlanOverview, error) {
	return h.usecase.ToggleCourse(ctx, entryID)
}

func (h CLIHandler) MoveCourse(ctx context.Context, entryID, targetSemesterID string, targetIndex int) (dto.PlanOverview, error) {
	return h.usecase.MoveCourse(ctx, dto.MoveCourseInput{EntryID: entryID, TargetSemesterID: targetSemesterID, TargetIndex: targetIndex})
}
