package in

import (
	"context"

	"studyplanner/internal/modules/plans/dto"
	plansin "studyplanner/internal/modules/plans/port/in"
)

type CLIHandler struct {
	usecase plansin.Usecase
}

func NewCLIHandler(usecase plansin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListPlans(ctx context.Context) ([]dto.PlanOutput, error) {
	return h.usecase.ListPlans(ctx)
}

func (h CLIHandler) RefreshPlans(ctx context.Context) ([]dto.PlanOutput, error) {
	return h.usecase.RefreshPlans(ctx)
}

func (h CLIHandler) GetPlan(ctx context.Context, id string) (dto.PlanOutput, error) {
	return h.usecase.GetPlan(ctx, id)
}

func (h CLIHandler) CreatePlan(ctx context.Context, name, studyProgramID string) (dto.PlanOutput, error) {
	return h.usecase.CreatePlan(ctx, dto.CreatePlanInput{Name: name, StudyProgramID: studyProgramID})
}

func (h CLIHandler) RenamePlan(ctx context.Context, id, name string) (dto.PlanOutput, error) {
	return h.usecase.RenamePlan(ctx, dto.RenamePlanInput{PlanID: id, Name: name})
}

func (h CLIHandler) DeletePlan(ctx context.Context, id string) error {
	return h.usecase.DeletePlan(ctx, id)
}
