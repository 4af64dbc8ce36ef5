package usecase

import (
	"context"

	"studyplanner/internal/modules/plans/domain"
	"studyplanner/internal/modules/plans/dto"
	plansin "studyplanner/internal/modules/plans/port/in"
	"studyplanner/internal/modules/plans/service"
)

type Interactor struct {
	svc *service.PlanService
}

func NewInteractor(svc *service.PlanService) plansin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListPlans(ctx context.Context) ([]dto.PlanOutput, error) {
	plans, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(plans), nil
}

func (i *Interactor) RefreshPlans(ctx context.Context) ([]dto.PlanOutput, error) {
	plans, err := i.svc.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(plans), nil
}

func (i *Interactor) GetPlan(ctx context.Context, id string) (dto.PlanOutput, error) {
	plan, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toOutput(plan), nil
}

func (i *Interactor) CreatePlan(ctx context.Context, input dto.CreatePlanInput) (dto.PlanOutput, error) {
	plan, err := i.svc.Create(ctx, input.Name, input.StudyProgramID)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toOutput(plan), nil
}

func (i *Interactor) RenamePlan(ctx context.Context, input dto.RenamePlanInput) (dto.PlanOutput, error) {
	plan, err := i.svc.Rename(ctx, input.PlanID, input.Name)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toOutput(plan), nil
}

func (i *Interactor) DeletePlan(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func toOutput(plan domain.Summary) dto.PlanOutput {
	return dto.PlanOutput{
		ID:               plan.ID,
		Name:             plan.Name,
		StudyProgramID:   plan.StudyProgramID,
		StudyProgramName: plan.StudyProgramName,
		IsActive:         plan.IsActive,
		CreatedDate:      plan.CreatedDate,
		LastModified:     plan.LastModified,
	}
}

func toOutputs(plans []domain.Summary) []dto.PlanOutput {
	out := make([]dto.PlanOutput, 0, len(plans))
	for _, plan := range plans {
		out = append(out, toOutput(plan))
	}
	return out
}
