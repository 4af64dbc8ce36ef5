package in

import (
	"context"

	"studyplanner/internal/modules/plans/dto"
)

type Usecase interface {
	ListPlans(ctx context.Context) ([]dto.PlanOutput, error)
	RefreshPlans(ctx context.Context) ([]dto.PlanOutput, error)
	GetPlan(ctx context.Context, id string) (dto.PlanOutput, error)
	CreatePlan(ctx context.Context, input dto.CreatePlanInput) (dto.PlanOutput, error)
	RenamePlan(ctx context.Context, input dto.RenamePlanInput) (dto.PlanOutput, error)
	DeletePlan(ctx context.Context, id string) error
}
