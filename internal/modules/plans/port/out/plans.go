package out

import (
	"context"

	"studyplanner/internal/modules/plans/domain"
)

type PlanAPI interface {
	List(ctx context.Context) ([]domain.Summary, error)
	Get(ctx context.Context, id string) (domain.Summary, error)
	Create(ctx context.Context, name, studyProgramID string) (domain.Summary, error)
	Rename(ctx context.Context, id, name string) (domain.Summary, error)
	Delete(ctx context.Context, id string) error
}

// PlanIndexProjector mirrors the plan list into a local read model so the
// last known plans can be shown before the first refresh completes.
type PlanIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertPlan(ctx context.Context, plan domain.Summary) error
	DeletePlan(ctx context.Context, id string) error
	ListPlans(ctx context.Context) ([]domain.Summary, error)
}
