package service

import (
	"context"
	"fmt"
	"strings"

	"studyplanner/internal/modules/plans/domain"
	plansout "studyplanner/internal/modules/plans/port/out"
	apperrors "studyplanner/internal/platform/errors"
)

// PlanService keeps the plan cache, the backend, and the local read model in
// step. Creates and renames confirm with the backend before touching the
// cache; deletes apply optimistically and roll back on failure. Once the
// backend has confirmed a change, writes to the local read model are best
// effort; a refresh rebuilds it.
type PlanService struct {
	cache     *domain.Cache
	api       plansout.PlanAPI
	projector plansout.PlanIndexProjector
}

func NewPlanService(cache *domain.Cache, api plansout.PlanAPI, projector plansout.PlanIndexProjector) *PlanService {
	return &PlanService{cache: cache, api: api, projector: projector}
}

// WarmUp seeds the cache from the local read model. Errors are returned but
// callers may ignore them; a cold start without the read model is fine.
func (s *PlanService) WarmUp(ctx context.Context) error {
	plans, err := s.projector.ListPlans(ctx)
	if err != nil {
		return err
	}
	if len(plans) > 0 && s.cache.Len() == 0 {
		s.cache.ReplaceAll(plans)
	}
	return nil
}

func (s *PlanService) Refresh(ctx context.Context) ([]domain.Summary, error) {
	plans, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.ReplaceAll(plans)
	if err := s.projector.Reset(ctx); err == nil {
		for _, plan := range plans {
			_ = s.projector.UpsertPlan(ctx, plan)
		}
	}
	return plans, nil
}

func (s *PlanService) List(ctx context.Context) ([]domain.Summary, error) {
	if s.cache.Len() == 0 {
		return s.Refresh(ctx)
	}
	return s.cache.Items(), nil
}

func (s *PlanService) Get(ctx context.Context, id string) (domain.Summary, error) {
	if plan, ok := s.cache.Get(id); ok {
		return plan, nil
	}
	plan, err := s.api.Get(ctx, id)
	if err != nil {
		return domain.Summary{}, err
	}
	return plan, nil
}

func (s *PlanService) Create(ctx context.Context, name, studyProgramID string) (domain.Summary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Summary{}, fmt.Errorf("plan name is required")
	}
	if strings.TrimSpace(studyProgramID) == "" {
		return domain.Summary{}, fmt.Errorf("study program is required")
	}
	plan, err := s.api.Create(ctx, name, studyProgramID)
	if err != nil {
		return domain.Summary{}, err
	}
	s.cache.Add(plan)
	_ = s.projector.UpsertPlan(ctx, plan)
	return plan, nil
}

func (s *PlanService) Rename(ctx context.Context, id, name string) (domain.Summary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Summary{}, fmt.Errorf("plan name is required")
	}
	plan, err := s.api.Rename(ctx, id, name)
	if err != nil {
		return domain.Summary{}, err
	}
	patch := domain.Patch{Name: &plan.Name}
	if plan.LastModified != "" {
		patch.LastModified = &plan.LastModified
	}
	if !s.cache.Update(id, patch) {
		s.cache.Add(plan)
	}
	_ = s.projector.UpsertPlan(ctx, plan)
	return plan, nil
}

func (s *PlanService) Delete(ctx context.Context, id string) error {
	removed, index, ok := s.cache.Remove(id)
	if !ok {
		return fmt.Errorf("plan %s: %w", id, apperrors.ErrNotFound)
	}
	if err := s.api.Delete(ctx, id); err != nil {
		s.cache.Insert(index, removed)
		return err
	}
	_ = s.projector.DeletePlan(ctx, id)
	return nil
}
