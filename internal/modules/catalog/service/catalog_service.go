package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"studyplanner/internal/modules/catalog/domain"
	catalogout "studyplanner/internal/modules/catalog/port/out"
)

// CatalogService fronts the read-only program catalog. Programs rarely
// change, so the list is fetched once and reused; module queries go straight
// to the backend.
type CatalogService struct {
	api catalogout.CatalogAPI

	mu       sync.Mutex
	programs []domain.StudyProgram
}

func NewCatalogService(api catalogout.CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

func (s *CatalogService) Programs(ctx context.Context) ([]domain.StudyProgram, error) {
	s.mu.Lock()
	cached := s.programs
	s.mu.Unlock()
	if cached != nil {
		return cached, nil
	}
	programs, err := s.api.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.programs = programs
	s.mu.Unlock()
	return programs, nil
}

func (s *CatalogService) Program(ctx context.Context, id string) (domain.StudyProgram, error) {
	programs, err := s.Programs(ctx)
	if err != nil {
		return domain.StudyProgram{}, err
	}
	for _, program := range programs {
		if program.ID == id {
			return program, nil
		}
	}
	return domain.StudyProgram{}, fmt.Errorf("study program %s not found", id)
}

func (s *CatalogService) Overview(ctx context.Context, studyProgramID string) (domain.CurriculumOverview, error) {
	return s.api.Overview(ctx, studyProgramID)
}

func (s *CatalogService) CategoryStats(ctx context.Context, studyProgramID string) ([]domain.CategoryStatistics, error) {
	return s.api.CategoryStats(ctx, studyProgramID)
}

func (s *CatalogService) Modules(ctx context.Context, studyProgramID string) ([]domain.ModuleDetails, error) {
	return s.api.Modules(ctx, studyProgramID)
}

func (s *CatalogService) CategorySummaries(ctx context.Context, studyProgramID, category string) ([]domain.ModuleSummary, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("category is required")
	}
	return s.api.CategorySummaries(ctx, studyProgramID, category)
}

func (s *CatalogService) Search(ctx context.Context, studyProgramID string, filter domain.Filter) ([]domain.ModuleSummary, error) {
	return s.api.Search(ctx, studyProgramID, filter)
}

func (s *CatalogService) ModuleByID(ctx context.Context, moduleID string) (domain.ModuleDetails, error) {
	if strings.TrimSpace(moduleID) == "" {
		return domain.ModuleDetails{}, fmt.Errorf("module id is required")
	}
	return s.api.ModuleByID(ctx, moduleID)
}
