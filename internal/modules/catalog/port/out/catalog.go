package out

import (
	"context"

	"studyplanner/internal/modules/catalog/domain"
)

type CatalogAPI interface {
	ListPrograms(ctx context.Context) ([]domain.StudyProgram, error)
	Overview(ctx context.Context, studyProgramID string) (domain.CurriculumOverview, error)
	CategoryStats(ctx context.Context, studyProgramID string) ([]domain.CategoryStatistics, error)
	Modules(ctx context.Context, studyProgramID string) ([]domain.ModuleDetails, error)
	CategorySummaries(ctx context.Context, studyProgramID, category string) ([]domain.ModuleSummary, error)
	Search(ctx context.Context, studyProgramID string, filter domain.Filter) ([]domain.ModuleSummary, error)
	ModuleByID(ctx context.Context, moduleID string) (domain.ModuleDetails, error)
}
