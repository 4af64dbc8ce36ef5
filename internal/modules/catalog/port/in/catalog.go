package in

import (
	"context"

	"studyplanner/internal/modules/catalog/dto"
)

type Usecase interface {
	ListPrograms(ctx context.Context) ([]dto.ProgramOutput, error)
	Overview(ctx context.Context, studyProgramID string) (dto.OverviewOutput, error)
	CategoryStats(ctx context.Context, studyProgramID string) ([]dto.CategoryStatsOutput, error)
	CategorySummaries(ctx context.Context, studyProgramID, category string) ([]dto.ModuleSummaryOutput, error)
	Search(ctx context.Context, input dto.SearchInput) ([]dto.ModuleSummaryOutput, error)
	ModuleByID(ctx context.Context, moduleID string) (dto.ModuleDetailsOutput, error)
}
