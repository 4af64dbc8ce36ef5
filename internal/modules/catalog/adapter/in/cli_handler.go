package in

import (
	"context"

	"studyplanner/internal/modules/catalog/dto"
	catalogin "studyplanner/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListPrograms(ctx context.Context) ([]dto.ProgramOutput, error) {
	return h.usecase.ListPrograms(ctx)
}

func (h CLIHandler) Overview(ctx context.Context, studyProgramID string) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx, studyProgramID)
}

func (h CLIHandler) CategoryStats(ctx context.Context, studyProgramID string) ([]dto.CategoryStatsOutput, error) {
	return h.usecase.CategoryStats(ctx, studyProgramID)
}

func (h CLIHandler) CategorySummaries(ctx context.Context, studyProgramID, category string) ([]dto.ModuleSummaryOutput, error) {
	return h.usecase.CategorySummaries(ctx, studyProgramID, category)
}

func (h CLIHandler) Search(ctx context.Context, input dto.SearchInput) ([]dto.ModuleSummaryOutput, error) {
	return h.usecase.Search(ctx, input)
}

func (h CLIHandler) ModuleByID(ctx context.Context, moduleID string) (dto.ModuleDetailsOutput, error) {
	return h.usecase.ModuleByID(ctx, moduleID)
}
