package usecase

import (
	"context"

	"studyplanner/internal/modules/catalog/domain"
	"studyplanner/internal/modules/catalog/dto"
	catalogin "studyplanner/internal/modules/catalog/port/in"
	"studyplanner/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListPrograms(ctx context.Context) ([]dto.ProgramOutput, error) {
	programs, err := i.svc.Programs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProgramOutput, 0, len(programs))
	for _, program := range programs {
		out = append(out, dto.ProgramOutput{
			ID:           program.ID,
			Name:         program.Name,
			Degree:       program.Degree,
			FieldOfStudy: program.FieldOfStudy,
			Credits:      program.Credits,
			Semester:     program.Semester,
		})
	}
	return out, nil
}

func (i *Interactor) Overview(ctx context.Context, studyProgramID string) (dto.OverviewOutput, error) {
	overview, err := i.svc.Overview(ctx, studyProgramID)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	out := dto.OverviewOutput{
		ProgramName:          overview.ProgramName,
		TotalCredits:         overview.TotalCredits,
		TotalModules:         overview.TotalModules,
		AvailableLanguages:   overview.AvailableLanguages,
		AvailableOccurrences: overview.AvailableOccurrences,
	}
	for _, stats := range overview.Categories {
		out.Categories = append(out.Categories, toStatsOutput(stats))
	}
	return out, nil
}

func (i *Interactor) CategoryStats(ctx context.Context, studyProgramID string) ([]dto.CategoryStatsOutput, error) {
	stats, err := i.svc.CategoryStats(ctx, studyProgramID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryStatsOutput, 0, len(stats))
	for _, s := range stats {
		out = append(out, toStatsOutput(s))
	}
	return out, nil
}

func (i *Interactor) CategorySummaries(ctx context.Context, studyProgramID, category string) ([]dto.ModuleSummaryOutput, error) {
	summaries, err := i.svc.CategorySummaries(ctx, studyProgramID, category)
	if err != nil {
		return nil, err
	}
	return toSummaryOutputs(summaries), nil
}

func (i *Interactor) Search(ctx context.Context, input dto.SearchInput) ([]dto.ModuleSummaryOutput, error) {
	filter := domain.Filter{
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Language:    input.Language,
		Occurrence:  input.Occurrence,
		MinCredits:  input.MinCredits,
		MaxCredits:  input.MaxCredits,
		SearchTerm:  input.SearchTerm,
	}
	summaries, err := i.svc.Search(ctx, input.StudyProgramID, filter)
	if err != nil {
		return nil, err
	}
	return toSummaryOutputs(summaries), nil
}

func (i *Interactor) ModuleByID(ctx context.Context, moduleID string) (dto.ModuleDetailsOutput, error) {
	details, err := i.svc.ModuleByID(ctx, moduleID)
	if err != nil {
		return dto.ModuleDetailsOutput{}, err
	}
	return dto.ModuleDetailsOutput{
		ModuleID:         details.ModuleID,
		Name:             details.Name,
		Credits:          details.Credits,
		Category:         details.Category,
		Subcategory:      details.Subcategory,
		Responsible:      details.Responsible,
		Organisation:     details.Organisation,
		Occurrence:       details.Occurrence,
		Language:         details.Language,
		Content:          details.Content,
		LearningOutcomes: details.LearningOutcomes,
		Prerequisites:    details.Prerequisites,
	}, nil
}

func toStatsOutput(stats domain.CategoryStatistics) dto.CategoryStatsOutput {
	return dto.CategoryStatsOutput{
		Category:      stats.Category,
		TotalCredits:  stats.TotalCredits,
		ModuleCount:   stats.ModuleCount,
		Subcategories: stats.Subcategories,
	}
}

func toSummaryOutputs(summaries []domain.ModuleSummary) []dto.ModuleSummaryOutput {
	out := make([]dto.ModuleSummaryOutput, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, dto.ModuleSummaryOutput{
			ID:          summary.ID,
			ModuleID:    summary.ModuleID,
			Name:        summary.Name,
			Credits:     summary.Credits,
			Category:    summary.Category,
			Subcategory: summary.Subcategory,
			Occurrence:  summary.Occurrence,
			Language:    summary.Language,
			Responsible: summary.Responsible,
		})
	}
	return out
}
