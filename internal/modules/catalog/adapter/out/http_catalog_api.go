package out

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"studyplanner/internal/modules/catalog/domain"
	catalogout "studyplanner/internal/modules/catalog/port/out"
	"studyplanner/internal/platform/rest"
)

type HTTPCatalogAPI struct {
	client *rest.Client
}

func NewHTTPCatalogAPI(client *rest.Client) *HTTPCatalogAPI {
	return &HTTPCatalogAPI{client: client}
}

var _ catalogout.CatalogAPI = (*HTTPCatalogAPI)(nil)

type studyProgramDTO struct {
	ID             json.Number `json:"id"`
	Degree         string      `json:"degree"`
	Curriculum     string      `json:"curriculum"`
	FieldOfStudies string      `json:"fieldOfStudies"`
	ECTSCredits    int         `json:"ectsCredits"`
	Semester       int         `json:"semester"`
	CurriculumLink string      `json:"curriculumLink"`
}

type moduleSummaryDTO struct {
	ID          json.Number `json:"id"`
	ModuleID    string      `json:"moduleId"`
	Name        string      `json:"name"`
	Credits     int         `json:"credits"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Occurrence  string      `json:"occurrence"`
	Language    string      `json:"language"`
	Responsible string      `json:"responsible"`
	Description string      `json:"description"`
}

type moduleDetailsDTO struct {
	ID                json.Number `json:"id"`
	StudyProgramID    json.Number `json:"studyProgramId"`
	ModuleID          string      `json:"moduleId"`
	Name              string      `json:"name"`
	Credits           int         `json:"credits"`
	Category          string      `json:"category"`
	Subcategory       string      `json:"subcategory"`
	Responsible       string      `json:"responsible"`
	Organisation      string      `json:"organisation"`
	ModuleLevel       string      `json:"moduleLevel"`
	Occurrence        string      `json:"occurrence"`
	Language          string      `json:"language"`
	TotalHours        int         `json:"totalHours"`
	ContactHours      int         `json:"contactHours"`
	SelfStudyHours    int         `json:"selfStudyHours"`
	AssessmentMethods string      `json:"descriptionOfAchievementAndAssessmentMethods"`
	Prerequisites     string      `json:"prerequisitesRecommended"`
	LearningOutcomes  string      `json:"intendedLearningOutcomes"`
	Content           string      `json:"content"`
	TeachingMethods   string      `json:"teachingAndLearningMethods"`
	Media             string      `json:"media"`
	ReadingList       string      `json:"readingList"`
}

type categoryStatsDTO struct {
	Category      string   `json:"category"`
	TotalCredits  int      `json:"totalCredits"`
	ModuleCount   int      `json:"moduleCount"`
	Subcategories []string `json:"subcategories"`
}

type overviewDTO struct {
	StudyProgramID       json.Number        `json:"studyProgramId"`
	ProgramName          string             `json:"programName"`
	TotalCredits         int                `json:"totalCredits"`
	TotalModules         int                `json:"totalModules"`
	Categories           []categoryStatsDTO `json:"categories"`
	AvailableLanguages   []string           `json:"availableLanguages"`
	AvailableOccurrences []string           `json:"availableOccurrences"`
}

func (a *HTTPCatalogAPI) ListPrograms(ctx context.Context) ([]domain.StudyProgram, error) {
	var dtos []studyProgramDTO
	if err := a.client.Get(ctx, "/study-programs", &dtos); err != nil {
		return nil, err
	}
	programs := make([]domain.StudyProgram, 0, len(dtos))
	for _, d := range dtos {
		programs = append(programs, domain.StudyProgram{
			ID:             d.ID.String(),
			Name:           d.Curriculum,
			Degree:         d.Degree,
			FieldOfStudy:   d.FieldOfStudies,
			Credits:        d.ECTSCredits,
			Semester:       d.Semester,
			CurriculumLink: d.CurriculumLink,
		})
	}
	return programs, nil
}

func (a *HTTPCatalogAPI) Overview(ctx context.Context, studyProgramID string) (domain.CurriculumOverview, error) {
	var d overviewDTO
	if err := a.client.Get(ctx, "/modules/study-program/"+studyProgramID+"/overview", &d); err != nil {
		return domain.CurriculumOverview{}, err
	}
	overview := domain.CurriculumOverview{
		StudyProgramID:       d.StudyProgramID.String(),
		ProgramName:          d.ProgramName,
		TotalCredits:         d.TotalCredits,
		TotalModules:         d.TotalModules,
		AvailableLanguages:   d.AvailableLanguages,
		AvailableOccurrences: d.AvailableOccurrences,
	}
	for _, stats := range d.Categories {
		overview.Categories = append(overview.Categories, toCategoryStats(stats))
	}
	return overview, nil
}

func (a *HTTPCatalogAPI) CategoryStats(ctx context.Context, studyProgramID string) ([]domain.CategoryStatistics, error) {
	var dtos []categoryStatsDTO
	if err := a.client.Get(ctx, "/modules/study-program/"+studyProgramID+"/category-stats", &dtos); err != nil {
		return nil, err
	}
	stats := make([]domain.CategoryStatistics, 0, len(dtos))
	for _, d := range dtos {
		stats = append(stats, toCategoryStats(d))
	}
	return stats, nil
}

func (a *HTTPCatalogAPI) Modules(ctx context.Context, studyProgramID string) ([]domain.ModuleDetails, error) {
	var dtos []moduleDetailsDTO
	if err := a.client.Get(ctx, "/modules/study-program/"+studyProgramID, &dtos); err != nil {
		return nil, err
	}
	modules := make([]domain.ModuleDetails, 0, len(dtos))
	for _, d := range dtos {
		modules = append(modules, toModuleDetails(d))
	}
	return modules, nil
}

func (a *HTTPCatalogAPI) CategorySummaries(ctx context.Context, studyProgramID, category string) ([]domain.ModuleSummary, error) {
	path := "/modules/study-program/" + studyProgramID + "/category/" + url.PathEscape(category) + "/summaries"
	var dtos []moduleSummaryDTO
	if err := a.client.Get(ctx, path, &dtos); err != nil {
		return nil, err
	}
	return toSummaries(dtos), nil
}

func (a *HTTPCatalogAPI) Search(ctx context.Context, studyProgramID string, filter domain.Filter) ([]domain.ModuleSummary, error) {
	params := url.Values{}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.Subcategory != "" {
		params.Set("subcategory", filter.Subcategory)
	}
	if filter.Language != "" {
		params.Set("language", filter.Language)
	}
	if filter.Occurrence != "" {
		params.Set("occurrence", filter.Occurrence)
	}
	if filter.MinCredits > 0 {
		params.Set("minCredits", strconv.Itoa(filter.MinCredits))
	}
	if filter.MaxCredits > 0 {
		params.Set("maxCredits", strconv.Itoa(filter.MaxCredits))
	}
	if filter.SearchTerm != "" {
		params.Set("searchTerm", filter.SearchTerm)
	}
	path := "/modules/study-program/" + studyProgramID + "/advanced-search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var dtos []moduleSummaryDTO
	if err := a.client.Get(ctx, path, &dtos); err != nil {
		return nil, err
	}
	return toSummaries(dtos), nil
}

func (a *HTTPCatalogAPI) ModuleByID(ctx context.Context, moduleID string) (domain.ModuleDetails, error) {
	var d moduleDetailsDTO
	if err := a.client.Get(ctx, "/modules/module/"+url.PathEscape(moduleID), &d); err != nil {
		return domain.ModuleDetails{}, err
	}
	return toModuleDetails(d), nil
}

func toCategoryStats(d categoryStatsDTO) domain.CategoryStatistics {
	return domain.CategoryStatistics{
		Category:      d.Category,
		TotalCredits:  d.TotalCredits,
		ModuleCount:   d.ModuleCount,
		Subcategories: d.Subcategories,
	}
}

func toSummaries(dtos []moduleSummaryDTO) []domain.ModuleSummary {
	out := make([]domain.ModuleSummary, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, domain.ModuleSummary{
			ID:          d.ID.String(),
			ModuleID:    d.ModuleID,
			Name:        d.Name,
			Credits:     d.Credits,
			Category:    d.Category,
			Subcategory: d.Subcategory,
			Occurrence:  d.Occurrence,
			Language:    d.Language,
			Responsible: d.Responsible,
			Description: d.Description,
		})
	}
	return out
}

func toModuleDetails(d moduleDetailsDTO) domain.ModuleDetails {
	return domain.ModuleDetails{
		ID:                d.ID.String(),
		StudyProgramID:    d.StudyProgramID.String(),
		ModuleID:          d.ModuleID,
		Name:              d.Name,
		Credits:           d.Credits,
		Category:          d.Category,
		Subcategory:       d.Subcategory,
		Responsible:       d.Responsible,
		Organisation:      d.Organisation,
		ModuleLevel:       d.ModuleLevel,
		Occurrence:        d.Occurrence,
		Language:          d.Language,
		TotalHours:        d.TotalHours,
		ContactHours:      d.ContactHours,
		SelfStudyHours:    d.SelfStudyHours,
		AssessmentMethods: d.AssessmentMethods,
		Prerequisites:     d.Prerequisites,
		LearningOutcomes:  d.LearningOutcomes,
		Content:           d.Content,
		TeachingMethods:   d.TeachingMethods,
		Media:             d.Media,
		ReadingList:       d.ReadingList,
	}
}
