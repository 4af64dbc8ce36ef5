package dto

type ProgramOutput struct {
	ID           string
	Name         string
	Degree       string
	FieldOfStudy string
	Credits      int
	Semester     int
}

type ModuleSummaryOutput struct {
	ID          string
	ModuleID    string
	Name        string
	Credits     int
	Category    string
	Subcategory string
	Occurrence  string
	Language    string
	Responsible string
}

type ModuleDetailsOutput struct {
	ModuleID         string
	Name             string
	Credits          int
	Category         string
	Subcategory      string
	Responsible      string
	Organisation     string
	Occurrence       string
	Language         string
	Content          string
	LearningOutcomes string
	Prerequisites    string
}

type CategoryStatsOutput struct {
	Category      string
	TotalCredits  int
	ModuleCount   int
	Subcategories []string
}

type OverviewOutput struct {
	ProgramName          string
	TotalCredits         int
	TotalModules         int
	Categories           []CategoryStatsOutput
	AvailableLanguages   []string
	AvailableOccurrences []string
}

type SearchInput struct {
	StudyProgramID string
	Category       string
	Subcategory    string
	Language       string
	Occurrence     string
	MinCredits     int
	MaxCredits     int
	SearchTerm     string
}
