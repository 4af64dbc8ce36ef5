package domain

// StudyProgram is a degree program from the catalog service. Name carries
// the curriculum title, which is what the catalog displays.
type StudyProgram struct {
	ID             string
	Name           string
	Degree         string
	FieldOfStudy   string
	Credits        int
	Semester       int
	CurriculumLink string
}

// ModuleSummary is the lightweight listing shape used in category browsing
// and search results.
type ModuleSummary struct {
	ID          string
	ModuleID    string
	Name        string
	Credits     int
	Category    string
	Subcategory string
	Occurrence  string
	Language    string
	Responsible string
	Description string
}

// ModuleDetails is the full catalog record of one module.
type ModuleDetails struct {
	ID                string
	StudyProgramID    string
	ModuleID          string
	Name              string
	Credits           int
	Category          string
	Subcategory       string
	Responsible       string
	Organisation      string
	ModuleLevel       string
	Occurrence        string
	Language          string
	TotalHours        int
	ContactHours      int
	SelfStudyHours    int
	AssessmentMethods string
	Prerequisites     string
	LearningOutcomes  string
	Content           string
	TeachingMethods   string
	Media             string
	ReadingList       string
}

type CategoryStatistics struct {
	Category      string
	TotalCredits  int
	ModuleCount   int
	Subcategories []string
}

type CurriculumOverview struct {
	StudyProgramID       string
	ProgramName          string
	TotalCredits         int
	TotalModules         int
	Categories           []CategoryStatistics
	AvailableLanguages   []string
	AvailableOccurrences []string
}
