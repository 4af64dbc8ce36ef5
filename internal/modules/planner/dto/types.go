package dto

type CourseOutput struct {
	EntryID        string
	CourseID       string
	Name           string
	Code           string
	Credits        int
	Professor      string
	Category       string
	Completed      bool
	CompletionDate string
}

type SemesterOutput struct {
	ID               string
	Name             string
	Credits          int
	CompletedCredits int
	Courses          []CourseOutput
}

type PlanOverview struct {
	PlanID           string
	Semesters        []SemesterOutput
	TotalCredits     int
	CompletedCredits int
	CourseCount      int
}

type AddCourseInput struct {
	SemesterID string
	CourseID   string
	Name       string
	Code       string
	Credits    int
	Professor  string
	Occurrence string
	Category   string
}

type MoveCourseInput struct {
	EntryID          string
	TargetSemesterID string
	TargetIndex      int
}
