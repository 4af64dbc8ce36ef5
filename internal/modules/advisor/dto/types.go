package dto

import "time"

type MessageOutput struct {
	Role      string
	Content   string
	ModuleIDs []string
	At        time.Time
}

type SessionOutput struct {
	ID          string
	StudyPlanID string
	CreatedAt   time.Time
	Messages    []MessageOutput
}

type AskInput struct {
	SessionID string
	Message   string
}

type CourseInfoOutput struct {
	ModuleID         string
	Name             string
	Content          string
	Category         string
	Credits          int
	Responsible      string
	Occurrence       string
	LearningOutcomes string
	Certainty        float64
}
