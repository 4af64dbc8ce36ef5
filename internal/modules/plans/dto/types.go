package dto

type PlanOutput struct {
	ID               string
	Name             string
	StudyProgramID   string
	StudyProgramName string
	IsActive         bool
	CreatedDate      string
	LastModified     string
}

type CreatePlanInput struct {
	Name           string
	StudyProgramID string
}

type RenamePlanInput struct {
	PlanID string
	Name   string
}
