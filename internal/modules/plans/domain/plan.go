package domain

import (
	"fmt"
	"strings"
)

// Summary is one study plan as listed on the overview. Timestamps stay in
// the backend's ISO form; the client only displays them.
type Summary struct {
	ID               string
	Name             string
	UserID           string
	StudyProgramID   string
	StudyProgramName string
	PlanData         string
	IsActive         bool
	CreatedDate      string
	LastModified     string
}

func (s Summary) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("plan name is required")
	}
	if strings.TrimSpace(s.StudyProgramID) == "" {
		return fmt.Errorf("study program is required")
	}
	return nil
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name         *string
	IsActive     *bool
	LastModified *string
}
