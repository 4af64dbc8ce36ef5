package domain

import (
	"fmt"
	"strings"
)

type Season string

const (
	SeasonWinter Season = "W"
	SeasonSummer Season = "S"
)

func (s Season) Validate() error {
	switch s {
	case SeasonWinter, SeasonSummer:
		return nil
	}
	return fmt.Errorf("season must be W or S, got %q", string(s))
}

// SeasonFromName infers the season from a display name like "Winter 2026".
// Anything that is not a winter semester counts as summer.
func SeasonFromName(name string) Season {
	if strings.HasPrefix(strings.TrimSpace(name), "Winter") {
		return SeasonWinter
	}
	return SeasonSummer
}

// Course is one catalog module placed into a semester. EntryID identifies
// the placement itself and is distinct from CourseID, the catalog module it
// points at; moving a course between semesters keeps the EntryID.
type Course struct {
	EntryID        string
	CourseID       string
	SemesterID     string
	Name           string
	Code           string
	Credits        int
	Professor      string
	Occurrence     string
	Category       string
	Subcategory    string
	Completed      bool
	CompletionDate string
	Order          int
}

type Semester struct {
	ID          string
	Name        string
	Season      Season
	StudyPlanID string
	Order       int
	Expanded    bool
	Courses     []Course
}

func (s Semester) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("semester name is required")
	}
	return s.Season.Validate()
}

func (s Semester) Credits() int {
	total := 0
	for _, course := range s.Courses {
		total += course.Credits
	}
	return total
}

func (s Semester) CompletedCredits() int {
	total := 0
	for _, course := range s.Courses {
		if course.Completed {
			total += course.Credits
		}
	}
	return total
}
