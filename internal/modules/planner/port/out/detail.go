package out

import (
	"context"

	"studyplanner/internal/modules/planner/domain"
)

// DetailAPI is the study-plan service surface for a single plan's semesters
// and course placements.
type DetailAPI interface {
	ListSemesters(ctx context.Context, studyPlanID string) ([]domain.Semester, error)
	CreateSemester(ctx context.Context, semester domain.Semester) (domain.Semester, error)
	RenameSemester(ctx context.Context, semester domain.Semester) (domain.Semester, error)
	DeleteSemester(ctx context.Context, id string) error

	ListCourses(ctx context.Context, semesterID string) ([]domain.Course, error)
	AddCourse(ctx context.Context, semesterID string, course domain.Course) (domain.Course, error)
	ToggleCompletion(ctx context.Context, entryID string) (domain.Course, error)
	MoveCourse(ctx context.Context, entryID, targetSemesterID string) (domain.Course, error)
	ReorderCourses(ctx context.Context, semesterID string, entryIDs []string) error
	RemoveCourse(ctx context.Context, entryID string) error
}
