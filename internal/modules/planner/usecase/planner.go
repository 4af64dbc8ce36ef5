package usecase

import (
	"context"
	"fmt"
	"strings"

	"studyplanner/internal/modules/planner/domain"
	"studyplanner/internal/modules/planner/dto"
	plannerin "studyplanner/internal/modules/planner/port/in"
	"studyplanner/internal/modules/planner/service"
)

type Interactor struct {
	sync *service.Synchronizer
}

func NewInteractor(sync *service.Synchronizer) plannerin.Usecase {
	return &Interactor{sync: sync}
}

func (i *Interactor) OpenPlan(ctx context.Context, studyPlanID string) (dto.PlanOverview, error) {
	if err := i.sync.Open(ctx, studyPlanID); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) Overview(context.Context) (dto.PlanOverview, error) {
	return i.overview(), nil
}

func (i *Interactor) AddSemester(ctx context.Context) (dto.PlanOverview, error) {
	if err := i.sync.AddSemester(ctx); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) CreateStartingBlock(ctx context.Context, season string) (dto.PlanOverview, error) {
	start, err := parseSeason(season)
	if err != nil {
		return dto.PlanOverview{}, err
	}
	if err := i.sync.CreateStartingBlock(ctx, start); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) RenameSemester(ctx context.Context, semesterID, name string) (dto.PlanOverview, error) {
	if err := i.sync.RenameSemester(ctx, semesterID, name); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) RemoveSemester(ctx context.Context, semesterID string) (dto.PlanOverview, error) {
	if err := i.sync.RemoveSemester(ctx, semesterID); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) AddCourse(ctx context.Context, input dto.AddCourseInput) (dto.PlanOverview, error) {
	course := domain.Course{
		CourseID:   input.CourseID,
		Name:       input.Name,
		Code:       input.Code,
		Credits:    input.Credits,
		Professor:  input.Professor,
		Occurrence: input.Occurrence,
		Category:   input.Category,
	}
	if err := i.sync.AddCourse(ctx, input.SemesterID, course); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) RemoveCourse(ctx context.Context, entryID string) (dto.PlanOverview, error) {
	if err := i.sync.RemoveCourse(ctx, entryID); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) ToggleCourse(ctx context.Context, entryID string) (dto.PlanOverview, error) {
	if err := i.sync.ToggleCourse(ctx, entryID); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) MoveCourse(ctx context.Context, input dto.MoveCourseInput) (dto.PlanOverview, error) {
	if err := i.sync.MoveCourse(ctx, input.EntryID, input.TargetSemesterID, input.TargetIndex); err != nil {
		return dto.PlanOverview{}, err
	}
	return i.overview(), nil
}

func (i *Interactor) overview() dto.PlanOverview {
	plan := i.sync.Plan()
	out := dto.PlanOverview{
		PlanID:           i.sync.PlanID(),
		Semesters:        make([]dto.SemesterOutput, 0, len(plan)),
		TotalCredits:     plan.TotalCredits(),
		CompletedCredits: plan.CompletedCredits(),
		CourseCount:      plan.CourseCount(),
	}
	for _, semester := range plan {
		s := dto.SemesterOutput{
			ID:               semester.ID,
			Name:             semester.Name,
			Credits:          semester.Credits(),
			CompletedCredits: semester.CompletedCredits(),
			Courses:          make([]dto.CourseOutput, 0, len(semester.Courses)),
		}
		for _, course := range semester.Courses {
			s.Courses = append(s.Courses, dto.CourseOutput{
				EntryID:        course.EntryID,
				CourseID:       course.CourseID,
				Name:           course.Name,
				Code:           course.Code,
				Credits:        course.Credits,
				Professor:      course.Professor,
				Category:       course.Category,
				Completed:      course.Completed,
				CompletionDate: course.CompletionDate,
			})
		}
		out.Semesters = append(out.Semesters, s)
	}
	return out
}

func parseSeason(season string) (domain.Season, error) {
	switch strings.ToLower(strings.TrimSpace(season)) {
	case "winter", "w":
		return domain.SeasonWinter, nil
	case "summer", "s":
		return domain.SeasonSummer, nil
	}
	return "", fmt.Errorf("season must be winter or summer, got %q", season)
}
