package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"studyplanner/internal/modules/planner/domain"
	plannerout "studyplanner/internal/modules/planner/port/out"
	"studyplanner/internal/platform/clock"
	apperrors "studyplanner/internal/platform/errors"
	"studyplanner/internal/platform/id"
)

// Synchronizer owns the in-memory plan of the currently opened study plan
// and keeps it in step with the backend. Every mutation follows the same
// shape: apply the change locally, persist it, then either reconcile
// placeholder ids with the server's answer or undo the local change.
// Concurrent mutations of the same entity are rejected instead of queued;
// mutations of different entities may overlap, so a failed one reverts only
// its own slice of the plan and leaves the others alone.
type Synchronizer struct {
	clock clock.Clock
	idGen id.Generator
	api   plannerout.DetailAPI

	mu       sync.Mutex
	planID   string
	plan     domain.Plan
	inFlight map[string]struct{}
}

func NewSynchronizer(clock clock.Clock, idGen id.Generator, api plannerout.DetailAPI) *Synchronizer {
	return &Synchronizer{
		clock:    clock,
		idGen:    idGen,
		api:      api,
		inFlight: map[string]struct{}{},
	}
}

// Open loads the semesters of a study plan and makes it the working plan.
func (s *Synchronizer) Open(ctx context.Context, studyPlanID string) error {
	semesters, err := s.api.ListSemesters(ctx, studyPlanID)
	if err != nil {
		return err
	}
	for i := range semesters {
		if semesters[i].Courses != nil {
			continue
		}
		courses, err := s.api.ListCourses(ctx, semesters[i].ID)
		if err != nil {
			return err
		}
		semesters[i].Courses = courses
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.planID = studyPlanID
	s.plan = semesters
	return nil
}

func (s *Synchronizer) PlanID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planID
}

// Plan returns a copy of the working plan; mutating it does not affect the
// synchronizer.
func (s *Synchronizer) Plan() domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone()
}

// run executes one mutation: apply rewrites the plan locally under the lock
// and hands back an inverse step, persist talks to the backend and may hand
// back a reconcile step for server-assigned state. On persist failure the
// inverse is applied to the plan as it is then, not to a snapshot, so
// mutations of other entities that completed in the meantime survive.
func (s *Synchronizer) run(
	ctx context.Context,
	entityID string,
	apply func(domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error),
	persist func(context.Context) (func(domain.Plan) domain.Plan, error),
) error {
	s.mu.Lock()
	if _, busy := s.inFlight[entityID]; busy {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", entityID, apperrors.ErrMutationInFlight)
	}
	next, revert, err := apply(s.plan)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.plan = next
	s.inFlight[entityID] = struct{}{}
	s.mu.Unlock()

	reconcile, persistErr := persist(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, entityID)
	if persistErr != nil {
		if revert != nil {
			s.plan = revert(s.plan)
		}
		return persistErr
	}
	if reconcile != nil {
		s.plan = reconcile(s.plan)
	}
	return nil
}

// AddSemester appends the next semester in the season sequence. Name and
// order are derived from the plan inside the apply step, so an overlapping
// add that was applied first is already counted.
func (s *Synchronizer) AddSemester(ctx context.Context) error {
	placeholder := domain.PlaceholderID(s.idGen.New())
	var semester domain.Semester

	return s.run(ctx, placeholder,
		func(plan domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error) {
			name := plan.NextSemesterName(s.clock.Now().Year())
			semester = domain.Semester{
				ID:          placeholder,
				Name:        name,
				Season:      domain.SeasonFromName(name),
				StudyPlanID: s.planID,
				Order:       len(plan),
				Expanded:    true,
			}
			revert := func(plan domain.Plan) domain.Plan {
				next, err := plan.RemoveSemester(placeholder)
				if err != nil {
					return plan
				}
				return next
			}
			return plan.AddSemester(semester), revert, nil
		},
		func(ctx context.Context) (func(domain.Plan) domain.Plan, error) {
			created, err := s.api.CreateSemester(ctx, semester)
			if err != nil {
				return nil, err
			}
			return func(plan domain.Plan) domain.Plan {
				return plan.ReplaceSemesterID(placeholder, created.ID)
			}, nil
		},
	)
}

// CreateStartingBlock seeds an empty plan with four alternating semesters.
func (s *Synchronizer) CreateStartingBlock(ctx context.Context, start domain.Season) error {
	if err := start.Validate(); err != nil {
		return err
	}

	planID := s.PlanID()
	var semesters []domain.Semester

	return s.run(ctx, "plan:"+planID,
		func(plan domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error) {
			if len(plan) > 0 {
				return nil, nil, fmt.Errorf("study plan already has semesters")
			}
			names := domain.StartingBlockNames(start, s.clock.Now().Year())
			semesters = make([]domain.Semester, 0, len(names))
			for i, name := range names {
				semester := domain.Semester{
					ID:          domain.PlaceholderID(s.idGen.New()),
					Name:        name,
					Season:      domain.SeasonFromName(name),
					StudyPlanID: planID,
					Order:       i,
					Expanded:    true,
				}
				semesters = append(semesters, semester)
				plan = plan.AddSemester(semester)
			}
			revert := func(plan domain.Plan) domain.Plan {
				for _, semester := range semesters {
					if next, err := plan.RemoveSemester(semester.ID); err == nil {
						plan = next
					}
				}
				return plan
			}
			return plan, revert, nil
		},
		func(ctx context.Context) (func(domain.Plan) domain.Plan, error) {
			replacements := make(map[string]string, len(semesters))
			for _, semester := range semesters {
				created, err := s.api.CreateSemester(ctx, semester)
				if err != nil {
					return nil, err
				}
				replacements[semester.ID] = created.ID
			}
			return func(plan domain.Plan) domain.Plan {
				for placeholder, serverID := range replacements {
					plan = plan.ReplaceSemesterID(placeholder, serverID)
				}
				return plan
			}, nil
		},
	)
}

func (s *Synchronizer) RenameSemester(ctx context.Context, semesterID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("semester name is required")
	}

	var renamed domain.Semester

	return s.run(ctx, semesterID,
		func(plan domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error) {
			index, ok := plan.FindSemester(semesterID)
			if !ok {
				return nil, nil, fmt.Errorf("semester %s: %w", semesterID, apperrors.ErrNotFound)
			}
			oldName := plan[index].Name
			next, err := plan.RenameSemester(semesterID, name)
			if err != nil {
				return nil, nil, err
			}
			ni, _ := next.FindSemester(semesterID)
			renamed = next[ni]
			revert := func(plan domain.Plan) domain.Plan {
				reverted, err := plan.RenameSemester(semesterID, oldName)
				if err != nil {
					return plan
				}
				return reverted
			}
			return next, revert, nil
		},
		func(ctx context.Context) (func(domain.Plan) domain.Plan, error) {
			if !domain.IsPersisted(semesterID) {
				return nil, nil
			}
			if _, err := s.api.RenameSemester(ctx, renamed); err != nil {
				return nil, err
			}
			return nil, nil
		},
	)
}

// RemoveSemester deletes a semester and everything in it. Semesters the
// backend never saw are removed locally without a network call.
func (s *Synchronizer) RemoveSemester(ctx context.Context, semesterID string) error {
	return s.run(ctx, semesterID,
		func(plan domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error) {
			index, ok := plan.FindSemester(semesterID)
			if !ok {
				return nil, nil, fmt.Errorf("semester %s: %w", semesterID, apperrors.ErrNotFound)
			}
			removed := plan[index]
			removed.Courses = append([]domain.Course(nil), removed.Courses...)
			next, err := plan.RemoveSemester(semesterID)
			if err != nil {
				return nil, nil, err
			}
			revert := func(plan domain.Plan) domain.Plan {
				return plan.InsertSemester(index, removed)
			}
			return next, revert, nil
		},
		func(ctx context.Context) (func(domain.Plan) domain.Plan, error) {
			if !domain.IsPersisted(semesterID) {
				return nil, nil
			}
			return nil, s.api.DeleteSemester(ctx, semesterID)
		},
	)
}

// AddCourse places a catalog module into a semester. The caller provides the
// module's display fields; the placement id is a placeholder until the
// backend confirms it.
func (s *Synchronizer) AddCourse(ctx context.Context, semesterID string, course domain.Course) error {
	if strings.TrimSpace(course.CourseID) == "" {
		return fmt.Errorf("course id is required")
	}
	placeholder := domain.PlaceholderID(s.idGen.New())
	course.EntryID = placeholder
	course.SemesterID = semesterID

	return s.run(ctx, placeholder,
		func(plan domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error) {
			if existing, ok := plan.SemesterOfCourse(course.CourseID); ok && existing != "" {
				return nil, nil, fmt.Errorf("course %s is already planned", course.CourseID)
			}
			next, err := plan.AddCourses(semesterID, []domain.Course{course})
			if err != nil {
				return nil, nil, err
			}
			revert := func(plan domain.Plan) domain.Plan {
				reverted, err := plan.RemoveCourse(placeholder)
				if err != nil {
					return plan
				}
				return reverted
			}
			return next, revert, nil
		},
		func(ctx context.Context) (func(domain.Plan) domain.Plan, error) {
			created, err := s.api.AddCourse(ctx, semesterID, course)
			if err != nil {
				return nil, err
			}
			return func(plan domain.Plan) domain.Plan {
				return plan.ReplaceCourseEntry(placeholder, created)
			}, nil
		},
	)
}

func (s *Synchronizer) RemoveCourse(ctx context.Context, entryID string) error {
	return s.run(ctx, entryID,
		func(plan domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error) {
			si, ci, ok := plan.FindCourse(entryID)
			if !ok {
				return nil, nil, fmt.Errorf("course entry %s: %w", entryID, apperrors.ErrNotFound)
			}
			removed := plan[si].Courses[ci]
			semesterID := plan[si].ID
			next, err := plan.RemoveCourse(entryID)
			if err != nil {
				return nil, nil, err
			}
			revert := func(plan domain.Plan) domain.Plan {
				reverted, err := plan.InsertCourse(semesterID, ci, removed)
				if err != nil {
					return plan
				}
				return reverted
			}
			return next, revert, nil
		},
		func(ctx context.Context) (func(domain.Plan) domain.Plan, error) {
			if !domain.IsPersisted(entryID) {
				return nil, nil
			}
			return nil, s.api.RemoveCourse(ctx, entryID)
		},
	)
}

// ToggleCourse flips a course's completion state. The backend owns the
// completion date; the optimistic date is replaced by the server's answer.
func (s *Synchronizer) ToggleCourse(ctx context.Context, entryID string) error {
	now := s.clock.Now().Format("2006-01-02T15:04:05")

	return s.run(ctx, entryID,
		func(plan domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error) {
			si, ci, ok := plan.FindCourse(entryID)
			if !ok {
				return nil, nil, fmt.Errorf("course entry %s: %w", entryID, apperrors.ErrNotFound)
			}
			wasCompleted := plan[si].Courses[ci].Completed
			wasDate := plan[si].Courses[ci].CompletionDate
			next, err := plan.SetCompleted(entryID, !wasCompleted, now)
			if err != nil {
				return nil, nil, err
			}
			revert := func(plan domain.Plan) domain.Plan {
				reverted, err := plan.SetCompleted(entryID, wasCompleted, wasDate)
				if err != nil {
					return plan
				}
				return reverted
			}
			return next, revert, nil
		},
		func(ctx context.Context) (func(domain.Plan) domain.Plan, error) {
			if !domain.IsPersisted(entryID) {
				return nil, nil
			}
			updated, err := s.api.ToggleCompletion(ctx, entryID)
			if err != nil {
				return nil, err
			}
			return func(plan domain.Plan) domain.Plan {
				return plan.ReplaceCourseEntry(entryID, updated)
			}, nil
		},
	)
}

// MoveCourse relocates a placement. Within one semester the new order is
// pushed as a reorder; across semesters the backend moves the placement and
// the course lands at the end of the target.
func (s *Synchronizer) MoveCourse(ctx context.Context, entryID, targetSemesterID string, targetIndex int) error {
	var sameSemester bool
	var reorderIDs []string

	return s.run(ctx, entryID,
		func(plan domain.Plan) (domain.Plan, func(domain.Plan) domain.Plan, error) {
			si, ci, ok := plan.FindCourse(entryID)
			if !ok {
				return nil, nil, fmt.Errorf("course entry %s: %w", entryID, apperrors.ErrNotFound)
			}
			moved := plan[si].Courses[ci]
			sourceID := plan[si].ID
			sameSemester = sourceID == targetSemesterID
			next, err := plan.MoveCourse(entryID, targetSemesterID, targetIndex)
			if err != nil {
				return nil, nil, err
			}
			if sameSemester {
				ti, _ := next.FindSemester(targetSemesterID)
				reorderIDs = nil
				for _, course := range next[ti].Courses {
					if domain.IsPersisted(course.EntryID) {
						reorderIDs = append(reorderIDs, course.EntryID)
					}
				}
			}
			revert := func(plan domain.Plan) domain.Plan {
				reverted, err := plan.RemoveCourse(entryID)
				if err != nil {
					return plan
				}
				reverted, err = reverted.InsertCourse(sourceID, ci, moved)
				if err != nil {
					return plan
				}
				return reverted
			}
			return next, revert, nil
		},
		func(ctx context.Context) (func(domain.Plan) domain.Plan, error) {
			if sameSemester {
				if !domain.IsPersisted(targetSemesterID) || len(reorderIDs) == 0 {
					return nil, nil
				}
				return nil, s.api.ReorderCourses(ctx, targetSemesterID, reorderIDs)
			}
			if !domain.IsPersisted(entryID) || !domain.IsPersisted(targetSemesterID) {
				return nil, nil
			}
			moved, err := s.api.MoveCourse(ctx, entryID, targetSemesterID)
			if err != nil {
				return nil, err
			}
			return func(plan domain.Plan) domain.Plan {
				return plan.ReplaceCourseEntry(entryID, moved)
			}, nil
		},
	)
}
