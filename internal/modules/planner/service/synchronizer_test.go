package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"testing"
	"time"

	"studyplanner/internal/modules/planner/domain"
	apperrors "studyplanner/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (g *seqID) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fakeDetailAPI struct {
	mu sync.Mutex

	semesters []domain.Semester
	courses   map[string]domain.Course

	createSemErr error
	addCourseErr error
	moveErr      error
	toggleErr    error
	reorderErr   error
	deleteErr    error

	nextID           int64
	createdSemesters []domain.Semester
	addedCourses     []domain.Course
	deletedSemesters []string
	deletedCourses   []string
	movedCourses     []string
	reorders         [][]string

	removeStarted    chan struct{}
	removeBlock      chan struct{}
	createSemStarted chan struct{}
	createSemBlock   chan struct{}
}

func newFakeDetailAPI() *fakeDetailAPI {
	return &fakeDetailAPI{courses: map[string]domain.Course{}}
}

func (f *fakeDetailAPI) assignID() string {
	f.nextID++
	return strconv.FormatInt(1000+f.nextID, 10)
}

func (f *fakeDetailAPI) ListSemesters(context.Context, string) ([]domain.Semester, error) {
	return f.semesters, nil
}

func (f *fakeDetailAPI) CreateSemester(_ context.Context, semester domain.Semester) (domain.Semester, error) {
	f.mu.Lock()
	started := f.createSemStarted
	f.createSemStarted = nil
	f.mu.Unlock()
	if started != nil {
		close(started)
		<-f.createSemBlock
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createSemErr != nil {
		return domain.Semester{}, f.createSemErr
	}
	semester.ID = f.assignID()
	f.createdSemesters = append(f.createdSemesters, semester)
	return semester, nil
}

func (f *fakeDetailAPI) RenameSemester(_ context.Context, semester domain.Semester) (domain.Semester, error) {
	return semester, nil
}

func (f *fakeDetailAPI) DeleteSemester(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedSemesters = append(f.deletedSemesters, id)
	return nil
}

func (f *fakeDetailAPI) ListCourses(context.Context, string) ([]domain.Course, error) {
	return []domain.Course{}, nil
}

func (f *fakeDetailAPI) AddCourse(_ context.Context, semesterID string, course domain.Course) (domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addCourseErr != nil {
		return domain.Course{}, f.addCourseErr
	}
	course.EntryID = f.assignID()
	course.SemesterID = semesterID
	f.addedCourses = append(f.addedCourses, course)
	f.courses[course.EntryID] = course
	return course, nil
}

func (f *fakeDetailAPI) ToggleCompletion(_ context.Context, entryID string) (domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.toggleErr != nil {
		return domain.Course{}, f.toggleErr
	}
	course := f.courses[entryID]
	course.EntryID = entryID
	course.Completed = !course.Completed
	if course.Completed {
		course.CompletionDate = "2026-08-30T10:00:00"
	} else {
		course.CompletionDate = ""
	}
	f.courses[entryID] = course
	return course, nil
}

func (f *fakeDetailAPI) MoveCourse(_ context.Context, entryID, targetSemesterID string) (domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.moveErr != nil {
		return domain.Course{}, f.moveErr
	}
	course := f.courses[entryID]
	course.EntryID = entryID
	course.SemesterID = targetSemesterID
	f.courses[entryID] = course
	f.movedCourses = append(f.movedCourses, entryID)
	return course, nil
}

func (f *fakeDetailAPI) ReorderCourses(_ context.Context, _ string, entryIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reorderErr != nil {
		return f.reorderErr
	}
	f.reorders = append(f.reorders, entryIDs)
	return nil
}

func (f *fakeDetailAPI) RemoveCourse(_ context.Context, entryID string) error {
	if f.removeStarted != nil {
		close(f.removeStarted)
		f.removeStarted = nil
		<-f.removeBlock
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedCourses = append(f.deletedCourses, entryID)
	return nil
}

func testCourse(entryID, courseID, semesterID string, credits int) domain.Course {
	return domain.Course{
		EntryID:    entryID,
		CourseID:   courseID,
		SemesterID: semesterID,
		Name:       "Course " + courseID,
		Credits:    credits,
	}
}

func openSynchronizer(t *testing.T, api *fakeDetailAPI) *Synchronizer {
	t.Helper()
	s := NewSynchronizer(fakeClock{now: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}, &seqID{}, api)
	if err := s.Open(context.Background(), "1"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func TestAddSemesterSwapsPlaceholderForServerID(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	s := openSynchronizer(t, api)

	if err := s.AddSemester(context.Background()); err != nil {
		t.Fatalf("AddSemester() error = %v", err)
	}

	plan := s.Plan()
	if len(plan) != 1 {
		t.Fatalf("len(plan) = %d, want 1", len(plan))
	}
	if !domain.IsPersisted(plan[0].ID) {
		t.Fatalf("semester id %q still a placeholder after persist", plan[0].ID)
	}
	if plan[0].Name != "Winter 2026" {
		t.Fatalf("semester name = %q, want Winter 2026", plan[0].Name)
	}
}

func TestAddSemesterRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.createSemErr = apperrors.NewAPIError(500, "", "")
	s := openSynchronizer(t, api)

	if err := s.AddSemester(context.Background()); err == nil {
		t.Fatalf("AddSemester() succeeded, want error")
	}
	if len(s.Plan()) != 0 {
		t.Fatalf("plan not empty after rollback")
	}
}

func TestAddCourseRollbackIsExact(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.semesters = []domain.Semester{{
		ID: "10", Name: "Winter 2026", StudyPlanID: "1",
		Courses: []domain.Course{testCourse("100", "IN2003", "10", 8)},
	}}
	s := openSynchronizer(t, api)
	before := s.Plan()

	api.addCourseErr = apperrors.NewAPIError(409, "DUPLICATE_COURSE", "already planned")
	err := s.AddCourse(context.Background(), "10", domain.Course{CourseID: "IN2018", Name: "Compilers", Credits: 5})
	if err == nil {
		t.Fatalf("AddCourse() succeeded, want error")
	}

	if !reflect.DeepEqual(s.Plan(), before) {
		t.Fatalf("plan after rollback = %+v, want %+v", s.Plan(), before)
	}
}

func TestAddCourseReconcilesEntryID(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.semesters = []domain.Semester{{ID: "10", Name: "Winter 2026", StudyPlanID: "1", Courses: []domain.Course{}}}
	s := openSynchronizer(t, api)

	if err := s.AddCourse(context.Background(), "10", domain.Course{CourseID: "IN2018", Name: "Compilers", Credits: 5}); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}

	plan := s.Plan()
	if len(plan[0].Courses) != 1 {
		t.Fatalf("course count = %d, want 1", len(plan[0].Courses))
	}
	if !domain.IsPersisted(plan[0].Courses[0].EntryID) {
		t.Fatalf("entry id %q still a placeholder", plan[0].Courses[0].EntryID)
	}
}

func TestAddCourseRejectsDuplicatePlacement(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.semesters = []domain.Semester{
		{ID: "10", Name: "Winter 2026", Courses: []domain.Course{testCourse("100", "IN2003", "10", 8)}},
		{ID: "11", Name: "Summer 2026", Courses: []domain.Course{}},
	}
	s := openSynchronizer(t, api)

	if err := s.AddCourse(context.Background(), "11", domain.Course{CourseID: "IN2003"}); err == nil {
		t.Fatalf("AddCourse() of already planned course succeeded")
	}
	if len(api.addedCourses) != 0 {
		t.Fatalf("network called for rejected placement")
	}
}

func TestMoveAcrossSemestersRollsBackExactOrder(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.semesters = []domain.Semester{
		{ID: "10", Name: "Winter 2026", Courses: []domain.Course{
			testCourse("100", "IN2003", "10", 8),
			testCourse("101", "IN2018", "10", 5),
		}},
		{ID: "11", Name: "Summer 2026", Courses: []domain.Course{}},
	}
	s := openSynchronizer(t, api)
	before := s.Plan()

	api.moveErr = apperrors.NewAPIError(403, "ACCESS_DENIED", "not yours")
	if err := s.MoveCourse(context.Background(), "100", "11", 0); err == nil {
		t.Fatalf("MoveCourse() succeeded, want error")
	}
	if !reflect.DeepEqual(s.Plan(), before) {
		t.Fatalf("rollback not exact:\n got %+v\nwant %+v", s.Plan(), before)
	}
}

func TestMoveWithinSemesterSendsReorder(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.semesters = []domain.Semester{{ID: "10", Name: "Winter 2026", Courses: []domain.Course{
		testCourse("100", "IN2003", "10", 8),
		testCourse("101", "IN2018", "10", 5),
		testCourse("102", "IN2342", "10", 6),
	}}}
	s := openSynchronizer(t, api)

	if err := s.MoveCourse(context.Background(), "102", "10", 0); err != nil {
		t.Fatalf("MoveCourse() error = %v", err)
	}

	plan := s.Plan()
	if plan[0].Courses[0].EntryID != "102" {
		t.Fatalf("head entry = %q, want 102", plan[0].Courses[0].EntryID)
	}
	if len(api.reorders) != 1 || !reflect.DeepEqual(api.reorders[0], []string{"102", "100", "101"}) {
		t.Fatalf("reorders = %v, want [[102 100 101]]", api.reorders)
	}
	if len(api.movedCourses) != 0 {
		t.Fatalf("cross-semester move endpoint used for in-semester reorder")
	}
}

func TestToggleTwiceRestoresCourse(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	course := testCourse("100", "IN2003", "10", 8)
	api.semesters = []domain.Semester{{ID: "10", Name: "Winter 2026", Courses: []domain.Course{course}}}
	api.courses["100"] = course
	s := openSynchronizer(t, api)

	if err := s.ToggleCourse(context.Background(), "100"); err != nil {
		t.Fatalf("ToggleCourse() error = %v", err)
	}
	if got := s.Plan()[0].Courses[0]; !got.Completed || got.CompletionDate == "" {
		t.Fatalf("after first toggle = %+v, want completed with date", got)
	}

	if err := s.ToggleCourse(context.Background(), "100"); err != nil {
		t.Fatalf("ToggleCourse() error = %v", err)
	}
	if got := s.Plan()[0].Courses[0]; got.Completed || got.CompletionDate != "" {
		t.Fatalf("after second toggle = %+v, want incomplete without date", got)
	}
}

func TestToggleRollbackOnFailure(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.semesters = []domain.Semester{{ID: "10", Name: "Winter 2026", Courses: []domain.Course{testCourse("100", "IN2003", "10", 8)}}}
	api.toggleErr = apperrors.NewAPIError(400, "UPDATE_FAILED", "")
	s := openSynchronizer(t, api)

	if err := s.ToggleCourse(context.Background(), "100"); err == nil {
		t.Fatalf("ToggleCourse() succeeded, want error")
	}
	if s.Plan()[0].Courses[0].Completed {
		t.Fatalf("completion stuck after failed persist")
	}
}

func TestRemoveUnpersistedEntitySkipsNetwork(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	placeholder := domain.PlaceholderID("abc")
	api.semesters = []domain.Semester{
		{ID: placeholder, Name: "Winter 2026", Courses: []domain.Course{}},
		{ID: "11", Name: "Summer 2026", Courses: []domain.Course{{EntryID: domain.PlaceholderID("def"), CourseID: "IN2003"}}},
	}
	s := openSynchronizer(t, api)

	if err := s.RemoveSemester(context.Background(), placeholder); err != nil {
		t.Fatalf("RemoveSemester() error = %v", err)
	}
	if err := s.RemoveCourse(context.Background(), domain.PlaceholderID("def")); err != nil {
		t.Fatalf("RemoveCourse() error = %v", err)
	}

	if len(api.deletedSemesters) != 0 || len(api.deletedCourses) != 0 {
		t.Fatalf("network deletes issued for unpersisted entities: %v %v", api.deletedSemesters, api.deletedCourses)
	}
	if len(s.Plan()) != 1 || len(s.Plan()[0].Courses) != 0 {
		t.Fatalf("local removal did not happen: %+v", s.Plan())
	}
}

func TestConcurrentMutationOfSameEntityRejected(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.semesters = []domain.Semester{{ID: "10", Name: "Winter 2026", Courses: []domain.Course{testCourse("100", "IN2003", "10", 8)}}}
	api.removeStarted = make(chan struct{})
	api.removeBlock = make(chan struct{})
	s := openSynchronizer(t, api)

	done := make(chan error, 1)
	go func() {
		done <- s.RemoveCourse(context.Background(), "100")
	}()
	<-api.removeStarted

	if err := s.ToggleCourse(context.Background(), "100"); !errors.Is(err, apperrors.ErrMutationInFlight) {
		t.Fatalf("ToggleCourse() during in-flight remove error = %v, want ErrMutationInFlight", err)
	}

	close(api.removeBlock)
	if err := <-done; err != nil {
		t.Fatalf("RemoveCourse() error = %v", err)
	}
	if len(s.Plan()[0].Courses) != 0 {
		t.Fatalf("course still present after remove")
	}
}

func TestFailedMutationLeavesIndependentEntitiesAlone(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	course := testCourse("100", "IN2003", "10", 8)
	api.semesters = []domain.Semester{{ID: "10", Name: "Winter 2026", Courses: []domain.Course{course}}}
	api.courses["100"] = course
	api.createSemErr = apperrors.NewAPIError(500, "", "")
	api.createSemStarted = make(chan struct{})
	api.createSemBlock = make(chan struct{})
	s := openSynchronizer(t, api)

	done := make(chan error, 1)
	go func() {
		done <- s.AddSemester(context.Background())
	}()
	<-api.createSemStarted

	if err := s.ToggleCourse(context.Background(), "100"); err != nil {
		t.Fatalf("ToggleCourse() during in-flight add error = %v", err)
	}

	close(api.createSemBlock)
	if err := <-done; err == nil {
		t.Fatalf("AddSemester() succeeded, want error")
	}

	plan := s.Plan()
	if len(plan) != 1 {
		t.Fatalf("len(plan) = %d after failed add, want 1", len(plan))
	}
	if !plan[0].Courses[0].Completed {
		t.Fatalf("failed semester add undid the completed toggle of an unrelated course")
	}
}

func TestOverlappingAddSemestersGetDistinctNames(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	api.createSemStarted = make(chan struct{})
	api.createSemBlock = make(chan struct{})
	s := openSynchronizer(t, api)

	done := make(chan error, 1)
	go func() {
		done <- s.AddSemester(context.Background())
	}()
	<-api.createSemStarted

	if err := s.AddSemester(context.Background()); err != nil {
		t.Fatalf("second AddSemester() error = %v", err)
	}

	close(api.createSemBlock)
	if err := <-done; err != nil {
		t.Fatalf("first AddSemester() error = %v", err)
	}

	if len(api.createdSemesters) != 2 {
		t.Fatalf("created %d semesters, want 2", len(api.createdSemesters))
	}
	names := map[string]bool{}
	orders := map[int]bool{}
	for _, semester := range api.createdSemesters {
		names[semester.Name] = true
		orders[semester.Order] = true
	}
	if !names["Winter 2026"] || !names["Summer 2027"] {
		t.Fatalf("created names = %v, want Winter 2026 and Summer 2027", names)
	}
	if !orders[0] || !orders[1] {
		t.Fatalf("created orders = %v, want 0 and 1", orders)
	}
}

func TestCreateStartingBlock(t *testing.T) {
	t.Parallel()

	api := newFakeDetailAPI()
	s := openSynchronizer(t, api)

	if err := s.CreateStartingBlock(context.Background(), domain.SeasonWinter); err != nil {
		t.Fatalf("CreateStartingBlock() error = %v", err)
	}

	plan := s.Plan()
	if len(plan) != 4 {
		t.Fatalf("len(plan) = %d, want 4", len(plan))
	}
	wantNames := []string{"Winter 2026", "Summer 2027", "Winter 2027", "Summer 2028"}
	for i, semester := range plan {
		if semester.Name != wantNames[i] {
			t.Fatalf("semester[%d] = %q, want %q", i, semester.Name, wantNames[i])
		}
		if !domain.IsPersisted(semester.ID) {
			t.Fatalf("semester[%d] id %q still a placeholder", i, semester.ID)
		}
	}

	if err := s.CreateStartingBlock(context.Background(), domain.SeasonWinter); err == nil {
		t.Fatalf("CreateStartingBlock() on non-empty plan succeeded")
	}
}
