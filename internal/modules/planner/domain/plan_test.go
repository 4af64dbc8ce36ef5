package domain

import "testing"

func testPlan() Plan {
	return Plan{
		{
			ID: "10", Name: "Winter 2026", Season: SeasonWinter, StudyPlanID: "1", Order: 0,
			Courses: []Course{
				{EntryID: "100", CourseID: "IN2003", Name: "Databases", Credits: 8},
				{EntryID: "101", CourseID: "IN2018", Name: "Compilers", Credits: 5},
				{EntryID: "102", CourseID: "IN2342", Name: "Cloud Systems", Credits: 6, Completed: true},
			},
		},
		{
			ID: "11", Name: "Summer 2026", Season: SeasonSummer, StudyPlanID: "1", Order: 1,
			Courses: []Course{
				{EntryID: "103", CourseID: "IN2339", Name: "Data Analysis", Credits: 8},
			},
		},
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	plan := testPlan()
	clone := plan.Clone()
	clone[0].Courses[0].Name = "Mutated"
	clone[0].Name = "Mutated"

	if plan[0].Courses[0].Name != "Databases" || plan[0].Name != "Winter 2026" {
		t.Fatalf("mutation of clone leaked into original: %+v", plan[0])
	}
}

func TestMoveCourseWithinSemester(t *testing.T) {
	t.Parallel()

	plan := testPlan()
	moved, err := plan.MoveCourse("102", "10", 0)
	if err != nil {
		t.Fatalf("MoveCourse() error = %v", err)
	}

	got := []string{moved[0].Courses[0].EntryID, moved[0].Courses[1].EntryID, moved[0].Courses[2].EntryID}
	want := []string{"102", "100", "101"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after move = %v, want %v", got, want)
		}
	}
	if plan[0].Courses[0].EntryID != "100" {
		t.Fatalf("original plan mutated by MoveCourse")
	}
}

func TestMoveCourseAcrossSemestersAppends(t *testing.T) {
	t.Parallel()

	plan := testPlan()
	before := plan.CourseCount()

	moved, err := plan.MoveCourse("100", "11", 0)
	if err != nil {
		t.Fatalf("MoveCourse() error = %v", err)
	}

	if moved.CourseCount() != before {
		t.Fatalf("CourseCount() = %d after move, want %d", moved.CourseCount(), before)
	}
	if len(moved[0].Courses) != 2 {
		t.Fatalf("source has %d courses, want 2", len(moved[0].Courses))
	}
	target := moved[1].Courses
	if len(target) != 2 || target[1].EntryID != "100" {
		t.Fatalf("target = %+v, want the moved course appended last", target)
	}
	if target[1].SemesterID != "11" {
		t.Fatalf("moved course SemesterID = %q, want 11", target[1].SemesterID)
	}
}

func TestMoveCourseUnknownTarget(t *testing.T) {
	t.Parallel()

	plan := testPlan()
	if _, err := plan.MoveCourse("100", "99", 0); err == nil {
		t.Fatalf("MoveCourse() to unknown semester succeeded")
	}
}

func TestSetCompletedRoundTrip(t *testing.T) {
	t.Parallel()

	plan := testPlan()
	done, err := plan.SetCompleted("100", true, "2026-08-30T12:00:00")
	if err != nil {
		t.Fatalf("SetCompleted() error = %v", err)
	}
	if !done[0].Courses[0].Completed || done[0].Courses[0].CompletionDate == "" {
		t.Fatalf("course not marked complete: %+v", done[0].Courses[0])
	}

	undone, err := done.SetCompleted("100", false, "")
	if err != nil {
		t.Fatalf("SetCompleted() error = %v", err)
	}
	if undone[0].Courses[0].Completed || undone[0].Courses[0].CompletionDate != "" {
		t.Fatalf("toggle twice did not restore: %+v", undone[0].Courses[0])
	}
}

func TestCredits(t *testing.T) {
	t.Parallel()

	plan := testPlan()
	if got := plan[0].Credits(); got != 19 {
		t.Fatalf("semester Credits() = %d, want 19", got)
	}
	if got := plan.TotalCredits(); got != 27 {
		t.Fatalf("TotalCredits() = %d, want 27", got)
	}
	if got := plan.CompletedCredits(); got != 6 {
		t.Fatalf("CompletedCredits() = %d, want 6", got)
	}
}

func TestNextSemesterName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		last string
		want string
	}{
		{"after winter", "Winter 2026", "Summer 2026"},
		{"after summer", "Summer 2026", "Winter 2027"},
		{"unparseable", "Gap Year", "Winter 2026"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			plan := Plan{{ID: "1", Name: tc.last}}
			if got := plan.NextSemesterName(2026); got != tc.want {
				t.Fatalf("NextSemesterName() = %q, want %q", got, tc.want)
			}
		})
	}

	if got := (Plan{}).NextSemesterName(2026); got != "Winter 2026" {
		t.Fatalf("NextSemesterName() on empty plan = %q, want Winter 2026", got)
	}
}

func TestStartingBlockNames(t *testing.T) {
	t.Parallel()

	winter := StartingBlockNames(SeasonWinter, 2026)
	wantWinter := []string{"Winter 2026", "Summer 2027", "Winter 2027", "Summer 2028"}
	for i := range wantWinter {
		if winter[i] != wantWinter[i] {
			t.Fatalf("winter block = %v, want %v", winter, wantWinter)
		}
	}

	summer := StartingBlockNames(SeasonSummer, 2026)
	wantSummer := []string{"Summer 2026", "Winter 2027", "Summer 2027", "Winter 2028"}
	for i := range wantSummer {
		if summer[i] != wantSummer[i] {
			t.Fatalf("summer block = %v, want %v", summer, wantSummer)
		}
	}
}

func TestIsPersisted(t *testing.T) {
	t.Parallel()

	if !IsPersisted("42") {
		t.Fatalf("IsPersisted(42) = false")
	}
	if IsPersisted(PlaceholderID("abc")) {
		t.Fatalf("IsPersisted(placeholder) = true")
	}
	if IsPersisted("") {
		t.Fatalf("IsPersisted(empty) = true")
	}
}

func TestReplaceSemesterID(t *testing.T) {
	t.Parallel()

	placeholder := PlaceholderID("s1")
	plan := Plan{{ID: placeholder, Name: "Winter 2026", Courses: []Course{{EntryID: "1", SemesterID: placeholder}}}}

	swapped := plan.ReplaceSemesterID(placeholder, "77")
	if swapped[0].ID != "77" {
		t.Fatalf("semester id = %q, want 77", swapped[0].ID)
	}
	if swapped[0].Courses[0].SemesterID != "77" {
		t.Fatalf("course SemesterID = %q, want 77", swapped[0].Courses[0].SemesterID)
	}
}
