package domain

import (
	"fmt"

	apperrors "studyplanner/internal/platform/errors"
)

// Plan is the ordered list of semesters of one study plan. All operations
// are non-destructive: they return a rewritten plan and leave the receiver
// alone, so a caller can keep the old value as a rollback snapshot.
type Plan []Semester

func (p Plan) Clone() Plan {
	out := make(Plan, len(p))
	for i, semester := range p {
		out[i] = semester
		out[i].Courses = append([]Course(nil), semester.Courses...)
	}
	return out
}

func (p Plan) FindSemester(id string) (int, bool) {
	for i, semester := range p {
		if semester.ID == id {
			return i, true
		}
	}
	return 0, false
}

// FindCourse locates a placement by its entry id and returns the semester
// and course indices.
func (p Plan) FindCourse(entryID string) (int, int, bool) {
	for si, semester := range p {
		for ci, course := range semester.Courses {
			if course.EntryID == entryID {
				return si, ci, true
			}
		}
	}
	return 0, 0, false
}

// SemesterOfCourse reports which semester holds a placement of the given
// catalog module, if any.
func (p Plan) SemesterOfCourse(courseID string) (string, bool) {
	for _, semester := range p {
		for _, course := range semester.Courses {
			if course.CourseID == courseID {
				return semester.ID, true
			}
		}
	}
	return "", false
}

func (p Plan) AddSemester(semester Semester) Plan {
	out := p.Clone()
	semester.Order = len(out)
	return append(out, semester)
}

// InsertSemester places a semester back at a specific position. Undoing a
// removal goes through here so the rest of the plan keeps its order.
func (p Plan) InsertSemester(index int, semester Semester) Plan {
	out := p.Clone()
	if index < 0 {
		index = 0
	}
	if index > len(out) {
		index = len(out)
	}
	return append(out[:index], append(Plan{semester}, out[index:]...)...)
}

func (p Plan) RemoveSemester(id string) (Plan, error) {
	index, ok := p.FindSemester(id)
	if !ok {
		return nil, fmt.Errorf("semester %s: %w", id, apperrors.ErrNotFound)
	}
	out := p.Clone()
	return append(out[:index], out[index+1:]...), nil
}

func (p Plan) RenameSemester(id, name string) (Plan, error) {
	index, ok := p.FindSemester(id)
	if !ok {
		return nil, fmt.Errorf("semester %s: %w", id, apperrors.ErrNotFound)
	}
	out := p.Clone()
	out[index].Name = name
	out[index].Season = SeasonFromName(name)
	return out, nil
}

func (p Plan) AddCourses(semesterID string, courses []Course) (Plan, error) {
	index, ok := p.FindSemester(semesterID)
	if !ok {
		return nil, fmt.Errorf("semester %s: %w", semesterID, apperrors.ErrNotFound)
	}
	out := p.Clone()
	for _, course := range courses {
		course.SemesterID = semesterID
		course.Order = len(out[index].Courses)
		out[index].Courses = append(out[index].Courses, course)
	}
	return out, nil
}

func (p Plan) RemoveCourse(entryID string) (Plan, error) {
	si, ci, ok := p.FindCourse(entryID)
	if !ok {
		return nil, fmt.Errorf("course entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	out := p.Clone()
	out[si].Courses = append(out[si].Courses[:ci], out[si].Courses[ci+1:]...)
	return out, nil
}

// InsertCourse places a course at a specific position in a semester without
// rewriting its fields. Undoing a removal or a move goes through here.
func (p Plan) InsertCourse(semesterID string, index int, course Course) (Plan, error) {
	si, ok := p.FindSemester(semesterID)
	if !ok {
		return nil, fmt.Errorf("semester %s: %w", semesterID, apperrors.ErrNotFound)
	}
	out := p.Clone()
	courses := out[si].Courses
	if index < 0 {
		index = 0
	}
	if index > len(courses) {
		index = len(courses)
	}
	out[si].Courses = append(courses[:index], append([]Course{course}, courses[index:]...)...)
	return out, nil
}

func (p Plan) SetCompleted(entryID string, completed bool, completionDate string) (Plan, error) {
	si, ci, ok := p.FindCourse(entryID)
	if !ok {
		return nil, fmt.Errorf("course entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	out := p.Clone()
	out[si].Courses[ci].Completed = completed
	if completed {
		out[si].Courses[ci].CompletionDate = completionDate
	} else {
		out[si].Courses[ci].CompletionDate = ""
	}
	return out, nil
}

// MoveCourse relocates a placement. Within one semester the course is moved
// to targetIndex and its neighbours shift; across semesters it leaves the
// source and is appended to the target, ignoring targetIndex.
func (p Plan) MoveCourse(entryID, targetSemesterID string, targetIndex int) (Plan, error) {
	si, ci, ok := p.FindCourse(entryID)
	if !ok {
		return nil, fmt.Errorf("course entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	ti, ok := p.FindSemester(targetSemesterID)
	if !ok {
		return nil, fmt.Errorf("semester %s: %w", targetSemesterID, apperrors.ErrNotFound)
	}

	out := p.Clone()
	if p[si].ID == targetSemesterID {
		courses := out[si].Courses
		if targetIndex < 0 {
			targetIndex = 0
		}
		if targetIndex >= len(courses) {
			targetIndex = len(courses) - 1
		}
		course := courses[ci]
		courses = append(courses[:ci], courses[ci+1:]...)
		courses = append(courses[:targetIndex], append([]Course{course}, courses[targetIndex:]...)...)
		out[si].Courses = courses
		return out, nil
	}

	course := out[si].Courses[ci]
	out[si].Courses = append(out[si].Courses[:ci], out[si].Courses[ci+1:]...)
	course.SemesterID = targetSemesterID
	course.Order = len(out[ti].Courses)
	out[ti].Courses = append(out[ti].Courses, course)
	return out, nil
}

// ReplaceSemesterID swaps a placeholder semester id for the server-assigned
// one, including on courses that reference it.
func (p Plan) ReplaceSemesterID(oldID, newID string) Plan {
	out := p.Clone()
	for i := range out {
		if out[i].ID == oldID {
			out[i].ID = newID
		}
		for j := range out[i].Courses {
			if out[i].Courses[j].SemesterID == oldID {
				out[i].Courses[j].SemesterID = newID
			}
		}
	}
	return out
}

func (p Plan) ReplaceCourseEntry(oldEntryID string, course Course) Plan {
	out := p.Clone()
	for i := range out {
		for j := range out[i].Courses {
			if out[i].Courses[j].EntryID == oldEntryID {
				course.Order = out[i].Courses[j].Order
				out[i].Courses[j] = course
			}
		}
	}
	return out
}

func (p Plan) TotalCredits() int {
	total := 0
	for _, semester := range p {
		total += semester.Credits()
	}
	return total
}

func (p Plan) CompletedCredits() int {
	total := 0
	for _, semester := range p {
		total += semester.CompletedCredits()
	}
	return total
}

func (p Plan) CourseCount() int {
	count := 0
	for _, semester := range p {
		count += len(semester.Courses)
	}
	return count
}
