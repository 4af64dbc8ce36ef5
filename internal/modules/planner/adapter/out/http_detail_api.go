package out

import (
	"context"
	"encoding/json"

	"studyplanner/internal/modules/planner/domain"
	plannerout "studyplanner/internal/modules/planner/port/out"
	"studyplanner/internal/platform/rest"
)

type HTTPDetailAPI struct {
	client *rest.Client
}

func NewHTTPDetailAPI(client *rest.Client) *HTTPDetailAPI {
	return &HTTPDetailAPI{client: client}
}

var _ plannerout.DetailAPI = (*HTTPDetailAPI)(nil)

type semesterDTO struct {
	ID            json.Number `json:"id"`
	Name          string      `json:"name"`
	StudyPlanID   json.Number `json:"studyPlanId"`
	SemesterOrder int         `json:"semesterOrder"`
	Courses       []courseDTO `json:"courses"`
}

type semesterRequest struct {
	Name          string      `json:"name"`
	WOrS          string      `json:"wOrS"`
	SemesterOrder int         `json:"semesterOrder"`
	StudyPlanID   json.Number `json:"studyPlanId"`
	IsExpanded    bool        `json:"isExpanded"`
}

type courseDTO struct {
	ID             json.Number `json:"id"`
	SemesterID     json.Number `json:"semesterId"`
	CourseID       string      `json:"courseId"`
	IsCompleted    bool        `json:"isCompleted"`
	CompletionDate string      `json:"completionDate"`
	CourseOrder    int         `json:"courseOrder"`
	CourseName     string      `json:"courseName"`
	CourseCode     string      `json:"courseCode"`
	Credits        int         `json:"credits"`
	Professor      string      `json:"professor"`
	Occurrence     string      `json:"occurrence"`
	Category       string      `json:"category"`
	Subcategory    string      `json:"subcategory"`
}

type moveCourseRequest struct {
	TargetSemesterID json.Number `json:"targetSemesterId"`
}

type reorderRequest struct {
	SemesterID json.Number   `json:"semesterId"`
	CourseIDs  []json.Number `json:"courseIds"`
}

func (a *HTTPDetailAPI) ListSemesters(ctx context.Context, studyPlanID string) ([]domain.Semester, error) {
	var dtos []semesterDTO
	if err := a.client.Get(ctx, "/semesters/study-plan/"+studyPlanID, &dtos); err != nil {
		return nil, err
	}
	semesters := make([]domain.Semester, 0, len(dtos))
	for _, d := range dtos {
		semesters = append(semesters, toSemester(d))
	}
	return semesters, nil
}

func (a *HTTPDetailAPI) CreateSemester(ctx context.Context, semester domain.Semester) (domain.Semester, error) {
	var d semesterDTO
	if err := a.client.Post(ctx, "/semesters", toSemesterRequest(semester), &d); err != nil {
		return domain.Semester{}, err
	}
	return toSemester(d), nil
}

func (a *HTTPDetailAPI) RenameSemester(ctx context.Context, semester domain.Semester) (domain.Semester, error) {
	var d semesterDTO
	if err := a.client.Put(ctx, "/semesters/"+semester.ID, toSemesterRequest(semester), &d); err != nil {
		return domain.Semester{}, err
	}
	return toSemester(d), nil
}

func (a *HTTPDetailAPI) DeleteSemester(ctx context.Context, id string) error {
	return a.client.Delete(ctx, "/semesters/"+id)
}

func (a *HTTPDetailAPI) ListCourses(ctx context.Context, semesterID string) ([]domain.Course, error) {
	var dtos []courseDTO
	if err := a.client.Get(ctx, "/semester-courses/semester/"+semesterID, &dtos); err != nil {
		return nil, err
	}
	courses := make([]domain.Course, 0, len(dtos))
	for _, d := range dtos {
		courses = append(courses, toCourse(d))
	}
	return courses, nil
}

func (a *HTTPDetailAPI) AddCourse(ctx context.Context, semesterID string, course domain.Course) (domain.Course, error) {
	req := courseDTO{
		SemesterID:  json.Number(semesterID),
		CourseID:    course.CourseID,
		IsCompleted: course.Completed,
		CourseOrder: course.Order,
	}
	var d courseDTO
	if err := a.client.Post(ctx, "/semester-courses", req, &d); err != nil {
		return domain.Course{}, err
	}
	return toCourse(d), nil
}

func (a *HTTPDetailAPI) ToggleCompletion(ctx context.Context, entryID string) (domain.Course, error) {
	var d courseDTO
	if err := a.client.Put(ctx, "/semester-courses/"+entryID+"/completion", nil, &d); err != nil {
		return domain.Course{}, err
	}
	return toCourse(d), nil
}

func (a *HTTPDetailAPI) MoveCourse(ctx context.Context, entryID, targetSemesterID string) (domain.Course, error) {
	var d courseDTO
	req := moveCourseRequest{TargetSemesterID: json.Number(targetSemesterID)}
	if err := a.client.Put(ctx, "/semester-courses/"+entryID+"/move", req, &d); err != nil {
		return domain.Course{}, err
	}
	return toCourse(d), nil
}

func (a *HTTPDetailAPI) ReorderCourses(ctx context.Context, semesterID string, entryIDs []string) error {
	req := reorderRequest{SemesterID: json.Number(semesterID)}
	for _, id := range entryIDs {
		req.CourseIDs = append(req.CourseIDs, json.Number(id))
	}
	return a.client.Post(ctx, "/semester-courses/reorder", req, nil)
}

func (a *HTTPDetailAPI) RemoveCourse(ctx context.Context, entryID string) error {
	return a.client.Delete(ctx, "/semester-courses/"+entryID)
}

func toSemester(d semesterDTO) domain.Semester {
	semester := domain.Semester{
		ID:          d.ID.String(),
		Name:        d.Name,
		Season:      domain.SeasonFromName(d.Name),
		StudyPlanID: d.StudyPlanID.String(),
		Order:       d.SemesterOrder,
		Expanded:    true,
	}
	if d.Courses != nil {
		semester.Courses = make([]domain.Course, 0, len(d.Courses))
		for _, c := range d.Courses {
			semester.Courses = append(semester.Courses, toCourse(c))
		}
	}
	return semester
}

func toSemesterRequest(semester domain.Semester) semesterRequest {
	return semesterRequest{
		Name:          semester.Name,
		WOrS:          string(semester.Season),
		SemesterOrder: semester.Order,
		StudyPlanID:   json.Number(semester.StudyPlanID),
		IsExpanded:    semester.Expanded,
	}
}

func toCourse(d courseDTO) domain.Course {
	return domain.Course{
		EntryID:        d.ID.String(),
		CourseID:       d.CourseID,
		SemesterID:     d.SemesterID.String(),
		Completed:      d.IsCompleted,
		CompletionDate: d.CompletionDate,
		Order:          d.CourseOrder,
		Name:           d.CourseName,
		Code:           d.CourseCode,
		Credits:        d.Credits,
		Professor:      d.Professor,
		Occurrence:     d.Occurrence,
		Category:       d.Category,
		Subcategory:    d.Subcategory,
	}
}
