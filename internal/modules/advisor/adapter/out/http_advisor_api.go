package out

import (
	"context"
	"errors"
	"net/url"

	"studyplanner/internal/modules/advisor/domain"
	advisorout "studyplanner/internal/modules/advisor/port/out"
	apperrors "studyplanner/internal/platform/errors"
	"studyplanner/internal/platform/rest"
)

type HTTPAdvisorAPI struct {
	client *rest.Client
}

func NewHTTPAdvisorAPI(client *rest.Client) *HTTPAdvisorAPI {
	return &HTTPAdvisorAPI{client: client}
}

var _ advisorout.AdvisorAPI = (*HTTPAdvisorAPI)(nil)

type chatRequest struct {
	Message     string `json:"message"`
	SessionID   string `json:"session_id,omitempty"`
	StudyPlanID string `json:"study_plan_id,omitempty"`
}

type chatResponse struct {
	Response  string   `json:"response"`
	ModuleIDs []string `json:"module_ids"`
}

type courseInfoDTO struct {
	ModuleID          string  `json:"module_id"`
	Name              string  `json:"name"`
	Content           string  `json:"content"`
	Category          string  `json:"category"`
	Subcategory       string  `json:"subcategory"`
	Credits           int     `json:"credits"`
	Responsible       string  `json:"responsible"`
	ModuleLevel       string  `json:"module_level"`
	Occurrence        string  `json:"occurrence"`
	AssessmentMethods string  `json:"description_of_achievement_and_assessment_methods"`
	LearningOutcomes  string  `json:"intended_learning_outcomes"`
	Certainty         float64 `json:"certainty"`
}

func (a *HTTPAdvisorAPI) Chat(ctx context.Context, message, sessionID, studyPlanID string) (string, []string, error) {
	req := chatRequest{Message: message, SessionID: sessionID, StudyPlanID: studyPlanID}
	var resp chatResponse
	if err := a.client.Post(ctx, "/chat/", req, &resp); err != nil {
		return "", nil, err
	}
	return resp.Response, resp.ModuleIDs, nil
}

func (a *HTTPAdvisorAPI) CourseInfo(ctx context.Context, courseCode string) (*domain.CourseInfo, error) {
	var d courseInfoDTO
	err := a.client.Get(ctx, "/course/"+url.PathEscape(courseCode), &d)
	if err != nil {
		var apiErr *apperrors.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			return nil, nil
		}
		return nil, err
	}
	return &domain.CourseInfo{
		ModuleID:          d.ModuleID,
		Name:              d.Name,
		Content:           d.Content,
		Category:          d.Category,
		Subcategory:       d.Subcategory,
		Credits:           d.Credits,
		Responsible:       d.Responsible,
		ModuleLevel:       d.ModuleLevel,
		Occurrence:        d.Occurrence,
		AssessmentMethods: d.AssessmentMethods,
		LearningOutcomes:  d.LearningOutcomes,
		Certainty:         d.Certainty,
	}, nil
}

func (a *HTTPAdvisorAPI) Health(ctx context.Context) error {
	return a.client.Get(ctx, "/health", nil)
}
