package out

import (
	"context"
	"encoding/json"

	"studyplanner/internal/modules/plans/domain"
	plansout "studyplanner/internal/modules/plans/port/out"
	"studyplanner/internal/platform/rest"
)

type HTTPPlanAPI struct {
	client *rest.Client
}

func NewHTTPPlanAPI(client *rest.Client) *HTTPPlanAPI {
	return &HTTPPlanAPI{client: client}
}

var _ plansout.PlanAPI = (*HTTPPlanAPI)(nil)

type planDTO struct {
	ID               json.Number `json:"id"`
	Name             string      `json:"name"`
	UserID           json.Number `json:"userId"`
	StudyProgramID   json.Number `json:"studyProgramId"`
	StudyProgramName string      `json:"studyProgramName"`
	PlanData         string      `json:"planData"`
	IsActive         bool        `json:"isActive"`
	CreatedDate      string      `json:"createdDate"`
	LastModified     string      `json:"lastModified"`
}

type createPlanRequest struct {
	Name           string      `json:"name"`
	StudyProgramID json.Number `json:"studyProgramId"`
}

type renamePlanRequest struct {
	Name string `json:"name"`
}

func (a *HTTPPlanAPI) List(ctx context.Context) ([]domain.Summary, error) {
	var dtos []planDTO
	if err := a.client.Get(ctx, "/study-plans/my", &dtos); err != nil {
		return nil, err
	}
	plans := make([]domain.Summary, 0, len(dtos))
	for _, d := range dtos {
		plans = append(plans, toSummary(d))
	}
	return plans, nil
}

func (a *HTTPPlanAPI) Get(ctx context.Context, id string) (domain.Summary, error) {
	var d planDTO
	if err := a.client.Get(ctx, "/study-plans/"+id, &d); err != nil {
		return domain.Summary{}, err
	}
	return toSummary(d), nil
}

func (a *HTTPPlanAPI) Create(ctx context.Context, name, studyProgramID string) (domain.Summary, error) {
	var d planDTO
	req := createPlanRequest{Name: name, StudyProgramID: json.Number(studyProgramID)}
	if err := a.client.Post(ctx, "/study-plans", req, &d); err != nil {
		return domain.Summary{}, err
	}
	return toSummary(d), nil
}

func (a *HTTPPlanAPI) Rename(ctx context.Context, id, name string) (domain.Summary, error) {
	var d planDTO
	if err := a.client.Put(ctx, "/study-plans/"+id+"/rename", renamePlanRequest{Name: name}, &d); err != nil {
		return domain.Summary{}, err
	}
	return toSummary(d), nil
}

func (a *HTTPPlanAPI) Delete(ctx context.Context, id string) error {
	return a.client.Delete(ctx, "/study-plans/"+id)
}

func toSummary(d planDTO) domain.Summary {
	return domain.Summary{
		ID:               d.ID.String(),
		Name:             d.Name,
		UserID:           d.UserID.String(),
		StudyProgramID:   d.StudyProgramID.String(),
		StudyProgramName: d.StudyProgramName,
		PlanData:         d.PlanData,
		IsActive:         d.IsActive,
		CreatedDate:      d.CreatedDate,
		LastModified:     d.LastModified,
	}
}
