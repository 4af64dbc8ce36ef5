package usecase

import (
	"context"

	"studyplanner/internal/modules/advisor/domain"
	"studyplanner/internal/modules/advisor/dto"
	advisorin "studyplanner/internal/modules/advisor/port/in"
	"studyplanner/internal/modules/advisor/service"
)

type Interactor struct {
	svc *service.AdvisorService
}

func NewInteractor(svc *service.AdvisorService) advisorin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) NewSession(_ context.Context, studyPlanID string) (dto.SessionOutput, error) {
	return toSessionOutput(i.svc.NewSession(studyPlanID)), nil
}

func (i *Interactor) Sessions(context.Context) ([]dto.SessionOutput, error) {
	sessions := i.svc.Sessions()
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionOutput(session))
	}
	return out, nil
}

func (i *Interactor) Session(_ context.Context, sessionID string) (dto.SessionOutput, error) {
	session, err := i.svc.Session(sessionID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) DeleteSession(_ context.Context, sessionID string) error {
	i.svc.DeleteSession(sessionID)
	return nil
}

func (i *Interactor) Ask(ctx context.Context, input dto.AskInput) (dto.MessageOutput, error) {
	answer, err := i.svc.Ask(ctx, input.SessionID, input.Message)
	if err != nil {
		return dto.MessageOutput{}, err
	}
	return toMessageOutput(answer), nil
}

func (i *Interactor) CourseInfo(ctx context.Context, courseCode string) (*dto.CourseInfoOutput, error) {
	info, err := i.svc.CourseInfo(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}
	return &dto.CourseInfoOutput{
		ModuleID:         info.ModuleID,
		Name:             info.Name,
		Content:          info.Content,
		Category:         info.Category,
		Credits:          info.Credits,
		Responsible:      info.Responsible,
		Occurrence:       info.Occurrence,
		LearningOutcomes: info.LearningOutcomes,
		Certainty:        info.Certainty,
	}, nil
}

func (i *Interactor) Health(ctx context.Context) error {
	return i.svc.Health(ctx)
}

func toSessionOutput(session domain.ChatSession) dto.SessionOutput {
	out := dto.SessionOutput{
		ID:          session.ID,
		StudyPlanID: session.StudyPlanID,
		CreatedAt:   session.CreatedAt,
		Messages:    make([]dto.MessageOutput, 0, len(session.Messages)),
	}
	for _, message := range session.Messages {
		out.Messages = append(out.Messages, toMessageOutput(message))
	}
	return out
}

func toMessageOutput(message domain.Message) dto.MessageOutput {
	return dto.MessageOutput{
		Role:      string(message.Role),
		Content:   message.Content,
		ModuleIDs: message.ModuleIDs,
		At:        message.At,
	}
}
