package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"studyplanner/internal/modules/advisor/domain"
	apperrors "studyplanner/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (g *seqID) New() string {
	g.n++
	return fmt.Sprintf("session-%d", g.n)
}

type fakeAdvisorAPI struct {
	reply     string
	moduleIDs []string
	chatErr   error
	course    *domain.CourseInfo
	asked     []string
}

func (f *fakeAdvisorAPI) Chat(_ context.Context, message, _, _ string) (string, []string, error) {
	if f.chatErr != nil {
		return "", nil, f.chatErr
	}
	f.asked = append(f.asked, message)
	return f.reply, f.moduleIDs, nil
}

func (f *fakeAdvisorAPI) CourseInfo(context.Context, string) (*domain.CourseInfo, error) {
	return f.course, nil
}

func (f *fakeAdvisorAPI) Health(context.Context) error { return nil }

func newTestService(api *fakeAdvisorAPI) *AdvisorService {
	return NewAdvisorService(fakeClock{now: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}, &seqID{}, api)
}

func TestAskRecordsBothSides(t *testing.T) {
	t.Parallel()

	api := &fakeAdvisorAPI{reply: "Take Machine Learning first.", moduleIDs: []string{"IN2064"}}
	svc := newTestService(api)
	session := svc.NewSession("1")

	answer, err := svc.Ask(context.Background(), session.ID, "What should I take next?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer.Role != domain.RoleAdvisor || answer.Content != "Take Machine Learning first." {
		t.Fatalf("answer = %+v", answer)
	}
	if len(answer.ModuleIDs) != 1 || answer.ModuleIDs[0] != "IN2064" {
		t.Fatalf("ModuleIDs = %v, want [IN2064]", answer.ModuleIDs)
	}

	stored, err := svc.Session(session.ID)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if len(stored.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want question and answer", len(stored.Messages))
	}
	if stored.Messages[0].Role != domain.RoleStudent || stored.Messages[1].Role != domain.RoleAdvisor {
		t.Fatalf("roles = %v %v", stored.Messages[0].Role, stored.Messages[1].Role)
	}
}

func TestAskFailureKeepsQuestion(t *testing.T) {
	t.Parallel()

	api := &fakeAdvisorAPI{chatErr: apperrors.NewAPIError(503, "", "")}
	svc := newTestService(api)
	session := svc.NewSession("")

	if _, err := svc.Ask(context.Background(), session.ID, "Hello?"); err == nil {
		t.Fatalf("Ask() succeeded, want error")
	}

	stored, _ := svc.Session(session.ID)
	if len(stored.Messages) != 1 || stored.Messages[0].Role != domain.RoleStudent {
		t.Fatalf("Messages = %+v, want only the unanswered question", stored.Messages)
	}
}

func TestAskUnknownSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeAdvisorAPI{})
	if _, err := svc.Ask(context.Background(), "nope", "hi"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Ask() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeAdvisorAPI{})
	session := svc.NewSession("1")
	svc.DeleteSession(session.ID)

	if _, err := svc.Session(session.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Session() after delete error = %v, want ErrNotFound", err)
	}
	if len(svc.Sessions()) != 0 {
		t.Fatalf("Sessions() not empty after delete")
	}
}

func TestUnknownCourseIsNilWithoutError(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeAdvisorAPI{course: nil})
	info, err := svc.CourseInfo(context.Background(), "IN9999")
	if err != nil {
		t.Fatalf("CourseInfo() error = %v", err)
	}
	if info != nil {
		t.Fatalf("CourseInfo() = %+v, want nil for unknown course", info)
	}
}
