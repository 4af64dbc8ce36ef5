package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"studyplanner/internal/modules/advisor/domain"
	advisorout "studyplanner/internal/modules/advisor/port/out"
	"studyplanner/internal/platform/clock"
	apperrors "studyplanner/internal/platform/errors"
	"studyplanner/internal/platform/id"
)

// AdvisorService keeps advisor conversations in memory for the lifetime of
// the process. Ask records the student's message before calling out, and the
// advisor's answer after; a failed call leaves the question in the
// transcript so the student sees what went unanswered.
type AdvisorService struct {
	clock clock.Clock
	idGen id.Generator
	api   advisorout.AdvisorAPI

	mu       sync.Mutex
	sessions map[string]*domain.ChatSession
}

func NewAdvisorService(clock clock.Clock, idGen id.Generator, api advisorout.AdvisorAPI) *AdvisorService {
	return &AdvisorService{
		clock:    clock,
		idGen:    idGen,
		api:      api,
		sessions: map[string]*domain.ChatSession{},
	}
}

func (s *AdvisorService) NewSession(studyPlanID string) domain.ChatSession {
	session := &domain.ChatSession{
		ID:          s.idGen.New(),
		StudyPlanID: studyPlanID,
		CreatedAt:   s.clock.Now(),
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return *session
}

func (s *AdvisorService) Session(sessionID string) (domain.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.ChatSession{}, fmt.Errorf("chat session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	return cloneSession(session), nil
}

func (s *AdvisorService) Sessions() []domain.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, cloneSession(session))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *AdvisorService) DeleteSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *AdvisorService) Ask(ctx context.Context, sessionID, message string) (domain.Message, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.Message{}, fmt.Errorf("message is required")
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return domain.Message{}, fmt.Errorf("chat session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	session.Messages = append(session.Messages, domain.Message{
		Role:    domain.RoleStudent,
		Content: message,
		At:      s.clock.Now(),
	})
	studyPlanID := session.StudyPlanID
	s.mu.Unlock()

	reply, moduleIDs, err := s.api.Chat(ctx, message, sessionID, studyPlanID)
	if err != nil {
		return domain.Message{}, err
	}

	answer := domain.Message{
		Role:      domain.RoleAdvisor,
		Content:   reply,
		ModuleIDs: moduleIDs,
		At:        s.clock.Now(),
	}
	s.mu.Lock()
	if session, ok := s.sessions[sessionID]; ok {
		session.Messages = append(session.Messages, answer)
	}
	s.mu.Unlock()
	return answer, nil
}

func (s *AdvisorService) CourseInfo(ctx context.Context, courseCode string) (*domain.CourseInfo, error) {
	courseCode = strings.TrimSpace(courseCode)
	if courseCode == "" {
		return nil, fmt.Errorf("course code is required")
	}
	return s.api.CourseInfo(ctx, courseCode)
}

func (s *AdvisorService) Health(ctx context.Context) error {
	return s.api.Health(ctx)
}

func cloneSession(session *domain.ChatSession) domain.ChatSession {
	out := *session
	out.Messages = append([]domain.Message(nil), session.Messages...)
	return out
}
