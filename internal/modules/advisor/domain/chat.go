package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdvisor Role = "advisor"
)

type Message struct {
	Role      Role
	Content   string
	ModuleIDs []string
	At        time.Time
}

// ChatSession is one advisor conversation, optionally anchored to a study
// plan so the advisor can reason about it. History lives client-side only;
// the backend keeps its own context keyed by the session id.
type ChatSession struct {
	ID          string
	StudyPlanID string
	CreatedAt   time.Time
	Messages    []Message
}

func (s ChatSession) LastAnswer() (Message, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAdvisor {
			return s.Messages[i], true
		}
	}
	return Message{}, false
}

// CourseInfo is the advisor's knowledge-base record for a course, with a
// certainty score from its retrieval step.
type CourseInfo struct {
	ModuleID          string
	Name              string
	Content           string
	Category          string
	Subcategory       string
	Credits           int
	Responsible       string
	ModuleLevel       string
	Occurrence        string
	AssessmentMethods string
	LearningOutcomes  string
	Certainty         float64
}
