package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	advisordto "studyplanner/internal/modules/advisor/dto"
	"studyplanner/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AdvisorPort interface {
	NewSession(ctx context.Context, studyPlanID string) (advisordto.SessionOutput, error)
	Ask(ctx context.Context, sessionID, message string) (advisordto.MessageOutput, error)
	Session(ctx context.Context, sessionID string) (advisordto.SessionOutput, error)
	CourseInfo(ctx context.Context, courseCode string) (*advisordto.CourseInfoOutput, error)
	Health(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type SessionStartedMsg struct {
	Session advisordto.SessionOutput
	Err     error
}

type AnswerMsg struct {
	Session advisordto.SessionOutput
	Err     error
}

type CourseInfoMsg struct {
	Code string
	Info *advisordto.CourseInfoOutput
	Err  error
}

type HealthMsg struct {
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       AdvisorPort
	session    advisordto.SessionOutput
	transcript viewport.Model
	spinner    spinner.Model
	thinking   bool
	width      int
	height     int
}

func New(p AdvisorPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	vp.SetContent(theme.Muted.Render("Start a conversation with :advisor:new, then :advisor:ask <message>"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:       p,
		transcript: vp,
		spinner:    sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// SessionID returns the active chat session's ID, empty when none is open.
func (m Model) SessionID() string { return m.session.ID }

// Thinking reports whether a question is still waiting for an answer.
func (m Model) Thinking() bool { return m.thinking }

// StartSessionCmd opens a fresh chat session, optionally bound to a plan.
func (m Model) StartSessionCmd(studyPlanID string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.NewSession(context.Background(), studyPlanID)
		return SessionStartedMsg{Session: session, Err: err}
	}
}

// AskCmd sends a question in the active session.
func (m *Model) AskCmd(message string) tea.Cmd {
	sessionID := m.session.ID
	m.thinking = true
	return func() tea.Msg {
		_, err := m.port.Ask(context.Background(), sessionID, message)
		if err != nil {
			return AnswerMsg{Err: err}
		}
		session, err := m.port.Session(context.Background(), sessionID)
		return AnswerMsg{Session: session, Err: err}
	}
}

// CourseInfoCmd looks up what the advisor knows about a course.
func (m Model) CourseInfoCmd(code string) tea.Cmd {
	return func() tea.Msg {
		info, err := m.port.CourseInfo(context.Background(), code)
		return CourseInfoMsg{Code: code, Info: info, Err: err}
	}
}

// HealthCmd pings the advisor service.
func (m Model) HealthCmd() tea.Cmd {
	return func() tea.Msg {
		return HealthMsg{Err: m.port.Health(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.transcript.Width = m.width - 4
		m.transcript.Height = m.height - 4

	case SessionStartedMsg:
		if msg.Err == nil {
			m.session = msg.Session
			m.transcript.SetContent(m.renderTranscript())
		}

	case AnswerMsg:
		m.thinking = false
		if msg.Err == nil {
			m.session = msg.Session
			m.transcript.SetContent(m.renderTranscript())
			m.transcript.GotoBottom()
		}

	case CourseInfoMsg:
		if msg.Err == nil {
			m.transcript.SetContent(renderCourseInfo(msg.Code, msg.Info))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var vCmd tea.Cmd
	m.transcript, vCmd = m.transcript.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.transcript.View())

	return pane
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderTranscript() string {
	var sb strings.Builder
	title := "Advisor session " + m.session.ID
	if m.session.StudyPlanID != "" {
		title += "  (plan " + m.session.StudyPlanID + ")"
	}
	sb.WriteString(theme.Title.Render(title) + "\n\n")

	for _, msg := range m.session.Messages {
		label := theme.Hot.Render("you")
		if msg.Role == "advisor" {
			label = theme.Done.Render("advisor")
		}
		sb.WriteString(label + theme.Muted.Render("  "+msg.At.Format("15:04")) + "\n")
		sb.WriteString(msg.Content + "\n")
		if len(msg.ModuleIDs) > 0 {
			sb.WriteString(theme.Muted.Render("referenced: "+strings.Join(msg.ModuleIDs, ", ")) + "\n")
		}
		sb.WriteString("\n")
	}
	if m.thinking {
		sb.WriteString(m.spinner.View() + theme.Muted.Render(" thinking…") + "\n")
	}
	if len(m.session.Messages) == 0 {
		sb.WriteString(theme.Muted.Render("Ask something with :advisor:ask <message>"))
	}
	return sb.String()
}

func renderCourseInfo(code string, info *advisordto.CourseInfoOutput) string {
	if info == nil {
		return theme.Muted.Render(fmt.Sprintf("The advisor has no information about %q.", code))
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(info.ModuleID+" "+info.Name) + "\n\n")
	sb.WriteString(theme.Muted.Render("credits:     ") + fmt.Sprintf("%d ECTS", info.Credits) + "\n")
	sb.WriteString(theme.Muted.Render("category:    ") + info.Category + "\n")
	sb.WriteString(theme.Muted.Render("responsible: ") + info.Responsible + "\n")
	sb.WriteString(theme.Muted.Render("occurrence:  ") + info.Occurrence + "\n")
	sb.WriteString(theme.Muted.Render("certainty:   ") + fmt.Sprintf("%.2f", info.Certainty) + "\n")
	if info.Content != "" {
		sb.WriteString("\n" + theme.Hot.Render("Content") + "\n" + info.Content + "\n")
	}
	if info.LearningOutcomes != "" {
		sb.WriteString("\n" + theme.Hot.Render("Learning outcomes") + "\n" + info.LearningOutcomes + "\n")
	}
	return sb.String()
}
