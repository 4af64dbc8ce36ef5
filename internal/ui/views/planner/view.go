package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plannerdto "studyplanner/internal/modules/planner/dto"
	"studyplanner/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PlannerPort interface {
	OpenPlan(ctx context.Context, studyPlanID string) (plannerdto.PlanOverview, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// OverviewMsg carries a fresh plan overview after any mutation or open.
// Note describes the mutation for the status bar.
type OverviewMsg struct {
	Overview plannerdto.PlanOverview
	Note     string
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     PlannerPort
	overview plannerdto.PlanOverview
	board    viewport.Model
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
}

func New(port PlannerPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		board:   vp,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// OpenPlan loads the given study plan's semesters into the view.
func (m *Model) OpenPlan(studyPlanID string) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		overview, err := m.port.OpenPlan(context.Background(), studyPlanID)
		return OverviewMsg{Overview: overview, Note: "opened plan " + studyPlanID, Err: err}
	}
}

// PlanID returns the ID of the plan currently open, if any.
func (m Model) PlanID() string { return m.overview.PlanID }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.board.Width = m.width - 4
		m.board.Height = m.height - 4

	case OverviewMsg:
		m.loading = false
		if msg.Err == nil {
			m.overview = msg.Overview
			m.board.SetContent(m.renderBoard())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var vCmd tea.Cmd
	m.board, vCmd = m.board.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading plan…")
	}

	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.board.View())

	return pane
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderBoard() string {
	o := m.overview
	if o.PlanID == "" {
		return theme.Muted.Render("Open a plan from the Plans tab to start planning")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Plan "+o.PlanID) + "  ")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d courses   %d/%d ECTS completed",
		o.CourseCount, o.CompletedCredits, o.TotalCredits)))
	sb.WriteString("\n\n")

	if len(o.Semesters) == 0 {
		sb.WriteString(theme.Muted.Render("No semesters yet. Try :semester:start winter"))
		return sb.String()
	}

	for _, sem := range o.Semesters {
		sb.WriteString(theme.Hot.Render(sem.Name))
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("   [%s]  %d/%d ECTS",
			sem.ID, sem.CompletedCredits, sem.Credits)))
		sb.WriteString("\n")
		if len(sem.Courses) == 0 {
			sb.WriteString(theme.Muted.Render("  (empty)") + "\n")
		}
		for _, c := range sem.Courses {
			mark := "○"
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if c.Completed {
				mark = "●"
				style = theme.Done
			}
			line := fmt.Sprintf("  %s %s  %s  %d ECTS", mark, c.Code, c.Name, c.Credits)
			sb.WriteString(style.Render(line))
			sb.WriteString(theme.Muted.Render("  #" + c.EntryID))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Muted.Render(":semester:add  :course:add <sem> <module>  :course:toggle <entry>"))
	return sb.String()
}
