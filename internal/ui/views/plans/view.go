package plans

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plansdto "studyplanner/internal/modules/plans/dto"
	"studyplanner/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PlansPort interface {
	ListPlans(ctx context.Context) ([]plansdto.PlanOutput, error)
	GetPlan(ctx context.Context, id string) (plansdto.PlanOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PlansLoadedMsg struct {
	Plans []plansdto.PlanOutput
	Err   error
}

type DetailLoadedMsg struct {
	Detail plansdto.PlanOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type planItem struct {
	plan plansdto.PlanOutput
}

func (i planItem) Title() string { return i.plan.Name }
func (i planItem) Description() string {
	if i.plan.IsActive {
		return i.plan.StudyProgramName + "  ● active"
	}
	return i.plan.StudyProgramName
}
func (i planItem) FilterValue() string { return i.plan.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    PlansPort
	list    list.Model
	detail  plansdto.PlanOutput
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port PlansPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Study Plans"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

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
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPlansCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PlansLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Study Plans — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Study Plans"
		items := make([]list.Item, len(msg.Plans))
		for i, p := range msg.Plans {
			items[i] = planItem{plan: p}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Plans) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Plans[0].ID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(planItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.plan.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading plans…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedPlanID returns the current selection's plan ID, if any.
func (m Model) SelectedPlanID() (string, bool) {
	if item, ok := m.list.SelectedItem().(planItem); ok {
		return item.plan.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refreshes the plan list from the backend.
func (m Model) Reload() tea.Cmd {
	return m.loadPlansCmd()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Select a plan to see details")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Name) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:       ") + d.ID + "\n")
	sb.WriteString(theme.Muted.Render("program:  ") + d.StudyProgramName + "\n")
	if d.IsActive {
		sb.WriteString(theme.Muted.Render("status:   ") + theme.Done.Render("active") + "\n")
	}
	if d.CreatedDate != "" {
		sb.WriteString(theme.Muted.Render("created:  ") + d.CreatedDate + "\n")
	}
	if d.LastModified != "" {
		sb.WriteString(theme.Muted.Render("modified: ") + d.LastModified + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: open in Planner  :plan:create to add"))
	return sb.String()
}

func (m Model) loadPlansCmd() tea.Cmd {
	return func() tea.Msg {
		plans, err := m.port.ListPlans(context.Background())
		return PlansLoadedMsg{Plans: plans, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.GetPlan(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
