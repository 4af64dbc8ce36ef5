package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	advisordto "studyplanner/internal/modules/advisor/dto"
	authdto "studyplanner/internal/modules/auth/dto"
	catalogdto "studyplanner/internal/modules/catalog/dto"
	plannerdto "studyplanner/internal/modules/planner/dto"
	plansdto "studyplanner/internal/modules/plans/dto"
	apperrors "studyplanner/internal/platform/errors"
	"studyplanner/internal/ui/components"
	"studyplanner/internal/ui/theme"
	advisorview "studyplanner/internal/ui/views/advisor"
	catalogview "studyplanner/internal/ui/views/catalog"
	plannerview "studyplanner/internal/ui/views/planner"
	plansview "studyplanner/internal/ui/views/plans"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	Current(ctx context.Context) (authdto.SessionOutput, error)
}

type plansPort interface {
	ListPlans(ctx context.Context) ([]plansdto.PlanOutput, error)
	GetPlan(ctx context.Context, id string) (plansdto.PlanOutput, error)
	CreatePlan(ctx context.Context, name, studyProgramID string) (plansdto.PlanOutput, error)
	RenamePlan(ctx context.Context, id, name string) (plansdto.PlanOutput, error)
	DeletePlan(ctx context.Context, id string) error
	RefreshPlans(ctx context.Context) ([]plansdto.PlanOutput, error)
}

type plannerPort interface {
	OpenPlan(ctx context.Context, studyPlanID string) (plannerdto.PlanOverview, error)
	AddSemester(ctx context.Context) (plannerdto.PlanOverview, error)
	CreateStartingBlock(ctx context.Context, season string) (plannerdto.PlanOverview, error)
	RenameSemester(ctx context.Context, semesterID, name string) (plannerdto.PlanOverview, error)
	RemoveSemester(ctx context.Context, semesterID string) (plannerdto.PlanOverview, error)
	AddCourse(ctx context.Context, input plannerdto.AddCourseInput) (plannerdto.PlanOverview, error)
	RemoveCourse(ctx context.Context, entryID string) (plannerdto.PlanOverview, error)
	ToggleCourse(ctx context.Context, entryID string) (plannerdto.PlanOverview, error)
	MoveCourse(ctx context.Context, entryID, targetSemesterID string, targetIndex int) (plannerdto.PlanOverview, error)
}

type catalogPort interface {
	ListPrograms(ctx context.Context) ([]catalogdto.ProgramOutput, error)
	Overview(ctx context.Context, studyProgramID string) (catalogdto.OverviewOutput, error)
	Search(ctx context.Context, input catalogdto.SearchInput) ([]catalogdto.ModuleSummaryOutput, error)
	ModuleByID(ctx context.Context, moduleID string) (catalogdto.ModuleDetailsOutput, error)
}

type advisorPort interface {
	NewSession(ctx context.Context, studyPlanID string) (advisordto.SessionOutput, error)
	Ask(ctx context.Context, sessionID, message string) (advisordto.MessageOutput, error)
	Session(ctx context.Context, sessionID string) (advisordto.SessionOutput, error)
	CourseInfo(ctx context.Context, courseCode string) (*advisordto.CourseInfoOutput, error)
	Health(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabPlans tabID = iota
	tabPlanner
	tabCatalog
	tabAdvisor
	tabCount
)

var tabLabels = [tabCount]string{
	"Plans", "Planner", "Catalog", "Advisor",
}

// ─── async messages ───────────────────────────────────────────────────────────

type whoamiMsg struct {
	session authdto.SessionOutput
	err     error
}

type planMutatedMsg struct {
	action string
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open plan")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the logged-in
// identity, the global help overlay, and the command palette. All business
// logic is delegated to port interfaces; all rendering to sub-views.
type Model struct {
	// ports used at this orchestration level only
	auth    authPort
	plans   plansPort
	planner plannerPort
	catalog catalogPort

	// sub-views (one per tab)
	plansView   plansview.Model
	plannerView plannerview.Model
	catalogView catalogview.Model
	advisorView advisorview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	whoami    authdto.SessionOutput
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	auth authPort,
	plans plansPort,
	planner plannerPort,
	catalog catalogPort,
	advisor advisorPort,
) Model {
	return Model{
		auth:        auth,
		plans:       plans,
		planner:     planner,
		catalog:     catalog,
		plansView:   plansview.New(plansPortBridge{p: plans}),
		plannerView: plannerview.New(plannerPortBridge{p: planner}),
		catalogView: catalogview.New(catalog),
		advisorView: advisorview.New(advisor),
		activeTab:   tabPlans,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.plansView.Init(),
		m.plannerView.Init(),
		m.catalogView.Init(),
		m.advisorView.Init(),
		m.whoamiCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case whoamiMsg:
		if msg.err != nil {
			m.status = "not logged in"
		} else {
			m.whoami = msg.session
			m.status = "ready"
		}

	case planMutatedMsg:
		if msg.err != nil {
			m.status = msg.action + ": " + apperrors.UserMessage(msg.err)
		} else {
			m.status = msg.action
			cmds = append(cmds, m.plansView.Reload())
		}

	case plannerview.OverviewMsg:
		if msg.Err != nil {
			m.status = apperrors.UserMessage(msg.Err)
		} else if msg.Note != "" {
			m.status = msg.Note
		}
		var cmd tea.Cmd
		m.plannerView, cmd = m.plannerView.Update(msg)
		return m, cmd

	case advisorview.HealthMsg:
		if msg.Err != nil {
			m.status = "advisor unreachable: " + apperrors.UserMessage(msg.Err)
		} else {
			m.status = "advisor is healthy"
		}

	case advisorview.AnswerMsg:
		if msg.Err != nil {
			m.status = apperrors.UserMessage(msg.Err)
		}
		var cmd tea.Cmd
		m.advisorView, cmd = m.advisorView.Update(msg)
		return m, cmd

	case advisorview.SessionStartedMsg:
		if msg.Err != nil {
			m.status = apperrors.UserMessage(msg.Err)
		} else {
			m.status = "advisor session " + msg.Session.ID
			m.activeTab = tabAdvisor
		}
		var cmd tea.Cmd
		m.advisorView, cmd = m.advisorView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "enter":
			if m.activeTab == tabPlans {
				if id, ok := m.plansView.SelectedPlanID(); ok {
					m.activeTab = tabPlanner
					cmds = append(cmds, m.plannerView.OpenPlan(id))
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabPlans:
		m.plansView, tabCmd = m.plansView.Update(msg)
	case tabPlanner:
		m.plannerView, tabCmd = m.plannerView.Update(msg)
	case tabCatalog:
		m.catalogView, tabCmd = m.catalogView.Update(msg)
	case tabAdvisor:
		m.advisorView, tabCmd = m.advisorView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabPlans:
		return m.plansView.View()
	case tabPlanner:
		return m.plannerView.View()
	case tabCatalog:
		return m.catalogView.View()
	case tabAdvisor:
		return m.advisorView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studyplanner  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.whoami.LoggedIn {
		left = theme.Hot.Render("● "+m.whoami.Email) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	selectedPlan, _ := m.plansView.SelectedPlanID()

	switch parts[0] {
	case "plan:create":
		if len(parts) < 3 {
			m.status = "usage: plan:create <program-id> <name>"
			return m, nil
		}
		name := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]+" "))
		return m, m.createPlanCmd(parts[1], name)

	case "plan:rename":
		if selectedPlan == "" {
			m.status = "no plan selected"
			return m, nil
		}
		if len(parts) < 2 {
			m.status = "usage: plan:rename <name>"
			return m, nil
		}
		name := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "))
		return m, m.renamePlanCmd(selectedPlan, name)

	case "plan:delete":
		if selectedPlan == "" {
			m.status = "no plan selected"
			return m, nil
		}
		return m, m.deletePlanCmd(selectedPlan)

	case "plan:refresh":
		return m, m.refreshPlansCmd()

	case "semester:add":
		m.activeTab = tabPlanner
		return m, m.plannerCmd("semester added", func(ctx context.Context) (plannerdto.PlanOverview, error) {
			return m.planner.AddSemester(ctx)
		})

	case "semester:start":
		if len(parts) < 2 {
			m.status = "usage: semester:start <winter|summer>"
			return m, nil
		}
		season := parts[1]
		m.activeTab = tabPlanner
		return m, m.plannerCmd("starting semesters created", func(ctx context.Context) (plannerdto.PlanOverview, error) {
			return m.planner.CreateStartingBlock(ctx, season)
		})

	case "semester:rename":
		if len(parts) < 3 {
			m.status = "usage: semester:rename <semester-id> <name>"
			return m, nil
		}
		id := parts[1]
		name := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]+" "))
		return m, m.plannerCmd("semester renamed", func(ctx context.Context) (plannerdto.PlanOverview, error) {
			return m.planner.RenameSemester(ctx, id, name)
		})

	case "semester:remove":
		if len(parts) < 2 {
			m.status = "usage: semester:remove <semester-id>"
			return m, nil
		}
		id := parts[1]
		return m, m.plannerCmd("semester removed", func(ctx context.Context) (plannerdto.PlanOverview, error) {
			return m.planner.RemoveSemester(ctx, id)
		})

	case "course:add":
		if len(parts) < 3 {
			m.status = "usage: course:add <semester-id> <course-id>"
			return m, nil
		}
		m.activeTab = tabPlanner
		return m, m.addCourseCmd(parts[1], parts[2])

	case "course:remove":
		if len(parts) < 2 {
			m.status = "usage: course:remove <entry-id>"
			return m, nil
		}
		id := parts[1]
		return m, m.plannerCmd("course removed", func(ctx context.Context) (plannerdto.PlanOverview, error) {
			return m.planner.RemoveCourse(ctx, id)
		})

	case "course:toggle":
		if len(parts) < 2 {
			m.status = "usage: course:toggle <entry-id>"
			return m, nil
		}
		id := parts[1]
		return m, m.plannerCmd("completion toggled", func(ctx context.Context) (plannerdto.PlanOverview, error) {
			return m.planner.ToggleCourse(ctx, id)
		})

	case "course:move":
		if len(parts) < 3 {
			m.status = "usage: course:move <entry-id> <semester-id> [index]"
			return m, nil
		}
		entryID, targetID := parts[1], parts[2]
		targetIndex := -1
		if len(parts) >= 4 {
			if idx, err := strconv.Atoi(parts[3]); err == nil {
				targetIndex = idx
			}
		}
		return m, m.plannerCmd("course moved", func(ctx context.Context) (plannerdto.PlanOverview, error) {
			return m.planner.MoveCourse(ctx, entryID, targetID, targetIndex)
		})

	case "catalog:search":
		if len(parts) < 2 {
			m.status = "usage: catalog:search <term>"
			return m, nil
		}
		term := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "))
		m.activeTab = tabCatalog
		return m, m.catalogView.SearchCmd(term)

	case "advisor:new":
		return m, m.advisorView.StartSessionCmd(m.plannerView.PlanID())

	case "advisor:ask":
		if len(parts) < 2 {
			m.status = "usage: advisor:ask <message>"
			return m, nil
		}
		if m.advisorView.SessionID() == "" {
			m.status = "start a session first with advisor:new"
			return m, nil
		}
		message := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "))
		m.activeTab = tabAdvisor
		cmd := m.advisorView.AskCmd(message)
		return m, cmd

	case "advisor:course":
		if len(parts) < 2 {
			m.status = "usage: advisor:course <code>"
			return m, nil
		}
		m.activeTab = tabAdvisor
		return m, m.advisorView.CourseInfoCmd(parts[1])

	case "advisor:health":
		return m, m.advisorView.HealthCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabPlans:
		return m.plansView.Filtering()
	case tabCatalog:
		return m.catalogView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.plansView, _ = m.plansView.Update(sz)
	m.plannerView, _ = m.plannerView.Update(sz)
	m.catalogView, _ = m.catalogView.Update(sz)
	m.advisorView, _ = m.advisorView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) whoamiCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Current(context.Background())
		return whoamiMsg{session: session, err: err}
	}
}

func (m Model) createPlanCmd(programID, name string) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.plans.CreatePlan(context.Background(), name, programID)
		if err != nil {
			return planMutatedMsg{action: "create plan", err: err}
		}
		return planMutatedMsg{action: "created " + plan.Name}
	}
}

func (m Model) renamePlanCmd(planID, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.plans.RenamePlan(context.Background(), planID, name)
		return planMutatedMsg{action: "rename plan", err: err}
	}
}

func (m Model) deletePlanCmd(planID string) tea.Cmd {
	return func() tea.Msg {
		err := m.plans.DeletePlan(context.Background(), planID)
		return planMutatedMsg{action: "delete plan", err: err}
	}
}

func (m Model) refreshPlansCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.plans.RefreshPlans(context.Background())
		return planMutatedMsg{action: "plans refreshed", err: err}
	}
}

// plannerCmd runs a plan mutation and feeds the fresh overview to the
// planner view. Errors surface in the status bar via OverviewMsg.
func (m Model) plannerCmd(note string, op func(ctx context.Context) (plannerdto.PlanOverview, error)) tea.Cmd {
	return func() tea.Msg {
		overview, err := op(context.Background())
		return plannerview.OverviewMsg{Overview: overview, Note: note, Err: err}
	}
}

// addCourseCmd resolves the module in the catalog first so the new entry
// carries its name, code, and credits before the optimistic insert.
func (m Model) addCourseCmd(semesterID, moduleID string) tea.Cmd {
	return func() tea.Msg {
		module, err := m.catalog.ModuleByID(context.Background(), moduleID)
		if err != nil {
			return plannerview.OverviewMsg{Err: err}
		}
		overview, err := m.planner.AddCourse(context.Background(), plannerdto.AddCourseInput{
			SemesterID: semesterID,
			CourseID:   module.ModuleID,
			Name:       module.Name,
			Code:       module.ModuleID,
			Credits:    module.Credits,
			Professor:  module.Responsible,
			Occurrence: module.Occurrence,
			Category:   module.Category,
		})
		return plannerview.OverviewMsg{Overview: overview, Err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type plansPortBridge struct{ p plansPort }

func (b plansPortBridge) ListPlans(ctx context.Context) ([]plansdto.PlanOutput, error) {
	return b.p.ListPlans(ctx)
}
func (b plansPortBridge) GetPlan(ctx context.Context, id string) (plansdto.PlanOutput, error) {
	return b.p.GetPlan(ctx, id)
}

type plannerPortBridge struct{ p plannerPort }

func (b plannerPortBridge) OpenPlan(ctx context.Context, id string) (plannerdto.PlanOverview, error) {
	return b.p.OpenPlan(ctx, id)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
