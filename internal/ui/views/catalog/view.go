package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "studyplanner/internal/modules/catalog/dto"
	"studyplanner/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListPrograms(ctx context.Context) ([]catalogdto.ProgramOutput, error)
	Overview(ctx context.Context, studyProgramID string) (catalogdto.OverviewOutput, error)
	Search(ctx context.Context, input catalogdto.SearchInput) ([]catalogdto.ModuleSummaryOutput, error)
	ModuleByID(ctx context.Context, moduleID string) (catalogdto.ModuleDetailsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ProgramsLoadedMsg struct {
	Programs []catalogdto.ProgramOutput
	Err      error
}

type OverviewLoadedMsg struct {
	Overview catalogdto.OverviewOutput
	Err      error
}

type SearchResultsMsg struct {
	Term    string
	Modules []catalogdto.ModuleSummaryOutput
	Err     error
}

type ModuleLoadedMsg struct {
	Module catalogdto.ModuleDetailsOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type programItem struct {
	program catalogdto.ProgramOutput
}

func (i programItem) Title() string { return i.program.Name }
func (i programItem) Description() string {
	return fmt.Sprintf("%s  %d ECTS", i.program.Degree, i.program.Credits)
}
func (i programItem) FilterValue() string { return i.program.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    CatalogPort
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Programs"
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
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProgramsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ProgramsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Programs — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Programs))
		for i, p := range msg.Programs {
			items[i] = programItem{program: p}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Programs) > 0 {
			cmds = append(cmds, m.loadOverviewCmd(msg.Programs[0].ID))
		}

	case OverviewLoadedMsg:
		if msg.Err == nil {
			m.detail.SetContent(renderOverview(msg.Overview))
		}

	case SearchResultsMsg:
		if msg.Err == nil {
			m.detail.SetContent(renderResults(msg.Term, msg.Modules))
		}

	case ModuleLoadedMsg:
		if msg.Err == nil {
			m.detail.SetContent(renderModule(msg.Module))
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
			if item, ok := m.list.SelectedItem().(programItem); ok {
				cmds = append(cmds, m.loadOverviewCmd(item.program.ID))
			}
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading catalog…")
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
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedProgramID returns the current selection's program ID, if any.
func (m Model) SelectedProgramID() (string, bool) {
	if item, ok := m.list.SelectedItem().(programItem); ok {
		return item.program.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SearchCmd runs a free-text search within the selected program.
func (m Model) SearchCmd(term string) tea.Cmd {
	programID, ok := m.SelectedProgramID()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		modules, err := m.port.Search(context.Background(), catalogdto.SearchInput{
			StudyProgramID: programID,
			SearchTerm:     term,
		})
		return SearchResultsMsg{Term: term, Modules: modules, Err: err}
	}
}

// LoadModuleCmd fetches a single module's details into the detail pane.
func (m Model) LoadModuleCmd(moduleID string) tea.Cmd {
	return func() tea.Msg {
		module, err := m.port.ModuleByID(context.Background(), moduleID)
		return ModuleLoadedMsg{Module: module, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func renderOverview(o catalogdto.OverviewOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(o.ProgramName) + "\n\n")
	sb.WriteString(theme.Muted.Render("credits:  ") + fmt.Sprintf("%d ECTS", o.TotalCredits) + "\n")
	sb.WriteString(theme.Muted.Render("modules:  ") + fmt.Sprintf("%d", o.TotalModules) + "\n")
	if len(o.AvailableLanguages) > 0 {
		sb.WriteString(theme.Muted.Render("languages: ") + strings.Join(o.AvailableLanguages, ", ") + "\n")
	}
	sb.WriteString("\n" + theme.Hot.Render("Categories") + "\n")
	for _, c := range o.Categories {
		sb.WriteString(fmt.Sprintf("  %s  %d modules, %d ECTS\n", c.Category, c.ModuleCount, c.TotalCredits))
		if len(c.Subcategories) > 0 {
			sb.WriteString(theme.Muted.Render("    "+strings.Join(c.Subcategories, ", ")) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render(":catalog:search <term> to find modules"))
	return sb.String()
}

func renderResults(term string, modules []catalogdto.ModuleSummaryOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Search %q", term)) + "  ")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d results", len(modules))) + "\n\n")
	for _, mod := range modules {
		sb.WriteString(theme.Hot.Render(mod.ModuleID) + "  " + mod.Name + "\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %d ECTS  %s  %s", mod.Credits, mod.Category, mod.Language)) + "\n")
	}
	if len(modules) == 0 {
		sb.WriteString(theme.Muted.Render("No modules matched."))
	}
	return sb.String()
}

func renderModule(d catalogdto.ModuleDetailsOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.ModuleID+" "+d.Name) + "\n\n")
	sb.WriteString(theme.Muted.Render("credits:     ") + fmt.Sprintf("%d ECTS", d.Credits) + "\n")
	sb.WriteString(theme.Muted.Render("category:    ") + d.Category + "\n")
	if d.Subcategory != "" {
		sb.WriteString(theme.Muted.Render("subcategory: ") + d.Subcategory + "\n")
	}
	sb.WriteString(theme.Muted.Render("responsible: ") + d.Responsible + "\n")
	sb.WriteString(theme.Muted.Render("occurrence:  ") + d.Occurrence + "\n")
	sb.WriteString(theme.Muted.Render("language:    ") + d.Language + "\n")
	if d.Content != "" {
		sb.WriteString("\n" + theme.Hot.Render("Content") + "\n" + d.Content + "\n")
	}
	if d.LearningOutcomes != "" {
		sb.WriteString("\n" + theme.Hot.Render("Learning outcomes") + "\n" + d.LearningOutcomes + "\n")
	}
	if d.Prerequisites != "" {
		sb.WriteString("\n" + theme.Hot.Render("Recommended prerequisites") + "\n" + d.Prerequisites + "\n")
	}
	return sb.String()
}

func (m Model) loadProgramsCmd() tea.Cmd {
	return func() tea.Msg {
		programs, err := m.port.ListPrograms(context.Background())
		return ProgramsLoadedMsg{Programs: programs, Err: err}
	}
}

func (m Model) loadOverviewCmd(id string) tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background(), id)
		return OverviewLoadedMsg{Overview: overview, Err: err}
	}
}
