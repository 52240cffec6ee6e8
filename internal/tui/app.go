package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fitadapt/internal/catalog"
	"github.com/sadopc/fitadapt/internal/export"
	"github.com/sadopc/fitadapt/internal/fitness"
	"github.com/sadopc/fitadapt/internal/store"
)

// App is the root Bubble Tea model. It owns the shared state, routes
// messages to the per-view sub-models and persists after mutations.
type App struct {
	store   *store.Store
	state   *fitness.State
	catalog *catalog.Catalog
	rng     *rand.Rand
	width   int
	height  int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	onboarding onboardingModel
	dashboard  dashboardModel
	generate   generateModel
	session    sessionModel
	schedule   scheduleModel
	profile    profileModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, st *fitness.State, cat *catalog.Catalog) App {
	h := help.New()
	h.ShowAll = false

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return App{
		store:      s,
		state:      st,
		catalog:    cat,
		rng:        rng,
		activeView: viewDashboard,
		onboarding: newOnboardingModel(st),
		dashboard:  newDashboardModel(st),
		generate:   newGenerateModel(st, cat, rng),
		session:    newSessionModel(st),
		schedule:   newScheduleModel(st),
		profile:    newProfileModel(st),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	if !a.state.Onboarded {
		return tea.Batch(a.onboarding.Init(), tickCmd())
	}
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// persist writes the whole state snapshot. Storage errors surface in
// the footer, never as a crash; the in-memory state is already updated.
func (a App) persist() tea.Cmd {
	return func() tea.Msg {
		if err := a.store.Save(a.state); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return nil
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.onboarding.setSize(a.width, contentHeight)
		a.dashboard.setSize(a.width, contentHeight)
		a.generate.setSize(a.width, contentHeight)
		a.session.setSize(a.width, contentHeight)
		a.schedule.setSize(a.width, contentHeight)
		a.profile.setSize(a.width, contentHeight)
		return a, nil

	case tickMsg:
		cmds = append(cmds, tickCmd())
		var cmd tea.Cmd
		a.session, cmd = a.session.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		// Onboarding captures everything until done.
		if !a.state.Onboarded {
			return a.updateOnboarding(msg)
		}

		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (form or live session),
		// delegate first.
		if a.isCapturing() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			a.dashboard.rebuild()
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewGenerate
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewSession
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSchedule
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewProfile
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 5
			if a.activeView == viewDashboard {
				a.dashboard.rebuild()
			}
			return a, nil
		}

	case statusMsg:
		a.status = msg.text
		return a, nil

	case workoutGeneratedMsg:
		a.status = "Workout ready: " + msg.workout.Name
		return a, nil

	case startSessionMsg:
		a.session.begin(msg.workout, time.Now())
		a.activeView = viewSession
		a.status = ""
		return a, nil

	case sessionFinishedMsg:
		// Ledger mutation happened in the session model; persist and
		// celebrate.
		a.activeView = viewDashboard
		a.dashboard.rebuild()
		if len(msg.unlocked) > 0 {
			a.status = "Achievement unlocked: " + msg.unlocked[0].Name + " " + msg.unlocked[0].Icon
		} else {
			a.status = fmt.Sprintf("Workout complete! %d kcal burned", msg.record.Calories)
		}
		return a, a.persist()

	case sessionCancelledMsg:
		a.activeView = viewDashboard
		a.status = "Session cancelled"
		return a, nil

	case stateDirtyMsg:
		return a, a.persist()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.onboarding, cmd = a.onboarding.update(msg)
	if a.onboarding.done {
		a.onboarding.apply(time.Now())
		a.dashboard.rebuild()
		a.status = "Welcome, " + a.state.User.Name + "!"
		return a, a.persist()
	}
	return a, cmd
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewGenerate:
		a.generate, cmd = a.generate.update(msg)
	case viewSession:
		a.session, cmd = a.session.update(msg)
	case viewSchedule:
		a.schedule, cmd = a.schedule.update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.update(msg)
	}
	return a, cmd
}

// isCapturing reports whether the active view wants raw key input.
func (a App) isCapturing() bool {
	switch a.activeView {
	case viewGenerate:
		return a.generate.formActive
	case viewSession:
		return a.session.active()
	case viewSchedule:
		return a.schedule.formActive
	case viewProfile:
		return a.profile.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if !a.state.Onboarded {
		return a.onboarding.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewGenerate:
		content = a.generate.view()
	case viewSession:
		content = a.session.view()
	case viewSchedule:
		content = a.schedule.view()
	case viewProfile:
		content = a.profile.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("fitadapt")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Streak and live-session indicators
	info := ""
	if a.state.History.CurrentStreak > 0 {
		info = streakStyle.Render(fmt.Sprintf(" 🔥 %d", a.state.History.CurrentStreak))
	}
	if a.session.active() {
		clock := formatClock(a.session.sess.Remaining())
		if a.session.sess.Paused() {
			info += warningStyle.Render(" ⏸ " + clock)
		} else {
			info += successStyle.Render(" ● " + clock)
		}
	}

	left := footerStyle.Render(helpView)
	right := info + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export History")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	records := a.state.History.Completed
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("fitadapt-history-%s.csv", dateStr))
			if err := export.ToCSV(records, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("fitadapt-history-%s.json", dateStr))
			if err := export.ToJSON(records, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
