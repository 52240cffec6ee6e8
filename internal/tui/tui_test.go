package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/fitadapt/internal/catalog"
	"github.com/sadopc/fitadapt/internal/fitness"
	"github.com/sadopc/fitadapt/internal/store"
)

// ============================================================
// Helpers
// ============================================================

func onboardedState() *fitness.State {
	st := fitness.NewState()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	st.SetUser(fitness.UserProfile{
		ID:            "u1",
		Name:          "Ada",
		Level:         fitness.Beginner,
		Goal:          fitness.GeneralFitness,
		AvailableTime: 30,
		Locations:     []fitness.Location{fitness.Home},
		Equipment:     []catalog.Equipment{catalog.NoEquipment},
		WeeklyGoal:    3,
	}, now)
	st.CompleteOnboarding()
	return st
}

func newTestApp(t *testing.T, st *fitness.State) App {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	app := NewApp(s, st, catalog.Builtin())
	m, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(App)
}

func press(t *testing.T, a App, r rune) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return m.(App), cmd
}

func pressKey(t *testing.T, a App, k tea.KeyType) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(tea.KeyMsg{Type: k})
	return m.(App), cmd
}

func testWorkout() fitness.Workout {
	return fitness.Workout{
		ID:   "w1",
		Name: "Total Body Torch",
		Exercises: []fitness.WorkoutExercise{
			{
				Exercise: catalog.Exercise{
					ID: "e1", Name: "Push-Up", Category: catalog.Strength,
					MuscleGroups: []catalog.MuscleGroup{catalog.Chest},
					Equipment:    []catalog.Equipment{catalog.NoEquipment},
					Difficulty:   1, Duration: 30,
					Instructions: []string{"Do the thing"},
				},
				Sets: 2, Reps: 10, RestSeconds: 60,
			},
		},
		TotalDuration: 10,
		Difficulty:    1,
		Category:      catalog.Strength,
		TargetMuscles: []catalog.MuscleGroup{catalog.Chest},
		Calories:      80,
	}
}

// ============================================================
// App shell
// ============================================================

func TestViewBeforeSizeIsLoading(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	app := NewApp(s, onboardedState(), catalog.Builtin())
	if app.View() != "Loading..." {
		t.Fatalf("view = %q", app.View())
	}
}

func TestOnboardingGatesEverything(t *testing.T) {
	app := newTestApp(t, fitness.NewState())
	if !strings.Contains(app.View(), "Welcome to fitadapt") {
		t.Fatal("fresh install should show onboarding")
	}
}

func TestDefaultsToDashboard(t *testing.T) {
	app := newTestApp(t, onboardedState())
	if app.activeView != viewDashboard {
		t.Fatalf("activeView = %d", app.activeView)
	}
	if app.showHelp || app.exportPicking {
		t.Fatal("overlays should start closed")
	}
	if app.isCapturing() {
		t.Fatal("nothing should capture input at rest")
	}
}

func TestNumberKeysSwitchViews(t *testing.T) {
	app := newTestApp(t, onboardedState())
	cases := []struct {
		key  rune
		want viewState
	}{
		{'2', viewGenerate},
		{'3', viewSession},
		{'4', viewSchedule},
		{'5', viewProfile},
		{'1', viewDashboard},
	}
	for _, c := range cases {
		app, _ = press(t, app, c.key)
		if app.activeView != c.want {
			t.Fatalf("key %c: activeView = %d, want %d", c.key, app.activeView, c.want)
		}
	}
}

func TestTabCyclesAndWraps(t *testing.T) {
	app := newTestApp(t, onboardedState())
	for i := 0; i < 5; i++ {
		app, _ = pressKey(t, app, tea.KeyTab)
	}
	if app.activeView != viewDashboard {
		t.Fatalf("five tabs should wrap to dashboard, got %d", app.activeView)
	}
}

func TestHeaderListsAllTabs(t *testing.T) {
	app := newTestApp(t, onboardedState())
	v := app.View()
	for _, name := range viewNames {
		if !strings.Contains(v, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestQuitKey(t *testing.T) {
	app := newTestApp(t, onboardedState())
	_, cmd := press(t, app, 'q')
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command produced %T", cmd())
	}
}

func TestHelpToggle(t *testing.T) {
	app := newTestApp(t, onboardedState())
	app, _ = press(t, app, '?')
	if !app.showHelp {
		t.Fatal("? should open full help")
	}
	app, _ = press(t, app, '?')
	if app.showHelp {
		t.Fatal("? again should close it")
	}
}

func TestStatusShown(t *testing.T) {
	app := newTestApp(t, onboardedState())
	m, _ := app.Update(statusMsg{text: "hello there"})
	app = m.(App)
	if !strings.Contains(app.View(), "hello there") {
		t.Fatal("footer should show the status")
	}
}

// ============================================================
// Export picker
// ============================================================

func TestExportPickerOpensAndCancels(t *testing.T) {
	app := newTestApp(t, onboardedState())
	app, _ = press(t, app, 'e')
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}
	if !strings.Contains(app.View(), "Export History") {
		t.Fatal("picker overlay not rendered")
	}
	app, _ = pressKey(t, app, tea.KeyEsc)
	if app.exportPicking {
		t.Fatal("esc should close the picker")
	}
}

func TestExportPickerCursor(t *testing.T) {
	app := newTestApp(t, onboardedState())
	app, _ = press(t, app, 'e')
	app, _ = pressKey(t, app, tea.KeyDown)
	if app.exportCursor != 1 {
		t.Fatalf("cursor = %d, want 1", app.exportCursor)
	}
	app, _ = pressKey(t, app, tea.KeyDown)
	if app.exportCursor != 1 {
		t.Fatal("cursor should stop at the last format")
	}
	app, _ = pressKey(t, app, tea.KeyUp)
	if app.exportCursor != 0 {
		t.Fatalf("cursor = %d, want 0", app.exportCursor)
	}
}

// ============================================================
// Session flow
// ============================================================

func TestStartSessionSwitchesView(t *testing.T) {
	app := newTestApp(t, onboardedState())
	m, _ := app.Update(startSessionMsg{workout: testWorkout()})
	app = m.(App)
	if app.activeView != viewSession {
		t.Fatalf("activeView = %d, want session", app.activeView)
	}
	if !app.session.active() {
		t.Fatal("session should be live")
	}
	if !app.isCapturing() {
		t.Fatal("live session should capture keys")
	}
	if !strings.Contains(app.View(), "GET READY") {
		t.Fatal("session should open in countdown")
	}
}

func TestSessionCancelReturnsToDashboard(t *testing.T) {
	app := newTestApp(t, onboardedState())
	m, _ := app.Update(startSessionMsg{workout: testWorkout()})
	app = m.(App)
	m, _ = app.Update(sessionCancelledMsg{})
	app = m.(App)
	if app.activeView != viewDashboard {
		t.Fatalf("activeView = %d, want dashboard", app.activeView)
	}
	if !strings.Contains(app.View(), "Session cancelled") {
		t.Fatal("footer should report the cancel")
	}
}

func TestSessionFinishedCelebrates(t *testing.T) {
	app := newTestApp(t, onboardedState())
	rec := fitness.CompletedWorkout{ID: "c1", Calories: 120}

	m, _ := app.Update(sessionFinishedMsg{record: rec})
	app = m.(App)
	if !strings.Contains(app.status, "120 kcal") {
		t.Fatalf("status = %q", app.status)
	}

	m, _ = app.Update(sessionFinishedMsg{
		record:   rec,
		unlocked: []fitness.Achievement{{ID: "first-workout", Name: "First Step", Icon: "🎯"}},
	})
	app = m.(App)
	if !strings.Contains(app.status, "First Step") {
		t.Fatalf("status = %q", app.status)
	}
}

func TestFooterShowsStreakAndSessionClock(t *testing.T) {
	st := onboardedState()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	st.AddCompleted(fitness.CompletedWorkout{ID: "a", CompletedAt: now, Duration: 600}, now)

	app := newTestApp(t, st)
	if !strings.Contains(app.View(), "🔥 1") {
		t.Fatal("footer should show the streak")
	}

	m, _ := app.Update(startSessionMsg{workout: testWorkout()})
	app = m.(App)
	if !strings.Contains(app.View(), "00:05") {
		t.Fatal("footer should show the countdown clock")
	}
}

// ============================================================
// Helpers under test
// ============================================================

func TestFormatClock(t *testing.T) {
	cases := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{-3, "00:00"},
	}
	for _, c := range cases {
		if got := formatClock(c.secs); got != c.want {
			t.Errorf("formatClock(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		mins int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 00m"},
		{95, "1h 35m"},
	}
	for _, c := range cases {
		if got := formatMinutes(c.mins); got != c.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", c.mins, got, c.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"home", "Home"},
		{"lose_weight", "Lose Weight"},
		{"general_fitness", "General Fitness"},
		{"Already", "Already"},
	}
	for _, c := range cases {
		if got := titleCase(c.in); got != c.want {
			t.Errorf("titleCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestKeymapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help is empty")
	}
	rows := keys.FullHelp()
	if len(rows) == 0 {
		t.Fatal("full help is empty")
	}
	for i, row := range rows {
		if len(row) == 0 {
			t.Fatalf("full help row %d is empty", i)
		}
	}
}

func TestAllViewsRender(t *testing.T) {
	app := newTestApp(t, onboardedState())
	for _, r := range []rune{'1', '2', '3', '4', '5'} {
		app, _ = press(t, app, r)
		if app.View() == "" {
			t.Fatalf("view %c rendered empty", r)
		}
	}
}
