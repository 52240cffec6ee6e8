package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fitadapt/internal/fitness"
	"github.com/sadopc/fitadapt/internal/session"
)

// bellNotifier rings the terminal bell for audio cues. Announcements
// are shown in the session view instead of spoken.
type bellNotifier struct{}

func (bellNotifier) Beep()           { fmt.Fprint(os.Stdout, "\a") }
func (bellNotifier) Announce(string) {}

// sessionModel renders a live workout session and collects rating and
// difficulty feedback once it completes. While a session is active it
// captures all key input.
type sessionModel struct {
	state  *fitness.State
	width  int
	height int

	sess *session.Session

	feedbackActive bool
	feedbackForm   *huh.Form

	// Form field pointers (survive value copies)
	rating   *int
	feedback *fitness.Feedback
}

func newSessionModel(st *fitness.State) sessionModel {
	rating := 0
	feedback := fitness.Feedback("")
	return sessionModel{
		state:    st,
		rating:   &rating,
		feedback: &feedback,
	}
}

func (s *sessionModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

// begin replaces any previous session with a fresh one.
func (s *sessionModel) begin(w fitness.Workout, now time.Time) {
	s.sess = session.New(w, bellNotifier{}, now)
	s.feedbackActive = false
	s.feedbackForm = nil
	*s.rating = 0
	*s.feedback = ""
}

func (s sessionModel) active() bool {
	return s.sess != nil
}

func (s sessionModel) update(msg tea.Msg) (sessionModel, tea.Cmd) {
	if s.sess == nil {
		return s, nil
	}

	if s.feedbackActive && s.feedbackForm != nil {
		return s.updateFeedback(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		s.sess.Tick()
		if s.sess.Phase() == session.PhaseComplete && !s.feedbackActive {
			return s.showFeedbackForm()
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Pause):
			s.sess.TogglePause()
		case key.Matches(msg, keys.Skip):
			s.sess.SkipExercise()
			if s.sess.Phase() == session.PhaseComplete {
				return s.showFeedbackForm()
			}
		case key.Matches(msg, keys.SkipRest):
			s.sess.SkipRest()
		case key.Matches(msg, keys.Back):
			s.sess.Cancel()
			s.sess = nil
			return s, func() tea.Msg { return sessionCancelledMsg{} }
		}
	}
	return s, nil
}

func (s sessionModel) showFeedbackForm() (sessionModel, tea.Cmd) {
	*s.rating = 0
	*s.feedback = ""

	s.feedbackForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How was it?").
				Options(
					huh.NewOption("★★★★★ Amazing", 5),
					huh.NewOption("★★★★☆ Good", 4),
					huh.NewOption("★★★☆☆ Okay", 3),
					huh.NewOption("★★☆☆☆ Meh", 2),
					huh.NewOption("★☆☆☆☆ Rough", 1),
				).Value(s.rating),
			huh.NewSelect[fitness.Feedback]().
				Title("Difficulty").
				Options(
					huh.NewOption("Too easy", fitness.TooEasy),
					huh.NewOption("Just right", fitness.JustRight),
					huh.NewOption("Too hard", fitness.TooHard),
				).Value(s.feedback),
		).Title("Workout complete!"),
	).WithShowHelp(true).WithShowErrors(true)

	s.feedbackActive = true
	return s, s.feedbackForm.Init()
}

func (s sessionModel) updateFeedback(msg tea.Msg) (sessionModel, tea.Cmd) {
	// Ticks still arrive while the form is open; the machine ignores
	// them in the complete phase.
	if _, ok := msg.(tickMsg); ok {
		return s, nil
	}

	form, cmd := s.feedbackForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.feedbackForm = f
	}

	if s.feedbackForm.State == huh.StateCompleted {
		return s.finish()
	}

	return s, cmd
}

// finish builds the completion record and applies the ledger mutation.
// The record is rejected if feedback is somehow incomplete; the form
// reopens in that case.
func (s sessionModel) finish() (sessionModel, tea.Cmd) {
	now := time.Now()
	rec, err := s.sess.Complete(*s.rating, *s.feedback, now)
	if err != nil {
		return s.showFeedbackForm()
	}

	unlocked := s.state.AddCompleted(rec, now)
	s.state.RecordMusclesTrained(s.sess.Workout().TargetMuscles)

	s.sess = nil
	s.feedbackActive = false
	s.feedbackForm = nil

	return s, func() tea.Msg {
		return sessionFinishedMsg{record: rec, unlocked: unlocked}
	}
}

func (s sessionModel) view() string {
	w := s.width - 4

	if s.sess == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Session"),
			"",
			mutedStyle.Render("  No active session. Generate a workout first (press 2)."),
		)
		return panelStyle.Width(w).Render(content)
	}

	if s.feedbackActive && s.feedbackForm != nil {
		title := titleStyle.Render(s.sess.Workout().Name)
		done := successStyle.Render(fmt.Sprintf("  Completed in %s 🎉", formatClock(s.sess.Elapsed())))
		content := lipgloss.JoinVertical(lipgloss.Left, title, done, "", s.feedbackForm.View())
		return activePanelStyle.Width(w).Render(content)
	}

	return s.renderLive(w)
}

func (s sessionModel) renderLive(w int) string {
	cur, _ := s.sess.CurrentExercise()

	// Big phase timer
	clock := formatClock(s.sess.Remaining())
	var timeDisplay, phaseLabel string
	switch s.sess.Phase() {
	case session.PhaseCountdown:
		timeDisplay = timerStyle.Width(w - 6).Render(clock)
		phaseLabel = highlightStyle.Bold(true).Render("GET READY")
	case session.PhaseExercise:
		timeDisplay = timerActiveStyle.Width(w - 6).Render(clock)
		phaseLabel = successStyle.Bold(true).Render("GO")
	case session.PhaseRest:
		timeDisplay = timerRestStyle.Width(w - 6).Render(clock)
		phaseLabel = highlightStyle.Bold(true).Render("REST")
	}
	if s.sess.Paused() {
		timeDisplay = timerPausedStyle.Width(w - 6).Render(clock)
		phaseLabel = warningStyle.Bold(true).Render("PAUSED")
	}

	name := titleStyle.Render(cur.Name)
	scheme := mutedStyle.Render(fmt.Sprintf(
		"Set %d/%d  ·  %d reps  ·  exercise %d/%d",
		s.sess.CurrentSet(), cur.Sets, cur.Reps,
		s.sess.ExerciseIndex()+1, s.sess.TotalExercises(),
	))

	instructions := ""
	if len(cur.Instructions) > 0 {
		var lines []string
		for i, step := range cur.Instructions {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)))
		}
		instructions = strings.Join(lines, "\n")
	}

	next := ""
	if n, ok := s.sess.NextExercise(); ok {
		next = subtitleStyle.Render("Up next: " + n.Name)
	}

	progress := s.renderProgressBar(w - 10)
	elapsed := mutedStyle.Render("Elapsed " + formatClock(s.sess.Elapsed()))

	controls := mutedStyle.Render("space: pause  n: skip exercise  r: skip rest  esc: quit")

	parts := []string{
		name,
		scheme,
		"",
		timeDisplay,
		lipgloss.NewStyle().Width(w - 6).Align(lipgloss.Center).Render(phaseLabel),
		"",
	}
	if instructions != "" {
		parts = append(parts, instructions, "")
	}
	if next != "" {
		parts = append(parts, next)
	}
	parts = append(parts, progress+"  "+elapsed, "", controls)

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (s sessionModel) renderProgressBar(w int) string {
	if w < 10 {
		w = 10
	}
	filled := int(s.sess.Progress() * float64(w))
	if filled > w {
		filled = w
	}
	bar := successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", w-filled))
	return bar
}
