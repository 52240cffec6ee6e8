package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sadopc/fitadapt/internal/fitness"
)

// scheduleModel lists planned workouts and creates new ones from the
// most recent history or a free-form name.
type scheduleModel struct {
	state  *fitness.State
	width  int
	height int

	cursor     int
	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName     *string
	formDate     *string
	formTime     *string
	formReminder *bool
}

func newScheduleModel(st *fitness.State) scheduleModel {
	name, date, tod := "", "", ""
	reminder := true
	return scheduleModel{
		state:        st,
		formName:     &name,
		formDate:     &date,
		formTime:     &tod,
		formReminder: &reminder,
	}
}

func (m *scheduleModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m scheduleModel) update(msg tea.Msg) (scheduleModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.state.Scheduled)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.New):
			return m.showForm()
		case key.Matches(msg, keys.Delete):
			if len(m.state.Scheduled) > 0 {
				m.state.RemoveScheduled(m.state.Scheduled[m.cursor].ID)
				if m.cursor >= len(m.state.Scheduled) {
					m.cursor = max(0, len(m.state.Scheduled)-1)
				}
				return m, func() tea.Msg { return stateDirtyMsg{} }
			}
		case key.Matches(msg, keys.Enter):
			if len(m.state.Scheduled) > 0 {
				m.state.MarkScheduledDone(m.state.Scheduled[m.cursor].ID)
				return m, func() tea.Msg { return stateDirtyMsg{} }
			}
		}
	}
	return m, nil
}

func (m scheduleModel) showForm() (scheduleModel, tea.Cmd) {
	*m.formName = ""
	if len(m.state.History.Completed) > 0 {
		*m.formName = m.state.History.Completed[0].WorkoutName
	}
	*m.formDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	*m.formTime = "07:00"
	*m.formReminder = true

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workout name").
				Value(m.formName).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(m.formDate).
				Validate(func(s string) error {
					_, err := time.ParseInLocation("2006-01-02", s, time.Local)
					if err != nil {
						return errors.New("use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time (HH:MM, optional)").
				Value(m.formTime).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse("15:04", s); err != nil {
						return errors.New("use HH:MM")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Reminder?").
				Value(m.formReminder),
		).Title("Schedule a workout"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m scheduleModel) updateForm(msg tea.Msg) (scheduleModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		date, err := time.ParseInLocation("2006-01-02", *m.formDate, time.Local)
		if err != nil {
			return m, nil
		}
		m.state.Schedule(fitness.ScheduledWorkout{
			ID:          uuid.NewString(),
			WorkoutName: *m.formName,
			Date:        date,
			TimeOfDay:   *m.formTime,
			Reminder:    *m.formReminder,
		})
		return m, func() tea.Msg { return stateDirtyMsg{} }
	}

	return m, cmd
}

func (m scheduleModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Schedule Workout")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Schedule")

	if len(m.state.Scheduled) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Nothing planned. Press n to schedule a workout."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, sw := range m.state.Scheduled {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		status := "○"
		if sw.Completed {
			status = successStyle.Render("✓")
		}
		when := sw.Date.Format("Mon Jan 02")
		if sw.TimeOfDay != "" {
			when += " " + sw.TimeOfDay
		}
		bell := ""
		if sw.Reminder {
			bell = mutedStyle.Render(" 🔔")
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %-16s %s", cursor, status, when, sw.WorkoutName))+bell)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  d: delete  enter: mark done"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
