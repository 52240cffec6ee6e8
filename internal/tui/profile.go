package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fitadapt/internal/catalog"
	"github.com/sadopc/fitadapt/internal/fitness"
)

type profileModel struct {
	state  *fitness.State
	width  int
	height int

	formActive bool
	form       *huh.Form
	confirming bool // reset confirmation

	// Form field pointers (survive value copies)
	name       *string
	level      *fitness.Level
	goal       *fitness.Goal
	duration   *int
	locations  *[]fitness.Location
	equipment  *[]catalog.Equipment
	weeklyGoal *string
	confirm    *bool
}

func newProfileModel(st *fitness.State) profileModel {
	name, weeklyGoal := "", ""
	level := fitness.Beginner
	goal := fitness.GeneralFitness
	duration := 30
	locations := []fitness.Location{}
	equipment := []catalog.Equipment{}
	confirm := false
	return profileModel{
		state:      st,
		name:       &name,
		level:      &level,
		goal:       &goal,
		duration:   &duration,
		locations:  &locations,
		equipment:  &equipment,
		weeklyGoal: &weeklyGoal,
		confirm:    &confirm,
	}
}

func (p *profileModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p profileModel) update(msg tea.Msg) (profileModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Edit):
			if p.state.User != nil {
				return p.showEditForm()
			}
		case key.Matches(msg, keys.Theme):
			p.cycleTheme()
			return p, func() tea.Msg { return stateDirtyMsg{} }
		case msg.String() == "R":
			return p.showResetForm()
		}
	}
	return p, nil
}

func (p *profileModel) cycleTheme() {
	switch p.state.Theme {
	case fitness.ThemeDark:
		p.state.SetTheme(fitness.ThemeLight)
	case fitness.ThemeLight:
		p.state.SetTheme(fitness.ThemeSystem)
	default:
		p.state.SetTheme(fitness.ThemeDark)
	}
}

func (p profileModel) showEditForm() (profileModel, tea.Cmd) {
	u := p.state.User
	*p.name = u.Name
	*p.level = u.Level
	*p.goal = u.Goal
	*p.duration = u.AvailableTime
	*p.locations = append([]fitness.Location(nil), u.Locations...)
	*p.equipment = append([]catalog.Equipment(nil), u.Equipment...)
	*p.weeklyGoal = strconv.Itoa(u.WeeklyGoal)

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(p.name).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewSelect[fitness.Level]().
				Title("Fitness level").
				Options(
					huh.NewOption("Beginner", fitness.Beginner),
					huh.NewOption("Intermediate", fitness.Intermediate),
					huh.NewOption("Advanced", fitness.Advanced),
				).Value(p.level),
			huh.NewSelect[fitness.Goal]().
				Title("Main goal").
				Options(
					huh.NewOption("Lose weight", fitness.LoseWeight),
					huh.NewOption("Build muscle", fitness.BuildMuscle),
					huh.NewOption("Improve endurance", fitness.ImproveEndurance),
					huh.NewOption("General fitness", fitness.GeneralFitness),
				).Value(p.goal),
			huh.NewSelect[int]().
				Title("Minutes per workout").
				Options(
					huh.NewOption("15 minutes", 15),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("60 minutes", 60),
				).Value(p.duration),
			huh.NewMultiSelect[fitness.Location]().
				Title("Locations").
				Options(
					huh.NewOption("Home", fitness.Home),
					huh.NewOption("Gym", fitness.Gym),
					huh.NewOption("Outdoor", fitness.Outdoor),
				).Value(p.locations),
			huh.NewMultiSelect[catalog.Equipment]().
				Title("Equipment").
				Options(
					huh.NewOption("None (bodyweight)", catalog.NoEquipment),
					huh.NewOption("Dumbbells", catalog.Dumbbells),
					huh.NewOption("Resistance bands", catalog.ResistanceBand),
					huh.NewOption("Pull-up bar", catalog.PullUpBar),
					huh.NewOption("Yoga mat", catalog.YogaMat),
					huh.NewOption("Kettlebell", catalog.Kettlebell),
				).Value(p.equipment),
			huh.NewInput().
				Title("Workouts per week goal").
				Value(p.weeklyGoal).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 7 {
						return errors.New("enter a number between 1 and 7")
					}
					return nil
				}),
		).Title("Edit profile"),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	p.confirming = false
	return p, p.form.Init()
}

func (p profileModel) showResetForm() (profileModel, tea.Cmd) {
	*p.confirm = false
	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset everything?").
				Description("Profile, history, achievements and schedule will be wiped.").
				Affirmative("Yes, wipe it").
				Negative("Cancel").
				Value(p.confirm),
		),
	).WithShowHelp(true)

	p.formActive = true
	p.confirming = true
	return p, p.form.Init()
}

func (p profileModel) updateForm(msg tea.Msg) (profileModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		if p.confirming {
			if *p.confirm {
				p.state.Reset()
				return p, tea.Batch(
					func() tea.Msg { return stateDirtyMsg{} },
					func() tea.Msg { return statusMsg{text: "All data wiped"} },
				)
			}
			return p, nil
		}
		p.applyEdit(time.Now())
		return p, func() tea.Msg { return stateDirtyMsg{} }
	}

	return p, cmd
}

func (p profileModel) applyEdit(now time.Time) {
	weekly, _ := strconv.Atoi(*p.weeklyGoal)
	p.state.UpdateUser(func(u *fitness.UserProfile) {
		u.Name = *p.name
		u.Level = *p.level
		u.Goal = *p.goal
		u.AvailableTime = *p.duration
		if len(*p.locations) > 0 {
			u.Locations = append([]fitness.Location(nil), (*p.locations)...)
		}
		if len(*p.equipment) > 0 {
			u.Equipment = append([]catalog.Equipment(nil), (*p.equipment)...)
		}
		if weekly >= 1 && weekly <= 7 {
			u.WeeklyGoal = weekly
		}
	}, now)
}

func (p profileModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("Profile")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Profile")

	if p.state.User == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No profile yet."),
		)
		return panelStyle.Width(w).Render(content)
	}

	u := p.state.User

	var locs []string
	for _, l := range u.Locations {
		locs = append(locs, titleCase(string(l)))
	}
	var equip []string
	for _, e := range u.Equipment {
		equip = append(equip, titleCase(string(e)))
	}

	rows := []string{
		title,
		"",
		fmt.Sprintf("  %-14s %s", "Name", highlightStyle.Render(u.Name)),
		fmt.Sprintf("  %-14s %s", "Level", titleCase(string(u.Level))),
		fmt.Sprintf("  %-14s %s", "Goal", titleCase(string(u.Goal))),
		fmt.Sprintf("  %-14s %d minutes", "Per workout", u.AvailableTime),
		fmt.Sprintf("  %-14s %s", "Locations", strings.Join(locs, ", ")),
		fmt.Sprintf("  %-14s %s", "Equipment", strings.Join(equip, ", ")),
		fmt.Sprintf("  %-14s %d per week", "Goal", u.WeeklyGoal),
		fmt.Sprintf("  %-14s %s", "Theme", titleCase(string(p.state.Theme))),
		fmt.Sprintf("  %-14s %s", "Member since", u.CreatedAt.Local().Format("Jan 2006")),
		"",
		mutedStyle.Render("  e: edit  t: cycle theme  R: reset all data"),
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
