package tui

import (
	"errors"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sadopc/fitadapt/internal/catalog"
	"github.com/sadopc/fitadapt/internal/fitness"
)

// onboardingModel collects the user profile on first launch. The rest
// of the app is unreachable until it completes.
type onboardingModel struct {
	state  *fitness.State
	width  int
	height int

	form *huh.Form
	done bool

	// Form field pointers (survive value copies)
	name       *string
	level      *fitness.Level
	goal       *fitness.Goal
	duration   *int
	locations  *[]fitness.Location
	equipment  *[]catalog.Equipment
	weeklyGoal *string
}

func newOnboardingModel(st *fitness.State) onboardingModel {
	name, weeklyGoal := "", "3"
	level := fitness.Beginner
	goal := fitness.GeneralFitness
	duration := 30
	locations := []fitness.Location{fitness.Home}
	equipment := []catalog.Equipment{catalog.NoEquipment}

	m := onboardingModel{
		state:      st,
		name:       &name,
		level:      &level,
		goal:       &goal,
		duration:   &duration,
		locations:  &locations,
		equipment:  &equipment,
		weeklyGoal: &weeklyGoal,
	}
	m.form = m.buildForm()
	return m
}

func (o onboardingModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				Value(o.name).
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
				).Value(o.level),
			huh.NewSelect[fitness.Goal]().
				Title("Main goal").
				Options(
					huh.NewOption("Lose weight", fitness.LoseWeight),
					huh.NewOption("Build muscle", fitness.BuildMuscle),
					huh.NewOption("Improve endurance", fitness.ImproveEndurance),
					huh.NewOption("General fitness", fitness.GeneralFitness),
				).Value(o.goal),
		).Title("About you"),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Minutes per workout").
				Options(
					huh.NewOption("15 minutes", 15),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("60 minutes", 60),
				).Value(o.duration),
			huh.NewMultiSelect[fitness.Location]().
				Title("Where do you work out?").
				Options(
					huh.NewOption("Home", fitness.Home),
					huh.NewOption("Gym", fitness.Gym),
					huh.NewOption("Outdoor", fitness.Outdoor),
				).Value(o.locations),
			huh.NewMultiSelect[catalog.Equipment]().
				Title("Equipment you own").
				Options(
					huh.NewOption("None (bodyweight)", catalog.NoEquipment),
					huh.NewOption("Dumbbells", catalog.Dumbbells),
					huh.NewOption("Resistance bands", catalog.ResistanceBand),
					huh.NewOption("Pull-up bar", catalog.PullUpBar),
					huh.NewOption("Yoga mat", catalog.YogaMat),
					huh.NewOption("Kettlebell", catalog.Kettlebell),
				).Value(o.equipment),
			huh.NewInput().
				Title("Workouts per week goal").
				Value(o.weeklyGoal).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 7 {
						return errors.New("enter a number between 1 and 7")
					}
					return nil
				}),
		).Title("Your setup"),
	).WithShowHelp(true).WithShowErrors(true)
}

func (o onboardingModel) Init() tea.Cmd {
	return o.form.Init()
}

func (o *onboardingModel) setSize(w, h int) {
	o.width = w
	o.height = h
}

func (o onboardingModel) update(msg tea.Msg) (onboardingModel, tea.Cmd) {
	form, cmd := o.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		o.form = f
	}
	if o.form.State == huh.StateCompleted {
		o.done = true
	}
	return o, cmd
}

// apply installs the collected profile into the shared state.
func (o onboardingModel) apply(now time.Time) {
	weekly, _ := strconv.Atoi(*o.weeklyGoal)
	if weekly < 1 {
		weekly = 3
	}
	equipment := *o.equipment
	if len(equipment) == 0 {
		equipment = []catalog.Equipment{catalog.NoEquipment}
	}
	locations := *o.locations
	if len(locations) == 0 {
		locations = []fitness.Location{fitness.Home}
	}

	o.state.SetUser(fitness.UserProfile{
		ID:            uuid.NewString(),
		Name:          *o.name,
		Level:         *o.level,
		Goal:          *o.goal,
		AvailableTime: *o.duration,
		Locations:     locations,
		Equipment:     equipment,
		WeeklyGoal:    weekly,
	}, now)
	o.state.CompleteOnboarding()
}

func (o onboardingModel) view() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("Welcome to fitadapt")
	sub := subtitleStyle.Render("A few questions and we'll build your first workout.")
	content := lipgloss.JoinVertical(lipgloss.Left, title, sub, "", o.form.View())

	w := o.width - 4
	if w < 20 {
		w = 20
	}
	return panelStyle.Width(w).Render(content)
}
