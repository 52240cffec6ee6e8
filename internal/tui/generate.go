package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fitadapt/internal/catalog"
	"github.com/sadopc/fitadapt/internal/fitness"
	"github.com/sadopc/fitadapt/internal/generator"
)

// generateModel runs the options form, previews the generated plan and
// hands it to the session view on start.
type generateModel struct {
	state   *fitness.State
	catalog *catalog.Catalog
	rng     *rand.Rand
	width   int
	height  int

	formActive bool
	form       *huh.Form

	preview    *fitness.Workout
	previewErr error

	// Form field pointers (survive value copies)
	duration *int
	location *fitness.Location
	focus    *generator.Focus
}

func newGenerateModel(st *fitness.State, cat *catalog.Catalog, rng *rand.Rand) generateModel {
	duration := 30
	location := fitness.Home
	focus := generator.FocusNone
	return generateModel{
		state:    st,
		catalog:  cat,
		rng:      rng,
		duration: &duration,
		location: &location,
		focus:    &focus,
	}
}

func (g *generateModel) setSize(w, h int) {
	g.width = w
	g.height = h
}

func (g generateModel) showForm() (generateModel, tea.Cmd) {
	if g.state.User != nil {
		*g.duration = g.state.User.AvailableTime
		if len(g.state.User.Locations) > 0 {
			*g.location = g.state.User.Locations[0]
		}
	}

	g.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Duration").
				Options(
					huh.NewOption("15 minutes", 15),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("60 minutes", 60),
				).Value(g.duration),
			huh.NewSelect[fitness.Location]().
				Title("Location").
				Options(
					huh.NewOption("Home", fitness.Home),
					huh.NewOption("Gym", fitness.Gym),
					huh.NewOption("Outdoor", fitness.Outdoor),
				).Value(g.location),
			huh.NewSelect[generator.Focus]().
				Title("Focus").
				Options(
					huh.NewOption("Surprise me", generator.FocusNone),
					huh.NewOption("Full body", generator.FocusFull),
					huh.NewOption("Upper body", generator.FocusUpper),
					huh.NewOption("Lower body", generator.FocusLower),
					huh.NewOption("Core", generator.FocusCore),
					huh.NewOption("Cardio", generator.FocusCardio),
				).Value(g.focus),
		).Title("Workout options"),
	).WithShowHelp(true).WithShowErrors(true)

	g.formActive = true
	return g, g.form.Init()
}

func (g generateModel) update(msg tea.Msg) (generateModel, tea.Cmd) {
	if g.formActive && g.form != nil {
		return g.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Generate):
			return g.showForm()

		case key.Matches(msg, keys.Quick):
			return g.runQuick()

		case key.Matches(msg, keys.Favorite):
			if g.preview != nil {
				g.state.ToggleFavorite(g.preview.ID)
				return g, func() tea.Msg { return stateDirtyMsg{} }
			}

		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Start):
			if g.preview != nil {
				w := *g.preview
				return g, func() tea.Msg { return startSessionMsg{workout: w} }
			}
		}
	}
	return g, nil
}

func (g generateModel) updateForm(msg tea.Msg) (generateModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			g.formActive = false
			g.form = nil
			return g, nil
		}
	}

	form, cmd := g.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		g.form = f
	}

	if g.form.State == huh.StateCompleted {
		g.formActive = false
		return g.run(generator.Options{
			Duration: *g.duration,
			Location: *g.location,
			Focus:    *g.focus,
		})
	}

	return g, cmd
}

func (g generateModel) run(opts generator.Options) (generateModel, tea.Cmd) {
	if g.state.User == nil {
		return g, func() tea.Msg {
			return statusMsg{text: "Complete onboarding before generating", isError: true}
		}
	}

	w, err := generator.Generate(g.catalog, *g.state.User, g.state.History, opts, g.rng)
	if err != nil {
		g.preview = nil
		g.previewErr = err
		return g, nil
	}
	g.preview = &w
	g.previewErr = nil
	return g, func() tea.Msg { return workoutGeneratedMsg{workout: w} }
}

func (g generateModel) runQuick() (generateModel, tea.Cmd) {
	if g.state.User == nil {
		return g, func() tea.Msg {
			return statusMsg{text: "Complete onboarding before generating", isError: true}
		}
	}

	w, err := generator.Quick(g.catalog, *g.state.User, g.state.History, g.rng)
	if err != nil {
		g.preview = nil
		g.previewErr = err
		return g, nil
	}
	g.preview = &w
	g.previewErr = nil
	return g, func() tea.Msg { return workoutGeneratedMsg{workout: w} }
}

func (g generateModel) view() string {
	w := g.width - 4

	if g.formActive && g.form != nil {
		title := titleStyle.Render("Generate Workout")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", g.form.View())
		return panelStyle.Width(w).Render(content)
	}

	if g.previewErr != nil {
		hint := "Try different options, or add equipment in your profile."
		if errors.Is(g.previewErr, generator.ErrNoExercises) {
			hint = "No exercises match those constraints. " + hint
		}
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Generate Workout"),
			"",
			errorStyle.Render("  "+g.previewErr.Error()),
			mutedStyle.Render("  "+hint),
			"",
			mutedStyle.Render("  g: options  G: quick workout"),
		)
		return panelStyle.Width(w).Render(content)
	}

	if g.preview == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Generate Workout"),
			"",
			mutedStyle.Render("  Build a plan adapted to your level, equipment and history."),
			"",
			mutedStyle.Render("  g: choose options  G: quick workout"),
		)
		return panelStyle.Width(w).Render(content)
	}

	return g.renderPreview(w)
}

func (g generateModel) renderPreview(w int) string {
	p := g.preview

	name := titleStyle.Render(p.Name)
	fav := ""
	if g.state.IsFavorite(p.ID) {
		fav = accentStyle.Render(" ♥")
	}
	meta := mutedStyle.Render(fmt.Sprintf(
		"%d min  ·  difficulty %d/3  ·  ~%d kcal  ·  %d exercises",
		p.TotalDuration, p.Difficulty, p.Calories, len(p.Exercises),
	))

	var rows []string
	rows = append(rows, name+fav)
	rows = append(rows, meta)
	rows = append(rows, "")

	for i, e := range p.Exercises {
		label := fmt.Sprintf("%d×%d", e.Sets, e.Reps)
		if e.Category == catalog.Cardio || e.Category == catalog.Warmup ||
			e.Category == catalog.Cooldown || e.Category == catalog.Flexibility {
			label = fmt.Sprintf("%d×%ds", e.Sets, e.Duration)
		}
		cat := mutedStyle.Render(fmt.Sprintf("[%s]", e.Category))
		rows = append(rows, fmt.Sprintf("  %d. %-28s %-8s %s  rest %ds", i+1, e.Name, label, cat, e.RestSeconds))
	}

	rows = append(rows, "")
	rows = append(rows, subtitleStyle.Render("  "+wrapText(p.Reasoning, w-6)))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter/s: start session  f: favorite  g: regenerate  G: quick"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// wrapText softly wraps a sentence at word boundaries.
func wrapText(s string, width int) string {
	if width < 10 {
		return s
	}
	words := strings.Fields(s)
	var b strings.Builder
	line := 0
	for i, word := range words {
		if line+len(word)+1 > width && line > 0 {
			b.WriteString("\n  ")
			line = 0
		} else if i > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
