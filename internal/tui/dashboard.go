package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fitadapt/internal/fitness"
)

type dashboardModel struct {
	state  *fitness.State
	width  int
	height int

	chart      barchart.Model
	chartBuilt bool
}

func newDashboardModel(st *fitness.State) dashboardModel {
	return dashboardModel{
		state: st,
		chart: barchart.New(60, 10),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.rebuild()
}

// rebuild redraws the activity chart from the ledger. Called when the
// view becomes active or the history changes.
func (d *dashboardModel) rebuild() {
	chartWidth := d.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	d.chart = barchart.New(chartWidth, 10)

	// Minutes per day, last 7 days.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	var bars []barchart.BarData
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)

		minutes := 0
		for _, c := range d.state.History.Completed {
			t := c.CompletedAt.Local()
			if !t.Before(day) && t.Before(next) {
				minutes += c.Duration / 60
			}
		}

		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if minutes == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: day.Format("Mon"),
			Values: []barchart.BarValue{
				{Name: "minutes", Value: float64(minutes), Style: style},
			},
		})
	}

	d.chart.PushAll(bars)
	d.chart.Draw()
	d.chartBuilt = true
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	return d, nil
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	stats := d.renderStatsPanel(contentWidth)
	chart := d.renderChartPanel(contentWidth)
	recent := d.renderRecentPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, stats, chart, recent)
}

func (d dashboardModel) renderStatsPanel(w int) string {
	h := d.state.History

	greeting := titleStyle.Render("Dashboard")
	if d.state.User != nil {
		greeting = titleStyle.Render("Hey, " + d.state.User.Name)
	}

	streak := streakStyle.Render(fmt.Sprintf("🔥 %d day streak", h.CurrentStreak))
	best := mutedStyle.Render(fmt.Sprintf("(best %d)", h.LongestStreak))

	weekly := fmt.Sprintf("This week: %d", h.WeeklyWorkouts)
	if d.state.User != nil && d.state.User.WeeklyGoal > 0 {
		weekly = fmt.Sprintf("This week: %d/%d", h.WeeklyWorkouts, d.state.User.WeeklyGoal)
		if h.WeeklyWorkouts >= d.state.User.WeeklyGoal {
			weekly = successStyle.Render(weekly + " ✓")
		}
	}

	totals := mutedStyle.Render(fmt.Sprintf(
		"%d workouts  ·  %s  ·  %d kcal",
		h.TotalWorkouts, formatMinutes(h.TotalMinutes), h.TotalCalories,
	))

	unlocked := 0
	for _, a := range d.state.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	achievements := mutedStyle.Render(fmt.Sprintf("Achievements: %d/%d", unlocked, len(d.state.Achievements)))

	var badges []string
	for _, a := range d.state.Achievements {
		if a.Unlocked {
			badges = append(badges, a.Icon+" "+a.Name)
		}
	}
	badgeRow := ""
	if len(badges) > 0 {
		badgeRow = highlightStyle.Render("  " + strings.Join(badges, "   "))
	}

	rows := []string{
		greeting,
		"",
		streak + " " + best,
		normalItemStyle.Render(weekly),
		totals,
		achievements,
	}
	if badgeRow != "" {
		rows = append(rows, badgeRow)
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderChartPanel(w int) string {
	title := titleStyle.Render("Last 7 Days")
	sub := mutedStyle.Render("minutes per day")

	header := lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", sub)
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", d.chart.View()),
	)
}

func (d dashboardModel) renderRecentPanel(w int) string {
	title := titleStyle.Render("Recent Workouts")
	recent := d.state.History.Recent(5)

	if len(recent) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No workouts yet. Press 2 to generate one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	for _, c := range recent {
		rating := min(max(c.Rating, 0), 5)
		stars := strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
		row := fmt.Sprintf("  ✓ %s  %-24s %6s  %s",
			c.CompletedAt.Local().Format("Jan 02"),
			c.WorkoutName,
			formatClock(c.Duration),
			warningStyle.Render(stars),
		)
		rows = append(rows, row)
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
