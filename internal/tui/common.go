package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/fitadapt/internal/fitness"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewGenerate
	viewSession
	viewSchedule
	viewProfile
)

var viewNames = []string{"Dashboard", "Generate", "Session", "Schedule", "Profile"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type workoutGeneratedMsg struct {
	workout fitness.Workout
}

type startSessionMsg struct {
	workout fitness.Workout
}

type sessionFinishedMsg struct {
	record   fitness.CompletedWorkout
	unlocked []fitness.Achievement
}

type sessionCancelledMsg struct{}

type exportDoneMsg struct {
	path string
}

type stateDirtyMsg struct{}

// --- Helpers ---

func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatMinutes(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < len(b); i++ {
		if b[i] == '_' {
			b[i] = ' '
			if i+1 < len(b) && b[i+1] >= 'a' && b[i+1] <= 'z' {
				b[i+1] -= 'a' - 'A'
			}
		}
	}
	return string(b)
}
