package generator

import (
	"github.com/sadopc/fitadapt/internal/catalog"
	"github.com/sadopc/fitadapt/internal/fitness"
)

// scheme is a set/rep/rest assignment for one exercise.
type scheme struct {
	sets int
	reps int
	rest int // seconds
}

// adaptationFactors are the history-derived signals the adaptation
// rules read.
type adaptationFactors struct {
	recentFeedback []fitness.Feedback
	missedWorkouts int
	currentStreak  int
}

// baseScheme assigns the unadapted scheme for an exercise. Timed
// categories get a single duration-based pass; strength and core work
// scales reps with the exercise's own difficulty.
func baseScheme(level fitness.Level, cat catalog.Category, difficulty int) scheme {
	var s scheme
	switch level {
	case fitness.Beginner:
		s = scheme{sets: 2, reps: 10, rest: 60}
	case fitness.Advanced:
		s = scheme{sets: 4, reps: 15, rest: 30}
	default:
		s = scheme{sets: 3, reps: 12, rest: 45}
	}

	switch cat {
	case catalog.Cardio, catalog.Warmup, catalog.Cooldown:
		return scheme{sets: 1, reps: 1, rest: 15}
	case catalog.Flexibility:
		return scheme{sets: 1, reps: 1, rest: 10}
	}

	switch difficulty {
	case 3:
		s.reps -= 4
		if s.reps < 6 {
			s.reps = 6
		}
	case 1:
		s.reps += 2
	}
	return s
}

// Adaptation texts. The first deduplicated note also feeds the plan's
// reasoning prose.
const (
	noteEaseOff  = "Reduced intensity based on your recent feedback"
	noteStepUp   = "Increased challenge since you've been crushing it!"
	noteComeback = "Gentle comeback workout - welcome back!"
	noteRecovery = "Great streak! Consider taking a rest day soon"
)

// adapt applies the history-driven adjustments to a scheme. The
// comeback rule stacks on top of the feedback rule; the streak rule is
// advisory only.
func adapt(s scheme, f adaptationFactors) (scheme, []string) {
	var notes []string

	hard, easy := 0, 0
	for _, fb := range f.recentFeedback {
		switch fb {
		case fitness.TooHard:
			hard++
		case fitness.TooEasy:
			easy++
		}
	}

	if hard >= 2 {
		s.sets = max(s.sets-1, 2)
		s.reps = max(s.reps-2, 6)
		s.rest += 15
		notes = append(notes, noteEaseOff)
	} else if easy >= 2 {
		s.sets = min(s.sets+1, 5)
		s.reps += 2
		s.rest = max(s.rest-10, 20)
		notes = append(notes, noteStepUp)
	}

	if f.missedWorkouts >= 2 {
		s.sets = max(s.sets-1, 2)
		s.reps = max(s.reps-3, 6)
		s.rest += 20
		notes = append(notes, noteComeback)
	}

	if f.currentStreak >= 7 {
		notes = append(notes, noteRecovery)
	}

	return s, notes
}
