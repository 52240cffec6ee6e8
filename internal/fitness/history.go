package fitness

import (
	"time"

	"github.com/sadopc/fitadapt/internal/catalog"
)

// WeekStart returns Sunday 00:00 local time of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.Local()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// AddCompleted prepends a completion record and recomputes the derived
// statistics. It returns any achievements newly unlocked by this
// completion.
//
// Streak rule: a whole-day difference of exactly 1 since the last
// workout extends the streak, more than 1 resets it to 1, and a repeat
// on the same day leaves it unchanged. The first-ever workout starts
// the streak at 1.
func (s *State) AddCompleted(rec CompletedWorkout, now time.Time) []Achievement {
	prev := s.History

	newStreak := prev.CurrentStreak
	if prev.LastWorkoutDate != nil {
		daysDiff := int(now.Sub(*prev.LastWorkoutDate).Hours() / 24)
		if daysDiff == 1 {
			newStreak++
		} else if daysDiff > 1 {
			newStreak = 1
		}
	} else {
		newStreak = 1
	}

	weekStart := WeekStart(now)
	weekly := 1 // the new record
	for _, c := range prev.Completed {
		if !c.CompletedAt.Before(weekStart) {
			weekly++
		}
	}

	completedAt := rec.CompletedAt

	s.History.Completed = append([]CompletedWorkout{rec}, prev.Completed...)
	s.History.CurrentStreak = newStreak
	if newStreak > s.History.LongestStreak {
		s.History.LongestStreak = newStreak
	}
	s.History.TotalWorkouts = prev.TotalWorkouts + 1
	s.History.TotalMinutes = prev.TotalMinutes + rec.Duration/60
	s.History.TotalCalories = prev.TotalCalories + rec.Calories
	s.History.WeeklyWorkouts = weekly
	s.History.LastWorkoutDate = &completedAt

	// A workout in a new week starts a fresh recency window.
	if prev.LastWorkoutDate != nil && prev.LastWorkoutDate.Before(weekStart) {
		s.History.MusclesThisWeek = nil
	}

	return s.evaluateAchievements(prev, rec, now)
}

// RecordMusclesTrained merges the given muscle groups into the set used
// to bias generation away from recently trained muscles.
func (s *State) RecordMusclesTrained(groups []catalog.MuscleGroup) {
	for _, mg := range groups {
		seen := false
		for _, have := range s.History.MusclesThisWeek {
			if have == mg {
				seen = true
				break
			}
		}
		if !seen {
			s.History.MusclesThisWeek = append(s.History.MusclesThisWeek, mg)
		}
	}
}
