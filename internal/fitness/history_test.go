package fitness

import (
	"testing"
	"time"

	"github.com/sadopc/fitadapt/internal/catalog"
)

// ============================================================
// Helpers
// ============================================================

func record(id string, at time.Time) CompletedWorkout {
	return CompletedWorkout{
		ID:                 id,
		WorkoutID:          "w-" + id,
		WorkoutName:        "Test Workout",
		CompletedAt:        at,
		Duration:           1800,
		ExercisesCompleted: 5,
		TotalExercises:     5,
		Rating:             4,
		Feedback:           JustRight,
		Calories:           180,
	}
}

// mustBeUnlocked fails unless the achievement with the given id is
// unlocked in the state.
func mustBeUnlocked(t *testing.T, s *State, id string) {
	t.Helper()
	for _, a := range s.Achievements {
		if a.ID == id {
			if !a.Unlocked {
				t.Fatalf("achievement %s should be unlocked", id)
			}
			if a.UnlockedAt == nil {
				t.Fatalf("achievement %s unlocked without timestamp", id)
			}
			return
		}
	}
	t.Fatalf("achievement %s not in catalog", id)
}

// ============================================================
// Week window
// ============================================================

func TestWeekStartIsSunday(t *testing.T) {
	// 2026-09-02 is a Wednesday.
	wed := time.Date(2026, 9, 2, 15, 30, 0, 0, time.Local)
	ws := WeekStart(wed)
	if ws.Weekday() != time.Sunday {
		t.Fatalf("week start weekday = %v, want Sunday", ws.Weekday())
	}
	if ws.Hour() != 0 || ws.Minute() != 0 {
		t.Fatalf("week start not at midnight: %v", ws)
	}
	if ws.Day() != 30 || ws.Month() != time.August {
		t.Fatalf("week start = %v, want Aug 30", ws)
	}
}

func TestWeekStartOnSundayIsSameDay(t *testing.T) {
	sun := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	ws := WeekStart(sun)
	if ws.Day() != 30 || ws.Hour() != 0 {
		t.Fatalf("week start = %v, want Aug 30 00:00", ws)
	}
}

// ============================================================
// Streak
// ============================================================

func TestFirstWorkoutStartsStreak(t *testing.T) {
	s := NewState()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	s.AddCompleted(record("a", now), now)
	if s.History.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want 1", s.History.CurrentStreak)
	}
	if s.History.LongestStreak != 1 {
		t.Fatalf("longest = %d, want 1", s.History.LongestStreak)
	}
}

func TestConsecutiveDayExtendsStreak(t *testing.T) {
	s := NewState()
	day1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)
	s.AddCompleted(record("a", day1), day1)
	s.AddCompleted(record("b", day2), day2)
	if s.History.CurrentStreak != 2 {
		t.Fatalf("streak = %d, want 2", s.History.CurrentStreak)
	}
}

func TestGapResetsStreakToOne(t *testing.T) {
	s := NewState()
	day1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)
	day5 := day1.AddDate(0, 0, 4)
	s.AddCompleted(record("a", day1), day1)
	s.AddCompleted(record("b", day2), day2)
	s.AddCompleted(record("c", day5), day5)
	if s.History.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want 1 after gap", s.History.CurrentStreak)
	}
	if s.History.LongestStreak != 2 {
		t.Fatalf("longest = %d, want 2 preserved", s.History.LongestStreak)
	}
}

func TestSameDayRepeatLeavesStreakUnchanged(t *testing.T) {
	s := NewState()
	morning := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	evening := morning.Add(10 * time.Hour)
	s.AddCompleted(record("a", morning), morning)
	s.AddCompleted(record("b", evening), evening)
	if s.History.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want 1 on same-day repeat", s.History.CurrentStreak)
	}
	if s.History.TotalWorkouts != 2 {
		t.Fatalf("total = %d, want 2", s.History.TotalWorkouts)
	}
}

func TestLongestStreakNeverDecreases(t *testing.T) {
	s := NewState()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		at := start.AddDate(0, 0, i)
		s.AddCompleted(record(string(rune('a'+i)), at), at)
	}
	if s.History.LongestStreak != 5 {
		t.Fatalf("longest = %d, want 5", s.History.LongestStreak)
	}
	later := start.AddDate(0, 0, 10)
	s.AddCompleted(record("z", later), later)
	if s.History.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want 1", s.History.CurrentStreak)
	}
	if s.History.LongestStreak != 5 {
		t.Fatalf("longest = %d, want 5 after reset", s.History.LongestStreak)
	}
}

// ============================================================
// Derived stats
// ============================================================

func TestTotalsAccumulate(t *testing.T) {
	s := NewState()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	a := record("a", now)
	a.Duration = 1200 // 20 min
	a.Calories = 100
	b := record("b", now.Add(time.Hour))
	b.Duration = 600 // 10 min
	b.Calories = 50
	s.AddCompleted(a, a.CompletedAt)
	s.AddCompleted(b, b.CompletedAt)

	h := s.History
	if h.TotalWorkouts != 2 {
		t.Fatalf("workouts = %d, want 2", h.TotalWorkouts)
	}
	if h.TotalMinutes != 30 {
		t.Fatalf("minutes = %d, want 30", h.TotalMinutes)
	}
	if h.TotalCalories != 150 {
		t.Fatalf("calories = %d, want 150", h.TotalCalories)
	}
}

func TestCompletedIsNewestFirst(t *testing.T) {
	s := NewState()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	s.AddCompleted(record("old", now), now)
	s.AddCompleted(record("new", now.Add(time.Hour)), now.Add(time.Hour))
	if s.History.Completed[0].ID != "new" {
		t.Fatalf("head = %s, want new", s.History.Completed[0].ID)
	}
}

func TestWeeklyWorkoutsCountsCurrentWeekOnly(t *testing.T) {
	s := NewState()
	// Last week: Friday Aug 28.
	lastWeek := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
	s.AddCompleted(record("a", lastWeek), lastWeek)
	// This week: Tuesday Sep 1 and Wednesday Sep 2.
	tue := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	wed := tue.AddDate(0, 0, 1)
	s.AddCompleted(record("b", tue), tue)
	s.AddCompleted(record("c", wed), wed)
	if s.History.WeeklyWorkouts != 2 {
		t.Fatalf("weekly = %d, want 2", s.History.WeeklyWorkouts)
	}
}

func TestMusclesResetOnWeekRollover(t *testing.T) {
	s := NewState()
	// Saturday Aug 29.
	sat := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	s.AddCompleted(record("a", sat), sat)
	s.RecordMusclesTrained([]catalog.MuscleGroup{catalog.Chest, catalog.Triceps})
	if len(s.History.MusclesThisWeek) != 2 {
		t.Fatalf("muscles = %d, want 2", len(s.History.MusclesThisWeek))
	}
	// Monday Aug 31 is in the next week (week starts Sunday Aug 30).
	mon := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	s.AddCompleted(record("b", mon), mon)
	if len(s.History.MusclesThisWeek) != 0 {
		t.Fatalf("muscles should reset on new week, got %v", s.History.MusclesThisWeek)
	}
}

func TestRecordMusclesTrainedDeduplicates(t *testing.T) {
	s := NewState()
	s.RecordMusclesTrained([]catalog.MuscleGroup{catalog.Chest, catalog.Chest})
	s.RecordMusclesTrained([]catalog.MuscleGroup{catalog.Chest, catalog.Back})
	if len(s.History.MusclesThisWeek) != 2 {
		t.Fatalf("muscles = %v, want chest and back once each", s.History.MusclesThisWeek)
	}
}

func TestMissedWorkouts(t *testing.T) {
	now := time.Date(2026, 9, 10, 10, 0, 0, 0, time.Local)
	var h History
	if h.MissedWorkouts(now) != 0 {
		t.Fatal("no prior workout should mean zero missed")
	}
	yesterday := now.AddDate(0, 0, -1)
	h.LastWorkoutDate = &yesterday
	if h.MissedWorkouts(now) != 0 {
		t.Fatal("yesterday should not count as missed")
	}
	fourAgo := now.AddDate(0, 0, -4)
	h.LastWorkoutDate = &fourAgo
	if got := h.MissedWorkouts(now); got != 3 {
		t.Fatalf("missed = %d, want 3", got)
	}
}

func TestRecentAndRecentFeedback(t *testing.T) {
	s := NewState()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	for i := 0; i < 4; i++ {
		r := record(string(rune('a'+i)), now.Add(time.Duration(i)*time.Hour))
		if i%2 == 0 {
			r.Feedback = TooHard
		}
		s.AddCompleted(r, r.CompletedAt)
	}
	if got := len(s.History.Recent(2)); got != 2 {
		t.Fatalf("recent(2) = %d items", got)
	}
	if got := len(s.History.Recent(10)); got != 4 {
		t.Fatalf("recent(10) = %d items, want all 4", got)
	}
	fb := s.History.RecentFeedback(3)
	if len(fb) != 3 {
		t.Fatalf("feedback len = %d", len(fb))
	}
	// Newest first: record d (just_right), then c (too_hard).
	if fb[0] != JustRight || fb[1] != TooHard {
		t.Fatalf("feedback order wrong: %v", fb)
	}
}
