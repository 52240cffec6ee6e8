package fitness

import "time"

// DefaultAchievements is the full locked catalog for a fresh install.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "first-workout", Name: "First Step", Description: "Complete your first workout", Icon: "🎯"},
		{ID: "7-day-streak", Name: "Week Warrior", Description: "7-day workout streak", Icon: "🔥"},
		{ID: "30-day-streak", Name: "Monthly Master", Description: "30-day workout streak", Icon: "💪"},
		{ID: "50-workouts", Name: "Half Century", Description: "Complete 50 workouts", Icon: "🏆"},
		{ID: "100-workouts", Name: "Century Club", Description: "Complete 100 workouts", Icon: "👑"},
		{ID: "early-bird", Name: "Early Bird", Description: "Work out before 7 AM", Icon: "🌅"},
		{ID: "night-owl", Name: "Night Owl", Description: "Work out after 8 PM", Icon: "🦉"},
		{ID: "weekend-warrior", Name: "Weekend Warrior", Description: "Complete workouts on both Sat & Sun", Icon: "💥"},
		{ID: "consistency-king", Name: "Consistency King", Description: "Hit weekly goal 4 weeks in a row", Icon: "🥇"},
	}
}

// achievementRule decides whether one achievement unlocks after a
// completion. prev is the ledger before the mutation, cur after it.
// Catalog entries without a rule here stay locked until a rule is
// added; the evaluation loop needs no structural change for that.
type achievementRule struct {
	id      string
	applies func(prev, cur History, rec CompletedWorkout) bool
}

var achievementRules = []achievementRule{
	{
		id: "first-workout",
		applies: func(prev, _ History, _ CompletedWorkout) bool {
			return prev.TotalWorkouts == 0
		},
	},
	{
		id: "7-day-streak",
		applies: func(_, cur History, _ CompletedWorkout) bool {
			return cur.CurrentStreak >= 7
		},
	},
	{
		id: "30-day-streak",
		applies: func(_, cur History, _ CompletedWorkout) bool {
			return cur.CurrentStreak >= 30
		},
	},
	{
		id: "50-workouts",
		applies: func(_, cur History, _ CompletedWorkout) bool {
			return cur.TotalWorkouts >= 50
		},
	},
	{
		id: "100-workouts",
		applies: func(_, cur History, _ CompletedWorkout) bool {
			return cur.TotalWorkouts >= 100
		},
	},
	{
		id: "early-bird",
		applies: func(_, _ History, rec CompletedWorkout) bool {
			return rec.CompletedAt.Local().Hour() < 7
		},
	},
	{
		id: "night-owl",
		applies: func(_, _ History, rec CompletedWorkout) bool {
			return rec.CompletedAt.Local().Hour() >= 20
		},
	},
	{
		id: "weekend-warrior",
		applies: func(_, cur History, rec CompletedWorkout) bool {
			day := rec.CompletedAt.Local().Weekday()
			if day != time.Saturday && day != time.Sunday {
				return false
			}
			other := time.Saturday
			if day == time.Saturday {
				other = time.Sunday
			}
			weekStart := WeekStart(rec.CompletedAt)
			for _, c := range cur.Completed {
				if c.ID == rec.ID || c.CompletedAt.Before(weekStart) {
					continue
				}
				if c.CompletedAt.Local().Weekday() == other {
					return true
				}
			}
			return false
		},
	},
}

// evaluateAchievements runs every rule against the pre/post ledger and
// unlocks matches. Returns the achievements unlocked by this call.
func (s *State) evaluateAchievements(prev History, rec CompletedWorkout, now time.Time) []Achievement {
	var unlocked []Achievement
	for _, rule := range achievementRules {
		if !rule.applies(prev, s.History, rec) {
			continue
		}
		if a := s.unlockAchievement(rule.id, now); a != nil {
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked
}

// unlockAchievement flips one achievement to unlocked. Returns nil if
// unknown or already unlocked.
func (s *State) unlockAchievement(id string, now time.Time) *Achievement {
	for i := range s.Achievements {
		if s.Achievements[i].ID != id {
			continue
		}
		if s.Achievements[i].Unlocked {
			return nil
		}
		s.Achievements[i].Unlocked = true
		s.Achievements[i].UnlockedAt = &now
		return &s.Achievements[i]
	}
	return nil
}
