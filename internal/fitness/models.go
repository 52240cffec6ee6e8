// Package fitness holds the app's domain types and the state
// transitions that mutate them. All mutation goes through methods on
// State; nothing here touches persistence.
package fitness

import (
	"time"

	"github.com/sadopc/fitadapt/internal/catalog"
)

// Level is the user's self-reported fitness level.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// DifficultyTarget maps a level to the 1..3 difficulty scale used by
// the catalog.
func (l Level) DifficultyTarget() int {
	switch l {
	case Beginner:
		return 1
	case Advanced:
		return 3
	default:
		return 2
	}
}

// Goal is the user's training goal.
type Goal string

const (
	LoseWeight       Goal = "lose_weight"
	BuildMuscle      Goal = "build_muscle"
	ImproveEndurance Goal = "improve_endurance"
	GeneralFitness   Goal = "general_fitness"
)

// Location is where a workout takes place.
type Location string

const (
	Home    Location = "home"
	Gym     Location = "gym"
	Outdoor Location = "outdoor"
)

// Feedback is the post-workout difficulty rating.
type Feedback string

const (
	TooEasy   Feedback = "too_easy"
	JustRight Feedback = "just_right"
	TooHard   Feedback = "too_hard"
)

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// UserProfile is created once at onboarding and updated in place.
type UserProfile struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Level         Level               `json:"fitness_level"`
	Goal          Goal                `json:"goal"`
	AvailableTime int                 `json:"available_time"` // minutes: 15, 30, 45 or 60
	Locations     []Location          `json:"preferred_locations"`
	Equipment     []catalog.Equipment `json:"equipment"`
	WeeklyGoal    int                 `json:"weekly_goal"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// WorkoutExercise is a catalog exercise with its assigned scheme.
type WorkoutExercise struct {
	catalog.Exercise
	Sets        int `json:"sets"`
	Reps        int `json:"reps"` // 0 means duration-based
	RestSeconds int `json:"rest_seconds"`
}

// Workout is a generated plan. It is immutable after generation except
// for the favorite flag, which lives in State.Favorites.
type Workout struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Exercises     []WorkoutExercise     `json:"exercises"`
	TotalDuration int                   `json:"total_duration"` // minutes
	Difficulty    int                   `json:"difficulty"`     // 1..3, rounded mean
	Category      catalog.Category      `json:"category"`
	TargetMuscles []catalog.MuscleGroup `json:"target_muscle_groups"`
	Calories      int                   `json:"calories_burned"`
	Reasoning     string                `json:"ai_reasoning"`
	CreatedAt     time.Time             `json:"created_at"`
}

// CompletedWorkout is an append-only history record.
type CompletedWorkout struct {
	ID                 string    `json:"id"`
	WorkoutID          string    `json:"workout_id"`
	WorkoutName        string    `json:"workout_name"`
	CompletedAt        time.Time `json:"completed_at"`
	Duration           int       `json:"duration"` // seconds actually elapsed
	ExercisesCompleted int       `json:"exercises_completed"`
	TotalExercises     int       `json:"total_exercises"`
	Rating             int       `json:"rating"` // 1..5
	Feedback           Feedback  `json:"difficulty_feedback"`
	Calories           int       `json:"calories_burned"`
}

// History is the ledger: the raw completion log (newest first) plus
// derived statistics.
type History struct {
	Completed        []CompletedWorkout    `json:"completed_workouts"`
	CurrentStreak    int                   `json:"current_streak"`
	LongestStreak    int                   `json:"longest_streak"`
	TotalWorkouts    int                   `json:"total_workouts"`
	TotalMinutes     int                   `json:"total_minutes"`
	TotalCalories    int                   `json:"total_calories"`
	WeeklyWorkouts   int                   `json:"weekly_workouts"`
	LastWorkoutDate  *time.Time            `json:"last_workout_date,omitempty"`
	MusclesThisWeek  []catalog.MuscleGroup `json:"muscle_groups_trained_this_week"`
}

// Recent returns up to n most recent completions.
func (h History) Recent(n int) []CompletedWorkout {
	if n > len(h.Completed) {
		n = len(h.Completed)
	}
	return h.Completed[:n]
}

// RecentFeedback returns the difficulty feedback of the n most recent
// completions.
func (h History) RecentFeedback(n int) []Feedback {
	recent := h.Recent(n)
	out := make([]Feedback, len(recent))
	for i, c := range recent {
		out[i] = c.Feedback
	}
	return out
}

// MissedWorkouts is the number of whole days skipped since the last
// workout, not counting yesterday. Zero with no prior workout.
func (h History) MissedWorkouts(now time.Time) int {
	if h.LastWorkoutDate == nil {
		return 0
	}
	days := int(now.Sub(*h.LastWorkoutDate).Hours() / 24)
	if days <= 1 {
		return 0
	}
	return days - 1
}

// ScheduledWorkout is a planned future workout.
type ScheduledWorkout struct {
	ID          string    `json:"id"`
	WorkoutID   string    `json:"workout_id"`
	WorkoutName string    `json:"workout_name"`
	Date        time.Time `json:"scheduled_date"`
	TimeOfDay   string    `json:"scheduled_time,omitempty"`
	Reminder    bool      `json:"reminder"`
	Completed   bool      `json:"is_completed"`
}

// Achievement unlock is monotonic: once unlocked, never re-locked.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"is_unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// State is the whole persisted application state. One instance per
// install, owned by the composition root.
type State struct {
	User         *UserProfile       `json:"user"`
	Onboarded    bool               `json:"is_onboarded"`
	History      History            `json:"history"`
	Scheduled    []ScheduledWorkout `json:"scheduled_workouts"`
	Favorites    []string           `json:"favorite_workouts"`
	Achievements []Achievement      `json:"achievements"`
	Theme        Theme              `json:"theme"`
}

// NewState returns the default state for a fresh install.
func NewState() *State {
	return &State{
		Achievements: DefaultAchievements(),
		Theme:        ThemeDark,
	}
}

// SetUser installs a profile, stamping created/updated times.
func (s *State) SetUser(p UserProfile, now time.Time) {
	p.CreatedAt = now
	p.UpdatedAt = now
	s.User = &p
}

// UpdateUser applies a partial update to the profile. No-op when not
// onboarded.
func (s *State) UpdateUser(apply func(*UserProfile), now time.Time) {
	if s.User == nil {
		return
	}
	apply(s.User)
	s.User.UpdatedAt = now
}

// CompleteOnboarding flips the onboarded flag.
func (s *State) CompleteOnboarding() {
	s.Onboarded = true
}

// ToggleFavorite adds or removes a workout id from the favorites set.
func (s *State) ToggleFavorite(workoutID string) {
	for i, id := range s.Favorites {
		if id == workoutID {
			s.Favorites = append(s.Favorites[:i], s.Favorites[i+1:]...)
			return
		}
	}
	s.Favorites = append(s.Favorites, workoutID)
}

// IsFavorite reports whether a workout id is in the favorites set.
func (s *State) IsFavorite(workoutID string) bool {
	for _, id := range s.Favorites {
		if id == workoutID {
			return true
		}
	}
	return false
}

// Schedule appends a scheduled workout.
func (s *State) Schedule(sw ScheduledWorkout) {
	s.Scheduled = append(s.Scheduled, sw)
}

// RemoveScheduled deletes a scheduled workout by id.
func (s *State) RemoveScheduled(id string) {
	for i, sw := range s.Scheduled {
		if sw.ID == id {
			s.Scheduled = append(s.Scheduled[:i], s.Scheduled[i+1:]...)
			return
		}
	}
}

// MarkScheduledDone flags a scheduled workout as completed.
func (s *State) MarkScheduledDone(id string) {
	for i := range s.Scheduled {
		if s.Scheduled[i].ID == id {
			s.Scheduled[i].Completed = true
			return
		}
	}
}

// SetTheme records the theme preference.
func (s *State) SetTheme(t Theme) {
	s.Theme = t
}

// Reset returns the state to factory defaults.
func (s *State) Reset() {
	*s = *NewState()
}
