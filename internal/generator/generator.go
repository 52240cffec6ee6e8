// Package generator builds concrete workout plans from the exercise
// catalog, the user profile and the workout history. Generation is a
// pure function of its inputs plus an injected random source, so tests
// can pin the selection order with a fixed seed.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/fitadapt/internal/catalog"
	"github.com/sadopc/fitadapt/internal/fitness"
)

// ErrNoExercises is returned when filtering leaves nothing to select
// from. Callers get a typed error instead of a malformed plan.
var ErrNoExercises = errors.New("generate workout: no exercises available")

// Focus narrows a plan to a muscle region or to cardio.
type Focus string

const (
	FocusNone   Focus = ""
	FocusUpper  Focus = "upper"
	FocusLower  Focus = "lower"
	FocusFull   Focus = "full"
	FocusCore   Focus = "core"
	FocusCardio Focus = "cardio"
)

var focusMuscles = map[Focus][]catalog.MuscleGroup{
	FocusUpper: {catalog.Chest, catalog.Back, catalog.Shoulders, catalog.Biceps, catalog.Triceps},
	FocusLower: {catalog.Quadriceps, catalog.Hamstrings, catalog.Glutes, catalog.Calves},
	FocusCore:  {catalog.CoreMuscle},
}

// Options control a single generation request.
type Options struct {
	Duration int // minutes: 15, 30, 45 or 60
	Location fitness.Location
	Focus    Focus
}

// Minimum pool sizes below which a narrowing filter is abandoned
// rather than starving selection.
const (
	minFocusPool   = 4
	minRecencyPool = 5
)

// Generate builds a workout for the user. The candidate pool starts at
// the full catalog and is narrowed by equipment, difficulty, focus and
// muscle recency; each heuristic filter backs off rather than empty
// the pool.
func Generate(cat *catalog.Catalog, user fitness.UserProfile, history fitness.History, opts Options, rng *rand.Rand) (fitness.Workout, error) {
	now := time.Now()

	// Outdoor sessions assume no gear regardless of what is owned.
	equipment := user.Equipment
	if opts.Location == fitness.Outdoor {
		equipment = []catalog.Equipment{catalog.NoEquipment}
	}

	factors := adaptationFactors{
		recentFeedback: history.RecentFeedback(5),
		missedWorkouts: history.MissedWorkouts(now),
		currentStreak:  history.CurrentStreak,
	}

	pool := filterByEquipment(cat.All(), equipment)
	pool = filterByDifficulty(pool, user.Level.DifficultyTarget())

	// Warmups and cooldowns are drawn from this pool so that a tight
	// focus never removes them.
	framePool := pool

	if opts.Focus == FocusCardio {
		pool = filterByCategory(pool, catalog.Cardio)
	} else if targets, ok := focusMuscles[opts.Focus]; ok {
		focused := filterByMuscles(pool, targets)
		if len(focused) >= minFocusPool {
			pool = focused
		}
	}

	pool = avoidRecentMuscles(pool, history.MusclesThisWeek)

	count := opts.Duration / 6
	if count < 4 {
		count = 4
	}

	selected := selectExercises(pool, framePool, count, rng)
	if len(selected) == 0 {
		return fitness.Workout{}, ErrNoExercises
	}

	var (
		workoutExercises []fitness.WorkoutExercise
		notes            []string
	)
	for _, e := range selected {
		scheme := baseScheme(user.Level, e.Category, e.Difficulty)
		scheme, exNotes := adapt(scheme, factors)
		notes = append(notes, exNotes...)
		workoutExercises = append(workoutExercises, fitness.WorkoutExercise{
			Exercise:    e,
			Sets:        scheme.sets,
			Reps:        scheme.reps,
			RestSeconds: scheme.rest,
		})
	}
	notes = dedupe(notes)

	muscles := targetMuscles(workoutExercises)

	category := catalog.Strength
	if opts.Focus == FocusCardio {
		category = catalog.Cardio
	}

	return fitness.Workout{
		ID:            uuid.NewString(),
		Name:          workoutName(opts.Focus, rng),
		Description:   describe(opts),
		Exercises:     workoutExercises,
		TotalDuration: totalMinutes(workoutExercises),
		Difficulty:    meanDifficulty(workoutExercises),
		Category:      category,
		TargetMuscles: muscles,
		Calories:      estimateCalories(workoutExercises, user.Level),
		Reasoning:     reasoning(user, opts, notes, muscles),
		CreatedAt:     now,
	}, nil
}

// Quick generates with the profile's own defaults: available time and
// first preferred location (home when none is set).
func Quick(cat *catalog.Catalog, user fitness.UserProfile, history fitness.History, rng *rand.Rand) (fitness.Workout, error) {
	location := fitness.Home
	if len(user.Locations) > 0 {
		location = user.Locations[0]
	}
	return Generate(cat, user, history, Options{
		Duration: user.AvailableTime,
		Location: location,
	}, rng)
}

func filterByEquipment(pool []catalog.Exercise, owned []catalog.Equipment) []catalog.Exercise {
	var out []catalog.Exercise
	for _, e := range pool {
		if e.SatisfiedBy(owned) {
			out = append(out, e)
		}
	}
	return out
}

// filterByDifficulty keeps exercises within one level of the target.
func filterByDifficulty(pool []catalog.Exercise, target int) []catalog.Exercise {
	var out []catalog.Exercise
	for _, e := range pool {
		diff := e.Difficulty - target
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 {
			out = append(out, e)
		}
	}
	return out
}

func filterByCategory(pool []catalog.Exercise, cat catalog.Category) []catalog.Exercise {
	var out []catalog.Exercise
	for _, e := range pool {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

func filterByMuscles(pool []catalog.Exercise, targets []catalog.MuscleGroup) []catalog.Exercise {
	var out []catalog.Exercise
	for _, e := range pool {
		if e.HitsAny(targets) {
			out = append(out, e)
		}
	}
	return out
}

// avoidRecentMuscles prefers variety but never starves selection: the
// exclusion is dropped if it would leave fewer than minRecencyPool
// candidates.
func avoidRecentMuscles(pool []catalog.Exercise, recent []catalog.MuscleGroup) []catalog.Exercise {
	if len(recent) == 0 {
		return pool
	}
	var fresh []catalog.Exercise
	for _, e := range pool {
		if !e.HitsAny(recent) {
			fresh = append(fresh, e)
		}
	}
	if len(fresh) >= minRecencyPool {
		return fresh
	}
	return pool
}

// selectExercises picks one warmup and one cooldown from framePool
// when available, then fills the remaining slots from the main pool in
// random order, skipping duplicates. A pool smaller than the budget
// yields a shorter workout.
func selectExercises(pool, framePool []catalog.Exercise, count int, rng *rand.Rand) []catalog.Exercise {
	var selected []catalog.Exercise

	budget := count
	warmups := filterByCategory(framePool, catalog.Warmup)
	if len(warmups) > 0 {
		selected = append(selected, warmups[rng.Intn(len(warmups))])
	}
	cooldowns := filterByCategory(framePool, catalog.Cooldown)
	var cooldown *catalog.Exercise
	if len(cooldowns) > 0 {
		c := cooldowns[rng.Intn(len(cooldowns))]
		cooldown = &c
		budget--
	}

	main := make([]catalog.Exercise, 0, len(pool))
	for _, e := range pool {
		if e.Category != catalog.Warmup && e.Category != catalog.Cooldown {
			main = append(main, e)
		}
	}
	rng.Shuffle(len(main), func(i, j int) {
		main[i], main[j] = main[j], main[i]
	})

	taken := make(map[string]bool, count)
	for _, e := range selected {
		taken[e.ID] = true
	}
	for _, e := range main {
		if len(selected) >= budget {
			break
		}
		if taken[e.ID] {
			continue
		}
		selected = append(selected, e)
		taken[e.ID] = true
	}

	if cooldown != nil {
		selected = append(selected, *cooldown)
	}
	return selected
}

func targetMuscles(exercises []fitness.WorkoutExercise) []catalog.MuscleGroup {
	seen := make(map[catalog.MuscleGroup]bool)
	var out []catalog.MuscleGroup
	for _, e := range exercises {
		for _, mg := range e.MuscleGroups {
			if !seen[mg] {
				seen[mg] = true
				out = append(out, mg)
			}
		}
	}
	return out
}

func totalMinutes(exercises []fitness.WorkoutExercise) int {
	seconds := 0
	for _, e := range exercises {
		seconds += e.Duration*e.Sets + e.RestSeconds*(e.Sets-1)
	}
	return int(math.Round(float64(seconds) / 60))
}

func meanDifficulty(exercises []fitness.WorkoutExercise) int {
	if len(exercises) == 0 {
		return 1
	}
	sum := 0
	for _, e := range exercises {
		sum += e.Exercise.Difficulty
	}
	return int(math.Round(float64(sum) / float64(len(exercises))))
}

// estimateCalories is a deliberately rough heuristic: active minutes
// scaled by a per-level burn rate.
func estimateCalories(exercises []fitness.WorkoutExercise, level fitness.Level) int {
	multiplier := 6.0
	switch level {
	case fitness.Beginner:
		multiplier = 5
	case fitness.Advanced:
		multiplier = 7
	}
	minutes := 0.0
	for _, e := range exercises {
		minutes += float64(e.Duration*e.Sets) / 60
	}
	return int(math.Round(minutes * multiplier))
}

func describe(opts Options) string {
	focus := "full body"
	if opts.Focus != FocusNone {
		focus = string(opts.Focus)
	}
	return fmt.Sprintf("A %d-minute %s workout", opts.Duration, focus)
}

func dedupe(notes []string) []string {
	seen := make(map[string]bool, len(notes))
	var out []string
	for _, n := range notes {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
