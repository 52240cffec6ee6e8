// Package catalog holds the static exercise reference data and its
// read-only query helpers. The catalog is built once at startup and
// never mutated.
package catalog

// Category classifies an exercise by its role in a workout.
type Category string

const (
	Strength    Category = "strength"
	Cardio      Category = "cardio"
	Flexibility Category = "flexibility"
	Core        Category = "core"
	Warmup      Category = "warmup"
	Cooldown    Category = "cooldown"
)

// MuscleGroup names a trainable muscle group.
type MuscleGroup string

const (
	Chest      MuscleGroup = "chest"
	Back       MuscleGroup = "back"
	Shoulders  MuscleGroup = "shoulders"
	Biceps     MuscleGroup = "biceps"
	Triceps    MuscleGroup = "triceps"
	Forearms   MuscleGroup = "forearms"
	CoreMuscle MuscleGroup = "core"
	Quadriceps MuscleGroup = "quadriceps"
	Hamstrings MuscleGroup = "hamstrings"
	Glutes     MuscleGroup = "glutes"
	Calves     MuscleGroup = "calves"
	FullBody   MuscleGroup = "full_body"
)

// Equipment is a gear tag. NoEquipment marks exercises that need nothing
// and is always considered satisfied.
type Equipment string

const (
	NoEquipment    Equipment = "none"
	Dumbbells      Equipment = "dumbbells"
	Barbell        Equipment = "barbell"
	Kettlebell     Equipment = "kettlebell"
	ResistanceBand Equipment = "resistance_bands"
	PullUpBar      Equipment = "pull_up_bar"
	Bench          Equipment = "bench"
	YogaMat        Equipment = "yoga_mat"
	JumpRope       Equipment = "jump_rope"
	Treadmill      Equipment = "treadmill"
	StationaryBike Equipment = "stationary_bike"
)

// Exercise is one immutable catalog entry.
type Exercise struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     Category      `json:"category"`
	MuscleGroups []MuscleGroup `json:"muscle_groups"`
	Equipment    []Equipment   `json:"equipment"`
	Difficulty   int           `json:"difficulty"` // 1..3
	Duration     int           `json:"duration"`   // seconds per set
	Instructions []string      `json:"instructions"`
	Tips         []string      `json:"tips"`
}

// HitsAny reports whether the exercise trains at least one of the given
// muscle groups.
func (e Exercise) HitsAny(groups []MuscleGroup) bool {
	for _, mg := range e.MuscleGroups {
		for _, want := range groups {
			if mg == want {
				return true
			}
		}
	}
	return false
}

// SatisfiedBy reports whether the exercise can be done with the owned
// equipment. An exercise matches if any of its tags is owned or it
// requires none.
func (e Exercise) SatisfiedBy(owned []Equipment) bool {
	for _, eq := range e.Equipment {
		if eq == NoEquipment {
			return true
		}
		for _, have := range owned {
			if eq == have {
				return true
			}
		}
	}
	return false
}

// Catalog is an immutable exercise collection with query helpers.
type Catalog struct {
	exercises []Exercise
	byID      map[string]Exercise
}

// New builds a catalog from the given exercises.
func New(exercises []Exercise) *Catalog {
	byID := make(map[string]Exercise, len(exercises))
	for _, e := range exercises {
		byID[e.ID] = e
	}
	return &Catalog{exercises: exercises, byID: byID}
}

// Builtin returns the catalog shipped with the app.
func Builtin() *Catalog {
	return New(builtinExercises)
}

// All returns a copy of every exercise.
func (c *Catalog) All() []Exercise {
	out := make([]Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

// Len returns the number of exercises.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// ByID looks up an exercise. The second return is false if the id is
// unknown.
func (c *Catalog) ByID(id string) (Exercise, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// ByCategory returns all exercises in a category.
func (c *Catalog) ByCategory(cat Category) []Exercise {
	var out []Exercise
	for _, e := range c.exercises {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// ByMuscleGroup returns all exercises touching a muscle group.
func (c *Catalog) ByMuscleGroup(mg MuscleGroup) []Exercise {
	var out []Exercise
	for _, e := range c.exercises {
		if e.HitsAny([]MuscleGroup{mg}) {
			out = append(out, e)
		}
	}
	return out
}

// ByEquipment returns all exercises doable with the owned equipment.
func (c *Catalog) ByEquipment(owned []Equipment) []Exercise {
	var out []Exercise
	for _, e := range c.exercises {
		if e.SatisfiedBy(owned) {
			out = append(out, e)
		}
	}
	return out
}

// ByDifficulty returns all exercises at an exact difficulty level.
func (c *Catalog) ByDifficulty(level int) []Exercise {
	var out []Exercise
	for _, e := range c.exercises {
		if e.Difficulty == level {
			out = append(out, e)
		}
	}
	return out
}
