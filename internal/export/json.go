package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/fitadapt/internal/fitness"
)

type jsonExport struct {
	ExportedAt string       `json:"exported_at"`
	Count      int          `json:"count"`
	Workouts   []jsonRecord `json:"workouts"`
}

type jsonRecord struct {
	ID                 string `json:"id"`
	WorkoutID          string `json:"workout_id"`
	Workout            string `json:"workout"`
	CompletedAt        string `json:"completed_at"`
	DurationSec        int    `json:"duration_seconds"`
	Duration           string `json:"duration"`
	ExercisesCompleted int    `json:"exercises_completed"`
	TotalExercises     int    `json:"total_exercises"`
	Rating             int    `json:"rating"`
	Feedback           string `json:"difficulty_feedback,omitempty"`
	Calories           int    `json:"calories_burned"`
}

func ToJSON(records []fitness.CompletedWorkout, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	for _, r := range records {
		export.Workouts = append(export.Workouts, jsonRecord{
			ID:                 r.ID,
			WorkoutID:          r.WorkoutID,
			Workout:            r.WorkoutName,
			CompletedAt:        r.CompletedAt.Local().Format(time.RFC3339),
			DurationSec:        r.Duration,
			Duration:           formatDuration(r.Duration),
			ExercisesCompleted: r.ExercisesCompleted,
			TotalExercises:     r.TotalExercises,
			Rating:             r.Rating,
			Feedback:           string(r.Feedback),
			Calories:           r.Calories,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
