// Package export writes the workout history to CSV or JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/fitadapt/internal/fitness"
)

func ToCSV(records []fitness.CompletedWorkout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	header := []string{"ID", "Workout", "Completed At", "Duration (s)", "Duration", "Exercises", "Rating", "Feedback", "Calories"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.WorkoutName,
			r.CompletedAt.Local().Format(time.RFC3339),
			fmt.Sprintf("%d", r.Duration),
			formatDuration(r.Duration),
			fmt.Sprintf("%d/%d", r.ExercisesCompleted, r.TotalExercises),
			fmt.Sprintf("%d", r.Rating),
			string(r.Feedback),
			fmt.Sprintf("%d", r.Calories),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
