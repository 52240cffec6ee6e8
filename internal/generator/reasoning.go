package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sadopc/fitadapt/internal/catalog"
	"github.com/sadopc/fitadapt/internal/fitness"
)

var workoutNames = map[Focus][]string{
	FocusUpper:  {"Power Push", "Upper Burn", "Arm Assault", "Shoulder Shred", "Chest & Back Attack"},
	FocusLower:  {"Leg Day Legend", "Glute Grind", "Quad Crusher", "Lower Power", "Leg Blaster"},
	FocusFull:   {"Total Body Torch", "Full Force", "Complete Circuit", "Body Blitz", "Ultimate Fusion"},
	FocusCore:   {"Core Crusher", "Ab Assault", "Core Fire", "Center Strength", "Six Pack Circuit"},
	FocusCardio: {"Cardio Blast", "Heart Racer", "Sweat Session", "Endurance Engine", "HIIT It Hard"},
}

func workoutName(focus Focus, rng *rand.Rand) string {
	names, ok := workoutNames[focus]
	if !ok {
		names = workoutNames[FocusFull]
	}
	return names[rng.Intn(len(names))]
}

var goalText = map[fitness.Goal]string{
	fitness.LoseWeight:       "Higher intensity exercises to maximize calorie burn",
	fitness.BuildMuscle:      "Strength-focused movements for muscle building",
	fitness.ImproveEndurance: "Cardio and endurance exercises for stamina",
	fitness.GeneralFitness:   "Balanced mix for overall fitness improvement",
}

// reasoning assembles the display-only explanation text. Templated
// prose, not used by any downstream logic.
func reasoning(user fitness.UserProfile, opts Options, notes []string, muscles []catalog.MuscleGroup) string {
	var parts []string

	focus := "mixed"
	if opts.Focus != FocusNone {
		focus = string(opts.Focus)
	}
	parts = append(parts, fmt.Sprintf("This %d-minute %s workout is designed for your %s fitness level.",
		opts.Duration, focus, user.Level))

	switch opts.Location {
	case fitness.Home:
		parts = append(parts, "Selected exercises that work great at home with your available equipment.")
	case fitness.Gym:
		parts = append(parts, "Taking advantage of gym equipment for maximum effectiveness.")
	default:
		parts = append(parts, "Outdoor-friendly moves to enjoy your workout in the fresh air.")
	}

	if text, ok := goalText[user.Goal]; ok {
		parts = append(parts, text+".")
	}

	if len(muscles) > 0 {
		shown := muscles
		if len(shown) > 3 {
			shown = shown[:3]
		}
		names := make([]string, len(shown))
		for i, mg := range shown {
			names[i] = string(mg)
		}
		parts = append(parts, fmt.Sprintf("Today's focus: %s.", strings.Join(names, ", ")))
	}

	if len(notes) > 0 {
		parts = append(parts, notes[0])
	}

	return strings.Join(parts, " ")
}
