package catalog

// builtinExercises is the shipped exercise set. Durations are seconds
// for a single set.
var builtinExercises = []Exercise{
	// Warmup
	{
		ID:           "jumping-jacks",
		Name:         "Jumping Jacks",
		Category:     Warmup,
		MuscleGroups: []MuscleGroup{FullBody},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   1,
		Duration:     60,
		Instructions: []string{
			"Stand with feet together and arms at sides",
			"Jump and spread legs while raising arms overhead",
			"Jump back to starting position",
			"Repeat at a steady pace",
		},
		Tips: []string{"Keep core engaged", "Land softly on the balls of your feet"},
	},
	{
		ID:           "high-knees",
		Name:         "High Knees",
		Category:     Warmup,
		MuscleGroups: []MuscleGroup{Quadriceps, CoreMuscle},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Stand tall with feet hip-width apart",
			"Drive one knee up toward chest",
			"Quickly switch legs",
			"Pump arms in running motion",
		},
		Tips: []string{"Keep your back straight", "Stay on the balls of your feet"},
	},
	{
		ID:           "arm-circles",
		Name:         "Arm Circles",
		Category:     Warmup,
		MuscleGroups: []MuscleGroup{Shoulders},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   1,
		Duration:     30,
		Instructions: []string{
			"Extend arms out to sides",
			"Make small circles forward",
			"Gradually increase circle size",
			"Reverse direction",
		},
		Tips: []string{"Keep shoulders down", "Maintain steady breathing"},
	},
	{
		ID:           "leg-swings",
		Name:         "Leg Swings",
		Category:     Warmup,
		MuscleGroups: []MuscleGroup{Hamstrings, Quadriceps},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Stand next to a wall for support",
			"Swing one leg forward and back",
			"Keep leg straight",
			"Switch legs after 20 seconds",
		},
		Tips: []string{"Control the movement", "Keep core tight"},
	},

	// Strength: chest
	{
		ID:           "push-ups",
		Name:         "Push-Ups",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Chest, Triceps, Shoulders},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Start in plank position with hands shoulder-width apart",
			"Lower your body until chest nearly touches floor",
			"Push back up to starting position",
			"Keep body in straight line throughout",
		},
		Tips: []string{"Keep core engaged", "Don't let hips sag"},
	},
	{
		ID:           "wide-push-ups",
		Name:         "Wide Push-Ups",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Chest, Shoulders},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Start in plank with hands wider than shoulders",
			"Lower chest toward the ground",
			"Push back up maintaining wide hand position",
			"Focus on squeezing chest muscles",
		},
		Tips: []string{"Keep elbows at 45-degree angle", "Control the descent"},
	},
	{
		ID:           "dumbbell-chest-press",
		Name:         "Dumbbell Chest Press",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Chest, Triceps, Shoulders},
		Equipment:    []Equipment{Dumbbells, Bench},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"Lie on bench with dumbbells at chest level",
			"Press dumbbells up until arms are extended",
			"Lower slowly back to starting position",
			"Keep feet flat on floor",
		},
		Tips: []string{"Squeeze chest at top", "Don't lock elbows"},
	},
	{
		ID:           "diamond-push-ups",
		Name:         "Diamond Push-Ups",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Triceps, Chest},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   3,
		Duration:     45,
		Instructions: []string{
			"Form diamond shape with hands under chest",
			"Lower body keeping elbows close",
			"Push back up focusing on triceps",
			"Maintain plank position",
		},
		Tips: []string{"Keep core tight", "Go slow on the way down"},
	},

	// Strength: back
	{
		ID:           "superman",
		Name:         "Superman",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Back, Glutes},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Lie face down with arms extended forward",
			"Lift arms, chest, and legs off the ground",
			"Hold for 2-3 seconds",
			"Lower back down with control",
		},
		Tips: []string{"Look at the floor to keep neck neutral", "Squeeze glutes"},
	},
	{
		ID:           "bent-over-rows",
		Name:         "Dumbbell Bent-Over Rows",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Back, Biceps},
		Equipment:    []Equipment{Dumbbells},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"Hinge at hips with dumbbells hanging down",
			"Pull weights to ribcage squeezing shoulder blades",
			"Lower with control",
			"Keep back flat throughout",
		},
		Tips: []string{"Don't round your back", "Lead with elbows"},
	},
	{
		ID:           "pull-ups",
		Name:         "Pull-Ups",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Back, Biceps},
		Equipment:    []Equipment{PullUpBar},
		Difficulty:   3,
		Duration:     45,
		Instructions: []string{
			"Hang from bar with overhand grip",
			"Pull body up until chin clears bar",
			"Lower with control",
			"Full extension at bottom",
		},
		Tips: []string{"Engage lats before pulling", "Avoid swinging"},
	},

	// Strength: shoulders
	{
		ID:           "shoulder-press",
		Name:         "Dumbbell Shoulder Press",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Shoulders, Triceps},
		Equipment:    []Equipment{Dumbbells},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"Hold dumbbells at shoulder height",
			"Press weights overhead until arms extended",
			"Lower back to shoulders",
			"Keep core engaged",
		},
		Tips: []string{"Don't arch back", "Press in slight arc"},
	},
	{
		ID:           "lateral-raises",
		Name:         "Lateral Raises",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Shoulders},
		Equipment:    []Equipment{Dumbbells},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Stand with dumbbells at sides",
			"Raise arms out to sides until shoulder height",
			"Lower with control",
			"Keep slight bend in elbows",
		},
		Tips: []string{"Lead with elbows", "Don't swing the weights"},
	},
	{
		ID:           "pike-push-ups",
		Name:         "Pike Push-Ups",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Shoulders, Triceps},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Start in downward dog position",
			"Bend elbows and lower head toward ground",
			"Push back up to starting position",
			"Keep hips high throughout",
		},
		Tips: []string{"Look at your feet", "Keep core tight"},
	},

	// Strength: arms
	{
		ID:           "bicep-curls",
		Name:         "Bicep Curls",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Biceps},
		Equipment:    []Equipment{Dumbbells},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Stand with dumbbells at sides, palms forward",
			"Curl weights toward shoulders",
			"Lower with control",
			"Keep elbows pinned to sides",
		},
		Tips: []string{"Don't swing body", "Full range of motion"},
	},
	{
		ID:           "tricep-dips",
		Name:         "Tricep Dips",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Triceps},
		Equipment:    []Equipment{Bench},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Grip edge of bench behind you",
			"Lower body by bending elbows",
			"Push back up until arms straight",
			"Keep back close to bench",
		},
		Tips: []string{"Keep shoulders down", "Go to 90 degrees"},
	},
	{
		ID:           "hammer-curls",
		Name:         "Hammer Curls",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Biceps, Forearms},
		Equipment:    []Equipment{Dumbbells},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Hold dumbbells with palms facing each other",
			"Curl weights while maintaining grip position",
			"Lower with control",
			"Keep elbows stationary",
		},
		Tips: []string{"Control the movement", "Don't lean back"},
	},

	// Strength: legs
	{
		ID:           "bodyweight-squats",
		Name:         "Bodyweight Squats",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Quadriceps, Glutes, Hamstrings},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   1,
		Duration:     60,
		Instructions: []string{
			"Stand with feet shoulder-width apart",
			"Lower hips back and down",
			"Keep chest up and knees over toes",
			"Stand back up",
		},
		Tips: []string{"Go as low as comfortable", "Push through heels"},
	},
	{
		ID:           "goblet-squats",
		Name:         "Goblet Squats",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Quadriceps, Glutes, CoreMuscle},
		Equipment:    []Equipment{Dumbbells, Kettlebell},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"Hold weight at chest level",
			"Squat down keeping chest up",
			"Drive through heels to stand",
			"Keep core braced",
		},
		Tips: []string{"Elbows between knees at bottom", "Control the descent"},
	},
	{
		ID:           "lunges",
		Name:         "Forward Lunges",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Quadriceps, Glutes, Hamstrings},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"Step forward with one leg",
			"Lower until both knees at 90 degrees",
			"Push back to starting position",
			"Alternate legs",
		},
		Tips: []string{"Keep front knee over ankle", "Don't let back knee hit ground"},
	},
	{
		ID:           "romanian-deadlift",
		Name:         "Romanian Deadlift",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Hamstrings, Glutes, Back},
		Equipment:    []Equipment{Dumbbells, Barbell},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"Hold weight in front of thighs",
			"Hinge at hips pushing them back",
			"Lower weight along legs",
			"Stand up squeezing glutes",
		},
		Tips: []string{"Keep back flat", "Slight knee bend"},
	},
	{
		ID:           "calf-raises",
		Name:         "Calf Raises",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Calves},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Stand with feet hip-width apart",
			"Rise up onto balls of feet",
			"Lower heels with control",
			"Full range of motion",
		},
		Tips: []string{"Pause at the top", "Use wall for balance if needed"},
	},
	{
		ID:           "jump-squats",
		Name:         "Jump Squats",
		Category:     Strength,
		MuscleGroups: []MuscleGroup{Quadriceps, Glutes, Calves},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   3,
		Duration:     45,
		Instructions: []string{
			"Start in squat position",
			"Explode up into a jump",
			"Land softly back in squat",
			"Immediately repeat",
		},
		Tips: []string{"Land with bent knees", "Keep core tight"},
	},

	// Core
	{
		ID:           "plank",
		Name:         "Plank",
		Category:     Core,
		MuscleGroups: []MuscleGroup{CoreMuscle},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"Start in forearm plank position",
			"Keep body in straight line",
			"Engage core and glutes",
			"Hold for duration",
		},
		Tips: []string{"Don't let hips sag", "Breathe steadily"},
	},
	{
		ID:           "mountain-climbers",
		Name:         "Mountain Climbers",
		Category:     Core,
		MuscleGroups: []MuscleGroup{CoreMuscle, Shoulders, Quadriceps},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Start in push-up position",
			"Drive one knee toward chest",
			"Quickly switch legs",
			"Maintain steady pace",
		},
		Tips: []string{"Keep hips low", "Core engaged throughout"},
	},
	{
		ID:           "bicycle-crunches",
		Name:         "Bicycle Crunches",
		Category:     Core,
		MuscleGroups: []MuscleGroup{CoreMuscle},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Lie on back with hands behind head",
			"Bring opposite elbow to knee",
			"Extend other leg out",
			"Alternate sides",
		},
		Tips: []string{"Don't pull on neck", "Control the movement"},
	},
	{
		ID:           "dead-bug",
		Name:         "Dead Bug",
		Category:     Core,
		MuscleGroups: []MuscleGroup{CoreMuscle},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Lie on back with arms up and knees at 90 degrees",
			"Lower opposite arm and leg",
			"Return to start",
			"Alternate sides",
		},
		Tips: []string{"Keep lower back pressed to floor", "Move slowly"},
	},
	{
		ID:           "russian-twists",
		Name:         "Russian Twists",
		Category:     Core,
		MuscleGroups: []MuscleGroup{CoreMuscle},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Sit with knees bent, lean back slightly",
			"Rotate torso side to side",
			"Touch ground on each side",
			"Keep feet elevated for challenge",
		},
		Tips: []string{"Rotate from core not arms", "Keep chest up"},
	},
	{
		ID:           "leg-raises",
		Name:         "Leg Raises",
		Category:     Core,
		MuscleGroups: []MuscleGroup{CoreMuscle},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Lie on back with legs straight",
			"Lift legs to 90 degrees",
			"Lower with control",
			"Don't let feet touch ground",
		},
		Tips: []string{"Press lower back into floor", "Keep legs straight"},
	},

	// Cardio
	{
		ID:           "burpees",
		Name:         "Burpees",
		Category:     Cardio,
		MuscleGroups: []MuscleGroup{FullBody},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   3,
		Duration:     45,
		Instructions: []string{
			"Start standing",
			"Drop to squat and place hands on floor",
			"Jump feet back to plank",
			"Do a push-up, jump feet forward, jump up",
		},
		Tips: []string{"Modify by stepping instead of jumping", "Full extension on jump"},
	},
	{
		ID:           "jumping-lunges",
		Name:         "Jumping Lunges",
		Category:     Cardio,
		MuscleGroups: []MuscleGroup{Quadriceps, Glutes, Calves},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   3,
		Duration:     45,
		Instructions: []string{
			"Start in lunge position",
			"Jump and switch legs mid-air",
			"Land softly in lunge",
			"Repeat alternating",
		},
		Tips: []string{"Land with bent knees", "Keep torso upright"},
	},
	{
		ID:           "box-jumps",
		Name:         "Box Jumps",
		Category:     Cardio,
		MuscleGroups: []MuscleGroup{Quadriceps, Glutes, Calves},
		Equipment:    []Equipment{Bench},
		Difficulty:   3,
		Duration:     45,
		Instructions: []string{
			"Stand facing box or bench",
			"Jump up landing on top",
			"Stand fully on box",
			"Step down and repeat",
		},
		Tips: []string{"Land softly with bent knees", "Use arm swing for momentum"},
	},
	{
		ID:           "skaters",
		Name:         "Skaters",
		Category:     Cardio,
		MuscleGroups: []MuscleGroup{Glutes, Quadriceps},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   2,
		Duration:     45,
		Instructions: []string{
			"Start standing on one leg",
			"Leap sideways to other leg",
			"Touch back foot behind",
			"Leap back and forth",
		},
		Tips: []string{"Stay low", "Swing arms for balance"},
	},
	{
		ID:           "jump-rope",
		Name:         "Jump Rope",
		Category:     Cardio,
		MuscleGroups: []MuscleGroup{Calves, Shoulders, CoreMuscle},
		Equipment:    []Equipment{JumpRope},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"Hold rope handles at hip level",
			"Swing rope overhead",
			"Jump just high enough to clear rope",
			"Land on balls of feet",
		},
		Tips: []string{"Keep elbows close to body", "Jump low and quick"},
	},

	// Flexibility
	{
		ID:           "forward-fold",
		Name:         "Standing Forward Fold",
		Category:     Flexibility,
		MuscleGroups: []MuscleGroup{Hamstrings, Back},
		Equipment:    []Equipment{NoEquipment},
		Difficulty:   1,
		Duration:     30,
		Instructions: []string{
			"Stand with feet hip-width apart",
			"Hinge at hips and fold forward",
			"Let head hang heavy",
			"Grab opposite elbows if desired",
		},
		Tips: []string{"Bend knees if needed", "Relax neck and shoulders"},
	},
	{
		ID:           "cat-cow",
		Name:         "Cat-Cow Stretch",
		Category:     Flexibility,
		MuscleGroups: []MuscleGroup{Back, CoreMuscle},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Start on hands and knees",
			"Arch back looking up (cow)",
			"Round spine looking at navel (cat)",
			"Flow between positions",
		},
		Tips: []string{"Move with breath", "Keep movements smooth"},
	},
	{
		ID:           "childs-pose",
		Name:         "Child's Pose",
		Category:     Flexibility,
		MuscleGroups: []MuscleGroup{Back, Shoulders},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Kneel with toes together, knees apart",
			"Sit back on heels",
			"Extend arms forward",
			"Rest forehead on ground",
		},
		Tips: []string{"Breathe deeply", "Relax completely"},
	},
	{
		ID:           "hip-flexor-stretch",
		Name:         "Hip Flexor Stretch",
		Category:     Flexibility,
		MuscleGroups: []MuscleGroup{Quadriceps, Glutes},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Kneel on one knee",
			"Front foot flat, back knee on ground",
			"Push hips forward",
			"Hold and switch sides",
		},
		Tips: []string{"Keep torso upright", "Squeeze back glute"},
	},
	{
		ID:           "pigeon-pose",
		Name:         "Pigeon Pose",
		Category:     Flexibility,
		MuscleGroups: []MuscleGroup{Glutes, Hamstrings},
		Equipment:    []Equipment{YogaMat},
		Difficulty:   2,
		Duration:     60,
		Instructions: []string{
			"From downward dog, bring knee forward",
			"Lower hips toward ground",
			"Extend back leg behind",
			"Fold forward over front leg",
		},
		Tips: []string{"Use block for support", "Keep hips square"},
	},

	// Cooldown
	{
		ID:           "deep-breathing",
		Name:         "Deep Breathing",
		Category:     Cooldown,
		MuscleGroups: []MuscleGroup{CoreMuscle},
		Equipment:    []Equipment{NoEquipment, YogaMat},
		Difficulty:   1,
		Duration:     60,
		Instructions: []string{
			"Lie on back with knees bent",
			"Place hands on belly",
			"Inhale deeply through nose",
			"Exhale slowly through mouth",
		},
		Tips: []string{"Feel belly rise and fall", "Let go of tension"},
	},
	{
		ID:           "supine-twist",
		Name:         "Supine Twist",
		Category:     Cooldown,
		MuscleGroups: []MuscleGroup{Back, CoreMuscle},
		Equipment:    []Equipment{NoEquipment, YogaMat},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Lie on back with arms out",
			"Drop both knees to one side",
			"Turn head opposite direction",
			"Hold and switch sides",
		},
		Tips: []string{"Keep shoulders grounded", "Breathe into the stretch"},
	},
	{
		ID:           "seated-forward-fold",
		Name:         "Seated Forward Fold",
		Category:     Cooldown,
		MuscleGroups: []MuscleGroup{Hamstrings, Back},
		Equipment:    []Equipment{NoEquipment, YogaMat},
		Difficulty:   1,
		Duration:     45,
		Instructions: []string{
			"Sit with legs extended",
			"Hinge at hips reaching for feet",
			"Keep back as flat as possible",
			"Hold and breathe",
		},
		Tips: []string{"Bend knees if needed", "Don't force the stretch"},
	},
}
