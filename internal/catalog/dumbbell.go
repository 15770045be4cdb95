package catalog

import "github.com/ferro-praxis/12week-training-program/internal/models"

var dumbbellProgram = models.ProgramDefinition{
	ID:              models.ProgramDumbbell,
	Name:            "Dumbbell Only Home Workout",
	Description:     "Requires dumbbells. 5 workouts per week.",
	WorkoutsPerWeek: 5,
	TotalWeeks:      12,
	TotalWorkouts:   60,
	RestPeriod:      60,
	TracksWeight:    true,
	WorkoutNames: map[string]string{
		"1": "Calves & Shoulders",
		"2": "Chest",
		"3": "Back & Abs",
		"4": "Arms",
		"5": "Legs",
	},
	WeeklySchedule: [7]string{"1", "2", "3", models.RestSlot, "4", "5", models.RestSlot},
	Bands: []models.ExerciseBand{
		{
			FromWeek: 1,
			ToWeek:   4,
			Workouts: map[string][]models.ExerciseTemplate{
				"1": {
					{Name: "DB Calf Raises", Reps: "15-20", Tempo: "Pause at top", Instructions: "Dumbbells in hands"},
					{Name: "Standing DB Press", Reps: "10-12", Tempo: "Standard", Instructions: "Overhead press"},
					{Name: "DB Lateral Raises", Reps: "10-12", Tempo: "Controlled", Instructions: "Side delts"},
					{Name: "DB Front Raises", Reps: "10-12", Tempo: "Controlled", Instructions: "Front delts"},
					{Name: "DB Shrugs", Reps: "15-20", Tempo: "Squeeze at top", Instructions: "Traps"},
				},
				"2": {
					{Name: "Floor DB Press", Reps: "10-12", Tempo: "Standard", Instructions: "Lying on floor"},
					{Name: "DB Flyes", Reps: "10-12", Tempo: "Stretch at bottom", Instructions: "Flat or floor"},
					{Name: "DB Pullovers", Reps: "10-12", Tempo: "Full stretch", Instructions: "Cross bench"},
					{Name: "Close Grip DB Press", Reps: "10-12", Tempo: "Standard", Instructions: "Triceps focus"},
				},
				"3": {
					{Name: "Bent Over DB Rows", Reps: "10-12", Tempo: "Squeeze at top", Instructions: "Both arms"},
					{Name: "Single Arm DB Rows", Reps: "10-12", Tempo: "Standard", Instructions: "Each arm"},
					{Name: "DB Deadlifts", Reps: "15-20", Tempo: "Controlled", Instructions: "Hip hinge"},
					{Name: "DB Pullovers", Reps: "10-12", Tempo: "Full stretch", Instructions: "Back focus"},
					{Name: "Weighted Crunches", Reps: "15-20", Tempo: "Standard", Instructions: "DB on chest"},
				},
				"4": {
					{Name: "Alternating DB Curls", Reps: "10-12", Tempo: "Standard", Instructions: "Each arm"},
					{Name: "Hammer Curls", Reps: "10-12", Tempo: "Standard", Instructions: "Neutral grip"},
					{Name: "DB Overhead Extension", Reps: "10-12", Tempo: "Standard", Instructions: "Triceps"},
					{Name: "DB Kickbacks", Reps: "10-12", Tempo: "Squeeze at top", Instructions: "Each arm"},
					{Name: "Concentration Curls", Reps: "10-12", Tempo: "Controlled", Instructions: "Each arm"},
				},
				"5": {
					{Name: "Goblet Squats", Reps: "15-20", Tempo: "Standard", Instructions: "DB at chest"},
					{Name: "DB Romanian Deadlifts", Reps: "15-20", Tempo: "Slow eccentric", Instructions: "Hamstrings"},
					{Name: "DB Lunges", Reps: "15-20", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "DB Step Ups", Reps: "15-20", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "DB Calf Raises", Reps: "20-25", Tempo: "Pause at top", Instructions: "Single leg optional"},
				},
			},
		},
		{
			FromWeek: 5,
			ToWeek:   8,
			Workouts: map[string][]models.ExerciseTemplate{
				"1": {
					{Name: "Single Leg DB Calf Raises", Reps: "15-20", Tempo: "Pause at top", Instructions: "Each leg"},
					{Name: "Seated DB Press", Reps: "10-12", Tempo: "Standard", Instructions: "On bench/chair"},
					{Name: "DB Lateral Raises", Reps: "12-15", Tempo: "Controlled", Instructions: "Side delts"},
					{Name: "DB Arnold Press", Reps: "10-12", Tempo: "Standard", Instructions: "Rotation"},
					{Name: "DB Upright Rows", Reps: "12-15", Tempo: "Standard", Instructions: "Shoulders/traps"},
				},
				"2": {
					{Name: "Incline DB Press", Reps: "10-12", Tempo: "Standard", Instructions: "Upper chest"},
					{Name: "Incline DB Flyes", Reps: "10-12", Tempo: "Stretch at bottom", Instructions: "Upper chest"},
					{Name: "DB Pullovers", Reps: "12-15", Tempo: "Full stretch", Instructions: "Cross bench"},
					{Name: "DB Push Up Position Rows", Reps: "10-12", Tempo: "Standard", Instructions: "Each arm"},
				},
				"3": {
					{Name: "Bent Over DB Rows", Reps: "12-15", Tempo: "Squeeze at top", Instructions: "Both arms"},
					{Name: "Single Arm DB Rows", Reps: "12-15", Tempo: "Standard", Instructions: "Each arm"},
					{Name: "DB Deadlifts", Reps: "15-20", Tempo: "Controlled", Instructions: "Hip hinge"},
					{Name: "DB Reverse Flyes", Reps: "12-15", Tempo: "Squeeze", Instructions: "Rear delts"},
					{Name: "Russian Twists", Reps: "20-30", Tempo: "Standard", Instructions: "DB held"},
				},
				"4": {
					{Name: "DB Curls", Reps: "10-12", Tempo: "Standard", Instructions: "Both arms"},
					{Name: "Hammer Curls", Reps: "12-15", Tempo: "Standard", Instructions: "Neutral grip"},
					{Name: "Overhead DB Extension", Reps: "12-15", Tempo: "Standard", Instructions: "Triceps"},
					{Name: "DB Skull Crushers", Reps: "10-12", Tempo: "Controlled", Instructions: "Lying"},
					{Name: "Zottman Curls", Reps: "10-12", Tempo: "Rotation", Instructions: "Each rep"},
				},
				"5": {
					{Name: "Goblet Squats", Reps: "20-25", Tempo: "Standard", Instructions: "DB at chest"},
					{Name: "DB Romanian Deadlifts", Reps: "15-20", Tempo: "Slow eccentric", Instructions: "Hamstrings"},
					{Name: "DB Bulgarian Split Squats", Reps: "12-15", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "DB Step Ups", Reps: "15-20", Tempo: "Explosive", Instructions: "Each leg"},
					{Name: "DB Calf Raises", Reps: "25-30", Tempo: "Pause at top", Instructions: "Maximum reps"},
				},
			},
		},
		{
			FromWeek: 9,
			ToWeek:   12,
			Workouts: map[string][]models.ExerciseTemplate{
				"1": {
					{Name: "Single Leg DB Calf Raises", Reps: "20-25", Tempo: "Pause at top", Instructions: "Each leg"},
					{Name: "DB Push Press", Reps: "10-12", Tempo: "Explosive", Instructions: "Leg drive"},
					{Name: "DB Lateral Raises", Reps: "15-20", Tempo: "Controlled", Instructions: "Lighter weight"},
					{Name: "DB Arnold Press", Reps: "12-15", Tempo: "Standard", Instructions: "Rotation"},
					{Name: "DB Shrugs", Reps: "20-25", Tempo: "Squeeze at top", Instructions: "Heavy"},
				},
				"2": {
					{Name: "Floor DB Press", Reps: "12-15", Tempo: "Standard", Instructions: "Heavy"},
					{Name: "DB Flyes", Reps: "12-15", Tempo: "Stretch at bottom", Instructions: "Deep stretch"},
					{Name: "DB Pullovers", Reps: "15-20", Tempo: "Full stretch", Instructions: "Cross bench"},
					{Name: "Close Grip DB Press", Reps: "12-15", Tempo: "Standard", Instructions: "Triceps"},
					{Name: "DB Push Ups", Reps: "To failure", Tempo: "Standard", Instructions: "Hands on DBs"},
				},
				"3": {
					{Name: "Bent Over DB Rows", Reps: "15-20", Tempo: "Squeeze at top", Instructions: "Heavy"},
					{Name: "Single Arm DB Rows", Reps: "15-20", Tempo: "Standard", Instructions: "Each arm"},
					{Name: "DB Deadlifts", Reps: "15-20", Tempo: "Controlled", Instructions: "Heavy"},
					{Name: "DB Reverse Flyes", Reps: "15-20", Tempo: "Squeeze", Instructions: "Rear delts"},
					{Name: "Weighted V-Ups", Reps: "15-20", Tempo: "Standard", Instructions: "DB held"},
				},
				"4": {
					{Name: "DB Curls", Reps: "12-15", Tempo: "Standard", Instructions: "To failure"},
					{Name: "Hammer Curls", Reps: "12-15", Tempo: "Standard", Instructions: "Heavy"},
					{Name: "Overhead DB Extension", Reps: "15-20", Tempo: "Standard", Instructions: "To failure"},
					{Name: "DB Kickbacks", Reps: "15-20", Tempo: "Squeeze at top", Instructions: "Each arm"},
					{Name: "21s", Reps: "21", Tempo: "Standard", Instructions: "7 bottom, 7 top, 7 full"},
				},
				"5": {
					{Name: "Goblet Squats", Reps: "25-30", Tempo: "Standard", Instructions: "Heavy DB"},
					{Name: "DB Romanian Deadlifts", Reps: "20-25", Tempo: "Slow eccentric", Instructions: "Heavy"},
					{Name: "DB Bulgarian Split Squats", Reps: "15-20", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "DB Walking Lunges", Reps: "20-25", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "DB Calf Raises", Reps: "30+", Tempo: "Pause at top", Instructions: "To failure"},
				},
			},
		},
	},
}
