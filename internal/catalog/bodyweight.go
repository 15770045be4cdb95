package catalog

import "github.com/ferro-praxis/12week-training-program/internal/models"

var bodyweightProgram = models.ProgramDefinition{
	ID:              models.ProgramBodyweight,
	Name:            "Bodyweight Home Workout",
	Description:     "Zero equipment needed. 4 workouts per week.",
	WorkoutsPerWeek: 4,
	TotalWeeks:      12,
	TotalWorkouts:   48,
	RestPeriod:      45,
	TracksWeight:    false,
	WorkoutNames: map[string]string{
		"A": "Push/Abs/Calves",
		"B": "Legs",
		"C": "Pull/Abs/Calves",
		"D": "Legs",
	},
	WeeklySchedule: [7]string{"A", "B", models.RestSlot, "C", "D", models.RestSlot, models.RestSlot},
	Bands: []models.ExerciseBand{
		{
			FromWeek: 1,
			ToWeek:   4,
			Workouts: map[string][]models.ExerciseTemplate{
				"A": {
					{Name: "Push Ups", Reps: "10-12", Tempo: "3-4 sec negatives", Instructions: "Controlled descent"},
					{Name: "Diamond Push Ups", Reps: "10-12", Tempo: "3-4 sec negatives", Instructions: "Focus on triceps"},
					{Name: "Pike Push Ups", Reps: "10-12", Tempo: "Standard", Instructions: "Shoulders focus"},
					{Name: "Crunches", Reps: "15-20", Tempo: "Standard", Instructions: "To failure"},
					{Name: "Calf Raises", Reps: "15-20", Tempo: "Pause at top", Instructions: "Hold contraction"},
				},
				"B": {
					{Name: "Squats", Reps: "15-20", Tempo: "Standard", Instructions: "Full depth"},
					{Name: "Lunges", Reps: "15-20", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "Bulgarian Split Squats", Reps: "10-12", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "Wall Sit", Reps: "To failure", Tempo: "Static hold", Instructions: "Time under tension"},
				},
				"C": {
					{Name: "Pull Ups", Reps: "To failure", Tempo: "Standard", Instructions: "Full range of motion"},
					{Name: "Chin Ups", Reps: "To failure", Tempo: "Standard", Instructions: "Biceps focus"},
					{Name: "Inverted Rows", Reps: "10-12", Tempo: "Standard", Instructions: "Under table/bar"},
					{Name: "Plank", Reps: "To failure", Tempo: "Static hold", Instructions: "Core engagement"},
					{Name: "Calf Raises", Reps: "15-20", Tempo: "Pause at top", Instructions: "Hold contraction"},
				},
				"D": {
					{Name: "Jump Squats", Reps: "15-20", Tempo: "Explosive", Instructions: "Maximum height"},
					{Name: "Walking Lunges", Reps: "15-20", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "Single Leg Romanian Deadlifts", Reps: "10-12", Tempo: "Slow eccentric", Instructions: "Each leg"},
					{Name: "Glute Bridges", Reps: "15-20", Tempo: "Squeeze at top", Instructions: "Hip thrust"},
				},
			},
		},
		{
			FromWeek: 5,
			ToWeek:   8,
			Workouts: map[string][]models.ExerciseTemplate{
				"A": {
					{Name: "Incline Push Ups", Reps: "10-12", Tempo: "3-4 sec negatives", Instructions: "Hands elevated"},
					{Name: "Wide Push Ups", Reps: "10-12", Tempo: "3-4 sec negatives", Instructions: "Chest focus"},
					{Name: "Handstand Hold", Reps: "To failure", Tempo: "Static hold", Instructions: "Against wall"},
					{Name: "Leg Raises", Reps: "15-20", Tempo: "Standard", Instructions: "Lower abs"},
					{Name: "Single Leg Calf Raises", Reps: "15-20", Tempo: "Pause at top", Instructions: "Each leg"},
				},
				"B": {
					{Name: "Pistol Squats", Reps: "8-10", Tempo: "Standard", Instructions: "Each leg (assisted if needed)"},
					{Name: "Bulgarian Split Squats", Reps: "12-15", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "Sumo Squats", Reps: "15-20", Tempo: "Standard", Instructions: "Wide stance"},
					{Name: "Plank Leg Lifts", Reps: "15-20", Tempo: "Standard", Instructions: "Alternating legs"},
				},
				"C": {
					{Name: "Wide Grip Pull Ups", Reps: "To failure", Tempo: "Standard", Instructions: "Lat focus"},
					{Name: "Close Grip Chin Ups", Reps: "To failure", Tempo: "Standard", Instructions: "Biceps focus"},
					{Name: "Superman Pulls", Reps: "15-20", Tempo: "Squeeze at top", Instructions: "Lower back"},
					{Name: "Russian Twists", Reps: "20-30", Tempo: "Standard", Instructions: "Obliques"},
					{Name: "Jump Rope", Reps: "100", Tempo: "Standard", Instructions: "Or high knees"},
				},
				"D": {
					{Name: "Squat Pulses", Reps: "20-30", Tempo: "Constant tension", Instructions: "Small range"},
					{Name: "Reverse Lunges", Reps: "15-20", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "Single Leg Glute Bridges", Reps: "15-20", Tempo: "Pause at top", Instructions: "Each leg"},
					{Name: "Hamstring Curls", Reps: "15-20", Tempo: "Slow eccentric", Instructions: "Lying/sliding"},
				},
			},
		},
		{
			FromWeek: 9,
			ToWeek:   12,
			Workouts: map[string][]models.ExerciseTemplate{
				"A": {
					{Name: "Decline Push Ups", Reps: "10-12", Tempo: "3-4 sec negatives", Instructions: "Feet elevated"},
					{Name: "Archer Push Ups", Reps: "8-10", Tempo: "Standard", Instructions: "Each side"},
					{Name: "Pike Push Ups", Reps: "12-15", Tempo: "Standard", Instructions: "Shoulders"},
					{Name: "Hanging Knee Raises", Reps: "15-20", Tempo: "Standard", Instructions: "Full range"},
					{Name: "Calf Raises", Reps: "20-25", Tempo: "Pause at top", Instructions: "Maximum reps"},
				},
				"B": {
					{Name: "Pistol Squats", Reps: "10-12", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "Jump Lunges", Reps: "15-20", Tempo: "Explosive", Instructions: "Alternating"},
					{Name: "Bulgarian Split Squats", Reps: "15-20", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "Wall Sit", Reps: "To failure", Tempo: "Static hold", Instructions: "Maximum time"},
				},
				"C": {
					{Name: "Muscle Ups", Reps: "To failure", Tempo: "Standard", Instructions: "Advanced (or pull ups)"},
					{Name: "Typewriter Pull Ups", Reps: "To failure", Tempo: "Standard", Instructions: "Side to side"},
					{Name: "Inverted Rows", Reps: "15-20", Tempo: "Standard", Instructions: "Feet elevated"},
					{Name: "V-Ups", Reps: "15-20", Tempo: "Standard", Instructions: "Full body"},
					{Name: "Calf Raises", Reps: "20-25", Tempo: "Pause at top", Instructions: "Maximum reps"},
				},
				"D": {
					{Name: "Jump Squats", Reps: "20-25", Tempo: "Explosive", Instructions: "Maximum effort"},
					{Name: "Walking Lunges", Reps: "20-25", Tempo: "Standard", Instructions: "Each leg"},
					{Name: "Single Leg Deadlifts", Reps: "12-15", Tempo: "Slow eccentric", Instructions: "Each leg"},
					{Name: "Glute Bridge Pulses", Reps: "25-30", Tempo: "Constant tension", Instructions: "Small range"},
				},
			},
		},
	},
}
