package models

// ProgramID names one of the two fixed 12-week programs.
type ProgramID string

const (
	ProgramBodyweight ProgramID = "bodyweight"
	ProgramDumbbell   ProgramID = "dumbbell"
)

// RestSlot marks a rest day in a weekly schedule.
const RestSlot = "rest"

func (p ProgramID) Valid() bool {
	return p == ProgramBodyweight || p == ProgramDumbbell
}

type ProgramDefinition struct {
	ID              ProgramID
	Name            string
	Description     string
	WorkoutsPerWeek int
	TotalWeeks      int
	TotalWorkouts   int
	RestPeriod      int // seconds between sets
	TracksWeight    bool
	WorkoutNames    map[string]string
	// WeeklySchedule holds a workout label or RestSlot per weekday, index 0 = Sunday.
	WeeklySchedule [7]string
	Bands          []ExerciseBand
}

// ExerciseBand maps every workout label to its exercise list for a
// contiguous range of program weeks.
type ExerciseBand struct {
	FromWeek int
	ToWeek   int
	Workouts map[string][]ExerciseTemplate
}

type ExerciseTemplate struct {
	Name         string `json:"name" toml:"name"`
	Reps         string `json:"reps" toml:"reps"`
	Tempo        string `json:"tempo" toml:"tempo"`
	Instructions string `json:"instructions" toml:"instructions"`
}

type WorkoutType string

const (
	WorkoutTypeRest    WorkoutType = "rest"
	WorkoutTypeWorkout WorkoutType = "workout"
)

// ResolvedWorkout is the concrete plan for one program+week+day. It is
// derived on every read and never stored as source of truth.
type ResolvedWorkout struct {
	Type           WorkoutType       `json:"type" toml:"type"`
	Key            string            `json:"key,omitempty" toml:"key,omitempty"`
	Name           string            `json:"name" toml:"name"`
	Sets           int               `json:"sets,omitempty" toml:"sets,omitempty"`
	Exercises      []ResolvedExercise `json:"exercises,omitempty" toml:"exercises,omitempty"`
	IsDeload       bool              `json:"is_deload,omitempty" toml:"is_deload,omitempty"`
	CardioReminder string            `json:"cardio_reminder,omitempty" toml:"cardio_reminder,omitempty"`
}

type ResolvedExercise struct {
	ExerciseTemplate
	Sets       int `json:"sets" toml:"sets"`
	RestPeriod int `json:"rest_period" toml:"rest_period"`
}

// Clone returns a deep copy so session-local edits never alias the catalog.
func (w ResolvedWorkout) Clone() ResolvedWorkout {
	out := w
	if w.Exercises != nil {
		out.Exercises = make([]ResolvedExercise, len(w.Exercises))
		copy(out.Exercises, w.Exercises)
	}
	return out
}
