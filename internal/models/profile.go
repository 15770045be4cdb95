package models

import "time"

// Profile is one program's persistent progress record. Current week/day are
// never stored here: they are derived from StartDate on every read.
type Profile struct {
	StartDate               string          `json:"startDate,omitempty"` // YYYY-MM-DD, local calendar
	CompletedWorkouts       []WorkoutRecord `json:"completedWorkouts"`
	CardioLog               []CardioEntry   `json:"cardioLog"`
	TotalTimeTrainedMinutes int             `json:"totalTimeTrainedMinutes"`
}

func (p *Profile) Started() bool {
	return p.StartDate != ""
}

// WorkoutRecord is immutable once created.
type WorkoutRecord struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"` // YYYY-MM-DD, local calendar
	Week        int                `json:"week"`
	Workout     string             `json:"workout"`
	WorkoutName string             `json:"workoutName"`
	Duration    int                `json:"duration"` // whole minutes
	Program     ProgramID          `json:"programType"`
	Exercises   []RecordedExercise `json:"exercises"`
	Notes       string             `json:"notes,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}

type RecordedExercise struct {
	Name string        `json:"name"`
	Sets []RecordedSet `json:"sets"`
}

type RecordedSet struct {
	Reps   string   `json:"reps"`
	Weight *float64 `json:"weight,omitempty"`
}

// CardioEntry is toggled in place, never duplicated per date.
type CardioEntry struct {
	Date      string `json:"date"` // YYYY-MM-DD, local calendar
	Completed bool   `json:"completed"`
}

// ProfileState is the full persisted blob: both profiles plus the
// active-program selector.
type ProfileState struct {
	ActiveProgram ProgramID `json:"activeProgramType,omitempty"`
	Bodyweight    Profile   `json:"bodyweightProfile"`
	Dumbbell      Profile   `json:"dumbbellProfile"`
}
