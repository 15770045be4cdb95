package models

import "time"

// CompletedSet is one logged set inside an active session.
type CompletedSet struct {
	ExerciseIndex int       `toml:"exercise_index"`
	SetNumber     int       `toml:"set_number"`
	Reps          string    `toml:"reps"`
	Weight        *float64  `toml:"weight,omitempty"`
	Timestamp     time.Time `toml:"timestamp"`
}

// SessionState is the TOML round-trip form of an in-progress workout. It
// exists only between "start-workout" and "finish or cancel"; the resting
// countdown is transient and never persisted.
type SessionState struct {
	SessionID     string          `toml:"session_id"`
	Program       ProgramID       `toml:"program"`
	Week          int             `toml:"week"`
	Workout       ResolvedWorkout `toml:"workout"`
	ExerciseIndex int             `toml:"exercise_index"`
	SetNumber     int             `toml:"set_number"`
	Completed     []CompletedSet  `toml:"completed"`
	StartTime     time.Time       `toml:"start_time"`
	Notes         string          `toml:"notes"`
	WeightInput   string          `toml:"weight_input"`
}
