package session

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ferro-praxis/12week-training-program/internal/config"
	"github.com/ferro-praxis/12week-training-program/internal/models"
)

func statePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}

	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "current_session.toml"), nil
}

// Snapshot exports the Active session for the TOML state file. The resting
// countdown is transient and deliberately not part of the snapshot.
func (e *Engine) Snapshot() (*models.SessionState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return nil, ErrNotActive
	}
	return &models.SessionState{
		SessionID:     e.sessionID,
		Program:       e.program,
		Week:          e.week,
		Workout:       e.workout.Clone(),
		ExerciseIndex: e.exerciseIndex,
		SetNumber:     e.setNumber,
		Completed:     append([]models.CompletedSet(nil), e.completed...),
		StartTime:     e.startTime,
		Notes:         e.notes,
		WeightInput:   e.weightInput,
	}, nil
}

// Resume rebuilds an Active engine from a persisted state.
func Resume(def *models.ProgramDefinition, state *models.SessionState) *Engine {
	e := New()
	e.phase = PhaseActive
	e.sessionID = state.SessionID
	e.program = state.Program
	e.tracksWeight = def.TracksWeight
	e.week = state.Week
	e.workout = state.Workout.Clone()
	e.exerciseIndex = state.ExerciseIndex
	e.setNumber = state.SetNumber
	e.completed = append([]models.CompletedSet(nil), state.Completed...)
	e.startTime = state.StartTime
	e.notes = state.Notes
	e.weightInput = state.WeightInput
	return e
}

func SaveState(state *models.SessionState) error {
	path, err := statePath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(state)
}

func LoadState() (*models.SessionState, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}

	var state models.SessionState
	_, err = toml.DecodeFile(path, &state)
	if err != nil {
		return nil, err
	}

	return &state, nil
}

func ClearState() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func StateExists() bool {
	path, err := statePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
