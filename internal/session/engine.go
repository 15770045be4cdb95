// Package session drives a workout from start through set-by-set completion
// to a finished WorkoutRecord. The Engine is the single owner of all
// in-progress state; the catalog is never mutated because Start deep-copies
// the resolved workout.
package session

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseFinished
	PhaseCancelled
)

var (
	ErrAlreadyActive = errors.New("a workout session is already active")
	ErrNotActive     = errors.New("no active workout session")
	ErrRestDay       = errors.New("cannot start a workout on a rest day")
	ErrNotFinished   = errors.New("workout is not finished")
)

// Engine is the workout-session state machine:
// Idle -> Active(resting false <-> true) -> Finished | Cancelled.
type Engine struct {
	mu sync.Mutex

	phase        Phase
	sessionID    string
	program      models.ProgramID
	tracksWeight bool
	week         int

	workout       models.ResolvedWorkout
	exerciseIndex int
	setNumber     int // 1-based
	completed     []models.CompletedSet
	startTime     time.Time
	notes         string
	weightInput   string

	resting       bool
	restRemaining int
	timer         *restTimer

	record *models.WorkoutRecord

	now          func() time.Time
	tickInterval time.Duration

	onRestTick     func(remaining int)
	onRestComplete func()
}

func New() *Engine {
	return &Engine{
		phase:        PhaseIdle,
		now:          time.Now,
		tickInterval: time.Second,
	}
}

// SetNotifier wires the rest-timer events to the surrounding UI. The engine
// only invokes the sink; how feedback is rendered is the caller's business.
func (e *Engine) SetNotifier(onTick func(remaining int), onComplete func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onRestTick = onTick
	e.onRestComplete = onComplete
}

// Start begins a session for the resolved workout. Legal only from Idle and
// only on a workout day.
func (e *Engine) Start(def *models.ProgramDefinition, week int, workout models.ResolvedWorkout) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseIdle {
		return ErrAlreadyActive
	}
	if workout.Type != models.WorkoutTypeWorkout {
		return ErrRestDay
	}

	e.phase = PhaseActive
	e.sessionID = uuid.New().String()
	e.program = def.ID
	e.tracksWeight = def.TracksWeight
	e.week = week
	e.workout = workout.Clone()
	e.exerciseIndex = 0
	e.setNumber = 1
	e.completed = nil
	e.notes = ""
	e.weightInput = ""
	e.startTime = e.now()
	return nil
}

// CompleteSet logs the current set and advances. When reportedReps is empty
// the exercise's nominal rep target is recorded instead. For programs that
// track weight, a parseable weight buffer is attached to the entry.
func (e *Engine) CompleteSet(reportedReps string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return ErrNotActive
	}

	ex := e.workout.Exercises[e.exerciseIndex]
	reps := reportedReps
	if reps == "" {
		reps = ex.Reps
	}

	entry := models.CompletedSet{
		ExerciseIndex: e.exerciseIndex,
		SetNumber:     e.setNumber,
		Reps:          reps,
		Timestamp:     e.now(),
	}
	if e.tracksWeight && e.weightInput != "" {
		if w, err := strconv.ParseFloat(e.weightInput, 64); err == nil {
			entry.Weight = &w
		}
	}
	e.completed = append(e.completed, entry)

	e.advanceLocked()
	return nil
}

// SkipSet advances exactly like CompleteSet but records nothing.
func (e *Engine) SkipSet() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return ErrNotActive
	}
	e.advanceLocked()
	return nil
}

// advanceLocked applies the advancement rule: more sets -> next set and
// resting; more exercises -> next exercise, set 1, no resting; otherwise the
// workout is complete.
func (e *Engine) advanceLocked() {
	ex := e.workout.Exercises[e.exerciseIndex]
	switch {
	case e.setNumber < ex.Sets:
		e.setNumber++
		e.startRestLocked(ex.RestPeriod)
	case e.exerciseIndex < len(e.workout.Exercises)-1:
		e.stopRestLocked()
		e.exerciseIndex++
		e.setNumber = 1
		e.weightInput = ""
	default:
		e.finishLocked()
	}
}

// NextExercise moves the cursor forward one exercise. No-op at the end.
func (e *Engine) NextExercise() error {
	return e.moveExercise(1)
}

// PreviousExercise moves the cursor back one exercise. No-op at the start.
func (e *Engine) PreviousExercise() error {
	return e.moveExercise(-1)
}

func (e *Engine) moveExercise(delta int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return ErrNotActive
	}
	target := e.exerciseIndex + delta
	if target < 0 || target >= len(e.workout.Exercises) {
		return nil
	}
	e.stopRestLocked()
	e.exerciseIndex = target
	e.setNumber = 1
	e.weightInput = ""
	return nil
}

// finishLocked converts the session into an immutable WorkoutRecord,
// grouping completed sets by exercise in template order.
func (e *Engine) finishLocked() {
	e.stopRestLocked()

	finishedAt := e.now()
	duration := int(math.Round(finishedAt.Sub(e.startTime).Minutes()))

	exercises := make([]models.RecordedExercise, len(e.workout.Exercises))
	for i, ex := range e.workout.Exercises {
		rec := models.RecordedExercise{Name: ex.Name}
		for _, set := range e.completed {
			if set.ExerciseIndex == i {
				rec.Sets = append(rec.Sets, models.RecordedSet{Reps: set.Reps, Weight: set.Weight})
			}
		}
		exercises[i] = rec
	}

	e.record = &models.WorkoutRecord{
		ID:          e.sessionID,
		Date:        utils.DateString(finishedAt),
		Week:        e.week,
		Workout:     e.workout.Key,
		WorkoutName: e.workout.Name,
		Duration:    duration,
		Program:     e.program,
		Exercises:   exercises,
		Notes:       e.notes,
		Timestamp:   finishedAt,
	}
	e.phase = PhaseFinished
}

// Record returns the finished workout's record for the caller to hand to the
// profile store.
func (e *Engine) Record() (*models.WorkoutRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseFinished || e.record == nil {
		return nil, ErrNotFinished
	}
	return e.record, nil
}

// Cancel discards the session without producing a record. Legal any time
// while Active.
func (e *Engine) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return ErrNotActive
	}
	e.stopRestLocked()
	e.phase = PhaseCancelled
	return nil
}

func (e *Engine) SetWeightInput(value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return ErrNotActive
	}
	e.weightInput = value
	return nil
}

func (e *Engine) SetNotes(notes string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return ErrNotActive
	}
	e.notes = notes
	return nil
}

func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

func (e *Engine) Resting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resting
}

func (e *Engine) RestRemaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.restRemaining
}

func (e *Engine) ExerciseIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exerciseIndex
}

func (e *Engine) SetNumber() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setNumber
}

func (e *Engine) Week() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.week
}

// CurrentExercise returns the exercise under the cursor.
func (e *Engine) CurrentExercise() (models.ResolvedExercise, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive || e.exerciseIndex >= len(e.workout.Exercises) {
		return models.ResolvedExercise{}, false
	}
	return e.workout.Exercises[e.exerciseIndex], true
}

// Workout returns a copy of the session's workout snapshot.
func (e *Engine) Workout() models.ResolvedWorkout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.workout.Clone()
}

// CompletedSets returns a copy of the logged set entries.
func (e *Engine) CompletedSets() []models.CompletedSet {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.CompletedSet, len(e.completed))
	copy(out, e.completed)
	return out
}
