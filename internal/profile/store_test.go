package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferro-praxis/12week-training-program/internal/models"
)

func fixedNow(date string) func() time.Time {
	t, _ := time.ParseInLocation("2006-01-02", date, time.Local)
	return func() time.Time { return t }
}

func newTestStore(date string) *Store {
	s := NewStore()
	s.now = fixedNow(date)
	return s
}

func ptr(f float64) *float64 { return &f }

func TestSelect_StampsStartDateOnce(t *testing.T) {
	s := newTestStore("2026-03-02")

	require.NoError(t, s.Select(models.ProgramBodyweight))
	p, err := s.ProfileFor(models.ProgramBodyweight)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", p.StartDate)
	assert.Equal(t, models.ProgramBodyweight, s.ActiveProgram())

	// Switching away and back never moves the start date.
	s.now = fixedNow("2026-04-15")
	require.NoError(t, s.Select(models.ProgramDumbbell))
	require.NoError(t, s.Select(models.ProgramBodyweight))
	assert.Equal(t, "2026-03-02", p.StartDate)

	// The other program got its own start date when first selected.
	d, err := s.ProfileFor(models.ProgramDumbbell)
	require.NoError(t, err)
	assert.Equal(t, "2026-04-15", d.StartDate)
}

func TestSelect_UnknownProgram(t *testing.T) {
	s := newTestStore("2026-03-02")
	assert.Error(t, s.Select("kettlebell"))
	assert.Empty(t, s.ActiveProgram())
}

func TestActive_NoSelection(t *testing.T) {
	s := NewStore()
	_, err := s.Active()
	assert.ErrorIs(t, err, ErrNoActiveProgram)
}

func TestRecordWorkout(t *testing.T) {
	s := newTestStore("2026-03-02")
	require.NoError(t, s.Select(models.ProgramDumbbell))

	rec := models.WorkoutRecord{
		ID:       "w1",
		Date:     "2026-03-02",
		Week:     1,
		Workout:  "1",
		Duration: 42,
		Program:  models.ProgramDumbbell,
	}
	require.NoError(t, s.RecordWorkout(rec))

	p, err := s.Active()
	require.NoError(t, err)
	require.Len(t, p.CompletedWorkouts, 1)
	assert.Equal(t, 42, p.TotalTimeTrainedMinutes)

	require.NoError(t, s.RecordWorkout(models.WorkoutRecord{ID: "w2", Program: models.ProgramDumbbell, Duration: 30}))
	assert.Equal(t, 72, p.TotalTimeTrainedMinutes)
}

func TestToggleCardio(t *testing.T) {
	s := newTestStore("2026-03-02")
	require.NoError(t, s.Select(models.ProgramBodyweight))
	p, err := s.Active()
	require.NoError(t, err)

	require.NoError(t, s.ToggleCardio("2026-03-02"))
	require.Len(t, p.CardioLog, 1)
	assert.True(t, p.CardioLog[0].Completed)

	// Toggling again flips in place; never a second entry for the same date.
	require.NoError(t, s.ToggleCardio("2026-03-02"))
	require.Len(t, p.CardioLog, 1)
	assert.False(t, p.CardioLog[0].Completed)

	require.NoError(t, s.ToggleCardio("2026-03-02"))
	require.Len(t, p.CardioLog, 1)
	assert.True(t, p.CardioLog[0].Completed)
}

func TestResetProgram_KeepsStartDate(t *testing.T) {
	s := newTestStore("2026-03-02")
	require.NoError(t, s.Select(models.ProgramBodyweight))
	require.NoError(t, s.RecordWorkout(models.WorkoutRecord{ID: "w1", Program: models.ProgramBodyweight, Duration: 30}))
	require.NoError(t, s.ToggleCardio("2026-03-02"))

	require.NoError(t, s.ResetProgram(models.ProgramBodyweight))

	p, err := s.Active()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", p.StartDate, "reset keeps the program anchored")
	assert.Empty(t, p.CompletedWorkouts)
	assert.Empty(t, p.CardioLog)
	assert.Zero(t, p.TotalTimeTrainedMinutes)
}

func TestResetAll(t *testing.T) {
	s := newTestStore("2026-03-02")
	require.NoError(t, s.Select(models.ProgramBodyweight))
	require.NoError(t, s.RecordWorkout(models.WorkoutRecord{ID: "w1", Program: models.ProgramBodyweight}))

	s.ResetAll()

	assert.Empty(t, s.ActiveProgram())
	p, err := s.ProfileFor(models.ProgramBodyweight)
	require.NoError(t, err)
	assert.Empty(t, p.StartDate)
	assert.Empty(t, p.CompletedWorkouts)
}

func TestProgressPercentage(t *testing.T) {
	s := newTestStore("2026-03-02")
	require.NoError(t, s.Select(models.ProgramBodyweight))

	pct, err := s.ProgressPercentage(models.ProgramBodyweight)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)

	// 12 of 48 workouts is exactly 25%.
	for i := 0; i < 12; i++ {
		require.NoError(t, s.RecordWorkout(models.WorkoutRecord{Program: models.ProgramBodyweight}))
	}
	pct, err = s.ProgressPercentage(models.ProgramBodyweight)
	require.NoError(t, err)
	assert.Equal(t, 25, pct)
}

func TestInactiveProgress(t *testing.T) {
	s := newTestStore("2026-03-02")
	require.NoError(t, s.Select(models.ProgramBodyweight))

	assert.Nil(t, s.InactiveProgress(), "dumbbell never started")

	require.NoError(t, s.Select(models.ProgramDumbbell))
	require.NoError(t, s.RecordWorkout(models.WorkoutRecord{Program: models.ProgramDumbbell}))
	require.NoError(t, s.Select(models.ProgramBodyweight))

	prog := s.InactiveProgress()
	require.NotNil(t, prog)
	assert.Equal(t, models.ProgramDumbbell, prog.Program)
	assert.Equal(t, 1, prog.Completed)
	assert.Equal(t, 60, prog.Total)
}

func TestPreviousSetsFor(t *testing.T) {
	s := newTestStore("2026-03-02")
	require.NoError(t, s.Select(models.ProgramDumbbell))

	require.NoError(t, s.RecordWorkout(models.WorkoutRecord{
		Program: models.ProgramDumbbell,
		Exercises: []models.RecordedExercise{
			{Name: "Dumbbell Bench Press", Sets: []models.RecordedSet{{Reps: "10", Weight: ptr(40)}}},
		},
	}))
	require.NoError(t, s.RecordWorkout(models.WorkoutRecord{
		Program: models.ProgramDumbbell,
		Exercises: []models.RecordedExercise{
			{Name: "Dumbbell Bench Press", Sets: []models.RecordedSet{{Reps: "12", Weight: ptr(45)}}},
		},
	}))

	sets := s.PreviousSetsFor("Dumbbell Bench Press")
	require.Len(t, sets, 1)
	assert.Equal(t, "12", sets[0].Reps, "newest workout wins")
	require.NotNil(t, sets[0].Weight)
	assert.Equal(t, 45.0, *sets[0].Weight)

	assert.Nil(t, s.PreviousSetsFor("Never Performed"))
}

type memBlobs struct {
	blobs map[string][]byte
}

func newMemBlobs() *memBlobs { return &memBlobs{blobs: make(map[string][]byte)} }

func (m *memBlobs) GetBlob(name string) ([]byte, bool, error) {
	data, ok := m.blobs[name]
	return data, ok, nil
}

func (m *memBlobs) PutBlob(name string, data []byte) error {
	m.blobs[name] = data
	return nil
}

func (m *memBlobs) DeleteBlob(name string) error {
	delete(m.blobs, name)
	return nil
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	blobs := newMemBlobs()

	s := newTestStore("2026-03-02")
	require.NoError(t, s.Select(models.ProgramDumbbell))
	require.NoError(t, s.RecordWorkout(models.WorkoutRecord{
		ID:       "w1",
		Date:     "2026-03-02",
		Week:     1,
		Program:  models.ProgramDumbbell,
		Duration: 38,
		Exercises: []models.RecordedExercise{
			{Name: "Goblet Squats", Sets: []models.RecordedSet{
				{Reps: "12", Weight: ptr(50)},
				{Reps: "10"},
			}},
		},
	}))
	require.NoError(t, s.ToggleCardio("2026-03-03"))
	require.NoError(t, s.Save(blobs))

	loaded, err := Load(blobs)
	require.NoError(t, err)
	assert.Equal(t, models.ProgramDumbbell, loaded.ActiveProgram())

	p, err := loaded.Active()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", p.StartDate)
	require.Len(t, p.CompletedWorkouts, 1)
	assert.Equal(t, 38, p.TotalTimeTrainedMinutes)

	sets := p.CompletedWorkouts[0].Exercises[0].Sets
	require.Len(t, sets, 2)
	require.NotNil(t, sets[0].Weight)
	assert.Equal(t, 50.0, *sets[0].Weight)
	assert.Nil(t, sets[1].Weight, "bodyweight sets stay weightless")
}

func TestLoad_EmptyStore(t *testing.T) {
	loaded, err := Load(newMemBlobs())
	require.NoError(t, err)
	assert.Empty(t, loaded.ActiveProgram())
}
