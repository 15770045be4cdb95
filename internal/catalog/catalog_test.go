package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferro-praxis/12week-training-program/internal/models"
)

func TestGet(t *testing.T) {
	for _, id := range []models.ProgramID{models.ProgramBodyweight, models.ProgramDumbbell} {
		p, err := Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
	}

	_, err := Get("kettlebell")
	assert.Error(t, err)
}

func TestProgramTotals(t *testing.T) {
	for _, p := range All() {
		assert.Equal(t, p.WorkoutsPerWeek*p.TotalWeeks, p.TotalWorkouts, "program %s", p.ID)

		// The weekly schedule carries exactly WorkoutsPerWeek workout slots.
		workouts := 0
		for _, slot := range p.WeeklySchedule {
			if slot != models.RestSlot {
				workouts++
			}
		}
		assert.Equal(t, p.WorkoutsPerWeek, workouts, "program %s", p.ID)
	}
}

func TestBandsCoverEveryWeek(t *testing.T) {
	for _, p := range All() {
		for week := 1; week <= p.TotalWeeks; week++ {
			band, err := BandFor(p, week)
			require.NoError(t, err, "program %s week %d", p.ID, week)

			// Every non-rest schedule slot must resolve in every band.
			for _, slot := range p.WeeklySchedule {
				if slot == models.RestSlot {
					continue
				}
				exercises, ok := band.Workouts[slot]
				require.True(t, ok, "program %s week %d workout %s", p.ID, week, slot)
				assert.NotEmpty(t, exercises)
			}
		}

		_, err := BandFor(p, 0)
		assert.Error(t, err)
		_, err = BandFor(p, p.TotalWeeks+1)
		assert.Error(t, err)
	}
}

func TestWorkoutNamesMatchSchedule(t *testing.T) {
	for _, p := range All() {
		for _, slot := range p.WeeklySchedule {
			if slot == models.RestSlot {
				continue
			}
			assert.NotEmpty(t, p.WorkoutNames[slot], "program %s workout %s has no display name", p.ID, slot)
		}
	}
}

func TestTemplatesAreComplete(t *testing.T) {
	for _, p := range All() {
		for _, band := range p.Bands {
			for key, exercises := range band.Workouts {
				for _, ex := range exercises {
					assert.NotEmpty(t, ex.Name, "program %s workout %s", p.ID, key)
					assert.NotEmpty(t, ex.Reps, "program %s exercise %s", p.ID, ex.Name)
				}
			}
		}
	}
}
