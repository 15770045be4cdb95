package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferro-praxis/12week-training-program/internal/models"
)

func TestDeserialize_Garbage(t *testing.T) {
	state := Deserialize([]byte("not json at all"))
	assert.Empty(t, state.ActiveProgram)
	assert.Empty(t, state.Bodyweight.CompletedWorkouts)
	assert.Empty(t, state.Dumbbell.CompletedWorkouts)
}

func TestDeserialize_PartialBlob(t *testing.T) {
	// A blob missing whole profiles still loads what it has.
	blob := []byte(`{
		"activeProgramType": "dumbbell",
		"dumbbellProfile": {"startDate": "2026-01-05"}
	}`)
	state := Deserialize(blob)
	assert.Equal(t, models.ProgramDumbbell, state.ActiveProgram)
	assert.Equal(t, "2026-01-05", state.Dumbbell.StartDate)
	assert.Empty(t, state.Bodyweight.StartDate)
}

func TestDeserialize_InvalidFieldsDropped(t *testing.T) {
	// Bad fields are dropped one at a time, not the whole profile.
	blob := []byte(`{
		"activeProgramType": "bodyweight",
		"bodyweightProfile": {
			"startDate": "2026-01-05",
			"completedWorkouts": "definitely not an array",
			"totalTimeTrainedMinutes": 120
		}
	}`)
	state := Deserialize(blob)
	assert.Equal(t, "2026-01-05", state.Bodyweight.StartDate)
	assert.Nil(t, state.Bodyweight.CompletedWorkouts)
	assert.Equal(t, 120, state.Bodyweight.TotalTimeTrainedMinutes)
}

func TestDeserialize_UnknownProgramDropped(t *testing.T) {
	blob := []byte(`{"activeProgramType": "crossfit"}`)
	state := Deserialize(blob)
	assert.Empty(t, state.ActiveProgram)
}

func TestDeserialize_UnknownKeysIgnored(t *testing.T) {
	blob := []byte(`{
		"activeProgramType": "bodyweight",
		"futureFeature": {"nested": true},
		"bodyweightProfile": {"startDate": "2026-01-05", "somethingNew": 7}
	}`)
	state := Deserialize(blob)
	assert.Equal(t, models.ProgramBodyweight, state.ActiveProgram)
	assert.Equal(t, "2026-01-05", state.Bodyweight.StartDate)
}

func TestSerialize_OmitsAbsentWeight(t *testing.T) {
	s := NewStore()
	s.state.ActiveProgram = models.ProgramBodyweight
	s.state.Bodyweight.CompletedWorkouts = []models.WorkoutRecord{
		{
			ID:      "w1",
			Program: models.ProgramBodyweight,
			Exercises: []models.RecordedExercise{
				{Name: "Push Ups", Sets: []models.RecordedSet{{Reps: "12"}}},
			},
		},
	}

	data, err := s.Serialize()
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"weight"`, "weightless sets never serialize a weight key")

	state := Deserialize(data)
	require.Len(t, state.Bodyweight.CompletedWorkouts, 1)
	assert.Nil(t, state.Bodyweight.CompletedWorkouts[0].Exercises[0].Sets[0].Weight)
}
