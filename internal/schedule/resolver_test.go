package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferro-praxis/12week-training-program/internal/catalog"
	"github.com/ferro-praxis/12week-training-program/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSetsForWeek_Cycle(t *testing.T) {
	expected := map[int]int{
		1: 5, 2: 6, 3: 6, 4: 3,
		5: 5, 6: 6, 7: 6, 8: 3,
		9: 5, 10: 6, 11: 6, 12: 3,
	}
	for week, sets := range expected {
		assert.Equal(t, sets, SetsForWeek(week), "week %d", week)
	}
}

func TestIsDeloadWeek(t *testing.T) {
	for week := 1; week <= 12; week++ {
		want := week == 4 || week == 8 || week == 12
		assert.Equal(t, want, IsDeloadWeek(week), "week %d", week)
	}
}

func TestResolveWeekAndDay(t *testing.T) {
	start := date(2026, time.March, 2)

	week, day := ResolveWeekAndDay(start, start, 12)
	assert.Equal(t, 1, week, "start date falls in week 1")
	assert.Equal(t, 0, day)

	week, day = ResolveWeekAndDay(start, start.AddDate(0, 0, 6), 12)
	assert.Equal(t, 1, week)
	assert.Equal(t, 6, day)

	week, day = ResolveWeekAndDay(start, start.AddDate(0, 0, 7), 12)
	assert.Equal(t, 2, week, "day 7 rolls into week 2")
	assert.Equal(t, 0, day)

	// Advancing 7 days always advances exactly one week until the clamp.
	for d := 0; d < 77; d += 7 {
		week, _ = ResolveWeekAndDay(start, start.AddDate(0, 0, d), 12)
		assert.Equal(t, d/7+1, week, "offset %d days", d)
	}
}

func TestResolveWeekAndDay_Clamps(t *testing.T) {
	start := date(2026, time.March, 2)

	// Past the end of the program the final week is shown indefinitely.
	week, _ := ResolveWeekAndDay(start, start.AddDate(0, 0, 12*7+30), 12)
	assert.Equal(t, 12, week)

	// A start date in the future never yields week 0 or a negative day.
	week, day := ResolveWeekAndDay(start, start.AddDate(0, 0, -10), 12)
	assert.Equal(t, 1, week)
	assert.Equal(t, 0, day)
}

func TestResolveWorkout_Dumbbell(t *testing.T) {
	def, err := catalog.Get(models.ProgramDumbbell)
	require.NoError(t, err)

	// Monday of week 2 is workout "2": a build week with 6 sets.
	workout, err := ResolveWorkout(def, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, models.WorkoutTypeWorkout, workout.Type)
	assert.Equal(t, "2", workout.Key)
	assert.Equal(t, 6, workout.Sets)
	assert.False(t, workout.IsDeload)
	require.Len(t, workout.Exercises, 4)
	for _, ex := range workout.Exercises {
		assert.Equal(t, 6, ex.Sets)
		assert.Equal(t, 60, ex.RestPeriod)
	}
}

func TestResolveWorkout_RestDay(t *testing.T) {
	def, err := catalog.Get(models.ProgramBodyweight)
	require.NoError(t, err)

	// Tuesday is a rest day on the bodyweight schedule.
	workout, err := ResolveWorkout(def, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, models.WorkoutTypeRest, workout.Type)
	assert.Empty(t, workout.Exercises)
	assert.Equal(t, catalog.CardioReminder, workout.CardioReminder)
}

func TestResolveWorkout_DeloadWeek(t *testing.T) {
	def, err := catalog.Get(models.ProgramBodyweight)
	require.NoError(t, err)

	workout, err := ResolveWorkout(def, 4, 0)
	require.NoError(t, err)
	assert.True(t, workout.IsDeload)
	assert.Equal(t, 3, workout.Sets)
}

func TestResolveWorkout_BandBoundaries(t *testing.T) {
	def, err := catalog.Get(models.ProgramBodyweight)
	require.NoError(t, err)

	w4, err := ResolveWorkout(def, 4, 0)
	require.NoError(t, err)
	w5, err := ResolveWorkout(def, 5, 0)
	require.NoError(t, err)
	assert.NotEqual(t, w4.Exercises[0].Name, w5.Exercises[0].Name,
		"weeks 5-8 progress to harder variations")

	w8, err := ResolveWorkout(def, 8, 0)
	require.NoError(t, err)
	w9, err := ResolveWorkout(def, 9, 0)
	require.NoError(t, err)
	assert.NotEqual(t, w8.Exercises[0].Name, w9.Exercises[0].Name,
		"weeks 9-12 progress again")
}

func TestResolveWorkout_DayOutOfRange(t *testing.T) {
	def, err := catalog.Get(models.ProgramBodyweight)
	require.NoError(t, err)

	_, err = ResolveWorkout(def, 1, 7)
	assert.Error(t, err)
	_, err = ResolveWorkout(def, 1, -1)
	assert.Error(t, err)
}

func TestWeekSchedule(t *testing.T) {
	def, err := catalog.Get(models.ProgramDumbbell)
	require.NoError(t, err)

	start := date(2026, time.March, 1) // a Sunday
	today := start.AddDate(0, 0, 2)    // Tuesday of week 1

	plans, err := WeekSchedule(def, start, today)
	require.NoError(t, err)
	require.Len(t, plans, 7)

	assert.Equal(t, "Sun", plans[0].DayName)
	assert.Equal(t, "2026-03-01", plans[0].Date)
	assert.Equal(t, "2026-03-07", plans[6].Date)

	todayCount := 0
	for _, p := range plans {
		if p.IsToday {
			todayCount++
			assert.Equal(t, 2, p.DayOfWeek)
		}
	}
	assert.Equal(t, 1, todayCount, "exactly one day is marked as today")

	// Dumbbell schedule: five workouts and two rest days.
	rest := 0
	for _, p := range plans {
		if p.Workout.Type == models.WorkoutTypeRest {
			rest++
		}
	}
	assert.Equal(t, 2, rest)
}
