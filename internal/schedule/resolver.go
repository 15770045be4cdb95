// Package schedule derives "where in the program am I" from calendar dates
// and the static catalog. Everything here is a pure function: identical
// inputs always produce identical outputs and nothing is cached.
package schedule

import (
	"fmt"
	"time"

	"github.com/ferro-praxis/12week-training-program/internal/catalog"
	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

// setsByCycleWeek is the volume progression: three build weeks then a deload.
var setsByCycleWeek = [4]int{5, 6, 6, 3}

// WeekInCycle maps a program week to its position in the 4-week cycle, 1-4.
func WeekInCycle(week int) int {
	return ((week - 1) % 4) + 1
}

// SetsForWeek returns the set count for every exercise in the given week.
func SetsForWeek(week int) int {
	return setsByCycleWeek[WeekInCycle(week)-1]
}

// IsDeloadWeek reports whether week is the reduced-volume 4th cycle week.
func IsDeloadWeek(week int) bool {
	return WeekInCycle(week) == 4
}

// ResolveWeekAndDay computes the program week and day-of-week for today
// given the profile's start date. The week is clamped to [1, totalWeeks]: a
// user past the end of the program sees the final week indefinitely, and a
// start date in the future never yields a week below 1 or a negative day.
func ResolveWeekAndDay(start, today time.Time, totalWeeks int) (week, dayOfWeek int) {
	diffDays := utils.DaysBetween(start, today)

	week = diffDays/7 + 1
	if week < 1 {
		week = 1
	}
	if week > totalWeeks {
		week = totalWeeks
	}

	dayOfWeek = diffDays % 7
	if dayOfWeek < 0 {
		dayOfWeek = 0
	}
	return week, dayOfWeek
}

// ResolveWorkout looks up the concrete workout for a program week and
// day-of-week (0 = Sunday). Rest days yield a rest marker carrying the
// cardio reminder.
func ResolveWorkout(p *models.ProgramDefinition, week, dayOfWeek int) (models.ResolvedWorkout, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return models.ResolvedWorkout{}, fmt.Errorf("day of week %d out of range", dayOfWeek)
	}

	key := p.WeeklySchedule[dayOfWeek]
	if key == models.RestSlot {
		return models.ResolvedWorkout{
			Type:           models.WorkoutTypeRest,
			Name:           "Rest Day",
			CardioReminder: catalog.CardioReminder,
		}, nil
	}

	band, err := catalog.BandFor(p, week)
	if err != nil {
		return models.ResolvedWorkout{}, err
	}
	templates, ok := band.Workouts[key]
	if !ok {
		return models.ResolvedWorkout{}, fmt.Errorf("program %s has no workout %q in weeks %d-%d", p.ID, key, band.FromWeek, band.ToWeek)
	}

	sets := SetsForWeek(week)
	exercises := make([]models.ResolvedExercise, len(templates))
	for i, tmpl := range templates {
		exercises[i] = models.ResolvedExercise{
			ExerciseTemplate: tmpl,
			Sets:             sets,
			RestPeriod:       p.RestPeriod,
		}
	}

	return models.ResolvedWorkout{
		Type:      models.WorkoutTypeWorkout,
		Key:       key,
		Name:      p.WorkoutNames[key],
		Sets:      sets,
		Exercises: exercises,
		IsDeload:  IsDeloadWeek(week),
	}, nil
}

// DayPlan is one entry of the 7-day week view.
type DayPlan struct {
	DayOfWeek int
	DayName   string
	Date      string // YYYY-MM-DD
	Workout   models.ResolvedWorkout
	IsToday   bool
}

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekSchedule resolves all 7 days of the current program week, with the
// calendar date each weekday falls on relative to today.
func WeekSchedule(p *models.ProgramDefinition, start, today time.Time) ([]DayPlan, error) {
	week, currentDay := ResolveWeekAndDay(start, today, p.TotalWeeks)

	plans := make([]DayPlan, 0, 7)
	for dayOfWeek := 0; dayOfWeek < 7; dayOfWeek++ {
		workout, err := ResolveWorkout(p, week, dayOfWeek)
		if err != nil {
			return nil, err
		}
		date := utils.StripTime(today).AddDate(0, 0, dayOfWeek-int(today.Weekday()))
		plans = append(plans, DayPlan{
			DayOfWeek: dayOfWeek,
			DayName:   dayNames[dayOfWeek],
			Date:      utils.DateString(date),
			Workout:   workout,
			IsToday:   dayOfWeek == currentDay,
		})
	}
	return plans, nil
}
