// Package catalog holds the immutable definitions of the two 12-week home
// training programs. The data never changes at runtime; callers receive
// pointers into it and must copy before mutating (ResolvedWorkout.Clone).
package catalog

import (
	"fmt"

	"github.com/ferro-praxis/12week-training-program/internal/models"
)

// CardioReminder is surfaced on every rest day.
const CardioReminder = "Complete 30 minutes fasted cardio (optional)"

var programs = map[models.ProgramID]*models.ProgramDefinition{
	models.ProgramBodyweight: &bodyweightProgram,
	models.ProgramDumbbell:   &dumbbellProgram,
}

// Get returns the program definition for id.
func Get(id models.ProgramID) (*models.ProgramDefinition, error) {
	p, ok := programs[id]
	if !ok {
		return nil, fmt.Errorf("unknown program %q", id)
	}
	return p, nil
}

// All returns both program definitions in a stable order.
func All() []*models.ProgramDefinition {
	return []*models.ProgramDefinition{&bodyweightProgram, &dumbbellProgram}
}

// BandFor returns the exercise band covering the given week.
func BandFor(p *models.ProgramDefinition, week int) (*models.ExerciseBand, error) {
	for i := range p.Bands {
		b := &p.Bands[i]
		if week >= b.FromWeek && week <= b.ToWeek {
			return b, nil
		}
	}
	return nil, fmt.Errorf("program %s has no exercise band for week %d", p.ID, week)
}
