// Package profile owns the persisted progress state: one Profile per
// program, plus the active-program selector. All mutations go through the
// Store; week/day are always derived from StartDate, never written back.
package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/ferro-praxis/12week-training-program/internal/catalog"
	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/storage"
	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

// BlobName keys the persisted state in the blob store.
const BlobName = "dual_profile"

var ErrNoActiveProgram = errors.New("no program selected")

type Store struct {
	state models.ProfileState
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Load reads the persisted state, recovering whatever fields survive a
// malformed blob.
func Load(blobs storage.BlobStore) (*Store, error) {
	s := NewStore()
	data, ok, err := blobs.GetBlob(BlobName)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	if ok {
		s.state = Deserialize(data)
	}
	return s, nil
}

func (s *Store) Save(blobs storage.BlobStore) error {
	data, err := s.Serialize()
	if err != nil {
		return err
	}
	if err := blobs.PutBlob(BlobName, data); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}
	return nil
}

func (s *Store) ActiveProgram() models.ProgramID {
	return s.state.ActiveProgram
}

// ProfileFor returns the mutable profile for a program id.
func (s *Store) ProfileFor(id models.ProgramID) (*models.Profile, error) {
	switch id {
	case models.ProgramBodyweight:
		return &s.state.Bodyweight, nil
	case models.ProgramDumbbell:
		return &s.state.Dumbbell, nil
	}
	return nil, fmt.Errorf("unknown program %q", id)
}

// Active returns the currently selected program's profile.
func (s *Store) Active() (*models.Profile, error) {
	if s.state.ActiveProgram == "" {
		return nil, ErrNoActiveProgram
	}
	return s.ProfileFor(s.state.ActiveProgram)
}

// Select makes a program active. The first selection of a program stamps its
// start date with today's local date; switching away and back never moves it.
func (s *Store) Select(id models.ProgramID) error {
	p, err := s.ProfileFor(id)
	if err != nil {
		return err
	}
	s.state.ActiveProgram = id
	if !p.Started() {
		p.StartDate = utils.DateString(s.now())
	}
	return nil
}

// RecordWorkout appends the record to its program's profile and accumulates
// trained time.
func (s *Store) RecordWorkout(rec models.WorkoutRecord) error {
	p, err := s.ProfileFor(rec.Program)
	if err != nil {
		return err
	}
	p.CompletedWorkouts = append(p.CompletedWorkouts, rec)
	p.TotalTimeTrainedMinutes += rec.Duration
	return nil
}

// ToggleCardio flips the active profile's cardio entry for date, inserting a
// completed entry if none exists. At most one entry per date is kept.
func (s *Store) ToggleCardio(date string) error {
	p, err := s.Active()
	if err != nil {
		return err
	}
	for i := range p.CardioLog {
		if p.CardioLog[i].Date == date {
			p.CardioLog[i].Completed = !p.CardioLog[i].Completed
			return nil
		}
	}
	p.CardioLog = append(p.CardioLog, models.CardioEntry{Date: date, Completed: true})
	return nil
}

// ResetProgram clears one program's progress. StartDate is kept so the
// derived week/day continue from the original epoch.
func (s *Store) ResetProgram(id models.ProgramID) error {
	p, err := s.ProfileFor(id)
	if err != nil {
		return err
	}
	p.CompletedWorkouts = nil
	p.CardioLog = nil
	p.TotalTimeTrainedMinutes = 0
	return nil
}

// ResetAll wipes both profiles, start dates included, and clears the
// active-program selector, returning the user to onboarding.
func (s *Store) ResetAll() {
	s.state = models.ProfileState{}
}

// ProgressPercentage is completed workouts over the program's total, rounded.
func (s *Store) ProgressPercentage(id models.ProgramID) (int, error) {
	p, err := s.ProfileFor(id)
	if err != nil {
		return 0, err
	}
	def, err := catalog.Get(id)
	if err != nil {
		return 0, err
	}
	return int(float64(len(p.CompletedWorkouts))/float64(def.TotalWorkouts)*100 + 0.5), nil
}

// ProgramProgress summarizes one program for the switcher view.
type ProgramProgress struct {
	Program    models.ProgramID
	Name       string
	Completed  int
	Total      int
	Percentage int
}

// InactiveProgress reports the other program's progress, or nil if that
// program was never started.
func (s *Store) InactiveProgress() *ProgramProgress {
	other := models.ProgramBodyweight
	if s.state.ActiveProgram == models.ProgramBodyweight {
		other = models.ProgramDumbbell
	}
	p, err := s.ProfileFor(other)
	if err != nil || !p.Started() {
		return nil
	}
	def, err := catalog.Get(other)
	if err != nil {
		return nil
	}
	pct, _ := s.ProgressPercentage(other)
	return &ProgramProgress{
		Program:    other,
		Name:       def.Name,
		Completed:  len(p.CompletedWorkouts),
		Total:      def.TotalWorkouts,
		Percentage: pct,
	}
}

// PreviousSetsFor scans the active profile's history newest-first for the
// most recent workout containing the named exercise and returns its recorded
// sets. Read-only; used as a weight reference during a session.
func (s *Store) PreviousSetsFor(exerciseName string) []models.RecordedSet {
	p, err := s.Active()
	if err != nil {
		return nil
	}
	for i := len(p.CompletedWorkouts) - 1; i >= 0; i-- {
		for _, ex := range p.CompletedWorkouts[i].Exercises {
			if ex.Name == exerciseName {
				return ex.Sets
			}
		}
	}
	return nil
}
