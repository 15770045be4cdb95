package profile

import (
	"sort"
	"strconv"
	"strings"

	"time"

	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

// Streak counts consecutive activity days ending at today. Workout dates and
// completed-cardio dates are pooled and deduplicated; the chain keeps going
// while each counted day is the same as or exactly one day before the
// previous one, and breaks at the first gap of two or more days.
func (s *Store) Streak(today time.Time) int {
	p, err := s.Active()
	if err != nil {
		return 0
	}

	seen := make(map[string]bool)
	for _, w := range p.CompletedWorkouts {
		seen[w.Date] = true
	}
	for _, c := range p.CardioLog {
		if c.Completed {
			seen[c.Date] = true
		}
	}
	if len(seen) == 0 {
		return 0
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	check := utils.StripTime(today)
	for _, d := range dates {
		day, err := utils.ParseDate(d)
		if err != nil {
			continue
		}
		diff := utils.DaysBetween(day, check)
		if diff == 0 || diff == 1 {
			streak++
			check = day
		} else {
			break
		}
	}
	return streak
}

// WorkoutsThisWeek counts the active profile's records since the most recent
// Sunday, inclusive.
func (s *Store) WorkoutsThisWeek(today time.Time) int {
	p, err := s.Active()
	if err != nil {
		return 0
	}

	startOfWeek := utils.StripTime(today).AddDate(0, 0, -int(today.Weekday()))
	count := 0
	for _, w := range p.CompletedWorkouts {
		d, err := utils.ParseDate(w.Date)
		if err != nil {
			continue
		}
		if !d.Before(startOfWeek) {
			count++
		}
	}
	return count
}

func (s *Store) IsWorkoutCompletedOn(date string) bool {
	p, err := s.Active()
	if err != nil {
		return false
	}
	for _, w := range p.CompletedWorkouts {
		if w.Date == date {
			return true
		}
	}
	return false
}

func (s *Store) IsCardioCompletedOn(date string) bool {
	p, err := s.Active()
	if err != nil {
		return false
	}
	for _, c := range p.CardioLog {
		if c.Date == date && c.Completed {
			return true
		}
	}
	return false
}

// BestEstimatedOneRM returns the highest Epley estimate across every
// weighted set recorded for the named exercise, or 0 when no weighted set
// with countable reps exists. Only meaningful for the dumbbell program.
func (s *Store) BestEstimatedOneRM(exerciseName string) float64 {
	p, err := s.Active()
	if err != nil {
		return 0
	}

	best := 0.0
	for _, w := range p.CompletedWorkouts {
		for _, ex := range w.Exercises {
			if ex.Name != exerciseName {
				continue
			}
			for _, set := range ex.Sets {
				if set.Weight == nil {
					continue
				}
				reps, ok := parseReps(set.Reps)
				if !ok {
					continue
				}
				if est := utils.EstimateOneRM(*set.Weight, reps); est > best {
					best = est
				}
			}
		}
	}
	return best
}

// parseReps extracts a rep count from a recorded value. Range descriptors
// like "10-12" use the lower bound; "To failure" and friends don't count.
func parseReps(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "-+"); i > 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
