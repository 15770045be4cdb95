package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/ferro-praxis/12week-training-program/internal/catalog"
	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/profile"
	"github.com/ferro-praxis/12week-training-program/internal/session"
	"github.com/ferro-praxis/12week-training-program/internal/storage"
)

// openProfiles opens the blob store and loads the persisted profiles.
func openProfiles() (*storage.Storage, *profile.Store, error) {
	st := storage.NewStorage()
	prof, err := profile.Load(st)
	if err != nil {
		return nil, nil, err
	}
	return st, prof, nil
}

// activeProgram resolves the selected program's definition and profile.
func activeProgram(prof *profile.Store) (*models.ProgramDefinition, *models.Profile, error) {
	id := prof.ActiveProgram()
	if id == "" {
		return nil, nil, fmt.Errorf("No program selected. Run 'homegains select-program' first")
	}
	def, err := catalog.Get(id)
	if err != nil {
		return nil, nil, err
	}
	p, err := prof.ProfileFor(id)
	if err != nil {
		return nil, nil, err
	}
	return def, p, nil
}

// resumeSession rebuilds the active session engine from its state file.
func resumeSession() (*session.Engine, *models.ProgramDefinition, error) {
	if !session.StateExists() {
		return nil, nil, fmt.Errorf("No active workout session")
	}

	state, err := session.LoadState()
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to load session state: %w", err)
	}

	def, err := catalog.Get(state.Program)
	if err != nil {
		return nil, nil, err
	}
	return session.Resume(def, state), def, nil
}

func persistSession(e *session.Engine) error {
	state, err := e.Snapshot()
	if err != nil {
		return err
	}
	if err := session.SaveState(state); err != nil {
		return fmt.Errorf("Failed to save session state: %w", err)
	}
	return nil
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func programLabel(id models.ProgramID) string {
	if id == models.ProgramBodyweight {
		return "Bodyweight"
	}
	return "Dumbbell"
}

func todayDate() time.Time {
	return time.Now()
}

// printPreviousSets shows the most recent recorded sets for an exercise as a
// weight reference. Dumbbell only.
func printPreviousSets(prof *profile.Store, def *models.ProgramDefinition, exerciseName string) {
	if !def.TracksWeight {
		return
	}
	sets := prof.PreviousSetsFor(exerciseName)
	if len(sets) == 0 {
		return
	}

	gray := color.New(color.Faint).SprintFunc()
	parts := make([]string, 0, len(sets))
	for _, set := range sets {
		if set.Weight != nil {
			parts = append(parts, fmt.Sprintf("%.1f lbs × %s", *set.Weight, set.Reps))
		} else {
			parts = append(parts, fmt.Sprintf("? lbs × %s", set.Reps))
		}
	}
	fmt.Printf("  %s %s\n", gray("Last workout:"), strings.Join(parts, ", "))
}
