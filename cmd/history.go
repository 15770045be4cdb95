package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/profile"
)

// historyLimit caps how many workouts are printed, newest first.
var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed workouts for the active program",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, prof, err := openProfiles()
		if err != nil {
			return err
		}
		program, p, err := activeProgram(prof)
		if err != nil {
			return err
		}

		if len(p.CompletedWorkouts) == 0 {
			fmt.Println("No workouts completed yet.")
			return nil
		}

		printBoxedHeader("HISTORY")
		fmt.Println()

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		// Newest first.
		records := p.CompletedWorkouts
		start := 0
		if historyLimit > 0 && len(records) > historyLimit {
			start = len(records) - historyLimit
		}
		for i := len(records) - 1; i >= start; i-- {
			w := records[i]
			fmt.Printf("%s  %s (week %d, %s)\n", w.Date, bold(w.WorkoutName), w.Week, formatDuration(w.Duration))
			for _, ex := range w.Exercises {
				fmt.Printf("  %s\n", ex.Name)
				for j, set := range ex.Sets {
					line := fmt.Sprintf("    Set %d: %s reps", j+1, set.Reps)
					if set.Weight != nil {
						line += fmt.Sprintf(" @ %.1f lbs", *set.Weight)
					}
					fmt.Println(faint(line))
				}
			}
			if w.Notes != "" {
				fmt.Printf("  Notes: %s\n", faint(w.Notes))
			}
			fmt.Println()
		}

		// Best estimated 1RMs only make sense when weights are tracked.
		if program.TracksWeight {
			names, values := bestOneRMs(prof, p.CompletedWorkouts)
			if len(names) > 0 {
				fmt.Println(bold("Best estimated 1RM:"))
				for _, name := range names {
					fmt.Printf("  %s: %s\n", name, yellow(fmt.Sprintf("%.1f lbs", values[name])))
				}
			}
		}
		return nil
	},
}

// bestOneRMs collects the best estimated one-rep max per exercise, keeping
// the order in which exercises first appear in the history.
func bestOneRMs(prof *profile.Store, records []models.WorkoutRecord) ([]string, map[string]float64) {
	var names []string
	values := make(map[string]float64)
	seen := make(map[string]bool)
	for _, w := range records {
		for _, ex := range w.Exercises {
			if seen[ex.Name] {
				continue
			}
			seen[ex.Name] = true
			if est := prof.BestEstimatedOneRM(ex.Name); est > 0 {
				names = append(names, ex.Name)
				values[ex.Name] = est
			}
		}
	}
	return names, values
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Only show the N most recent workouts")
}
