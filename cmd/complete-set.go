package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/session"
)

var (
	setReps    string
	setWeight  string
	setNoRest  bool
	setAddRest int
)

var completeSetCmd = &cobra.Command{
	Use:   "complete-set",
	Short: "Complete the current set, then run the rest countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := resumeSession()
		if err != nil {
			return err
		}

		before, ok := engine.CurrentExercise()
		if !ok {
			return fmt.Errorf("No current exercise")
		}
		setNo := engine.SetNumber()

		if setWeight != "" {
			if err := engine.SetWeightInput(setWeight); err != nil {
				return err
			}
		}

		// Rest-complete feedback: countdown on the terminal, bell at zero.
		done := make(chan struct{})
		engine.SetNotifier(
			func(remaining int) {
				fmt.Printf("\r  Resting: %s  ", formatClock(remaining))
			},
			func() {
				fmt.Print("\a\r  Rest complete!     \n")
				close(done)
			},
		)

		if err := engine.CompleteSet(setReps); err != nil {
			return fmt.Errorf("Failed to complete set: %w", err)
		}
		fmt.Printf("✅ Completed %s set %d of %d\n", before.Name, setNo, before.Sets)

		if engine.Phase() == session.PhaseFinished {
			return finishWorkout(engine)
		}

		if engine.Resting() {
			if setNoRest {
				engine.SkipRest()
			} else {
				if setAddRest > 0 {
					engine.AddRestTime(setAddRest)
				}
				<-done
			}
		}

		if err := persistSession(engine); err != nil {
			return err
		}
		printNextUp(engine)
		return nil
	},
}

// finishWorkout records the completed session into the active profile and
// clears the session state file.
func finishWorkout(engine *session.Engine) error {
	rec, err := engine.Record()
	if err != nil {
		return err
	}

	st, prof, err := openProfiles()
	if err != nil {
		return err
	}
	if err := prof.RecordWorkout(*rec); err != nil {
		return fmt.Errorf("Failed to record workout: %w", err)
	}
	if err := prof.Save(st); err != nil {
		return err
	}
	if err := session.ClearState(); err != nil {
		return fmt.Errorf("Failed to clear session: %w", err)
	}

	sets := 0
	for _, ex := range rec.Exercises {
		sets += len(ex.Sets)
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Println(green("\n🏆 Workout Complete!"))
	printMetric("Duration", formatDuration(rec.Duration))
	printMetric("Exercises", len(rec.Exercises))
	printMetric("Sets", sets)
	return nil
}

func printNextUp(engine *session.Engine) {
	ex, ok := engine.CurrentExercise()
	if !ok {
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("Next: %s — %s reps, set %d of %d\n", bold(ex.Name), ex.Reps, engine.SetNumber(), ex.Sets)
}

func init() {
	completeSetCmd.Flags().StringVarP(&setReps, "reps", "r", "", "Reps actually performed (defaults to the exercise target)")
	completeSetCmd.Flags().StringVarP(&setWeight, "weight", "w", "", "Weight used for this set (dumbbell program)")
	completeSetCmd.Flags().BoolVar(&setNoRest, "no-rest", false, "Skip the rest countdown")
	completeSetCmd.Flags().IntVar(&setAddRest, "add-rest", 0, "Extra rest seconds on top of the configured period")
	rootCmd.AddCommand(completeSetCmd)
}
