package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the state of the workout session in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, def, err := resumeSession()
		if err != nil {
			return err
		}

		_, prof, err := openProfiles()
		if err != nil {
			return err
		}

		workout := engine.Workout()
		ex, ok := engine.CurrentExercise()
		if !ok {
			return fmt.Errorf("No current exercise")
		}

		bold := color.New(color.Bold).SprintFunc()
		printBoxedHeader("WORKOUT " + workout.Key)
		fmt.Printf("%s (week %d)\n\n", workout.Name, engine.Week())

		completed := engine.CompletedSets()
		doneForCurrent := 0
		for _, s := range completed {
			if s.ExerciseIndex == engine.ExerciseIndex() {
				doneForCurrent++
			}
		}

		fmt.Printf("Exercise %d of %d: %s\n", engine.ExerciseIndex()+1, len(workout.Exercises), bold(ex.Name))
		fmt.Printf("  %s reps • set %d of %d • %ds rest\n", ex.Reps, engine.SetNumber(), ex.Sets, ex.RestPeriod)
		if ex.Instructions != "" {
			fmt.Printf("  %s\n", ex.Instructions)
		}
		if ex.Tempo != "Standard" {
			fmt.Printf("  Tempo: %s\n", ex.Tempo)
		}
		printPreviousSets(prof, def, ex.Name)

		// Completed-set dots for the current exercise.
		fmt.Print("  ")
		for i := 1; i <= ex.Sets; i++ {
			if i <= doneForCurrent {
				fmt.Print(color.GreenString("●"))
			} else {
				fmt.Print("○")
			}
		}
		fmt.Printf("  (%d sets logged in total)\n", len(completed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
