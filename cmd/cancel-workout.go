package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/session"
)

var cancelWorkoutCmd = &cobra.Command{
	Use:   "cancel-workout",
	Short: "Cancel the current workout session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := resumeSession()
		if err != nil {
			return err
		}

		if err := engine.Cancel(); err != nil {
			return fmt.Errorf("Failed to cancel workout: %w", err)
		}
		if err := session.ClearState(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		fmt.Println("✅ Workout cancelled, nothing was saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelWorkoutCmd)
}
