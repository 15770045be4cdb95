package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/session"
)

var nextExCmd = &cobra.Command{
	Use:   "next-ex",
	Short: "Move to the next exercise (resets to set 1, exits resting)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return moveExercise(func(e *session.Engine) error { return e.NextExercise() })
	},
}

var prevExCmd = &cobra.Command{
	Use:   "prev-ex",
	Short: "Move back to the previous exercise (resets to set 1, exits resting)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return moveExercise(func(e *session.Engine) error { return e.PreviousExercise() })
	},
}

func moveExercise(move func(*session.Engine) error) error {
	engine, _, err := resumeSession()
	if err != nil {
		return err
	}

	if err := move(engine); err != nil {
		return fmt.Errorf("Failed to move exercise: %w", err)
	}
	if err := persistSession(engine); err != nil {
		return err
	}

	printNextUp(engine)
	return nil
}

func init() {
	rootCmd.AddCommand(nextExCmd)
	rootCmd.AddCommand(prevExCmd)
}
