package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/session"
)

var skipNoRest bool

var skipSetCmd = &cobra.Command{
	Use:   "skip-set",
	Short: "Skip the current set without recording it",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := resumeSession()
		if err != nil {
			return err
		}

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

		if err := engine.SkipSet(); err != nil {
			return fmt.Errorf("Failed to skip set: %w", err)
		}
		fmt.Println("⏭  Set skipped")

		if engine.Phase() == session.PhaseFinished {
			return finishWorkout(engine)
		}

		if engine.Resting() {
			if skipNoRest {
				engine.SkipRest()
			} else {
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

func init() {
	skipSetCmd.Flags().BoolVar(&skipNoRest, "no-rest", false, "Skip the rest countdown")
	rootCmd.AddCommand(skipSetCmd)
}
