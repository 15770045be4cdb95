package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/session"
)

var resetConfirm bool

// resetProgramCmd wipes the active program's history but keeps its start
// date, so the week calendar stays anchored.
var resetProgramCmd = &cobra.Command{
	Use:   "reset-program",
	Short: "Erase the active program's workout history and cardio log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("this erases the active program's history; re-run with --yes to confirm")
		}

		st, prof, err := openProfiles()
		if err != nil {
			return err
		}
		id := prof.ActiveProgram()
		if err := prof.ResetProgram(id); err != nil {
			return err
		}
		if err := prof.Save(st); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s %s program progress has been reset.\n", green("✔"), programLabel(id))
		return nil
	},
}

// resetAllCmd wipes everything: both profiles, the program selection, and
// any in-flight session.
var resetAllCmd = &cobra.Command{
	Use:   "reset-all",
	Short: "Erase all data for both programs and clear the program selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("this erases all data for both programs; re-run with --yes to confirm")
		}

		st, prof, err := openProfiles()
		if err != nil {
			return err
		}
		prof.ResetAll()
		if err := prof.Save(st); err != nil {
			return err
		}
		if session.StateExists() {
			if err := session.ClearState(); err != nil {
				return fmt.Errorf("Failed to clear session state: %w", err)
			}
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s All data has been reset.\n", green("✔"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetProgramCmd)
	rootCmd.AddCommand(resetAllCmd)
	resetProgramCmd.Flags().BoolVarP(&resetConfirm, "yes", "y", false, "Confirm the reset")
	resetAllCmd.Flags().BoolVarP(&resetConfirm, "yes", "y", false, "Confirm the reset")
}
