package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var setNoteCmd = &cobra.Command{
	Use:   "set-note [note...]",
	Short: "Attach free-text notes to the current workout session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := resumeSession()
		if err != nil {
			return err
		}

		if err := engine.SetNotes(strings.Join(args, " ")); err != nil {
			return fmt.Errorf("Failed to set note: %w", err)
		}
		if err := persistSession(engine); err != nil {
			return err
		}

		fmt.Println("✅ Note saved to session")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setNoteCmd)
}
