package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

var cardioDate string

var cardioCmd = &cobra.Command{
	Use:   "cardio",
	Short: "Toggle the daily 30-min fasted cardio for today (or --date)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, prof, err := openProfiles()
		if err != nil {
			return err
		}

		date := cardioDate
		if date == "" {
			date = utils.DateString(todayDate())
		} else if _, err := utils.ParseDate(date); err != nil {
			return fmt.Errorf("Invalid date %q (want YYYY-MM-DD)", date)
		}

		if err := prof.ToggleCardio(date); err != nil {
			return fmt.Errorf("Failed to toggle cardio: %w", err)
		}
		if err := prof.Save(st); err != nil {
			return err
		}

		if prof.IsCardioCompletedOn(date) {
			fmt.Printf("✅ Cardio marked done for %s\n", date)
		} else {
			fmt.Printf("Cardio unmarked for %s\n", date)
		}
		return nil
	},
}

func init() {
	cardioCmd.Flags().StringVar(&cardioDate, "date", "", "Date to toggle (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(cardioCmd)
}
