package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/schedule"
	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show this program week's 7-day schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, prof, err := openProfiles()
		if err != nil {
			return err
		}
		def, p, err := activeProgram(prof)
		if err != nil {
			return err
		}
		if !p.Started() {
			return fmt.Errorf("Program %s has not been started yet", def.ID)
		}

		start, err := utils.ParseDate(p.StartDate)
		if err != nil {
			return fmt.Errorf("Failed to parse start date: %w", err)
		}

		now := todayDate()
		week, _ := schedule.ResolveWeekAndDay(start, now, def.TotalWeeks)
		days, err := schedule.WeekSchedule(def, start, now)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		blue := color.New(color.FgBlue).SprintFunc()
		fmt.Printf("Week %d of %d — %s\n\n", week, def.TotalWeeks, def.Name)

		for _, day := range days {
			marker := " "
			if prof.IsWorkoutCompletedOn(day.Date) {
				marker = color.GreenString("✔")
			} else if day.IsToday {
				marker = color.New(color.FgYellow, color.Bold).Sprint("▶")
			}

			if day.Workout.Type == models.WorkoutTypeRest {
				fmt.Printf(" %s %s %s  %s\n", marker, day.DayName, day.Date, blue("Rest Day"))
			} else {
				fmt.Printf(" %s %s %s  %s — %s\n", marker, day.DayName, day.Date,
					bold("Workout "+day.Workout.Key), day.Workout.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
