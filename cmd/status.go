package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/schedule"
	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show program progress: completion, streak, time trained, week type",
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
		weekType := "Build"
		if schedule.IsDeloadWeek(week) {
			weekType = "Deload"
		}
		pct, err := prof.ProgressPercentage(def.ID)
		if err != nil {
			return err
		}

		printBoxedHeader("STATUS")
		printMetric("Program", def.Name)
		printMetric("Week", fmt.Sprintf("%d of %d (%s)", week, def.TotalWeeks, weekType))
		printMetric("Completed", fmt.Sprintf("%d of %d workouts (%d%%)", len(p.CompletedWorkouts), def.TotalWorkouts, pct))
		printMetric("This week", fmt.Sprintf("%d of %d workouts", prof.WorkoutsThisWeek(now), def.WorkoutsPerWeek))
		printMetric("Day streak", prof.Streak(now))
		printMetric("Time trained", formatDuration(p.TotalTimeTrainedMinutes))
		printMetric("Start date", p.StartDate)

		if other := prof.InactiveProgress(); other != nil {
			fmt.Println()
			header := color.New(color.FgGreen, color.Bold).Sprintf("%s (inactive):", other.Name)
			fmt.Println(header)
			fmt.Printf("  %d of %d workouts (%d%%)\n", other.Completed, other.Total, other.Percentage)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
