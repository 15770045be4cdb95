package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/schedule"
	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's workout (or rest day) for the active program",
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
		week, day := schedule.ResolveWeekAndDay(start, now, def.TotalWeeks)
		workout, err := schedule.ResolveWorkout(def, week, day)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s • Week %d of %d\n\n", programLabel(def.ID), week, def.TotalWeeks)

		if workout.Type == models.WorkoutTypeRest {
			blue := color.New(color.FgBlue, color.Bold).SprintFunc()
			fmt.Println(blue("Rest Day"))
			fmt.Println("Recovery is just as important as training.")
			fmt.Printf("  %s\n", workout.CardioReminder)
			if prof.IsCardioCompletedOn(utils.DateString(now)) {
				fmt.Println(color.GreenString("  ✅ Cardio done today"))
			}
			return nil
		}

		fmt.Printf("%s — %s\n", bold("Workout "+workout.Key), workout.Name)
		fmt.Printf("%d exercises × %d sets, %ds rest\n", len(workout.Exercises), workout.Sets, def.RestPeriod)
		if workout.IsDeload {
			fmt.Println(color.MagentaString("Deload Week - Lower Volume"))
		}
		fmt.Println()
		for i, ex := range workout.Exercises {
			fmt.Printf("  %d. %s — %s reps", i+1, bold(ex.Name), ex.Reps)
			if ex.Tempo != "Standard" {
				fmt.Printf(" (%s)", ex.Tempo)
			}
			fmt.Println()
		}

		if prof.IsWorkoutCompletedOn(utils.DateString(now)) {
			fmt.Println(color.GreenString("\n✅ Workout completed today"))
		} else {
			fmt.Println("\nRun 'homegains start-workout' when ready.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
