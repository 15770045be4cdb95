package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/schedule"
	"github.com/ferro-praxis/12week-training-program/internal/session"
	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

var startForce bool

var startWorkoutCmd = &cobra.Command{
	Use:   "start-workout",
	Short: "Start today's workout session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if session.StateExists() {
			return fmt.Errorf("A workout session is already active (finish or cancel it first)")
		}

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
		if prof.IsWorkoutCompletedOn(utils.DateString(now)) && !startForce {
			return fmt.Errorf("Today's workout is already completed (use --force to repeat it)")
		}

		week, day := schedule.ResolveWeekAndDay(start, now, def.TotalWeeks)
		workout, err := schedule.ResolveWorkout(def, week, day)
		if err != nil {
			return err
		}
		if workout.Type == models.WorkoutTypeRest {
			return fmt.Errorf("Today is a rest day, no workout to start")
		}

		engine := session.New()
		if err := engine.Start(def, week, workout); err != nil {
			return fmt.Errorf("Failed to start workout: %w", err)
		}
		if err := persistSession(engine); err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("✅ Started %s — %s (week %d)\n", bold("Workout "+workout.Key), workout.Name, week)
		if workout.IsDeload {
			fmt.Println(color.MagentaString("   Deload week: %d sets per exercise", workout.Sets))
		}

		first := workout.Exercises[0]
		fmt.Printf("\nFirst up: %s — %s reps, set 1 of %d\n", bold(first.Name), first.Reps, first.Sets)
		if first.Instructions != "" {
			fmt.Printf("  %s\n", first.Instructions)
		}
		printPreviousSets(prof, def, first.Name)
		return nil
	},
}

func init() {
	startWorkoutCmd.Flags().BoolVar(&startForce, "force", false, "Start even if today's workout is already completed")
	rootCmd.AddCommand(startWorkoutCmd)
}
