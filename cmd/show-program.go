package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/catalog"
	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/schedule"
)

// showProgramWeek selects which week's exercise prescriptions to print.
var showProgramWeek int

var showProgramCmd = &cobra.Command{
	Use:   "show-program [program]",
	Short: "Show a program's structure and exercises for a given week",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var def *models.ProgramDefinition
		if len(args) == 1 {
			id := models.ProgramID(args[0])
			if !id.Valid() {
				return fmt.Errorf("unknown program %q (expected 'bodyweight' or 'dumbbell')", args[0])
			}
			d, err := catalog.Get(id)
			if err != nil {
				return err
			}
			def = d
		} else {
			_, prof, err := openProfiles()
			if err != nil {
				return err
			}
			d, _, err := activeProgram(prof)
			if err != nil {
				return err
			}
			def = d
		}

		week := showProgramWeek
		if week < 1 || week > def.TotalWeeks {
			return fmt.Errorf("week must be between 1 and %d", def.TotalWeeks)
		}

		printBoxedHeader(def.Name)
		fmt.Println()
		fmt.Println(def.Description)
		fmt.Println()
		printMetric("Workouts per week", def.WorkoutsPerWeek)
		printMetric("Rest between sets", fmt.Sprintf("%ds", def.RestPeriod))
		if schedule.IsDeloadWeek(week) {
			printMetric("Week", fmt.Sprintf("%d (Deload: %d sets)", week, schedule.SetsForWeek(week)))
		} else {
			printMetric("Week", fmt.Sprintf("%d (%d sets per exercise)", week, schedule.SetsForWeek(week)))
		}
		fmt.Println()

		band, err := catalog.BandFor(def, week)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		// The weekly schedule lists each workout label once, in order.
		for _, key := range def.WeeklySchedule {
			if key == models.RestSlot {
				continue
			}
			fmt.Printf("%s\n", bold(fmt.Sprintf("Workout %s: %s", key, def.WorkoutNames[key])))
			for _, ex := range band.Workouts[key] {
				fmt.Printf("  %s — %s reps", ex.Name, ex.Reps)
				if ex.Tempo != "" {
					fmt.Printf(" @ %s tempo", ex.Tempo)
				}
				fmt.Println()
				if ex.Instructions != "" {
					fmt.Printf("    %s\n", faint(ex.Instructions))
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showProgramCmd)
	showProgramCmd.Flags().IntVarP(&showProgramWeek, "week", "w", 1, "Week to show exercise prescriptions for (1-12)")
}
