package cmd

import (
	"fmt"

	"github.com/ferro-praxis/12week-training-program/internal/catalog"
	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/spf13/cobra"
)

var selectProgramCmd = &cobra.Command{
	Use:     "select-program [bodyweight|dumbbell]",
	Aliases: []string{"switch-program"},
	Short:   "Select (or switch to) a training program without losing either program's progress",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := models.ProgramID(args[0])
		if !id.Valid() {
			return fmt.Errorf("Unknown program %q (want bodyweight or dumbbell)", args[0])
		}

		st, prof, err := openProfiles()
		if err != nil {
			return err
		}

		if err := prof.Select(id); err != nil {
			return fmt.Errorf("Failed to select program: %w", err)
		}
		if err := prof.Save(st); err != nil {
			return err
		}

		def, _ := catalog.Get(id)
		p, _ := prof.ProfileFor(id)
		fmt.Printf("✅ Active program: %s\n", def.Name)
		fmt.Printf("   Started %s • %d of %d workouts completed\n",
			p.StartDate, len(p.CompletedWorkouts), def.TotalWorkouts)

		if other := prof.InactiveProgress(); other != nil {
			fmt.Printf("   (%s progress is kept: %d of %d)\n", other.Name, other.Completed, other.Total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectProgramCmd)
}
