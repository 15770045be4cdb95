package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferro-praxis/12week-training-program/internal/models"
	"github.com/ferro-praxis/12week-training-program/internal/utils"
)

// calendarDetails is a flag to enable verbose workout details.
var calendarDetails bool

// calendarCmd prints a month grid of the active program's activity: days
// with a completed workout, days with cardio only, and a legend below.
// If the --details (or -d) flag is set, each workout of the month is listed.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training and cardio days for the active program",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		_, prof, err := openProfiles()
		if err != nil {
			return err
		}
		_, p, err := activeProgram(prof)
		if err != nil {
			return err
		}

		// Group activity by day of the requested month.
		workoutsByDay := make(map[int][]models.WorkoutRecord)
		cardioDays := make(map[int]bool)
		for _, w := range p.CompletedWorkouts {
			if d, err := utils.ParseDate(w.Date); err == nil && d.Year() == year && d.Month() == month {
				workoutsByDay[d.Day()] = append(workoutsByDay[d.Day()], w)
			}
		}
		for _, c := range p.CardioLog {
			if !c.Completed {
				continue
			}
			if d, err := utils.ParseDate(c.Date); err == nil && d.Year() == year && d.Month() == month {
				cardioDays[d.Day()] = true
			}
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			switch {
			case len(workoutsByDay[day]) > 0:
				dayStr = green(dayStr + "*")
			case cardioDays[day]:
				dayStr = cyan(dayStr + "*")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		fmt.Printf("  %s: workout completed\n", green("██"))
		fmt.Printf("  %s: cardio only\n", cyan("██"))

		if calendarDetails {
			fmt.Println("\nWorkout Details:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, w := range workoutsByDay[day] {
					fmt.Printf("  Week %d - %s (%s)\n", w.Week, w.WorkoutName, formatDuration(w.Duration))
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&calendarDetails, "details", "d", false, "Print additional workout details")
}
