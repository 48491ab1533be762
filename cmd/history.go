package cmd

import (
	"fmt"
	"strconv"

	"github.com/ashwin/studytrack/internal/activity"
	"github.com/ashwin/studytrack/internal/ui/components"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [year]",
	Short: "Print the activity calendar for a year",
	Long: "Print the calendar heat-map of study activity. Defaults to the " +
		"most recent year with logged sessions.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		years := activity.Aggregate(t.Subjects())
		order := activity.ActiveYears(years)
		if len(order) == 0 {
			fmt.Println("No activity yet. Log a session with: studytrack log <subject> <input> <output>")
			return nil
		}

		year := order[0]
		if len(args) == 1 {
			year, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %q", args[0])
			}
		}

		ya, ok := years[year]
		if !ok || !ya.HasActivity {
			fmt.Printf("No activity in %d. Years with activity: %v\n", year, order)
			return nil
		}

		fmt.Printf("%d\n\n", year)
		fmt.Println(components.YearGrid(ya))
		fmt.Println(components.HeatLegend())
		return nil
	},
}
