package cmd

import (
	"fmt"

	"github.com/ashwin/studytrack/internal/levels"
	"github.com/ashwin/studytrack/internal/subject"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects with level and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		archived, _ := cmd.Flags().GetBool("archived")
		var subjects []subject.Subject
		if archived {
			subjects = t.Archived()
		} else {
			subjects = t.Active()
		}

		if len(subjects) == 0 {
			if archived {
				fmt.Println("No archived subjects.")
			} else {
				fmt.Println("No subjects yet. Add one with: studytrack add <name>")
			}
			return nil
		}

		today := t.Today()
		for _, s := range subjects {
			cfg := levels.Config(s.Level)
			mark := " "
			if s.CompletedOn(today) {
				mark = "✓"
			}
			fmt.Printf("%s %-24s level %d  streak %-3d  %d/%d days to next level\n",
				mark, s.Name, s.Level, s.Streak, s.DaysCompleted, cfg.RequiredDays)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("archived", false, "List archived subjects instead of active ones")
}
