package cmd

import (
	"fmt"
	"strconv"

	"github.com/ashwin/studytrack/internal/progress"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <subject> <input-minutes> <output-minutes>",
	Short: "Log a study session for today",
	Long: "Log today's study session for a subject. The subject can be " +
		"named by id, full name, or a unique name prefix.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("input minutes must be a number: %q", args[1])
		}
		output, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("output minutes must be a number: %q", args[2])
		}

		t, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out, err := t.Log(cmd.Context(), args[0], input, output)
		if err != nil {
			return err
		}

		s := out.Subject
		switch {
		case out.Event == progress.EventLevelUp:
			fmt.Printf("Level up! %s is now level %d.\n", s.Name, out.NewLevel)
		case out.Event == progress.EventStreakReset:
			fmt.Printf("Streak reset for %s — back to day 1. Today still counts.\n", s.Name)
		case !out.Session.MeetsRequirement:
			fmt.Printf("Session saved for %s, but it didn't meet the level %d requirement.\n", s.Name, s.Level)
		default:
			fmt.Printf("Day complete for %s — %d day streak.\n", s.Name, s.Streak)
		}
		return nil
	},
}
