package cmd

import (
	"fmt"
	"strings"

	"github.com/ashwin/studytrack/internal/levels"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new subject",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		name := strings.Join(args, " ")
		s, err := t.Add(cmd.Context(), name)
		if err != nil {
			return err
		}

		cfg := levels.Config(s.Level)
		fmt.Printf("Added %s at level %d (%d input + %d output minutes per day)\n",
			s.Name, s.Level, cfg.InputMinutes, cfg.OutputMinutes)
		return nil
	},
}
