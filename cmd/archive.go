package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <subject>",
	Short: "Archive a subject, keeping its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		s, err := t.Find(args[0])
		if err != nil {
			return err
		}

		changed, err := t.Archive(cmd.Context(), s.ID)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Printf("%s is already archived.\n", s.Name)
			return nil
		}
		fmt.Printf("Archived %s. Its sessions stay on the activity calendar.\n", s.Name)
		return nil
	},
}
