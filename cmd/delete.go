package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <subject>",
	Short: "Delete a subject and its entire session history",
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

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("deleting %s removes %d logged sessions permanently; re-run with --force (or use archive to keep the history)",
				s.Name, len(s.Sessions))
		}

		if _, err := t.Delete(cmd.Context(), s.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %s.\n", s.Name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("force", "f", false, "Delete without confirmation")
}
