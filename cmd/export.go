package cmd

import (
	"fmt"
	"os"

	"github.com/ashwin/studytrack/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all subjects and sessions as JSON",
	Long: "Export the full collection, archived subjects included, as a " +
		"single JSON document. Writes to stdout unless a file is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		w := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := store.Export(w, t.Subjects()); err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Fprintf(os.Stderr, "Exported %d subjects to %s\n", len(t.Subjects()), args[0])
		}
		return nil
	},
}
