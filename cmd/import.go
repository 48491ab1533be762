package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ashwin/studytrack/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a collection from a JSON export",
	Long: "Replace the stored collection with one previously written by " +
		"export. The document is validated before anything is touched; " +
		"pass - to read from stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()
			r = f
		}

		subjects, err := store.Import(r)
		if err != nil {
			return err
		}

		t, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		force, _ := cmd.Flags().GetBool("force")
		if len(t.Subjects()) > 0 && !force {
			return fmt.Errorf("import replaces the existing %d subjects; re-run with --force to confirm",
				len(t.Subjects()))
		}

		if err := t.Restore(cmd.Context(), subjects); err != nil {
			return err
		}
		fmt.Printf("Imported %d subjects.\n", len(subjects))
		return nil
	},
}

func init() {
	importCmd.Flags().BoolP("force", "f", false, "Overwrite an existing collection")
}
