package cmd

import (
	"fmt"
	"os"

	"github.com/ashwin/studytrack/internal/app"
	"github.com/ashwin/studytrack/internal/store"
	"github.com/ashwin/studytrack/internal/tracker"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the tracker, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	t, closeStore, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	return app.Run(t)
}

// openTracker builds a loaded Tracker for both the TUI and the plain
// CLI subcommands. A failed load is reported on stderr but does not
// abort: the tracker starts from an empty collection.
func openTracker(cmd *cobra.Command) (*tracker.Tracker, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	t := tracker.New(st.SubjectRepo())
	if err := t.Load(cmd.Context()); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load saved subjects:", err)
		fmt.Fprintln(os.Stderr, "Starting with an empty collection.")
	}

	return t, func() { st.Close() }, nil
}
