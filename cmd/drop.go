package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var dropForce bool

// dropCmd deletes the report database file and its WAL sidecars.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the report database",
	Long:  "Permanently delete the SQLite report database. All stored reports and profiles will be lost. Re-run analyze/profile afterwards to rebuild.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
		return nil
	}

	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete %s. Type 'yes' to confirm: ", dbPath)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(os.Stdout, "Aborted.")
			return nil
		}
	}

	// The store runs in WAL mode, so sidecar files may exist next to
	// the database. Missing sidecars are not an error.
	removed := 0
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		err := os.Remove(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("remove %s: %w", p, err)
		}
		removed++
	}
	fmt.Fprintf(os.Stdout, "Deleted %d file(s) at %s\n", removed, dbPath)
	return nil
}
