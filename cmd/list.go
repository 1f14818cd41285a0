package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minsu-k/go-lol-metrics/internal/storage"
)

var listPUUID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored match reports",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listPUUID, "puuid", "", "only list reports for this PUUID")
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	matches, err := db.ListMatches(listPUUID)
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No reports stored yet. Run 'lolmetrics analyze <match.json> <timeline.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-14s  %-8s  %-7s  %-8s  %8s  %s\n",
		"MATCH", "CHAMPION", "ROLE", "RESULT", "K/D/A", "DURATION", "RANK")
	fmt.Fprintf(os.Stdout, "%-16s  %-14s  %-8s  %-7s  %-8s  %8s  %s\n",
		"────────────────", "──────────────", "────────", "───────", "────────", "────────", "────")
	for _, m := range matches {
		result := "loss"
		if m.Win {
			result = "win"
		}
		kda := fmt.Sprintf("%d/%d/%d", m.Kills, m.Deaths, m.Assists)
		dur := fmt.Sprintf("%d:%02d", m.GameDuration/60, m.GameDuration%60)
		fmt.Fprintf(os.Stdout, "%-16s  %-14s  %-8s  %-7s  %-8s  %8s  %s\n",
			m.MatchID, m.Champion, m.Role, result, kda, dur, m.Rank)
	}
	return nil
}
