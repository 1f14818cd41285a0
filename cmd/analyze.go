package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minsu-k/go-lol-metrics/internal/analyzer"
	"github.com/minsu-k/go-lol-metrics/internal/benchmark"
	"github.com/minsu-k/go-lol-metrics/internal/model"
	"github.com/minsu-k/go-lol-metrics/internal/parser"
	"github.com/minsu-k/go-lol-metrics/internal/report"
	"github.com/minsu-k/go-lol-metrics/internal/riot"
	"github.com/minsu-k/go-lol-metrics/internal/storage"
)

var (
	analyzePUUID string
	analyzeTier  string
	analyzeFresh bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <match.json> <timeline.json>",
	Short: "Analyze one match export and store the decision report",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzePUUID, "puuid", "", "player PUUID to focus on (required)")
	analyzeCmd.Flags().StringVar(&analyzeTier, "tier", "GOLD", "ranked tier for stat benchmarks (e.g. \"PLATINUM II\")")
	analyzeCmd.Flags().BoolVar(&analyzeFresh, "fresh", false, "re-analyze even if a stored report exists")
	analyzeCmd.MarkFlagRequired("puuid")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	matchPath, timelinePath := args[0], args[1]
	log := newLogger()

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	m, err := riot.LoadMatch(matchPath)
	if err != nil {
		return fmt.Errorf("load match: %w", err)
	}

	if !analyzeFresh {
		cached, err := db.GetReport(m.Metadata.MatchID, analyzePUUID)
		if err != nil {
			return fmt.Errorf("check stored report: %w", err)
		}
		if cached != nil {
			fmt.Fprintf(os.Stdout, "Match %s already analyzed, showing stored report.\n", m.Metadata.MatchID)
			report.PrintDecisionReport(os.Stdout, cached)
			return nil
		}
	}

	tl, err := riot.LoadTimeline(timelinePath)
	if err != nil {
		return fmt.Errorf("load timeline: %w", err)
	}

	raw, err := parser.Flatten(m, tl, log)
	if err != nil {
		return fmt.Errorf("flatten match: %w", err)
	}

	p := raw.ParticipantByPUUID(analyzePUUID)
	if p == nil {
		return fmt.Errorf("puuid %s not found in match %s", analyzePUUID, raw.MatchID)
	}

	tier, ok := model.ParseTier(analyzeTier)
	if !ok {
		log.Warn().Str("tier", analyzeTier).Msg("unknown tier, using GOLD benchmarks")
	}

	r, err := analyzer.Analyze(raw, p.ID, tier, analyzeTier, benchmark.DefaultTables())
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if err := db.SaveReport(analyzePUUID, r); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	report.PrintDecisionReport(os.Stdout, r)
	return nil
}
