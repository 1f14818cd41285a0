package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/minsu-k/go-lol-metrics/internal/benchmark"
	"github.com/minsu-k/go-lol-metrics/internal/model"
	"github.com/minsu-k/go-lol-metrics/internal/profiler"
	"github.com/minsu-k/go-lol-metrics/internal/report"
	"github.com/minsu-k/go-lol-metrics/internal/storage"
)

var (
	profilePUUID   string
	profileTier    string
	profileName    string
	profileWorkers int
)

var profileCmd = &cobra.Command{
	Use:   "profile [matches-dir]",
	Short: "Build a playstyle profile from a directory of match exports",
	Long: `Build a playstyle profile from the match JSON files in a directory
and store it. Without a directory argument, shows the stored profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profilePUUID, "puuid", "", "player PUUID to profile (required)")
	profileCmd.Flags().StringVar(&profileTier, "tier", "GOLD", "ranked tier for trait benchmarks (e.g. \"DIAMOND IV\")")
	profileCmd.Flags().StringVar(&profileName, "name", "", "summoner name for the profile header")
	profileCmd.Flags().IntVar(&profileWorkers, "workers", 0, "parallel match loaders (0 = number of CPUs)")
	profileCmd.MarkFlagRequired("puuid")
}

func runProfile(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if len(args) == 0 {
		p, err := db.GetProfile(profilePUUID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			return fmt.Errorf("no stored profile for %s; run 'lolmetrics profile <matches-dir> --puuid %s' first", profilePUUID, profilePUUID)
		}
		report.PrintProfile(os.Stdout, p)
		return nil
	}

	paths, err := filepath.Glob(filepath.Join(args[0], "*.json"))
	if err != nil {
		return fmt.Errorf("scan matches dir: %w", err)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return fmt.Errorf("no .json files in %s", args[0])
	}

	extracts, err := profiler.AnalyzeBatch(cmd.Context(), paths, profilePUUID, profileWorkers, log)
	if err != nil {
		return fmt.Errorf("extract matches: %w", err)
	}
	log.Info().Int("files", len(paths)).Int("games", len(extracts)).Msg("matches extracted")

	tier, ok := model.ParseTier(profileTier)
	if !ok {
		log.Warn().Str("tier", profileTier).Msg("unknown tier, using GOLD benchmarks")
	}

	name := profileName
	if name == "" {
		name = profilePUUID
	}
	p := profiler.ProfilePlaystyle(extracts, tier, profileTier, name, benchmark.DefaultTables())

	if err := db.SaveProfile(profilePUUID, &p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	report.PrintProfile(os.Stdout, &p)
	return nil
}
