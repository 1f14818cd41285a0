package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minsu-k/go-lol-metrics/internal/report"
	"github.com/minsu-k/go-lol-metrics/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the database. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	cGreeting.Println("lolmetrics shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("lolmetrics")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "list":
			shellList(db, args)
		case "show":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: show <match-id-prefix> [--puuid <puuid>]")
				continue
			}
			prefix := args[0]
			var puuid string
			for i := 1; i+1 < len(args); i++ {
				if args[i] == "--puuid" {
					puuid = args[i+1]
				}
			}
			shellShow(db, prefix, puuid)
		case "profile":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: profile <puuid>")
				continue
			}
			shellProfile(db, args[0])
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q — type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"list [<puuid>]", "list stored match reports"},
		{"show <match-id-prefix>", "show a stored decision report"},
		{"show <match-id-prefix> --puuid <id>", "same, for a specific stored player"},
		{"profile <puuid>", "show a stored playstyle profile"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-38s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellList(db *storage.DB, args []string) {
	puuid := ""
	if len(args) > 0 {
		puuid = args[0]
	}
	matches, err := db.ListMatches(puuid)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		cMuted.Println("No reports stored yet.")
		return
	}
	cHeader.Fprintf(os.Stdout, "%-16s  %-14s  %-8s  %-7s  %-8s  %s\n",
		"MATCH", "CHAMPION", "ROLE", "RESULT", "K/D/A", "RANK")
	cMuted.Fprintf(os.Stdout, "%-16s  %-14s  %-8s  %-7s  %-8s  %s\n",
		"────────────────", "──────────────", "────────", "───────", "────────", "────")
	for _, m := range matches {
		result := "loss"
		if m.Win {
			result = "win"
		}
		kda := fmt.Sprintf("%d/%d/%d", m.Kills, m.Deaths, m.Assists)
		fmt.Fprintf(os.Stdout, "%-16s  %-14s  %-8s  %-7s  %-8s  %s\n",
			m.MatchID, m.Champion, m.Role, result, kda, m.Rank)
	}
}

func shellShow(db *storage.DB, prefix, puuid string) {
	r, err := db.GetReport(prefix, puuid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "no report found with prefix %q\n", prefix)
		return
	}
	report.PrintDecisionReport(os.Stdout, r)
}

func shellProfile(db *storage.DB, puuid string) {
	p, err := db.GetProfile(puuid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if p == nil {
		fmt.Fprintf(os.Stderr, "no stored profile for %s\n", puuid)
		return
	}
	report.PrintProfile(os.Stdout, p)
}
