// Package main is the entry point for the lolmetrics CLI tool, which
// analyzes Riot match/timeline exports and computes decision-quality
// reports and playstyle profiles.
package main

import "github.com/minsu-k/go-lol-metrics/cmd"

func main() {
	cmd.Execute()
}
