package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/minsu-k/go-lol-metrics/internal/model"
)

// PrintReportHeader prints a one-line summary header for the match.
func PrintReportHeader(w io.Writer, r *model.DecisionReport) {
	result := "DEFEAT"
	if r.PlayerInfo.Win {
		result = "VICTORY"
	}
	fmt.Fprintf(w, "\nMatch: %s  |  %s (%s)  |  %s  |  %d/%d/%d  |  %s  |  Rank: %s\n\n",
		r.MatchID, r.PlayerInfo.Champion, r.PlayerInfo.Role, result,
		r.PlayerInfo.Kills, r.PlayerInfo.Deaths, r.PlayerInfo.Assists,
		fmtClock(int64(r.GameDurationSec)*1000), r.PlayerInfo.Rank)
}

// PrintDeathTable prints one row per death with its timing, location
// and classified context.
func PrintDeathTable(w io.Writer, deaths []model.DeathAnalysis) {
	if len(deaths) == 0 {
		fmt.Fprintln(w, "No deaths.")
		return
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("#", "TIME", "LOCATION", "CONTEXT", "ASSISTS", "GOLD_DIFF@-1:00")

	for i, d := range deaths {
		diff := "—"
		if d.GoldDiffBeforeDeath != 0 {
			diff = fmt.Sprintf("%+d", d.GoldDiffBeforeDeath)
		}
		table.Append(
			strconv.Itoa(i+1),
			fmtClock(d.TimestampMs),
			d.LocationType,
			d.DeathContext,
			strconv.Itoa(len(d.AssistIDs)),
			diff,
		)
	}
	table.Render()
}

// PrintObjectiveSummary prints objective participation plus the list of
// elite monsters taken without the player.
func PrintObjectiveSummary(w io.Writer, op model.ObjectiveParticipation) {
	fmt.Fprintf(w, "\nObjectives: %d/%d (%d%%)\n", op.Participated, op.Total, op.ParticipationRate)
	for _, m := range op.MissedObjectives {
		fmt.Fprintf(w, "  missed %s at %s\n", m.Type, fmtClock(m.TimestampMs))
	}
}

// PrintEconomyTable prints gold/CS checkpoints and recall timings.
func PrintEconomyTable(w io.Writer, ge model.GoldEfficiency) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("CHECKPOINT", "GOLD", "GOLD_DIFF", "CS")
	table.Append("10:00", strconv.Itoa(ge.GoldAt10), fmt.Sprintf("%+d", ge.GoldDiffAt10), strconv.Itoa(ge.CSAt10))
	table.Append("15:00", strconv.Itoa(ge.GoldAt15), fmt.Sprintf("%+d", ge.GoldDiffAt15), strconv.Itoa(ge.CSAt15))
	table.Render()

	if len(ge.BackTimings) > 0 {
		fmt.Fprint(w, "Recalls:")
		for _, ts := range ge.BackTimings {
			fmt.Fprintf(w, " %s", fmtClock(ts))
		}
		fmt.Fprintln(w)
	}
}

// PrintVisionSummary prints warding totals split at the 15:00 mark.
func PrintVisionSummary(w io.Writer, vt model.VisionTimeline) {
	fmt.Fprintf(w, "\nVision: %d placed (%d early / %d late), %d cleared\n",
		vt.WardsPlacedTotal, vt.EarlyWardsPlaced, vt.LateWardsPlaced, vt.WardsKilledTotal)
}

// PrintCombatSummary prints fight involvement totals.
func PrintCombatSummary(w io.Writer, cp model.CombatProfile) {
	fmt.Fprintf(w, "Combat: %d dmg dealt, %d taken, %d healed  |  KP %d%%  |  solo kills %d\n",
		cp.DamageDealt, cp.DamageTaken, cp.HealingDone, cp.KillParticipation, cp.SoloKills)
}

// PrintBenchmarkTable prints raw stats next to the adjusted tier
// averages with the -2..+2 verdict per stat.
func PrintBenchmarkTable(w io.Writer, b model.StatBenchmark) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("STAT", "RAW", "TIER_AVG", "VERDICT")
	table.Append("CS/MIN", fmt.Sprintf("%.1f", b.Raw.CSPerMin), fmt.Sprintf("%.1f", b.AdjustedAvg.CSPerMin), verdict(b.CSScore))
	table.Append("KDA", fmt.Sprintf("%.2f", b.Raw.KDA), fmt.Sprintf("%.2f", b.AdjustedAvg.KDA), verdict(b.KDAScore))
	table.Append("VISION", fmt.Sprintf("%.0f", b.Raw.VisionScore), fmt.Sprintf("%.0f", b.AdjustedAvg.VisionScore), verdict(b.VisionScore))
	table.Render()

	if b.Flags.IsRoam || b.Flags.IsDive {
		fmt.Fprint(w, "Champion flags:")
		if b.Flags.IsRoam {
			fmt.Fprint(w, " roam")
		}
		if b.Flags.IsDive {
			fmt.Fprint(w, " dive")
		}
		fmt.Fprintln(w)
	}
}

// PrintDecisionReport prints the full per-match report.
func PrintDecisionReport(w io.Writer, r *model.DecisionReport) {
	PrintReportHeader(w, r)
	PrintDeathTable(w, r.DeathAnalyses)
	PrintObjectiveSummary(w, r.ObjectiveParticipation)
	fmt.Fprintln(w)
	PrintEconomyTable(w, r.GoldEfficiency)
	PrintVisionSummary(w, r.VisionTimeline)
	PrintCombatSummary(w, r.CombatProfile)
	fmt.Fprintln(w)
	PrintBenchmarkTable(w, r.StatBenchmark)
}

// PrintProfile prints the playstyle profile: trait scores, per-game
// averages, champion pool and role distribution.
func PrintProfile(w io.Writer, p *model.PlaystyleProfile) {
	fmt.Fprintf(w, "\nPlayer: %s  |  Rank: %s  |  Games: %d  |  WR: %d%%\n\n",
		p.SummonerName, p.Rank, p.TotalGames, p.WinRate)

	traits := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
	traits.Header("AGGRESSION", "ROAMING", "VISION", "CS", "LATE_GAME")
	traits.Append(
		scoreBar(p.Aggression),
		scoreBar(p.Roaming),
		scoreBar(p.VisionScore),
		scoreBar(p.CSSkill),
		scoreBar(p.LateGameSkill),
	)
	traits.Render()

	fmt.Fprintf(w, "Averages: %.2f KDA  |  %.1f deaths  |  %.1f CS/min  |  %.1f vision  |  %.1f solo kills  |  %d dmg  |  KP %d%%\n",
		p.AvgKDA, p.AvgDeaths, p.AvgCSPerMin, p.AvgVisionScore, p.AvgSoloKills, p.AvgDamage, p.AvgKillParticipation)

	if len(p.ChampionPool) > 0 {
		fmt.Fprintln(w)
		pool := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignRight},
			},
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignCenter},
			},
		}))
		pool.Header("CHAMPION", "ROLE", "GAMES", "WR", "KDA", "CS/MIN", "DMG")
		for _, c := range p.ChampionPool {
			pool.Append(
				c.Champion,
				c.Role,
				strconv.Itoa(c.Games),
				fmt.Sprintf("%d%%", c.WinRate),
				fmt.Sprintf("%.2f", c.AvgKDA),
				fmt.Sprintf("%.1f", c.AvgCS),
				strconv.Itoa(c.AvgDamage),
			)
		}
		pool.Render()
	}

	if len(p.RoleDistribution) > 0 {
		roles := make([]string, 0, len(p.RoleDistribution))
		for r := range p.RoleDistribution {
			roles = append(roles, r)
		}
		sort.Slice(roles, func(i, j int) bool {
			pi, pj := p.RoleDistribution[roles[i]], p.RoleDistribution[roles[j]]
			if pi != pj {
				return pi > pj
			}
			return roles[i] < roles[j]
		})
		fmt.Fprint(w, "Roles:")
		for _, r := range roles {
			if p.RoleDistribution[r] == 0 {
				continue
			}
			fmt.Fprintf(w, " %s %d%%", r, p.RoleDistribution[r])
		}
		fmt.Fprintln(w)
	}
}

// verdict renders a relative score as a short label.
func verdict(s model.RelativeScore) string {
	switch {
	case s >= 2:
		return "VERY_HIGH"
	case s == 1:
		return "HIGH"
	case s == -1:
		return "LOW"
	case s <= -2:
		return "VERY_LOW"
	default:
		return "AVG"
	}
}

// scoreBar renders a 1-10 trait score as "7/10".
func scoreBar(s int) string {
	return fmt.Sprintf("%d/10", s)
}

// fmtClock formats a millisecond timestamp as m:ss game time.
func fmtClock(ms int64) string {
	totalSec := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSec/60, totalSec%60)
}
