// Package profiler folds many single-match extracts into one
// playstyle profile: five 1-10 trait scores, a champion pool and a
// role distribution, all scaled against the player's tier benchmark.
package profiler

import (
	"math"
	"sort"

	"github.com/minsu-k/go-lol-metrics/internal/benchmark"
	"github.com/minsu-k/go-lol-metrics/internal/model"
)

// Queue ids for ranked solo and ranked flex on Summoner's Rift.
const (
	queueRankedSolo = 420
	queueRankedFlex = 440
)

// Games longer than this count toward the late-game trait.
const lateGameMinutes = 30.0

// minLateGames is the sample floor below which the late-game trait
// stays at the neutral 5 instead of being read off a couple of games.
const minLateGames = 3

// ProfilePlaystyle reduces a set of match extracts for one player into
// a PlaystyleProfile. Only classic-mode games (ranked solo/flex) are
// considered; an empty game set is valid input and yields the
// documented all-neutral profile. The reduction is single-threaded and
// fully ordered, so identical input produces an identical profile.
func ProfilePlaystyle(extracts []model.MatchExtract, tier model.Tier, rank, summonerName string, tables *benchmark.Tables) model.PlaystyleProfile {
	games := filterClassic(extracts)
	if len(games) == 0 {
		return emptyProfile(summonerName, rank)
	}

	bench, ok := tables.ProfileBenchmarks[tier]
	if !ok {
		bench = tables.ProfileBenchmarks[model.TierGold]
	}

	total := len(games)
	wins := 0
	var sumKills, sumDeaths, sumAssists, sumCSPerMin, sumVision, sumVisionPerMin, sumSolo float64
	var sumDamage, sumKP int
	for _, g := range games {
		if g.Win {
			wins++
		}
		sumKills += float64(g.Kills)
		sumDeaths += float64(g.Deaths)
		sumAssists += float64(g.Assists)
		sumCSPerMin += g.CSPerMin
		sumVision += float64(g.VisionScore)
		sumVisionPerMin += g.VisionPerMin
		sumSolo += float64(g.SoloKills)
		sumDamage += g.Damage
		sumKP += g.KillParticipation
	}

	n := float64(total)
	avgKills := sumKills / n
	avgDeaths := sumDeaths / n
	avgAssists := sumAssists / n
	avgCSPerMin := sumCSPerMin / n
	avgVisionScore := sumVision / n
	avgVisionPerMin := sumVisionPerMin / n
	avgSoloKills := sumSolo / n

	avgKDA := (avgKills + avgAssists) / math.Max(avgDeaths, 1)

	// Trait scores. Aggression blends solo-kill rate with raw kill
	// volume; roaming uses the assist share as a proxy since the
	// extract cannot see map movement directly.
	aggression := scoreValue(avgSoloKills+avgKills*0.5, bench.KDA*0.8)
	csSkill := scoreValue(avgCSPerMin, bench.CSPerMin)
	visionTrait := scoreValue(avgVisionPerMin, bench.VisionPerMin)

	assistRatio := avgAssists / math.Max(avgKills+avgAssists, 1)
	roaming := clampScore(int(math.Round(assistRatio * 12)))

	lateGameSkill := 5
	var lateGames, lateWins int
	for _, g := range games {
		if g.DurationMin > lateGameMinutes {
			lateGames++
			if g.Win {
				lateWins++
			}
		}
	}
	if lateGames >= minLateGames {
		lateGameSkill = clampScore(int(math.Round(float64(lateWins) / float64(lateGames) * 10)))
	}

	return model.PlaystyleProfile{
		SummonerName: summonerName,
		Rank:         rank,
		TotalGames:   total,
		WinRate:      int(math.Round(float64(wins) / n * 100)),

		Aggression:    aggression,
		Roaming:       roaming,
		VisionScore:   visionTrait,
		CSSkill:       csSkill,
		LateGameSkill: lateGameSkill,

		AvgSoloKills:         round1(avgSoloKills),
		AvgDeaths:            round1(avgDeaths),
		AvgVisionScore:       round1(avgVisionScore),
		AvgCSPerMin:          round1(avgCSPerMin),
		AvgKDA:               round2(avgKDA),
		AvgDamage:            int(math.Round(float64(sumDamage) / n)),
		AvgKillParticipation: int(math.Round(float64(sumKP) / n)),

		ChampionPool:     championPool(games),
		RoleDistribution: roleDistribution(games),
	}
}

func filterClassic(extracts []model.MatchExtract) []model.MatchExtract {
	var out []model.MatchExtract
	for _, e := range extracts {
		if e.GameMode == "CLASSIC" || e.QueueID == queueRankedSolo || e.QueueID == queueRankedFlex {
			out = append(out, e)
		}
	}
	return out
}

// scoreValue projects value/benchmark onto the 1-10 scale with the
// benchmark pinned at 5.
func scoreValue(value, bench float64) int {
	if bench <= 0 {
		return 5
	}
	return clampScore(int(math.Round(value / bench * 5)))
}

func clampScore(s int) int {
	if s < 1 {
		return 1
	}
	if s > 10 {
		return 10
	}
	return s
}

// championPool groups games by champion and keeps the three most
// played, ties broken by champion name so output order is stable.
func championPool(games []model.MatchExtract) []model.ChampionPoolEntry {
	type accum struct {
		games, wins            int
		kills, deaths, assists int
		csPerMin               float64
		damage                 int
		role                   string
	}
	byChamp := make(map[string]*accum)
	for _, g := range games {
		a := byChamp[g.Champion]
		if a == nil {
			a = &accum{role: g.Role}
			byChamp[g.Champion] = a
		}
		a.games++
		if g.Win {
			a.wins++
		}
		a.kills += g.Kills
		a.deaths += g.Deaths
		a.assists += g.Assists
		a.csPerMin += g.CSPerMin
		a.damage += g.Damage
	}

	names := make([]string, 0, len(byChamp))
	for name := range byChamp {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		gi, gj := byChamp[names[i]].games, byChamp[names[j]].games
		if gi != gj {
			return gi > gj
		}
		return names[i] < names[j]
	})
	if len(names) > 3 {
		names = names[:3]
	}

	pool := make([]model.ChampionPoolEntry, 0, len(names))
	for _, name := range names {
		a := byChamp[name]
		deaths := a.deaths
		if deaths < 1 {
			deaths = 1
		}
		pool = append(pool, model.ChampionPoolEntry{
			Champion:  name,
			Games:     a.games,
			WinRate:   int(math.Round(float64(a.wins) / float64(a.games) * 100)),
			AvgKDA:    round2(float64(a.kills+a.assists) / float64(deaths)),
			AvgCS:     round1(a.csPerMin / float64(a.games)),
			AvgDamage: int(math.Round(float64(a.damage) / float64(a.games))),
			Role:      a.role,
		})
	}
	return pool
}

func roleDistribution(games []model.MatchExtract) map[string]int {
	counts := make(map[string]int, len(model.Roles))
	for _, r := range model.Roles {
		counts[r.String()] = 0
	}
	for _, g := range games {
		if _, ok := counts[g.Role]; ok {
			counts[g.Role]++
		}
	}
	dist := make(map[string]int, len(counts))
	for role, c := range counts {
		dist[role] = int(math.Round(float64(c) / float64(len(games)) * 100))
	}
	return dist
}

func emptyProfile(summonerName, rank string) model.PlaystyleProfile {
	dist := make(map[string]int, len(model.Roles))
	for _, r := range model.Roles {
		dist[r.String()] = 0
	}
	return model.PlaystyleProfile{
		SummonerName:     summonerName,
		Rank:             rank,
		Aggression:       5,
		Roaming:          5,
		VisionScore:      5,
		CSSkill:          5,
		LateGameSkill:    5,
		ChampionPool:     []model.ChampionPoolEntry{},
		RoleDistribution: dist,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
