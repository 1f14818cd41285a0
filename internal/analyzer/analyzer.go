// Package analyzer reduces one flattened match into a DecisionReport.
// Everything here is a pure function over in-memory data: no I/O, no
// shared state, deterministic for identical input.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/minsu-k/go-lol-metrics/internal/benchmark"
	"github.com/minsu-k/go-lol-metrics/internal/model"
)

// ErrParticipantNotFound is returned when the requested participant id
// is absent from the match record. This is the engine's only hard
// failure; every other data gap degrades to a documented default.
var ErrParticipantNotFound = errors.New("participant not found in match")

const (
	checkpoint10Ms = 600000
	checkpoint15Ms = 900000
	// Ward counts split into early/late buckets at 15:00.
	earlyGameCutoffMs = 900000
	// Purchases closer together than this belong to one shop visit.
	recallClusterGapMs = 5000
	// Purchases before 1:30 are starting items, not recalls.
	recallMinTimestampMs = 90000
)

// Analyze builds the decision report for one participant of one match.
func Analyze(raw *model.RawMatch, participantID int, tier model.Tier, rank string, tables *benchmark.Tables) (*model.DecisionReport, error) {
	player := raw.ParticipantByID(participantID)
	if player == nil {
		return nil, fmt.Errorf("participant %d in match %s: %w", participantID, raw.MatchID, ErrParticipantNotFound)
	}
	opponent := raw.LaneOpponent(player)

	report := &model.DecisionReport{
		MatchID:         raw.MatchID,
		GameDurationSec: raw.GameDurationSec,
		PlayerInfo: model.PlayerInfo{
			Champion: player.Champion,
			Role:     player.Role.String(),
			Win:      player.Win,
			Kills:    player.Kills,
			Deaths:   player.Deaths,
			Assists:  player.Assists,
			Rank:     rank,
		},
	}

	// ---- Deaths: where, when, in what context, and the lane economy
	// one minute before each one. ----
	for _, death := range raw.Kills {
		if death.VictimID != participantID {
			continue
		}

		oneMinBefore := death.TimestampMs - 60000
		goldDiff := 0
		if opponent != nil {
			goldDiff = goldAt(raw.Frames, participantID, oneMinBefore) -
				goldAt(raw.Frames, opponent.ID, oneMinBefore)
		}

		zone := model.ZoneUnknown
		location := model.Position{}
		if death.Position != nil {
			location = *death.Position
			zone = ClassifyLocation(death.Position.X, death.Position.Y, player.Team)
		}

		report.DeathAnalyses = append(report.DeathAnalyses, model.DeathAnalysis{
			TimestampMs:         death.TimestampMs,
			MinuteMark:          float64(death.TimestampMs) / 60000,
			GoldDiffBeforeDeath: goldDiff,
			KillerID:            death.KillerID,
			AssistIDs:           death.AssistIDs,
			Location:            location,
			LocationType:        zone.String(),
			DeathContext:        classifyDeathContext(death, raw, player, tables).String(),
		})
	}

	// ---- Objective participation. Building kills count toward the
	// rate but only elite-monster absences are surfaced as misses:
	// sitting out a tower push is not inherently punishable. ----
	obj := model.ObjectiveParticipation{MissedObjectives: []model.MissedObjective{}}
	for _, o := range raw.Objectives {
		if o.KillerTeam != player.Team {
			continue
		}
		obj.Total++
		if o.KillerID == participantID || containsInt(o.AssistIDs, participantID) {
			obj.Participated++
			continue
		}
		if !o.IsBuilding() {
			obj.MissedObjectives = append(obj.MissedObjectives, model.MissedObjective{
				Type:        o.Kind(),
				TimestampMs: o.TimestampMs,
				MinuteMark:  float64(o.TimestampMs) / 60000,
			})
		}
	}
	if obj.Total > 0 {
		obj.ParticipationRate = roundPct(float64(obj.Participated) / float64(obj.Total))
	} else {
		// No team objectives means nothing was missable.
		obj.ParticipationRate = 100
	}
	report.ObjectiveParticipation = obj

	// ---- Gold and CS checkpoints against the lane opponent. ----
	gold := model.GoldEfficiency{
		GoldAt10:    goldAt(raw.Frames, participantID, checkpoint10Ms),
		GoldAt15:    goldAt(raw.Frames, participantID, checkpoint15Ms),
		CSAt10:      csAt(raw.Frames, participantID, checkpoint10Ms),
		CSAt15:      csAt(raw.Frames, participantID, checkpoint15Ms),
		BackTimings: detectBackTimings(raw.ItemPurchases, participantID),
	}
	if opponent != nil {
		gold.GoldDiffAt10 = gold.GoldAt10 - goldAt(raw.Frames, opponent.ID, checkpoint10Ms)
		gold.GoldDiffAt15 = gold.GoldAt15 - goldAt(raw.Frames, opponent.ID, checkpoint15Ms)
	}
	report.GoldEfficiency = gold

	// ---- Vision timeline. A ward counts once regardless of type. ----
	vision := model.VisionTimeline{}
	for _, w := range raw.WardsPlaced {
		if w.CreatorID != participantID {
			continue
		}
		vision.WardsPlacedTotal++
		if w.TimestampMs < earlyGameCutoffMs {
			vision.EarlyWardsPlaced++
		} else {
			vision.LateWardsPlaced++
		}
	}
	for _, w := range raw.WardKills {
		if w.KillerID == participantID {
			vision.WardsKilledTotal++
		}
	}
	report.VisionTimeline = vision

	// ---- Combat profile. Team kills come from the event log so kill
	// participation matches what actually happened on the map. ----
	teamKills := 0
	soloKills := 0
	for _, k := range raw.Kills {
		killer := raw.ParticipantByID(k.KillerID)
		if killer != nil && killer.Team == player.Team {
			teamKills++
		}
		if k.KillerID == participantID && len(k.AssistIDs) == 0 {
			soloKills++
		}
	}
	combat := model.CombatProfile{
		DamageDealt: player.DamageDealt,
		DamageTaken: player.DamageTaken,
		HealingDone: player.HealingDone,
		SoloKills:   soloKills,
	}
	if teamKills > 0 {
		combat.KillParticipation = roundPct(float64(player.Kills+player.Assists) / float64(teamKills))
	}
	report.CombatProfile = combat

	// ---- Benchmark-relative stat scores. ----
	report.StatBenchmark = tables.Normalize(rawStats(player, raw.GameDurationSec), tier, player.Champion, player.Role)

	return report, nil
}

// detectBackTimings groups the player's purchases into shop visits:
// a gap longer than recallClusterGapMs starts a new cluster, and each
// cluster's first purchase timestamp is one recall. Purchases before
// recallMinTimestampMs are ignored.
func detectBackTimings(purchases []model.ItemPurchaseEvent, participantID int) []int64 {
	var times []int64
	for _, p := range purchases {
		if p.ParticipantID == participantID && p.TimestampMs > recallMinTimestampMs {
			times = append(times, p.TimestampMs)
		}
	}
	if len(times) == 0 {
		return []int64{}
	}

	backs := []int64{}
	clusterStart := times[0]
	last := times[0]
	for _, t := range times[1:] {
		if t-last > recallClusterGapMs {
			backs = append(backs, clusterStart)
			clusterStart = t
		}
		last = t
	}
	return append(backs, clusterStart)
}

// rawStats derives the normalizer inputs from the end-of-game
// snapshot.
func rawStats(p *model.Participant, durationSec int) model.RawStats {
	minutes := float64(durationSec) / 60
	stats := model.RawStats{
		KDA:         p.KDA(),
		VisionScore: float64(p.VisionScore),
	}
	if minutes > 0 {
		stats.CSPerMin = float64(p.CS) / minutes
	}
	return stats
}

// ExtractParticipant reduces one match to the per-game line the
// playstyle profiler aggregates. Solo kills are estimated from the
// final scoreline: the match record alone cannot attribute assists per
// kill, so kills likely to have had help are discounted.
func ExtractParticipant(raw *model.RawMatch, participantID int) (*model.MatchExtract, error) {
	p := raw.ParticipantByID(participantID)
	if p == nil {
		return nil, fmt.Errorf("participant %d in match %s: %w", participantID, raw.MatchID, ErrParticipantNotFound)
	}

	minutes := float64(raw.GameDurationSec) / 60
	ex := &model.MatchExtract{
		MatchID:     raw.MatchID,
		GameMode:    raw.GameMode,
		QueueID:     raw.QueueID,
		Win:         p.Win,
		Kills:       p.Kills,
		Deaths:      p.Deaths,
		Assists:     p.Assists,
		CS:          p.CS,
		VisionScore: p.VisionScore,
		Damage:      p.DamageDealt,
		GoldEarned:  p.GoldEarned,
		SoloKills:   estimateSoloKills(p.Kills, p.Assists),
		Champion:    p.Champion,
		Role:        p.Role.String(),
		DurationMin: minutes,
	}
	if minutes > 0 {
		ex.CSPerMin = float64(p.CS) / minutes
		ex.VisionPerMin = float64(p.VisionScore) / minutes
	}

	teamKills := 0
	for i := range raw.Participants {
		if raw.Participants[i].Team == p.Team {
			teamKills += raw.Participants[i].Kills
		}
	}
	if teamKills > 0 {
		ex.KillParticipation = roundPct(float64(p.Kills+p.Assists) / float64(teamKills))
	}
	return ex, nil
}

func estimateSoloKills(kills, assists int) int {
	est := kills - assists*3/10
	if est < 0 {
		return 0
	}
	return est
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// roundPct converts a ratio to a rounded integer percentage.
func roundPct(ratio float64) int {
	return int(ratio*100 + 0.5)
}
