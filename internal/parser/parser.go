// Package parser converts raw Riot JSON payloads into the flattened
// model the analysis engine works on. All string parsing (roles,
// event type tags, team ids) happens here, once, at the boundary.
package parser

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/minsu-k/go-lol-metrics/internal/model"
	"github.com/minsu-k/go-lol-metrics/internal/riot"
)

// Flatten builds a model.RawMatch from a match record and its
// timeline. The timeline may be nil: game modes without timeline
// support degrade to an empty event log instead of failing. Events of
// unknown kinds are skipped and logged, never coerced.
func Flatten(m *riot.MatchResponse, tl *riot.TimelineResponse, log zerolog.Logger) (*model.RawMatch, error) {
	if m == nil {
		return nil, fmt.Errorf("nil match")
	}

	raw := &model.RawMatch{
		MatchID:         m.Metadata.MatchID,
		GameDurationSec: m.Info.GameDuration,
		GameMode:        m.Info.GameMode,
		QueueID:         m.Info.QueueID,
	}

	for _, p := range m.Info.Participants {
		team := model.Team(p.TeamID)
		if team != model.TeamBlue && team != model.TeamRed {
			return nil, fmt.Errorf("participant %d has invalid teamId %d", p.ParticipantID, p.TeamID)
		}
		raw.Participants = append(raw.Participants, model.Participant{
			ID:             p.ParticipantID,
			PUUID:          p.PUUID,
			Team:           team,
			Role:           model.ParseRole(p.TeamPosition),
			Champion:       p.ChampionName,
			Kills:          p.Kills,
			Deaths:         p.Deaths,
			Assists:        p.Assists,
			Win:            p.Win,
			DamageDealt:    p.TotalDamageDealtToChampions,
			DamageTaken:    p.TotalDamageTaken,
			HealingDone:    p.TotalHeal,
			VisionScore:    p.VisionScore,
			CS:             p.TotalMinionsKilled + p.NeutralMinionsKilled,
			GoldEarned:     p.GoldEarned,
			EarlySurrender: p.GameEndedInEarlySurrender,
		})
	}

	if tl == nil {
		return raw, nil
	}

	for _, frame := range tl.Info.Frames {
		snaps := make(map[int]model.FrameSnapshot, len(frame.ParticipantFrames))
		for key, pf := range frame.ParticipantFrames {
			id, err := strconv.Atoi(key)
			if err != nil {
				log.Debug().Str("key", key).Msg("skipping participant frame with non-numeric key")
				continue
			}
			snaps[id] = model.FrameSnapshot{
				TotalGold:           pf.TotalGold,
				MinionsKilled:       pf.MinionsKilled,
				JungleMinionsKilled: pf.JungleMinionsKilled,
			}
		}
		raw.Frames = append(raw.Frames, model.Frame{
			TimestampMs: frame.Timestamp,
			Snapshots:   snaps,
		})

		for _, ev := range frame.Events {
			appendEvent(raw, ev, log)
		}
	}

	sortEvents(raw)
	return raw, nil
}

func appendEvent(raw *model.RawMatch, ev riot.TimelineEvent, log zerolog.Logger) {
	switch ev.Type {
	case riot.EventChampionKill:
		raw.Kills = append(raw.Kills, model.KillEvent{
			TimestampMs: ev.Timestamp,
			KillerID:    ev.KillerID,
			VictimID:    ev.VictimID,
			AssistIDs:   ev.AssistingParticipantIDs,
			Position:    toPosition(ev.Position),
		})
	case riot.EventEliteMonsterKill:
		raw.Objectives = append(raw.Objectives, model.ObjectiveEvent{
			TimestampMs: ev.Timestamp,
			KillerID:    ev.KillerID,
			KillerTeam:  model.Team(ev.KillerTeamID),
			AssistIDs:   ev.AssistingParticipantIDs,
			Monster:     ev.MonsterType,
		})
	case riot.EventBuildingKill:
		raw.Objectives = append(raw.Objectives, model.ObjectiveEvent{
			TimestampMs: ev.Timestamp,
			KillerID:    ev.KillerID,
			KillerTeam:  model.Team(ev.KillerTeamID),
			AssistIDs:   ev.AssistingParticipantIDs,
			Building:    ev.BuildingType,
		})
	case riot.EventWardPlaced:
		raw.WardsPlaced = append(raw.WardsPlaced, model.WardPlacedEvent{
			TimestampMs: ev.Timestamp,
			CreatorID:   ev.CreatorID,
			WardType:    ev.WardType,
		})
	case riot.EventWardKill:
		raw.WardKills = append(raw.WardKills, model.WardKillEvent{
			TimestampMs: ev.Timestamp,
			KillerID:    ev.KillerID,
		})
	case riot.EventItemPurchased:
		raw.ItemPurchases = append(raw.ItemPurchases, model.ItemPurchaseEvent{
			TimestampMs:   ev.Timestamp,
			ParticipantID: ev.ParticipantID,
			ItemID:        ev.ItemID,
		})
	default:
		log.Debug().Str("type", ev.Type).Int64("timestamp", ev.Timestamp).Msg("skipping unhandled timeline event")
	}
}

func toPosition(p *riot.EventPosition) *model.Position {
	if p == nil {
		return nil
	}
	return &model.Position{X: p.X, Y: p.Y}
}

// sortEvents orders every event slice by timestamp ascending. Riot
// frames arrive ordered already; sorting makes the guarantee explicit
// and stable for classifiers that scan windows.
func sortEvents(raw *model.RawMatch) {
	sort.SliceStable(raw.Kills, func(i, j int) bool {
		return raw.Kills[i].TimestampMs < raw.Kills[j].TimestampMs
	})
	sort.SliceStable(raw.Objectives, func(i, j int) bool {
		return raw.Objectives[i].TimestampMs < raw.Objectives[j].TimestampMs
	})
	sort.SliceStable(raw.WardsPlaced, func(i, j int) bool {
		return raw.WardsPlaced[i].TimestampMs < raw.WardsPlaced[j].TimestampMs
	})
	sort.SliceStable(raw.WardKills, func(i, j int) bool {
		return raw.WardKills[i].TimestampMs < raw.WardKills[j].TimestampMs
	})
	sort.SliceStable(raw.ItemPurchases, func(i, j int) bool {
		return raw.ItemPurchases[i].TimestampMs < raw.ItemPurchases[j].TimestampMs
	})
}
