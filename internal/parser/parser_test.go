package parser

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/minsu-k/go-lol-metrics/internal/model"
	"github.com/minsu-k/go-lol-metrics/internal/riot"
)

func matchResponse() *riot.MatchResponse {
	return &riot.MatchResponse{
		Metadata: riot.MatchMetadata{MatchID: "KR_42"},
		Info: riot.MatchInfo{
			GameDuration: 1500,
			GameMode:     "CLASSIC",
			QueueID:      420,
			Participants: []riot.MatchParticipant{
				{ParticipantID: 1, PUUID: "p1", TeamID: 100, TeamPosition: "MIDDLE", ChampionName: "Ahri",
					Kills: 3, Deaths: 1, Assists: 4, Win: true,
					TotalMinionsKilled: 150, NeutralMinionsKilled: 8, VisionScore: 18, GoldEarned: 9000},
				{ParticipantID: 6, PUUID: "p6", TeamID: 200, TeamPosition: "MIDDLE", ChampionName: "Zed",
					Kills: 1, Deaths: 3, Assists: 0},
			},
		},
	}
}

func timelineResponse() *riot.TimelineResponse {
	return &riot.TimelineResponse{
		Info: riot.TimelineInfo{
			FrameInterval: 60000,
			Frames: []riot.TimelineFrame{
				{
					Timestamp: 60000,
					ParticipantFrames: map[string]riot.ParticipantFrame{
						"1":   {TotalGold: 800, MinionsKilled: 12},
						"6":   {TotalGold: 750, MinionsKilled: 10, JungleMinionsKilled: 1},
						"bad": {TotalGold: 9999},
					},
					Events: []riot.TimelineEvent{
						{Type: riot.EventItemPurchased, Timestamp: 15000, ParticipantID: 1, ItemID: 1056},
						{Type: riot.EventWardPlaced, Timestamp: 30000, CreatorID: 1, WardType: "YELLOW_TRINKET"},
						{Type: riot.EventChampionKill, Timestamp: 55000, KillerID: 1, VictimID: 6,
							Position: &riot.EventPosition{X: 7000, Y: 7500}},
						{Type: "LEVEL_UP", Timestamp: 20000, ParticipantID: 1},
					},
				},
				{
					Timestamp: 120000,
					Events: []riot.TimelineEvent{
						{Type: riot.EventEliteMonsterKill, Timestamp: 110000, KillerID: 6, KillerTeamID: 200,
							MonsterType: "DRAGON"},
						{Type: riot.EventBuildingKill, Timestamp: 115000, KillerID: 1, KillerTeamID: 200,
							BuildingType: "TOWER_BUILDING"},
						{Type: riot.EventWardKill, Timestamp: 100000, KillerID: 6},
					},
				},
			},
		},
	}
}

func TestFlatten(t *testing.T) {
	raw, err := Flatten(matchResponse(), timelineResponse(), zerolog.Nop())
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	if raw.MatchID != "KR_42" || raw.GameDurationSec != 1500 || raw.QueueID != 420 {
		t.Errorf("match identity mismatch: %+v", raw)
	}

	if len(raw.Participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(raw.Participants))
	}
	ahri := raw.ParticipantByID(1)
	if ahri == nil {
		t.Fatal("participant 1 missing")
	}
	if ahri.Team != model.TeamBlue || ahri.Role != model.RoleMiddle {
		t.Errorf("participant 1 = %+v", ahri)
	}
	if ahri.CS != 158 {
		t.Errorf("cs = %d, want lane+jungle 158", ahri.CS)
	}

	if len(raw.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(raw.Frames))
	}
	// The non-numeric participant frame key is dropped, the rest kept.
	if len(raw.Frames[0].Snapshots) != 2 {
		t.Errorf("snapshots = %d, want 2", len(raw.Frames[0].Snapshots))
	}
	if raw.Frames[0].Snapshots[6].JungleMinionsKilled != 1 {
		t.Errorf("snapshot 6 = %+v", raw.Frames[0].Snapshots[6])
	}

	if len(raw.Kills) != 1 || raw.Kills[0].Position == nil || raw.Kills[0].Position.X != 7000 {
		t.Errorf("kills = %+v", raw.Kills)
	}
	if len(raw.Objectives) != 2 {
		t.Fatalf("objectives = %+v, want dragon + tower", raw.Objectives)
	}
	// Event slices come out time-ordered.
	if raw.Objectives[0].Kind() != "DRAGON" || raw.Objectives[1].Kind() != "TOWER_BUILDING" {
		t.Errorf("objective order = %s, %s", raw.Objectives[0].Kind(), raw.Objectives[1].Kind())
	}
	if len(raw.WardsPlaced) != 1 || len(raw.WardKills) != 1 || len(raw.ItemPurchases) != 1 {
		t.Errorf("event counts: wards=%d wardkills=%d purchases=%d",
			len(raw.WardsPlaced), len(raw.WardKills), len(raw.ItemPurchases))
	}
}

func TestFlattenNilTimeline(t *testing.T) {
	raw, err := Flatten(matchResponse(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(raw.Participants) != 2 {
		t.Errorf("participants = %d, want 2", len(raw.Participants))
	}
	if len(raw.Frames) != 0 || len(raw.Kills) != 0 {
		t.Errorf("expected empty event log, got %d frames, %d kills", len(raw.Frames), len(raw.Kills))
	}
}

func TestFlattenRejectsInvalidTeam(t *testing.T) {
	m := matchResponse()
	m.Info.Participants[0].TeamID = 300
	if _, err := Flatten(m, nil, zerolog.Nop()); err == nil {
		t.Fatal("expected error for invalid teamId")
	}
}

func TestFlattenNilMatch(t *testing.T) {
	if _, err := Flatten(nil, timelineResponse(), zerolog.Nop()); err == nil {
		t.Fatal("expected error for nil match")
	}
}
