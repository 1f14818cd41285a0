package analyzer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/minsu-k/go-lol-metrics/internal/benchmark"
	"github.com/minsu-k/go-lol-metrics/internal/model"
)

// matchFixture is a compact mid-lane game: participant 1 (blue Ahri)
// against participant 6 (red Zed), with junglers on both sides.
func matchFixture() *model.RawMatch {
	return &model.RawMatch{
		MatchID:         "KR_7000000001",
		GameDurationSec: 1800,
		GameMode:        "CLASSIC",
		QueueID:         420,
		Participants: []model.Participant{
			{ID: 1, PUUID: "puuid-ahri", Team: model.TeamBlue, Role: model.RoleMiddle, Champion: "Ahri",
				Kills: 1, Deaths: 2, Assists: 0, Win: false,
				DamageDealt: 14000, DamageTaken: 18000, HealingDone: 2000,
				VisionScore: 21, CS: 210, GoldEarned: 9800},
			{ID: 2, PUUID: "puuid-lee", Team: model.TeamBlue, Role: model.RoleJungle, Champion: "Lee Sin",
				Kills: 0, Deaths: 1, Assists: 0},
			{ID: 6, PUUID: "puuid-zed", Team: model.TeamRed, Role: model.RoleMiddle, Champion: "Zed",
				Kills: 1, Deaths: 0, Assists: 1, Win: true},
			{ID: 7, PUUID: "puuid-elise", Team: model.TeamRed, Role: model.RoleJungle, Champion: "Elise",
				Kills: 1, Deaths: 0, Assists: 1, Win: true},
		},
		Frames: []model.Frame{
			{TimestampMs: 0, Snapshots: map[int]model.FrameSnapshot{
				1: {TotalGold: 500}, 6: {TotalGold: 500},
			}},
			{TimestampMs: 600000, Snapshots: map[int]model.FrameSnapshot{
				1: {TotalGold: 3500, MinionsKilled: 58, JungleMinionsKilled: 2},
				6: {TotalGold: 3200, MinionsKilled: 55},
			}},
			{TimestampMs: 900000, Snapshots: map[int]model.FrameSnapshot{
				1: {TotalGold: 5200, MinionsKilled: 92, JungleMinionsKilled: 3},
				6: {TotalGold: 5000, MinionsKilled: 90},
			}},
		},
		Kills: []model.KillEvent{
			// Ganked top-side at 11:00.
			{TimestampMs: 660000, KillerID: 7, VictimID: 1, AssistIDs: []int{6},
				Position: &model.Position{X: 12000, Y: 5000}},
			// Solo kill onto Zed at 11:40.
			{TimestampMs: 700000, KillerID: 1, VictimID: 6,
				Position: &model.Position{X: 7000, Y: 7500}},
			// Caught at 25:00, no position recorded.
			{TimestampMs: 1500000, KillerID: 6, VictimID: 1, AssistIDs: []int{7, 8}},
		},
		Objectives: []model.ObjectiveEvent{
			{TimestampMs: 600000, KillerID: 2, KillerTeam: model.TeamBlue, Monster: "DRAGON"},
			{TimestampMs: 840000, KillerID: 1, KillerTeam: model.TeamBlue, Building: "TOWER_BUILDING"},
			{TimestampMs: 900000, KillerID: 7, KillerTeam: model.TeamRed, Monster: "RIFTHERALD"},
		},
		WardsPlaced: []model.WardPlacedEvent{
			{TimestampMs: 800000, CreatorID: 1, WardType: "YELLOW_TRINKET"},
			{TimestampMs: 1000000, CreatorID: 1, WardType: "CONTROL_WARD"},
			{TimestampMs: 300000, CreatorID: 6, WardType: "YELLOW_TRINKET"},
		},
		WardKills: []model.WardKillEvent{
			{TimestampMs: 500000, KillerID: 1},
			{TimestampMs: 700000, KillerID: 6},
		},
		ItemPurchases: []model.ItemPurchaseEvent{
			{TimestampMs: 10000, ParticipantID: 1, ItemID: 1056},  // starting items
			{TimestampMs: 100000, ParticipantID: 1, ItemID: 1052},
			{TimestampMs: 102000, ParticipantID: 1, ItemID: 2003},
			{TimestampMs: 108000, ParticipantID: 1, ItemID: 3020},
			{TimestampMs: 104000, ParticipantID: 6, ItemID: 1036},
		},
	}
}

func TestAnalyzeParticipantNotFound(t *testing.T) {
	_, err := Analyze(matchFixture(), 99, model.TierGold, "GOLD", benchmark.DefaultTables())
	if !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestAnalyzeDeaths(t *testing.T) {
	r, err := Analyze(matchFixture(), 1, model.TierGold, "GOLD II", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(r.DeathAnalyses) != 2 {
		t.Fatalf("expected 2 deaths, got %d", len(r.DeathAnalyses))
	}

	first := r.DeathAnalyses[0]
	if first.DeathContext != "GANK_DEATH" {
		t.Errorf("first death context = %s, want GANK_DEATH", first.DeathContext)
	}
	if first.LocationType != "LANE_OVEREXTENDED" {
		t.Errorf("first death location = %s, want LANE_OVEREXTENDED", first.LocationType)
	}
	// One minute before 11:00 is the 10:00 frame: 3500 vs 3200.
	if first.GoldDiffBeforeDeath != 300 {
		t.Errorf("first death gold diff = %d, want 300", first.GoldDiffBeforeDeath)
	}

	second := r.DeathAnalyses[1]
	if second.LocationType != "UNKNOWN" {
		t.Errorf("positionless death location = %s, want UNKNOWN", second.LocationType)
	}
	if second.DeathContext != "TEAMFIGHT_DEATH" {
		t.Errorf("second death context = %s, want TEAMFIGHT_DEATH", second.DeathContext)
	}
	// 24:00 samples the last frame: 5200 vs 5000.
	if second.GoldDiffBeforeDeath != 200 {
		t.Errorf("second death gold diff = %d, want 200", second.GoldDiffBeforeDeath)
	}
}

func TestAnalyzeObjectives(t *testing.T) {
	r, err := Analyze(matchFixture(), 1, model.TierGold, "GOLD", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	obj := r.ObjectiveParticipation
	// Blue took a dragon (without the player) and a tower (with); the
	// red herald is not the player's team's objective.
	if obj.Total != 2 || obj.Participated != 1 {
		t.Errorf("objectives = %d/%d, want 1/2", obj.Participated, obj.Total)
	}
	if obj.ParticipationRate != 50 {
		t.Errorf("participation rate = %d, want 50", obj.ParticipationRate)
	}
	if len(obj.MissedObjectives) != 1 || obj.MissedObjectives[0].Type != "DRAGON" {
		t.Errorf("missed objectives = %+v, want one DRAGON", obj.MissedObjectives)
	}
}

func TestAnalyzeObjectivesNoneIsFullRate(t *testing.T) {
	raw := matchFixture()
	raw.Objectives = nil
	r, err := Analyze(raw, 1, model.TierGold, "GOLD", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if r.ObjectiveParticipation.ParticipationRate != 100 {
		t.Errorf("rate with zero objectives = %d, want 100", r.ObjectiveParticipation.ParticipationRate)
	}
}

func TestAnalyzeGoldEfficiency(t *testing.T) {
	r, err := Analyze(matchFixture(), 1, model.TierGold, "GOLD", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	ge := r.GoldEfficiency
	if ge.GoldAt10 != 3500 || ge.GoldAt15 != 5200 {
		t.Errorf("gold checkpoints = %d/%d, want 3500/5200", ge.GoldAt10, ge.GoldAt15)
	}
	if ge.GoldDiffAt10 != 300 || ge.GoldDiffAt15 != 200 {
		t.Errorf("gold diffs = %d/%d, want 300/200", ge.GoldDiffAt10, ge.GoldDiffAt15)
	}
	if ge.CSAt10 != 60 || ge.CSAt15 != 95 {
		t.Errorf("cs checkpoints = %d/%d, want 60/95", ge.CSAt10, ge.CSAt15)
	}
	// 10000 is a starting purchase; 100000+102000 cluster together and
	// 108000 starts a new shop visit.
	want := []int64{100000, 108000}
	if !reflect.DeepEqual(ge.BackTimings, want) {
		t.Errorf("back timings = %v, want %v", ge.BackTimings, want)
	}
}

func TestAnalyzeGoldDiffsZeroWithoutOpponent(t *testing.T) {
	raw := matchFixture()
	// Remove the enemy mid: no lane opponent, diffs stay zero.
	raw.Participants = append(raw.Participants[:2], raw.Participants[3])
	r, err := Analyze(raw, 1, model.TierGold, "GOLD", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if r.GoldEfficiency.GoldDiffAt10 != 0 || r.GoldEfficiency.GoldDiffAt15 != 0 {
		t.Errorf("diffs without opponent = %d/%d, want 0/0",
			r.GoldEfficiency.GoldDiffAt10, r.GoldEfficiency.GoldDiffAt15)
	}
	for _, d := range r.DeathAnalyses {
		if d.GoldDiffBeforeDeath != 0 {
			t.Errorf("death gold diff without opponent = %d, want 0", d.GoldDiffBeforeDeath)
		}
	}
}

func TestAnalyzeVisionAndCombat(t *testing.T) {
	r, err := Analyze(matchFixture(), 1, model.TierGold, "GOLD", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	v := r.VisionTimeline
	if v.WardsPlacedTotal != 2 || v.EarlyWardsPlaced != 1 || v.LateWardsPlaced != 1 {
		t.Errorf("vision = %+v, want 2 total, 1 early, 1 late", v)
	}
	if v.WardsKilledTotal != 1 {
		t.Errorf("wards killed = %d, want 1", v.WardsKilledTotal)
	}

	c := r.CombatProfile
	if c.SoloKills != 1 {
		t.Errorf("solo kills = %d, want 1", c.SoloKills)
	}
	// Blue team landed one kill in the event log; the player took it.
	if c.KillParticipation != 100 {
		t.Errorf("kill participation = %d, want 100", c.KillParticipation)
	}
}

func TestAnalyzeBenchmark(t *testing.T) {
	r, err := Analyze(matchFixture(), 1, model.TierGold, "GOLD", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	b := r.StatBenchmark
	// 210 cs over 30 minutes against a 7.2 gold average: unremarkable.
	if b.CSScore != 0 {
		t.Errorf("cs score = %d, want 0", b.CSScore)
	}
	// 0.5 KDA against 2.1: far below.
	if b.KDAScore != -2 {
		t.Errorf("kda score = %d, want -2", b.KDAScore)
	}
	if b.VisionScore != 0 {
		t.Errorf("vision score = %d, want 0", b.VisionScore)
	}
	if !b.Flags.IsRoam {
		t.Error("Ahri should carry the roam flag")
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a, err := Analyze(matchFixture(), 1, model.TierPlatinum, "PLATINUM IV", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	b, err := Analyze(matchFixture(), 1, model.TierPlatinum, "PLATINUM IV", benchmark.DefaultTables())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input produced different reports")
	}
}

func TestExtractParticipant(t *testing.T) {
	ex, err := ExtractParticipant(matchFixture(), 1)
	if err != nil {
		t.Fatalf("ExtractParticipant: %v", err)
	}
	if ex.MatchID != "KR_7000000001" || ex.Champion != "Ahri" || ex.Role != "MIDDLE" {
		t.Errorf("extract identity mismatch: %+v", ex)
	}
	if ex.CSPerMin != 7.0 {
		t.Errorf("cs/min = %v, want 7.0", ex.CSPerMin)
	}
	if ex.DurationMin != 30 {
		t.Errorf("duration = %v, want 30", ex.DurationMin)
	}
	// Blue scorelines total one kill; the player has it plus no assists.
	if ex.KillParticipation != 100 {
		t.Errorf("kill participation = %d, want 100", ex.KillParticipation)
	}

	_, err = ExtractParticipant(matchFixture(), 99)
	if !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestEstimateSoloKills(t *testing.T) {
	cases := []struct{ kills, assists, want int }{
		{10, 0, 10},
		{10, 10, 7},
		{0, 20, 0},
		{2, 9, 0},
	}
	for _, tc := range cases {
		if got := estimateSoloKills(tc.kills, tc.assists); got != tc.want {
			t.Errorf("estimateSoloKills(%d, %d) = %d, want %d", tc.kills, tc.assists, got, tc.want)
		}
	}
}
