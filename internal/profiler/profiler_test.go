package profiler

import (
	"testing"

	"github.com/minsu-k/go-lol-metrics/internal/benchmark"
	"github.com/minsu-k/go-lol-metrics/internal/model"
)

func classicExtract(matchID, champion string, win bool) model.MatchExtract {
	return model.MatchExtract{
		MatchID:  matchID,
		GameMode: "CLASSIC",
		QueueID:  420,
		Win:      win,
		Kills:    4, Deaths: 2, Assists: 8,
		CSPerMin: 5.5, VisionScore: 21, VisionPerMin: 0.7,
		Damage: 18000, KillParticipation: 60, SoloKills: 2,
		Champion: champion, Role: "MIDDLE", DurationMin: 25,
	}
}

func TestProfileEmptyInputIsNeutral(t *testing.T) {
	p := ProfilePlaystyle(nil, model.TierGold, "GOLD", "NewPlayer", benchmark.DefaultTables())

	if p.TotalGames != 0 || p.WinRate != 0 {
		t.Errorf("empty profile games/wr = %d/%d, want 0/0", p.TotalGames, p.WinRate)
	}
	for name, score := range map[string]int{
		"aggression": p.Aggression, "roaming": p.Roaming, "vision": p.VisionScore,
		"cs": p.CSSkill, "lateGame": p.LateGameSkill,
	} {
		if score != 5 {
			t.Errorf("empty profile %s = %d, want neutral 5", name, score)
		}
	}
	if len(p.ChampionPool) != 0 {
		t.Errorf("empty profile pool = %+v", p.ChampionPool)
	}
	if p.RoleDistribution["MIDDLE"] != 0 {
		t.Errorf("role distribution = %+v, want zeroes", p.RoleDistribution)
	}
}

func TestProfileFiltersNonClassicGames(t *testing.T) {
	extracts := []model.MatchExtract{
		classicExtract("KR_1", "Ahri", true),
		{MatchID: "KR_2", GameMode: "ARAM", QueueID: 450, Champion: "Lux", Role: "MIDDLE"},
	}
	p := ProfilePlaystyle(extracts, model.TierGold, "GOLD", "x", benchmark.DefaultTables())
	if p.TotalGames != 1 {
		t.Errorf("total games = %d, want 1 (ARAM excluded)", p.TotalGames)
	}
}

func TestProfileTraitScores(t *testing.T) {
	extracts := []model.MatchExtract{
		classicExtract("KR_1", "Ahri", true),
		classicExtract("KR_2", "Ahri", false),
		classicExtract("KR_3", "Ahri", true),
		classicExtract("KR_4", "Ahri", false),
	}
	p := ProfilePlaystyle(extracts, model.TierGold, "GOLD II", "Tester", benchmark.DefaultTables())

	if p.TotalGames != 4 || p.WinRate != 50 {
		t.Errorf("games/wr = %d/%d, want 4/50", p.TotalGames, p.WinRate)
	}

	// avg solo 2 + half of avg kills 4 = 4, against 0.8 * gold KDA
	// benchmark 2.5 = 2: ratio 2 caps the score at 10.
	if p.Aggression != 10 {
		t.Errorf("aggression = %d, want 10", p.Aggression)
	}
	// 5.5 cs/min is exactly the gold profile benchmark.
	if p.CSSkill != 5 {
		t.Errorf("cs skill = %d, want 5", p.CSSkill)
	}
	if p.VisionScore != 5 {
		t.Errorf("vision = %d, want 5", p.VisionScore)
	}
	// assist share 8/12 of takedowns, scaled by 12.
	if p.Roaming != 8 {
		t.Errorf("roaming = %d, want 8", p.Roaming)
	}
	// All games under 30 minutes: not enough late-game sample.
	if p.LateGameSkill != 5 {
		t.Errorf("late game = %d, want neutral 5", p.LateGameSkill)
	}

	if p.AvgKDA != 6.0 {
		t.Errorf("avg kda = %v, want 6.0", p.AvgKDA)
	}
	if p.AvgDeaths != 2.0 || p.AvgCSPerMin != 5.5 {
		t.Errorf("averages = %+v", p)
	}
	if p.RoleDistribution["MIDDLE"] != 100 || p.RoleDistribution["TOP"] != 0 {
		t.Errorf("role distribution = %+v", p.RoleDistribution)
	}
}

func TestProfileLateGameSkill(t *testing.T) {
	long := classicExtract("KR_1", "Ahri", true)
	long.DurationMin = 35
	lost := classicExtract("KR_2", "Ahri", false)
	lost.DurationMin = 38
	extracts := []model.MatchExtract{long, lost, long, long}

	p := ProfilePlaystyle(extracts, model.TierGold, "GOLD", "x", benchmark.DefaultTables())
	// 3 of 4 long games won: round(0.75 * 10) = 8.
	if p.LateGameSkill != 8 {
		t.Errorf("late game = %d, want 8", p.LateGameSkill)
	}
}

func TestProfileChampionPool(t *testing.T) {
	extracts := []model.MatchExtract{
		classicExtract("KR_1", "Zed", true),
		classicExtract("KR_2", "Zed", false),
		classicExtract("KR_3", "Ahri", true),
		classicExtract("KR_4", "Ahri", true),
		classicExtract("KR_5", "Viktor", false),
		classicExtract("KR_6", "Syndra", true),
	}
	p := ProfilePlaystyle(extracts, model.TierGold, "GOLD", "x", benchmark.DefaultTables())

	if len(p.ChampionPool) != 3 {
		t.Fatalf("pool size = %d, want top 3", len(p.ChampionPool))
	}
	// Ahri and Zed tie at two games; the name breaks the tie. The
	// remaining slot goes to the alphabetically first one-game champ.
	if p.ChampionPool[0].Champion != "Ahri" || p.ChampionPool[1].Champion != "Zed" {
		t.Errorf("pool order = %s, %s", p.ChampionPool[0].Champion, p.ChampionPool[1].Champion)
	}
	if p.ChampionPool[2].Champion != "Syndra" {
		t.Errorf("third pool entry = %s, want Syndra", p.ChampionPool[2].Champion)
	}

	ahri := p.ChampionPool[0]
	if ahri.Games != 2 || ahri.WinRate != 100 {
		t.Errorf("ahri entry = %+v", ahri)
	}
	// 2 games of 4/2/8: (8+16)/4.
	if ahri.AvgKDA != 6.0 {
		t.Errorf("ahri kda = %v, want 6.0", ahri.AvgKDA)
	}
}

func TestScoreValueClamps(t *testing.T) {
	cases := []struct {
		value, bench float64
		want         int
	}{
		{10, 5, 10},
		{5, 5, 5},
		{0.1, 5, 1},
		{100, 5, 10},
		{3, 0, 5},
	}
	for _, tc := range cases {
		if got := scoreValue(tc.value, tc.bench); got != tc.want {
			t.Errorf("scoreValue(%v, %v) = %d, want %d", tc.value, tc.bench, got, tc.want)
		}
	}
}
