// Package benchmark holds the static reference data the analysis
// engine scores against: per-tier expected performance, per-role CS
// corrections, per-champion behavioral flags, and the fixed tower
// coordinate tables. Tables is built once at startup and passed by
// reference; nothing in here is lazily initialized or mutated.
package benchmark

import "github.com/minsu-k/go-lol-metrics/internal/model"

// TierExpectation is the expected average performance at one tier,
// used by the per-match stat normalizer.
type TierExpectation struct {
	CSPerMin    float64
	VisionScore float64
	KDA         float64
}

// ProfileBenchmark is the tier baseline used by the playstyle
// profiler. It is a separate calibration from TierExpectation: trait
// scores are scaled against per-minute aggregates over many games, not
// a single game's totals.
type ProfileBenchmark struct {
	CSPerMin     float64
	VisionPerMin float64
	Deaths       float64
	KDA          float64
}

// ChampionFlags mark champions whose raw stats are structurally
// atypical. Offsets shift the tier average; IsRoam/IsDive are carried
// through to consumers untouched.
type ChampionFlags struct {
	CSOffset  float64
	KDAOffset float64
	IsRoam    bool
	IsDive    bool
}

// Tables is the full immutable benchmark configuration.
type Tables struct {
	TierExpectations  map[model.Tier]TierExpectation
	ProfileBenchmarks map[model.Tier]ProfileBenchmark
	RoleCSModifier    map[model.Role]float64
	ChampionFlags     map[string]ChampionFlags
	BlueTowers        []model.Position
	RedTowers         []model.Position
}

// Towers returns the tower coordinate table for the given side.
func (t *Tables) Towers(team model.Team) []model.Position {
	if team == model.TeamRed {
		return t.RedTowers
	}
	return t.BlueTowers
}

// Flags returns the champion's flag entry, or the all-zero default for
// champions missing from the table. Rosters change every patch; an
// unknown champion is expected, not an error.
func (t *Tables) Flags(champion string) ChampionFlags {
	return t.ChampionFlags[champion]
}

// DefaultTables returns the built-in benchmark data.
func DefaultTables() *Tables {
	return &Tables{
		TierExpectations: map[model.Tier]TierExpectation{
			model.TierIron:        {CSPerMin: 4.5, VisionScore: 12, KDA: 1.2},
			model.TierBronze:      {CSPerMin: 5.5, VisionScore: 15, KDA: 1.5},
			model.TierSilver:      {CSPerMin: 6.5, VisionScore: 18, KDA: 1.8},
			model.TierGold:        {CSPerMin: 7.2, VisionScore: 21, KDA: 2.1},
			model.TierPlatinum:    {CSPerMin: 7.8, VisionScore: 24, KDA: 2.3},
			model.TierEmerald:     {CSPerMin: 8.2, VisionScore: 26, KDA: 2.5},
			model.TierDiamond:     {CSPerMin: 8.6, VisionScore: 28, KDA: 2.7},
			model.TierMaster:      {CSPerMin: 9.0, VisionScore: 30, KDA: 3.0},
			model.TierGrandmaster: {CSPerMin: 9.2, VisionScore: 32, KDA: 3.2},
			model.TierChallenger:  {CSPerMin: 9.5, VisionScore: 35, KDA: 3.5},
		},
		ProfileBenchmarks: map[model.Tier]ProfileBenchmark{
			model.TierIron:        {CSPerMin: 4.0, VisionPerMin: 0.4, Deaths: 7.0, KDA: 1.8},
			model.TierBronze:      {CSPerMin: 4.5, VisionPerMin: 0.5, Deaths: 6.5, KDA: 2.0},
			model.TierSilver:      {CSPerMin: 5.0, VisionPerMin: 0.6, Deaths: 6.0, KDA: 2.3},
			model.TierGold:        {CSPerMin: 5.5, VisionPerMin: 0.7, Deaths: 5.5, KDA: 2.5},
			model.TierPlatinum:    {CSPerMin: 6.0, VisionPerMin: 0.8, Deaths: 5.0, KDA: 2.8},
			model.TierEmerald:     {CSPerMin: 6.5, VisionPerMin: 0.9, Deaths: 4.8, KDA: 3.0},
			model.TierDiamond:     {CSPerMin: 7.0, VisionPerMin: 1.0, Deaths: 4.5, KDA: 3.2},
			model.TierMaster:      {CSPerMin: 7.5, VisionPerMin: 1.1, Deaths: 4.2, KDA: 3.5},
			model.TierGrandmaster: {CSPerMin: 8.0, VisionPerMin: 1.2, Deaths: 4.0, KDA: 3.8},
			model.TierChallenger:  {CSPerMin: 8.5, VisionPerMin: 1.3, Deaths: 3.8, KDA: 4.0},
		},
		// Flat CS/min adjustment relative to laners: junglers farm
		// camps between ganks, supports barely farm at all.
		RoleCSModifier: map[model.Role]float64{
			model.RoleJungle:  -3.0,
			model.RoleUtility: -4.0,
			model.RoleTop:     0,
			model.RoleMiddle:  0,
			model.RoleBottom:  0,
		},
		ChampionFlags: map[string]ChampionFlags{
			"Yasuo":    {CSOffset: -0.3, KDAOffset: -0.8, IsDive: true},
			"Yone":     {CSOffset: -0.2, KDAOffset: -0.5, IsDive: true},
			"Zed":      {CSOffset: -0.1, KDAOffset: -0.4, IsDive: true},
			"Talon":    {CSOffset: -0.3, KDAOffset: -0.3, IsRoam: true},
			"Qiyana":   {CSOffset: -0.2, KDAOffset: -0.3, IsRoam: true},
			"Katarina": {CSOffset: -0.4, KDAOffset: -0.2, IsDive: true},
			"Fizz":     {CSOffset: -0.2, KDAOffset: -0.3, IsDive: true},
			"Ekko":     {CSOffset: -0.1, KDAOffset: -0.2, IsDive: true},
			"Irelia":   {CSOffset: -0.1, KDAOffset: -0.6, IsDive: true},
			"Riven":    {CSOffset: -0.1, KDAOffset: -0.5, IsDive: true},
			"Akali":    {CSOffset: -0.2, KDAOffset: -0.4, IsRoam: true, IsDive: true},
			"Ahri":     {CSOffset: 0, KDAOffset: 0, IsRoam: true},
		},
		// Outer/inner/inhibitor towers for the three lanes, per side.
		BlueTowers: []model.Position{
			{X: 981, Y: 10441},
			{X: 1512, Y: 6699},
			{X: 1169, Y: 4287},
			{X: 5846, Y: 6396},
			{X: 5048, Y: 4812},
			{X: 3651, Y: 3696},
			{X: 10504, Y: 1029},
			{X: 6919, Y: 1483},
			{X: 4281, Y: 1253},
		},
		RedTowers: []model.Position{
			{X: 4318, Y: 13875},
			{X: 7943, Y: 13411},
			{X: 10481, Y: 13650},
			{X: 8955, Y: 8510},
			{X: 9767, Y: 10113},
			{X: 11134, Y: 11207},
			{X: 13866, Y: 4505},
			{X: 13327, Y: 8226},
			{X: 13624, Y: 10572},
		},
	}
}
