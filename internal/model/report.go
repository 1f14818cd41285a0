package model

// Zone is a semantic map region, classified from a position and the
// dead player's side.
type Zone int

const (
	ZoneUnknown Zone = iota
	ZoneLaneSafe
	ZoneLaneOverextended
	ZoneRiver
	ZoneEnemyJungle
	ZoneOwnJungle
	ZoneEnemyBase
)

func (z Zone) String() string {
	switch z {
	case ZoneLaneSafe:
		return "LANE_SAFE"
	case ZoneLaneOverextended:
		return "LANE_OVEREXTENDED"
	case ZoneRiver:
		return "RIVER"
	case ZoneEnemyJungle:
		return "ENEMY_JUNGLE"
	case ZoneOwnJungle:
		return "OWN_JUNGLE"
	case ZoneEnemyBase:
		return "ENEMY_BASE"
	default:
		return "UNKNOWN"
	}
}

// DeathContext classifies the circumstances of one death.
type DeathContext int

const (
	SoloDeath DeathContext = iota
	GankDeath
	TeamfightDeath
	DiveDeath
)

func (d DeathContext) String() string {
	switch d {
	case SoloDeath:
		return "SOLO_DEATH"
	case GankDeath:
		return "GANK_DEATH"
	case DiveDeath:
		return "DIVE_DEATH"
	default:
		return "TEAMFIGHT_DEATH"
	}
}

// RelativeScore expresses how far a raw stat sits from its adjusted
// tier benchmark: -2 (very low) .. +2 (very high), 0 meaning
// statistically unremarkable for this tier/champion/role.
type RelativeScore int

// ContextFlags mark stats that are structurally atypical for a
// champion. The engine only carries them; suppressing commentary on a
// flagged stat is downstream policy.
type ContextFlags struct {
	IsRoam bool `json:"isRoam"`
	IsDive bool `json:"isDive"`
}

// PlayerInfo is the header block of a decision report.
type PlayerInfo struct {
	Champion string `json:"champion"`
	Role     string `json:"role"`
	Win      bool   `json:"win"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
	Assists  int    `json:"assists"`
	Rank     string `json:"rank"`
}

// DeathAnalysis describes one death: when, where and in what context
// it happened, and how the lane economy looked one minute earlier.
type DeathAnalysis struct {
	TimestampMs         int64    `json:"timestampMs"`
	MinuteMark          float64  `json:"minuteMark"`
	GoldDiffBeforeDeath int      `json:"goldDiffBeforeDeath"`
	KillerID            int      `json:"killerId"`
	AssistIDs           []int    `json:"assistingIds"`
	Location            Position `json:"location"`
	LocationType        string   `json:"locationType"`
	DeathContext        string   `json:"deathContext"`
}

// MissedObjective is one team elite-monster kill the player was absent
// from.
type MissedObjective struct {
	Type        string  `json:"type"`
	TimestampMs int64   `json:"timestampMs"`
	MinuteMark  float64 `json:"minuteMark"`
}

// ObjectiveParticipation summarizes involvement in team objectives.
type ObjectiveParticipation struct {
	Total             int               `json:"totalObjectives"`
	Participated      int               `json:"participated"`
	ParticipationRate int               `json:"participationRate"` // percent; 100 when Total == 0
	MissedObjectives  []MissedObjective `json:"missedObjectives"`
}

// GoldEfficiency tracks economy against the lane opponent at fixed
// checkpoints, plus detected recall timings.
type GoldEfficiency struct {
	GoldAt10     int     `json:"goldAt10"`
	GoldAt15     int     `json:"goldAt15"`
	GoldDiffAt10 int     `json:"goldDiffAt10"`
	GoldDiffAt15 int     `json:"goldDiffAt15"`
	CSAt10       int     `json:"csAt10"`
	CSAt15       int     `json:"csAt15"`
	BackTimings  []int64 `json:"backTimings"` // cluster start timestamps, ms
}

// VisionTimeline splits warding activity at the 15:00 boundary.
type VisionTimeline struct {
	WardsPlacedTotal int `json:"wardsPlacedTotal"`
	WardsKilledTotal int `json:"wardsKilledTotal"`
	EarlyWardsPlaced int `json:"earlyWardsPlaced"`
	LateWardsPlaced  int `json:"lateWardsPlaced"`
}

// CombatProfile summarizes fight involvement.
type CombatProfile struct {
	DamageDealt       int `json:"damageDealt"`
	DamageTaken       int `json:"damageTaken"`
	HealingDone       int `json:"healingDone"`
	KillParticipation int `json:"killParticipation"` // percent of team kills
	SoloKills         int `json:"soloKills"`
}

// RawStats are the per-minute-normalized raw inputs to the tier
// normalizer.
type RawStats struct {
	CSPerMin    float64 `json:"csPerMin"`
	KDA         float64 `json:"kda"`
	VisionScore float64 `json:"visionScore"`
}

// AdjustedAverages is a tier benchmark after champion and role
// corrections.
type AdjustedAverages struct {
	CSPerMin    float64 `json:"csPerMin"`
	KDA         float64 `json:"kda"`
	VisionScore float64 `json:"visionScore"`
}

// StatBenchmark is the normalizer's verdict on the player's raw stats
// for this game.
type StatBenchmark struct {
	Raw         RawStats         `json:"raw"`
	CSScore     RelativeScore    `json:"csScore"`
	KDAScore    RelativeScore    `json:"kdaScore"`
	VisionScore RelativeScore    `json:"visionScore"`
	Flags       ContextFlags     `json:"contextFlags"`
	AdjustedAvg AdjustedAverages `json:"adjustedAvg"`
}

// DecisionReport is the engine's complete per-match output. It is
// fully determined by its inputs and never mutated after construction.
type DecisionReport struct {
	MatchID                string                 `json:"matchId"`
	PlayerInfo             PlayerInfo             `json:"playerInfo"`
	GameDurationSec        int                    `json:"gameDuration"`
	DeathAnalyses          []DeathAnalysis        `json:"deathAnalysis"`
	ObjectiveParticipation ObjectiveParticipation `json:"objectiveParticipation"`
	GoldEfficiency         GoldEfficiency         `json:"goldEfficiency"`
	VisionTimeline         VisionTimeline         `json:"visionTimeline"`
	CombatProfile          CombatProfile          `json:"combatProfile"`
	StatBenchmark          StatBenchmark          `json:"statBenchmark"`
}
