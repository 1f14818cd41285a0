package model

// MatchExtract is the single-match reduction the playstyle profiler
// consumes. One extract per game, produced independently per match.
type MatchExtract struct {
	MatchID           string  `json:"matchId"`
	GameMode          string  `json:"gameMode"`
	QueueID           int     `json:"queueId"`
	Win               bool    `json:"win"`
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
	CS                int     `json:"cs"`
	CSPerMin          float64 `json:"csPerMin"`
	VisionScore       int     `json:"visionScore"`
	VisionPerMin      float64 `json:"visionPerMin"`
	Damage            int     `json:"damage"`
	GoldEarned        int     `json:"goldEarned"`
	KillParticipation int     `json:"killParticipation"` // percent of team kills
	SoloKills         int     `json:"soloKills"`         // estimated
	Champion          string  `json:"champion"`
	Role              string  `json:"role"`
	DurationMin       float64 `json:"durationMin"`
}

// ChampionPoolEntry is one champion's aggregate line in a profile.
type ChampionPoolEntry struct {
	Champion  string  `json:"champion"`
	Games     int     `json:"games"`
	WinRate   int     `json:"winRate"` // percent
	AvgKDA    float64 `json:"avgKDA"`
	AvgCS     float64 `json:"avgCs"` // cs per minute
	AvgDamage int     `json:"avgDamage"`
	Role      string  `json:"role"`
}

// PlaystyleProfile aggregates a set of match extracts into 1-10 trait
// scores, a champion pool and a role distribution.
type PlaystyleProfile struct {
	SummonerName string `json:"summonerName"`
	Rank         string `json:"rank"`
	TotalGames   int    `json:"totalGames"`
	WinRate      int    `json:"winRate"` // percent

	Aggression    int `json:"aggression"`
	Roaming       int `json:"roaming"`
	VisionScore   int `json:"visionScore"`
	CSSkill       int `json:"csSkill"`
	LateGameSkill int `json:"lateGameSkill"`

	AvgSoloKills         float64 `json:"avgSoloKills"`
	AvgDeaths            float64 `json:"avgDeaths"`
	AvgVisionScore       float64 `json:"avgVisionScore"`
	AvgCSPerMin          float64 `json:"avgCsPerMin"`
	AvgKDA               float64 `json:"avgKDA"`
	AvgDamage            int     `json:"avgDamage"`
	AvgKillParticipation int     `json:"avgKillParticipation"`

	ChampionPool     []ChampionPoolEntry `json:"championPool"`
	RoleDistribution map[string]int      `json:"roleDistribution"` // percent per role
}
