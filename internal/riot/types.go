// Package riot holds the on-disk JSON shapes of the Riot Match-v5 and
// Timeline-v5 payloads this tool consumes. Field names and tags mirror
// the API responses so a saved response body loads unmodified.
package riot

// MatchResponse is the body of /lol/match/v5/matches/{matchId}.
type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation int64              `json:"gameCreation"`
	GameDuration int                `json:"gameDuration"` // seconds
	GameMode     string             `json:"gameMode"`
	GameVersion  string             `json:"gameVersion"`
	QueueID      int                `json:"queueId"`
	Participants []MatchParticipant `json:"participants"`
}

type MatchParticipant struct {
	ParticipantID               int    `json:"participantId"`
	PUUID                       string `json:"puuid"`
	TeamID                      int    `json:"teamId"` // 100 blue, 200 red
	TeamPosition                string `json:"teamPosition"`
	ChampionName                string `json:"championName"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	Win                         bool   `json:"win"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	VisionScore                 int    `json:"visionScore"`
	GoldEarned                  int    `json:"goldEarned"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int    `json:"totalDamageTaken"`
	TotalHeal                   int    `json:"totalHeal"`
	GameEndedInEarlySurrender   bool   `json:"gameEndedInEarlySurrender"`
}

// TimelineResponse is the body of /lol/match/v5/matches/{matchId}/timeline.
type TimelineResponse struct {
	Metadata TimelineMetadata `json:"metadata"`
	Info     TimelineInfo     `json:"info"`
}

type TimelineMetadata struct {
	MatchID string `json:"matchId"`
}

type TimelineInfo struct {
	FrameInterval int             `json:"frameInterval"` // ms, typically 60000
	Frames        []TimelineFrame `json:"frames"`
}

type TimelineFrame struct {
	Timestamp         int64                       `json:"timestamp"` // ms
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Events            []TimelineEvent             `json:"events"`
}

type ParticipantFrame struct {
	TotalGold           int `json:"totalGold"`
	MinionsKilled       int `json:"minionsKilled"`
	JungleMinionsKilled int `json:"jungleMinionsKilled"`
}

// EventPosition is a map coordinate attached to some events.
type EventPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TimelineEvent is the duck-typed union Riot emits: a "type" tag plus
// the superset of per-kind fields. The parser narrows these into the
// closed event kinds in internal/model; unknown types are skipped.
type TimelineEvent struct {
	Type                    string         `json:"type"`
	Timestamp               int64          `json:"timestamp"`
	ParticipantID           int            `json:"participantId,omitempty"`
	KillerID                int            `json:"killerId,omitempty"`
	VictimID                int            `json:"victimId,omitempty"`
	CreatorID               int            `json:"creatorId,omitempty"`
	KillerTeamID            int            `json:"killerTeamId,omitempty"`
	AssistingParticipantIDs []int          `json:"assistingParticipantIds,omitempty"`
	Position                *EventPosition `json:"position,omitempty"`
	MonsterType             string         `json:"monsterType,omitempty"`
	BuildingType            string         `json:"buildingType,omitempty"`
	WardType                string         `json:"wardType,omitempty"`
	ItemID                  int            `json:"itemId,omitempty"`
}

// Event type tags this tool understands.
const (
	EventChampionKill     = "CHAMPION_KILL"
	EventEliteMonsterKill = "ELITE_MONSTER_KILL"
	EventBuildingKill     = "BUILDING_KILL"
	EventWardPlaced       = "WARD_PLACED"
	EventWardKill         = "WARD_KILL"
	EventItemPurchased    = "ITEM_PURCHASED"
)
