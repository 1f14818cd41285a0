package model

// Team represents which side of the map a participant plays on.
// Riot encodes blue as 100 and red as 200.
type Team int

const (
	TeamUnknown Team = 0
	TeamBlue    Team = 100
	TeamRed     Team = 200
)

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "BLUE"
	case TeamRed:
		return "RED"
	default:
		return "?"
	}
}

// Role is the assigned position of a participant.
type Role int

const (
	RoleUnknown Role = iota
	RoleTop
	RoleJungle
	RoleMiddle
	RoleBottom
	RoleUtility
)

// Roles lists the five standard positions in fixed order, used for
// role-distribution output.
var Roles = []Role{RoleTop, RoleJungle, RoleMiddle, RoleBottom, RoleUtility}

func (r Role) String() string {
	switch r {
	case RoleTop:
		return "TOP"
	case RoleJungle:
		return "JUNGLE"
	case RoleMiddle:
		return "MIDDLE"
	case RoleBottom:
		return "BOTTOM"
	case RoleUtility:
		return "UTILITY"
	default:
		return "UNKNOWN"
	}
}

// ParseRole maps a Riot teamPosition string to a Role. Empty or
// unrecognized positions (arena modes, remakes) map to RoleUnknown.
func ParseRole(s string) Role {
	switch s {
	case "TOP":
		return RoleTop
	case "JUNGLE":
		return RoleJungle
	case "MIDDLE":
		return RoleMiddle
	case "BOTTOM":
		return RoleBottom
	case "UTILITY":
		return RoleUtility
	default:
		return RoleUnknown
	}
}

// Position is a map coordinate in game units. Summoner's Rift is
// roughly 15000x15000.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Participant is the immutable end-of-game snapshot of one player,
// taken from the match record.
type Participant struct {
	ID             int
	PUUID          string
	Team           Team
	Role           Role
	Champion       string
	Kills          int
	Deaths         int
	Assists        int
	Win            bool
	DamageDealt    int
	DamageTaken    int
	HealingDone    int
	VisionScore    int
	CS             int // lane minions + jungle monsters
	GoldEarned     int
	EarlySurrender bool
}

// KDA returns (kills+assists)/deaths with the deaths denominator
// clamped to 1.
func (p *Participant) KDA() float64 {
	deaths := p.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(p.Kills+p.Assists) / float64(deaths)
}

// FrameSnapshot is one participant's economy state inside a frame.
type FrameSnapshot struct {
	TotalGold           int
	MinionsKilled       int
	JungleMinionsKilled int
}

// Frame is a periodic snapshot of every participant's economy state.
// Frames arrive roughly once per minute and are ordered by timestamp.
type Frame struct {
	TimestampMs int64
	Snapshots   map[int]FrameSnapshot
}

// ---- Flattened timeline events, one slice per kind ----

// KillEvent is a champion takedown.
type KillEvent struct {
	TimestampMs int64
	KillerID    int
	VictimID    int
	AssistIDs   []int
	Position    *Position // nil when the source omitted it
}

// ObjectiveEvent is an elite monster or building kill credited to a team.
type ObjectiveEvent struct {
	TimestampMs int64
	KillerID    int
	KillerTeam  Team
	AssistIDs   []int
	Monster     string // DRAGON, RIFTHERALD, BARON_NASHOR, ... ; empty for buildings
	Building    string // TOWER_BUILDING, INHIBITOR_BUILDING, ... ; empty for monsters
}

// IsBuilding reports whether this objective was a structure rather
// than an elite monster.
func (e *ObjectiveEvent) IsBuilding() bool {
	return e.Building != ""
}

// Kind returns the monster or building subtype label.
func (e *ObjectiveEvent) Kind() string {
	if e.Monster != "" {
		return e.Monster
	}
	if e.Building != "" {
		return e.Building
	}
	return "UNKNOWN"
}

// WardPlacedEvent records one ward placement.
type WardPlacedEvent struct {
	TimestampMs int64
	CreatorID   int
	WardType    string
}

// WardKillEvent records one ward cleared by a player.
type WardKillEvent struct {
	TimestampMs int64
	KillerID    int
}

// ItemPurchaseEvent records one shop purchase.
type ItemPurchaseEvent struct {
	TimestampMs   int64
	ParticipantID int
	ItemID        int
}

// RawMatch is one fully flattened match: final participant stats plus
// the time-ordered event log. It is the engine's sole input shape;
// nothing in it is mutated after construction.
type RawMatch struct {
	MatchID         string
	GameDurationSec int
	GameMode        string
	QueueID         int
	Participants    []Participant

	Frames        []Frame
	Kills         []KillEvent
	Objectives    []ObjectiveEvent
	WardsPlaced   []WardPlacedEvent
	WardKills     []WardKillEvent
	ItemPurchases []ItemPurchaseEvent
}

// ParticipantByID returns the participant with the given id, or nil.
func (m *RawMatch) ParticipantByID(id int) *Participant {
	for i := range m.Participants {
		if m.Participants[i].ID == id {
			return &m.Participants[i]
		}
	}
	return nil
}

// ParticipantByPUUID returns the participant with the given puuid, or nil.
func (m *RawMatch) ParticipantByPUUID(puuid string) *Participant {
	for i := range m.Participants {
		if m.Participants[i].PUUID == puuid {
			return &m.Participants[i]
		}
	}
	return nil
}

// LaneOpponent returns the enemy-team participant sharing p's role.
// Returns nil for unknown roles or non-standard team comps; all
// differential metrics then degrade to zero rather than failing.
func (m *RawMatch) LaneOpponent(p *Participant) *Participant {
	if p == nil || p.Role == RoleUnknown {
		return nil
	}
	for i := range m.Participants {
		o := &m.Participants[i]
		if o.Team != p.Team && o.Role == p.Role && o.ID != p.ID {
			return o
		}
	}
	return nil
}
