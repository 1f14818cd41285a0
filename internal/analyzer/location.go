package analyzer

import "github.com/minsu-k/go-lol-metrics/internal/model"

// Summoner's Rift extent in game units, both axes.
const mapSize = 15000.0

// ClassifyLocation maps a coordinate and the player's side to a
// semantic zone. Red-side coordinates are reflected through the map
// center so every threshold is expressed once, from blue's
// perspective. Zones are checked in priority order; the first match
// wins.
func ClassifyLocation(x, y float64, team model.Team) model.Zone {
	nx, ny := x, y
	if team == model.TeamRed {
		nx, ny = mapSize-x, mapSize-y
	}

	// Enemy base: red nexus corner.
	if nx > 12500 && ny > 12500 {
		return model.ZoneEnemyBase
	}

	// River: diagonal band through the map center.
	center := (nx + ny) / 2
	if center > 6000 && center < 9000 && abs(nx-ny) < 5000 {
		return model.ZoneRiver
	}

	// Enemy jungle: upper-right quadrant, off-lane.
	if nx+ny > 17000 && nx > 5000 && ny > 5000 {
		return model.ZoneEnemyJungle
	}

	// Own jungle: lower-left quadrant, off-lane.
	if nx+ny < 13000 && nx > 2000 && nx < 10000 && ny > 2000 && ny < 10000 {
		return model.ZoneOwnJungle
	}

	// Past the midline without being in a jungle: overextended in lane.
	if nx+ny > 16000 {
		return model.ZoneLaneOverextended
	}

	return model.ZoneLaneSafe
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
