package analyzer

import (
	"math"

	"github.com/minsu-k/go-lol-metrics/internal/benchmark"
	"github.com/minsu-k/go-lol-metrics/internal/model"
)

const (
	// Kills within this window and radius of a death form one fight.
	teamfightWindowMs = 15000
	teamfightRadius   = 3000.0
	// Deaths this close to an allied tower count as dive deaths.
	towerDiveRadius = 1000.0
	// Cluster size (death included) that makes a fight a teamfight.
	teamfightKillCount = 3
)

// classifyDeathContext labels one death as solo, gank, teamfight or
// tower dive. Checks run in a fixed order and the first match wins;
// in particular dive is only reached when the teamfight cluster
// condition failed, an ordering kept from the behavior this tool
// replicates.
func classifyDeathContext(death model.KillEvent, raw *model.RawMatch, victim *model.Participant, tables *benchmark.Tables) model.DeathContext {
	// Teamfight: enough kills clustered around the death in time and,
	// where both events carry positions, in space. Kills missing a
	// position cluster on the time criterion alone.
	nearby := 0
	for _, k := range raw.Kills {
		dt := k.TimestampMs - death.TimestampMs
		if dt < 0 {
			dt = -dt
		}
		if dt > teamfightWindowMs {
			continue
		}
		if k.Position != nil && death.Position != nil && dist(*k.Position, *death.Position) >= teamfightRadius {
			continue
		}
		nearby++
	}
	if nearby >= teamfightKillCount {
		return model.TeamfightDeath
	}

	// Dive: died under an allied tower.
	if death.Position != nil {
		for _, tower := range tables.Towers(victim.Team) {
			if dist(*death.Position, tower) < towerDiveRadius {
				return model.DiveDeath
			}
		}
	}

	// Gank: killed by someone from another lane with at most one
	// assist involved.
	assistCount := len(death.AssistIDs)
	killer := raw.ParticipantByID(death.KillerID)
	if killer != nil && killer.Role != model.RoleUnknown && killer.Role != victim.Role && assistCount <= 1 {
		return model.GankDeath
	}

	// Solo: nobody else touched it.
	if assistCount == 0 {
		return model.SoloDeath
	}

	return model.TeamfightDeath
}

func dist(a, b model.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
