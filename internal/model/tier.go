package model

import "strings"

// Tier is one of the ten ranked skill tiers.
type Tier int

const (
	TierIron Tier = iota
	TierBronze
	TierSilver
	TierGold
	TierPlatinum
	TierEmerald
	TierDiamond
	TierMaster
	TierGrandmaster
	TierChallenger
)

func (t Tier) String() string {
	switch t {
	case TierIron:
		return "IRON"
	case TierBronze:
		return "BRONZE"
	case TierSilver:
		return "SILVER"
	case TierGold:
		return "GOLD"
	case TierPlatinum:
		return "PLATINUM"
	case TierEmerald:
		return "EMERALD"
	case TierDiamond:
		return "DIAMOND"
	case TierMaster:
		return "MASTER"
	case TierGrandmaster:
		return "GRANDMASTER"
	case TierChallenger:
		return "CHALLENGER"
	default:
		return "GOLD"
	}
}

// ParseTier resolves a tier string to a Tier. Matching is
// case-insensitive and ignores a trailing division ("Gold IV",
// "gold iv 50lp"). Unrecognized input falls back to TierGold with
// ok=false: tier context is advisory, never a reason to refuse a
// report.
func ParseTier(s string) (Tier, bool) {
	head := s
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		head = s[:i]
	}
	switch strings.ToLower(head) {
	case "iron":
		return TierIron, true
	case "bronze":
		return TierBronze, true
	case "silver":
		return TierSilver, true
	case "gold":
		return TierGold, true
	case "platinum":
		return TierPlatinum, true
	case "emerald":
		return TierEmerald, true
	case "diamond":
		return TierDiamond, true
	case "master":
		return TierMaster, true
	case "grandmaster":
		return TierGrandmaster, true
	case "challenger":
		return TierChallenger, true
	default:
		return TierGold, false
	}
}
