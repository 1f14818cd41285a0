package benchmark

import "github.com/minsu-k/go-lol-metrics/internal/model"

// Normalize scores raw per-game stats against the tier benchmark after
// champion and role corrections. It is total over its inputs: unknown
// champions and roles fall back to neutral corrections, and a zero or
// negative adjusted average is clamped before division. The context
// flags are passed through untouched; they never alter the numeric
// scores.
func (t *Tables) Normalize(raw model.RawStats, tier model.Tier, champion string, role model.Role) model.StatBenchmark {
	tierAvg, ok := t.TierExpectations[tier]
	if !ok {
		tierAvg = t.TierExpectations[model.TierGold]
	}
	flags := t.Flags(champion)
	roleMod := t.RoleCSModifier[role]

	adjusted := model.AdjustedAverages{
		CSPerMin:    max1(tierAvg.CSPerMin + flags.CSOffset + roleMod),
		KDA:         tierAvg.KDA + flags.KDAOffset,
		VisionScore: tierAvg.VisionScore,
	}

	return model.StatBenchmark{
		Raw:         raw,
		CSScore:     CalcRelative(raw.CSPerMin, adjusted.CSPerMin),
		KDAScore:    CalcRelative(raw.KDA, adjusted.KDA),
		VisionScore: CalcRelative(raw.VisionScore, adjusted.VisionScore),
		Flags: model.ContextFlags{
			IsRoam: flags.IsRoam,
			IsDive: flags.IsDive,
		},
		AdjustedAvg: adjusted,
	}
}

// CalcRelative buckets actual against avg: within ±15% is 0, beyond
// ±15% is ±1, beyond ±50% is ±2. A single game is a noisy sample, so
// consumers should treat 0 as unremarkable rather than over-reading
// small deltas. The threshold comparison is an exact float compare:
// an actual of 1.15*avg only scores 1 when that product is exactly
// representable, so boundary tests must pick averages where it is.
func CalcRelative(actual, avg float64) model.RelativeScore {
	if avg <= 0 {
		return 0
	}
	diff := (actual - avg) / avg
	switch {
	case diff >= 0.5:
		return 2
	case diff >= 0.15:
		return 1
	case diff <= -0.5:
		return -2
	case diff <= -0.15:
		return -1
	default:
		return 0
	}
}

func max1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
