package analyzer

import "github.com/minsu-k/go-lol-metrics/internal/model"

// closestFrame returns the frame whose timestamp is nearest the
// target, ties broken by the earlier frame. Returns nil for an empty
// frame list.
func closestFrame(frames []model.Frame, targetMs int64) *model.Frame {
	var best *model.Frame
	var bestDiff int64
	for i := range frames {
		diff := frames[i].TimestampMs - targetMs
		if diff < 0 {
			diff = -diff
		}
		if best == nil || diff < bestDiff {
			best = &frames[i]
			bestDiff = diff
		}
	}
	return best
}

// goldAt samples the participant's total gold at the frame closest to
// targetMs. Missing frames or a missing participant entry sample as 0:
// partial timelines degrade, they do not fail.
func goldAt(frames []model.Frame, participantID int, targetMs int64) int {
	f := closestFrame(frames, targetMs)
	if f == nil {
		return 0
	}
	return f.Snapshots[participantID].TotalGold
}

// csAt samples lane plus jungle minions at the frame closest to
// targetMs, with the same missing-data-is-zero policy as goldAt.
func csAt(frames []model.Frame, participantID int, targetMs int64) int {
	f := closestFrame(frames, targetMs)
	if f == nil {
		return 0
	}
	snap := f.Snapshots[participantID]
	return snap.MinionsKilled + snap.JungleMinionsKilled
}
