package profiler

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/minsu-k/go-lol-metrics/internal/analyzer"
	"github.com/minsu-k/go-lol-metrics/internal/model"
	"github.com/minsu-k/go-lol-metrics/internal/parser"
	"github.com/minsu-k/go-lol-metrics/internal/riot"
)

// AnalyzeBatch loads the given match files and extracts the puuid's
// per-game line from each, fanning the per-file work out over a bounded
// worker group. Results come back in input order regardless of which
// worker finished first, so a batch over the same files is always the
// same slice. Files that fail to load, don't contain the player, or
// ended in an early surrender are skipped with a log line rather than
// failing the batch.
func AnalyzeBatch(ctx context.Context, paths []string, puuid string, workers int, log zerolog.Logger) ([]model.MatchExtract, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*model.MatchExtract, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = extractOne(path, puuid, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	extracts := make([]model.MatchExtract, 0, len(paths))
	for _, r := range results {
		if r != nil {
			extracts = append(extracts, *r)
		}
	}
	return extracts, nil
}

func extractOne(path, puuid string, log zerolog.Logger) *model.MatchExtract {
	m, err := riot.LoadMatch(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("skipping match")
		return nil
	}
	raw, err := parser.Flatten(m, nil, log)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("skipping match")
		return nil
	}
	p := raw.ParticipantByPUUID(puuid)
	if p == nil {
		log.Warn().Str("file", path).Str("match", raw.MatchID).Msg("player not in match, skipping")
		return nil
	}
	if p.EarlySurrender {
		log.Debug().Str("match", raw.MatchID).Msg("early surrender, skipping")
		return nil
	}
	extract, err := analyzer.ExtractParticipant(raw, p.ID)
	if err != nil {
		log.Warn().Err(err).Str("match", raw.MatchID).Msg("skipping match")
		return nil
	}
	return extract
}
