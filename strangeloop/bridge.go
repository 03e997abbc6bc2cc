package strangeloop

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/streampulse/chronos/attractor"
	"github.com/streampulse/chronos/comparator"
)

// AnalyzeBehavior lifts raw observation vectors into PhasePoints, runs the
// attractor analyzer over them, and records the resulting classification
// as level-1 meta-knowledge (e.g. "strange" or "point"), so later learning
// cycles can reason about what kind of dynamics the system is exhibiting.
func (e *Engine) AnalyzeBehavior(trajectoryData [][]float64, timestamps []uint64) (attractor.AttractorInfo, error) {
	if len(trajectoryData) == 0 {
		return attractor.AttractorInfo{}, fmt.Errorf("strangeloop: empty trajectory data")
	}
	dim := uint(len(trajectoryData[0]))

	a := attractor.New(attractor.Config{EmbeddingDimension: dim, MaxTrajectoryLength: uint(len(trajectoryData))})
	for i, coords := range trajectoryData {
		ts := uint64(i)
		if i < len(timestamps) {
			ts = timestamps[i]
		}
		if err := a.AddPoint(coords, ts); err != nil {
			return attractor.AttractorInfo{}, err
		}
	}

	info, err := a.Analyze()
	if err != nil {
		return attractor.AttractorInfo{}, err
	}

	if _, lErr := e.LearnAtLevel(1, []string{info.Kind.String(), info.Kind.String()}); lErr != nil {
		e.log.Warn().Err(lErr).Msg("failed to record behavior classification as meta-knowledge")
	}
	return info, nil
}

// CycleResult collects one learning cycle's fan-out outputs.
type CycleResult struct {
	Patterns    []MetaKnowledge
	Behavior    attractor.AttractorInfo
	NoveltyDist float64
}

// RunCycle fans a single learning cycle out across the comparator and
// attractor analyzer concurrently: novelty of this cycle's observations
// against the previous cycle is scored by edit distance, while the
// trajectory sample is independently classified by the attractor
// analyzer, while the observations are learned at level 0. Each goroutine
// records its own knowledge as it finishes (level 0 for the observations,
// level 1 for the classification); the novelty distance is only reported
// in the CycleResult.
func (e *Engine) RunCycle(ctx context.Context, observations, previousObservations []string, trajectory [][]float64) (CycleResult, error) {
	var result CycleResult

	e.cycleModifications.Store(0) // a new cycle gets a fresh MaxModificationsPerCycle budget

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		patterns, err := e.LearnAtLevel(0, observations)
		if err != nil {
			return err
		}
		result.Patterns = patterns
		return nil
	})

	if len(observations) > 0 && len(previousObservations) > 0 {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			cmp := comparator.NewDiscrete[string](comparator.DefaultConfig())
			res, err := cmp.Compare(observations, previousObservations, comparator.Edit)
			if err != nil {
				return err
			}
			result.NoveltyDist = res.Distance
			return nil
		})
	}

	if len(trajectory) > 0 {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			info, err := e.AnalyzeBehavior(trajectory, nil)
			if err != nil {
				return err
			}
			result.Behavior = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return CycleResult{}, err
	}
	return result, nil
}
