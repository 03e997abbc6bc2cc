package attractor

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/streampulse/chronos/errs"
)

// settlingEpsilon is the ball radius a trajectory's trailing points must
// stay within to classify as a point attractor. Not spelled out in the
// classification rules; fixed at a conservative absolute tolerance rather
// than exposed as a Config knob, since callers normalize their own phase
// space (e.g. unit variance) before feeding AddPoint.
const settlingEpsilon = 0.05

// Analyzer accumulates a bounded trajectory of PhasePoints and classifies
// its long-run dynamics on demand. AddPoint is write-exclusive; Analyze is
// read-shared, so concurrent Analyze calls may overlap each other but
// never a concurrent AddPoint.
type Analyzer struct {
	mu   sync.RWMutex
	cfg  Config
	traj *trajectory
	log  zerolog.Logger
}

// Option configures an Analyzer at construction.
type Option func(*Analyzer)

// WithLogger attaches a structured logger; defaults to zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// New builds an Analyzer. Panics if cfg is invalid — construction-time
// misconfiguration, not a runtime error value.
func New(cfg Config, opts ...Option) *Analyzer {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	a := &Analyzer{
		cfg:  cfg,
		traj: newTrajectory(int(cfg.MaxTrajectoryLength)),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddPoint appends coords at timestamp to the trajectory, evicting the
// oldest point once MaxTrajectoryLength is reached. Returns
// ErrDimensionMismatch if len(coords) != EmbeddingDimension.
func (a *Analyzer) AddPoint(coords []float64, timestamp uint64) error {
	if uint(len(coords)) != a.cfg.EmbeddingDimension {
		return fmt.Errorf("%w: point has %d coords, want %d", errs.ErrDimensionMismatch, len(coords), a.cfg.EmbeddingDimension)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cp := make([]float64, len(coords))
	copy(cp, coords)
	a.traj.push(PhasePoint{Coords: cp, Timestamp: timestamp})
	return nil
}

// Len reports the number of points currently held.
func (a *Analyzer) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.traj.len()
}

// Analyze runs the full classification pipeline over the current
// trajectory. Returns ErrInsufficientData if fewer than minAnalysisPoints
// have been added.
func (a *Analyzer) Analyze() (AttractorInfo, error) {
	a.mu.RLock()
	points := a.traj.snapshot()
	a.mu.RUnlock()

	if len(points) < minAnalysisPoints {
		return AttractorInfo{}, fmt.Errorf("%w: have %d points, need >= %d", errs.ErrInsufficientData, len(points), minAnalysisPoints)
	}

	lambda1, fitQuality := largestLyapunov(points)
	secondary := secondaryExponents(points, int(a.cfg.EmbeddingDimension))

	exponents := make([]float64, 0, 1+len(secondary))
	exponents = append(exponents, lambda1)
	exponents = append(exponents, secondary...)

	kind := classify(points, lambda1, settlingEpsilon)
	bounded := isBounded(points)
	stable := lambda1 <= 0 && bounded

	dataSufficiency := float64(len(points)) / float64(a.cfg.MaxTrajectoryLength)
	if dataSufficiency > 1 {
		dataSufficiency = 1
	}
	confidence := dataSufficiency * fitQuality

	a.log.Debug().
		Str("kind", kind.String()).
		Float64("lambda1", lambda1).
		Bool("stable", stable).
		Float64("confidence", confidence).
		Msg("attractor analysis complete")

	return AttractorInfo{
		Kind:              kind,
		Dimension:         int(a.cfg.EmbeddingDimension),
		LyapunovExponents: exponents,
		IsStable:          stable,
		Confidence:        confidence,
	}, nil
}
