package verifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/streampulse/chronos/errs"
)

// Verifier holds a bounded TemporalTrace and evaluates TemporalFormulas
// against it. Safe for concurrent use: Push is write-exclusive, Verify is
// read-shared.
type Verifier struct {
	mu    sync.RWMutex
	cfg   Config
	trace *temporalTrace
	log   zerolog.Logger
}

// Option configures a Verifier at construction.
type Option func(*Verifier)

// WithLogger attaches a structured logger; defaults to zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(v *Verifier) { v.log = log }
}

// New builds a Verifier. Panics if cfg is invalid.
func New(cfg Config, opts ...Option) *Verifier {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	v := &Verifier{
		cfg:   cfg,
		trace: newTemporalTrace(int(cfg.MaxTraceLength)),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Push appends state to the trace, evicting the oldest state once
// MaxTraceLength is reached.
func (v *Verifier) Push(state TemporalState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.trace.push(state)
}

// Len reports the number of states currently held.
func (v *Verifier) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.trace.len()
}

// Verify evaluates formula against the current trace from its first
// state. Returns ErrInvalidFormula if formula is malformed, or
// ErrTimeoutExceeded if evaluation does not finish within MaxSolvingTime.
func (v *Verifier) Verify(formula TemporalFormula) (VerificationResult, error) {
	if !formula.valid() {
		return VerificationResult{}, errs.ErrInvalidFormula
	}

	v.mu.RLock()
	states := v.trace.snapshot()
	v.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(v.cfg.MaxSolvingTime)*time.Millisecond)
	defer cancel()

	satisfied := eval(ctx, &formula, states, 0)
	if ctx.Err() == context.DeadlineExceeded {
		v.log.Warn().Uint("max_solving_time_ms", v.cfg.MaxSolvingTime).Msg("verification timeout exceeded")
		return VerificationResult{}, fmt.Errorf("%w: after %dms", errs.ErrTimeoutExceeded, v.cfg.MaxSolvingTime)
	}

	var counterexample []uint64
	if !satisfied {
		counterexample = extractCounterexample(ctx, &formula, states)
	}

	confidence := v.confidence(len(states))

	v.log.Debug().
		Bool("satisfied", satisfied).
		Float64("confidence", confidence).
		Int("counterexample_len", len(counterexample)).
		Msg("verification complete")

	return VerificationResult{
		Satisfied:      satisfied,
		Confidence:     confidence,
		Counterexample: counterexample,
	}, nil
}

// confidence = (observed length / ideal length) * strictness factor,
// clamped to [0,1]. Ideal length is the configured MaxTraceLength: a
// trace filling its whole window is treated as fully trustworthy data.
func (v *Verifier) confidence(observedLen int) float64 {
	c := float64(observedLen) / float64(v.cfg.MaxTraceLength) * v.cfg.Strictness.factor()
	if c > 1 {
		c = 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

// extractCounterexample specializes to the common safety-monitoring shape
// Globally(inner): it returns the ids of every state where inner fails,
// the concrete witnesses of the G violation. Other top-level formula
// shapes have no single canonical counterexample construction and return
// nil — satisfied=false with no witnesses rather than a guess.
func extractCounterexample(ctx context.Context, f *TemporalFormula, states []TemporalState) []uint64 {
	if f.kind != KindUnary || f.unaryOp != OpGlobally {
		return nil
	}
	var ids []uint64
	for i, s := range states {
		if ctxDone(ctx) {
			break
		}
		if !eval(ctx, f.inner, states, i) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
