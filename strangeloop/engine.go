package strangeloop

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/streampulse/chronos/clock"
	"github.com/streampulse/chronos/errs"
	"github.com/streampulse/chronos/verifier"
)

// minPatternCount is the minimum occurrence count a value needs in a
// learn_at_level(0, data) batch to be extracted as a pattern.
const minPatternCount = 2

// Engine holds multi-level meta-knowledge and gates self-modification
// behind registered SafetyConstraints. Safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	cfg Config
	clk clock.Clock
	log zerolog.Logger

	knowledge [][]MetaKnowledge // knowledge[level] is that level's arena
	safety    []SafetyConstraint

	learningIterations   atomic.Uint64
	safetyViolations     atomic.Uint64
	modificationsApplied atomic.Uint64
	cycleModifications   atomic.Int64 // modifications applied within the current cycle; reset by RunCycle/Reset
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger attaches a structured logger; defaults to zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New builds an Engine. Panics if cfg is invalid.
func New(cfg Config, clk clock.Clock, opts ...Option) *Engine {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	e := &Engine{
		cfg:       cfg,
		clk:       clk,
		log:       zerolog.Nop(),
		knowledge: make([][]MetaKnowledge, cfg.MaxMetaDepth),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterSafetyConstraint adds a constraint apply_modification will
// check against every future proposed modification.
func (e *Engine) RegisterSafetyConstraint(c SafetyConstraint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.safety = append(e.safety, c)
}

// LearnAtLevel extracts patterns from data at level and records them as
// MetaKnowledge. Level 0 is frequency-count based: any value occurring at
// least minPatternCount times is extracted as its own pattern. Levels 1+
// treat data as identifiers of already-extracted patterns and extract
// patterns-of-patterns by the same frequency rule. If level+1 <
// MaxMetaDepth and at least one pattern was extracted, LearnAtLevel
// recursively promotes the extracted pattern identifiers to level+1 —
// synchronously, so a caller observing LearnAtLevel's return already
// sees every level it triggered.
//
// Returns ErrInvalidLevel if level is negative or >= MaxMetaDepth.
func (e *Engine) LearnAtLevel(level int, data []string) ([]MetaKnowledge, error) {
	return e.learnAtLevel(level, data, nil)
}

// learnAtLevel is LearnAtLevel's implementation; sourceIndices, when
// non-nil, gives the arena index within level-1 that produced data[i], so
// extractPatterns can populate DerivedFrom. The public entry point always
// passes nil, since level 0 has no level below it to derive from.
func (e *Engine) learnAtLevel(level int, data []string, sourceIndices []int) ([]MetaKnowledge, error) {
	if level < 0 || level >= e.cfg.MaxMetaDepth {
		return nil, fmt.Errorf("%w: level %d, max depth %d", errs.ErrInvalidLevel, level, e.cfg.MaxMetaDepth)
	}

	extracted := extractPatterns(data, sourceIndices, level, e.clk.NowNanos())

	e.mu.Lock()
	baseIdx := len(e.knowledge[level])
	e.knowledge[level] = append(e.knowledge[level], extracted...)
	e.mu.Unlock()
	e.learningIterations.Add(1)

	e.log.Debug().Int("level", level).Int("extracted", len(extracted)).Msg("learn_at_level complete")

	if len(extracted) > 0 && level+1 < e.cfg.MaxMetaDepth {
		// Each extracted pattern's identifier is repeated by its own
		// occurrence count so the promoted batch preserves enough weight
		// for level+1's frequency rule to recognize it in turn; the
		// pattern's own arena index rides along in promotedIdx so the
		// level above can record what it was derived from.
		var ids []string
		var promotedIdx []int
		for i, k := range extracted {
			n := int(k.Confidence*float64(len(data)) + 0.5)
			arenaIdx := baseIdx + i
			for j := 0; j < n; j++ {
				ids = append(ids, k.Pattern)
				promotedIdx = append(promotedIdx, arenaIdx)
			}
		}
		if _, err := e.learnAtLevel(level+1, ids, promotedIdx); err != nil {
			return extracted, err
		}
	}

	return extracted, nil
}

// extractPatterns applies the frequency-count rule: any value appearing
// at least minPatternCount times in data becomes a MetaKnowledge at
// level, confidence equal to its occurrence share. When sourceIndices is
// non-nil, each extracted pattern's DerivedFrom is the sorted, deduplicated
// set of arena indices (within the level below) that contributed an
// occurrence of it.
func extractPatterns(data []string, sourceIndices []int, level int, now uint64) []MetaKnowledge {
	counts := make(map[string]int, len(data))
	order := make([]string, 0, len(data))
	derivedFrom := make(map[string]map[int]struct{})
	for i, v := range data {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		if sourceIndices != nil {
			if derivedFrom[v] == nil {
				derivedFrom[v] = make(map[int]struct{})
			}
			derivedFrom[v][sourceIndices[i]] = struct{}{}
		}
	}

	var out []MetaKnowledge
	for _, v := range order {
		n := counts[v]
		if n < minPatternCount {
			continue
		}
		var derived []int
		for idx := range derivedFrom[v] {
			derived = append(derived, idx)
		}
		sort.Ints(derived)
		out = append(out, MetaKnowledge{
			Level:        level,
			Pattern:      v,
			Confidence:   float64(n) / float64(len(data)),
			Applications: []string{uuid.NewString()},
			LearnedAt:    now,
			DerivedFrom:  derived,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pattern < out[j].Pattern })
	return out
}

// ApplyModification checks mod against every Enforced SafetyConstraint by
// delegating evaluation to a scratch Verifier seeded with mod.PostState as
// its only state. If any enforced constraint fails, the modification is
// rejected and counted as a safety violation; otherwise it is recorded and
// applied (recorded here as level-0 meta-knowledge so later learning
// cycles can see what was changed).
func (e *Engine) ApplyModification(mod Modification) error {
	if !e.cfg.EnableSelfModification {
		return fmt.Errorf("%w: self-modification disabled", errs.ErrSafetyViolation)
	}

	if int(e.cycleModifications.Load()) >= e.cfg.MaxModificationsPerCycle {
		return fmt.Errorf("%w: max %d modification(s) per cycle already applied", errs.ErrSafetyViolation, e.cfg.MaxModificationsPerCycle)
	}

	if e.cfg.SafetyCheckEnabled {
		e.mu.Lock()
		constraints := append([]SafetyConstraint(nil), e.safety...)
		e.mu.Unlock()

		if violated, ok := checkSafety(mod, constraints); !ok {
			e.safetyViolations.Add(1)
			e.log.Warn().Str("modification", mod.Name).Str("constraint", violated).Msg("modification rejected by safety constraint")
			return fmt.Errorf("%w: constraint %q failed on post-modification trace", errs.ErrSafetyViolation, violated)
		}
	}

	e.mu.Lock()
	e.knowledge[0] = append(e.knowledge[0], MetaKnowledge{
		Level:        0,
		Pattern:      mod.Name,
		Confidence:   1,
		Applications: []string{uuid.NewString()},
		LearnedAt:    e.clk.NowNanos(),
	})
	e.mu.Unlock()
	e.modificationsApplied.Add(1)
	e.cycleModifications.Add(1)
	e.log.Info().Str("modification", mod.Name).Msg("modification applied")
	return nil
}

// checkSafety evaluates every enforced constraint against a synthetic
// one-state trace representing mod's post-modification world. Returns the
// name of the first constraint that fails, and ok=false, or ok=true if
// every enforced constraint holds.
func checkSafety(mod Modification, constraints []SafetyConstraint) (string, bool) {
	for _, c := range constraints {
		if !c.Enforced {
			continue
		}
		v := verifier.New(verifier.Config{MaxTraceLength: 1, MaxSolvingTime: 1000, Strictness: verifier.Medium})
		v.Push(verifier.TemporalState{ID: 0, Propositions: mod.PostState})
		result, err := v.Verify(c.Formula)
		if err != nil || !result.Satisfied {
			return c.Name, false
		}
	}
	return "", true
}

// Summary reports the engine's cumulative observable state.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	levelsUsed := 0
	for _, level := range e.knowledge {
		if len(level) > 0 {
			levelsUsed++
		}
		total += len(level)
	}

	return Summary{
		TotalLevels:          levelsUsed,
		TotalKnowledge:       total,
		LearningIterations:   e.learningIterations.Load(),
		SafetyViolations:     e.safetyViolations.Load(),
		ModificationsApplied: e.modificationsApplied.Load(),
	}
}

// Reset clears all learned knowledge and cumulative counters, but keeps
// registered SafetyConstraints.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.knowledge = make([][]MetaKnowledge, e.cfg.MaxMetaDepth)
	e.learningIterations.Store(0)
	e.safetyViolations.Store(0)
	e.modificationsApplied.Store(0)
	e.cycleModifications.Store(0)
}
