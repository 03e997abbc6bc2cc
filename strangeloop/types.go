package strangeloop

import (
	"fmt"

	"github.com/streampulse/chronos/verifier"
)

// MetaKnowledge is one pattern learned at a meta-level. DerivedFrom holds
// arena indices (within the level below) the pattern was extracted from,
// never pointers — the knowledge graph is an index-addressed arena, so it
// cannot form a reference cycle. Level 0 has no level below it, so its
// MetaKnowledge always has a nil DerivedFrom.
type MetaKnowledge struct {
	Level        int
	Pattern      string
	Confidence   float64
	Applications []string
	LearnedAt    uint64
	DerivedFrom  []int
}

// SafetyConstraint gates a proposed modification: Formula is checked
// against a synthetic post-modification trace, and the modification is
// rejected if an Enforced constraint evaluates false.
type SafetyConstraint struct {
	Name     string
	Formula  verifier.TemporalFormula
	Enforced bool
}

// Modification is a proposed rule change, represented as the set of
// propositions the post-modification world would make true — enough for
// SafetyConstraint formulas to evaluate against.
type Modification struct {
	Name      string
	PostState map[string]bool
}

// Config configures an Engine.
type Config struct {
	MaxMetaDepth             int
	EnableSelfModification   bool
	MaxModificationsPerCycle int
	SafetyCheckEnabled       bool
}

// DefaultConfig returns sane defaults: three meta-levels, self
// modification enabled with a per-cycle cap of 1, safety checking on.
func DefaultConfig() Config {
	return Config{
		MaxMetaDepth:             3,
		EnableSelfModification:   true,
		MaxModificationsPerCycle: 1,
		SafetyCheckEnabled:       true,
	}
}

// Validate reports whether cfg holds sane bounds.
func (cfg Config) Validate() error {
	if cfg.MaxMetaDepth < 1 {
		return fmt.Errorf("strangeloop: MaxMetaDepth must be >= 1")
	}
	if cfg.MaxModificationsPerCycle < 0 {
		return fmt.Errorf("strangeloop: MaxModificationsPerCycle must be >= 0")
	}
	return nil
}

// Summary is the observable state get_summary() reports.
type Summary struct {
	TotalLevels          int
	TotalKnowledge       int
	LearningIterations   uint64
	SafetyViolations     uint64
	ModificationsApplied uint64
}
