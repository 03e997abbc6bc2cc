package strangeloop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streampulse/chronos/clock"
	"github.com/streampulse/chronos/errs"
	"github.com/streampulse/chronos/verifier"
)

func TestLearnAtLevel_FrequencyExtraction(t *testing.T) {
	e := New(DefaultConfig(), clock.NewSystem())
	extracted, err := e.LearnAtLevel(0, []string{"timeout", "timeout", "retry", "timeout", "ok"})
	require.NoError(t, err)
	require.Len(t, extracted, 1)
	assert.Equal(t, "timeout", extracted[0].Pattern)
}

func TestLearnAtLevel_InvalidLevel(t *testing.T) {
	e := New(DefaultConfig(), clock.NewSystem())
	_, err := e.LearnAtLevel(5, []string{"a"})
	require.ErrorIs(t, err, errs.ErrInvalidLevel)
}

func TestLearnAtLevel_AutoPromotesOnExtraction(t *testing.T) {
	e := New(Config{MaxMetaDepth: 2, EnableSelfModification: true, SafetyCheckEnabled: true}, clock.NewSystem())
	extracted, err := e.LearnAtLevel(0, []string{"a", "a", "b", "b", "c"})
	require.NoError(t, err)
	require.Len(t, extracted, 2) // "a" and "b"; level 0 has no level below, so DerivedFrom is nil
	for _, k := range extracted {
		assert.Nil(t, k.DerivedFrom)
	}

	summary := e.Summary()
	assert.Equal(t, 2, summary.TotalLevels) // level 0 and promoted level 1 both populated

	require.Len(t, e.knowledge[1], 2)
	for _, k := range e.knowledge[1] {
		assert.NotEmpty(t, k.DerivedFrom, "promoted level-1 pattern %q should reference its level-0 sources", k.Pattern)
	}
}

func TestLearnAtLevel_NoPromotionWithoutExtraction(t *testing.T) {
	e := New(Config{MaxMetaDepth: 2, EnableSelfModification: true, SafetyCheckEnabled: true}, clock.NewSystem())
	_, err := e.LearnAtLevel(0, []string{"a", "b", "c"}) // each appears once, below minPatternCount
	require.NoError(t, err)

	summary := e.Summary()
	assert.Equal(t, 0, summary.TotalLevels)
}

func TestApplyModification_SafetyConstraintBlocks(t *testing.T) {
	e := New(DefaultConfig(), clock.NewSystem())
	e.RegisterSafetyConstraint(SafetyConstraint{
		Name:     "stays-safe",
		Formula:  verifier.Globally(verifier.Atom("safe")),
		Enforced: true,
	})

	err := e.ApplyModification(Modification{Name: "risky-change", PostState: map[string]bool{"safe": false}})
	require.ErrorIs(t, err, errs.ErrSafetyViolation)

	summary := e.Summary()
	assert.Equal(t, uint64(1), summary.SafetyViolations)
	assert.Equal(t, uint64(0), summary.ModificationsApplied)
}

func TestApplyModification_Succeeds(t *testing.T) {
	e := New(DefaultConfig(), clock.NewSystem())
	e.RegisterSafetyConstraint(SafetyConstraint{
		Name:     "stays-safe",
		Formula:  verifier.Globally(verifier.Atom("safe")),
		Enforced: true,
	})

	err := e.ApplyModification(Modification{Name: "safe-change", PostState: map[string]bool{"safe": true}})
	require.NoError(t, err)

	summary := e.Summary()
	assert.Equal(t, uint64(1), summary.ModificationsApplied)
}

func TestApplyModification_RespectsPerCycleCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxModificationsPerCycle = 1
	e := New(cfg, clock.NewSystem())

	require.NoError(t, e.ApplyModification(Modification{Name: "first", PostState: map[string]bool{"safe": true}}))

	err := e.ApplyModification(Modification{Name: "second", PostState: map[string]bool{"safe": true}})
	require.ErrorIs(t, err, errs.ErrSafetyViolation)

	summary := e.Summary()
	assert.Equal(t, uint64(1), summary.ModificationsApplied)
}

func TestApplyModification_SelfModificationDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableSelfModification = false
	e := New(cfg, clock.NewSystem())

	err := e.ApplyModification(Modification{Name: "x", PostState: map[string]bool{"safe": true}})
	require.ErrorIs(t, err, errs.ErrSafetyViolation)
}

func TestReset_ClearsKnowledgeAndCounters(t *testing.T) {
	e := New(DefaultConfig(), clock.NewSystem())
	_, err := e.LearnAtLevel(0, []string{"a", "a", "b", "b"})
	require.NoError(t, err)
	require.NotZero(t, e.Summary().TotalKnowledge)

	e.Reset()
	summary := e.Summary()
	assert.Zero(t, summary.TotalKnowledge)
	assert.Zero(t, summary.LearningIterations)
	assert.Zero(t, summary.SafetyViolations)
	assert.Zero(t, summary.ModificationsApplied)
}

func TestAnalyzeBehavior_RecordsLevel1Knowledge(t *testing.T) {
	e := New(DefaultConfig(), clock.NewSystem())
	trajectory := make([][]float64, 150)
	v := 1.0
	for i := range trajectory {
		trajectory[i] = []float64{v}
		v *= 0.5
	}

	info, err := e.AnalyzeBehavior(trajectory, nil)
	require.NoError(t, err)
	assert.Equal(t, "point", info.Kind.String())

	summary := e.Summary()
	assert.Greater(t, summary.TotalKnowledge, 0)
}

func TestRunCycle_FansOutAcrossComponents(t *testing.T) {
	e := New(DefaultConfig(), clock.NewSystem())
	trajectory := make([][]float64, 150)
	v := 1.0
	for i := range trajectory {
		trajectory[i] = []float64{v}
		v *= 0.5
	}

	result, err := e.RunCycle(context.Background(),
		[]string{"timeout", "timeout", "retry"},
		[]string{"timeout", "retry", "retry"},
		trajectory)
	require.NoError(t, err)
	assert.Equal(t, "point", result.Behavior.Kind.String())
	assert.GreaterOrEqual(t, result.NoveltyDist, 0.0)
}
