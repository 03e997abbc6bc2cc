// Package strangeloop implements multi-level meta-learning with
// safety-gated self-modification: learn_at_level extracts
// patterns at a level and auto-promotes to the level above, apply_modification
// checks a proposed rule against registered SafetyConstraints before
// recording it, and analyze_behavior bridges raw trajectory data into the
// attractor analyzer and records its classification as meta-knowledge.
//
// Knowledge is stored in a flat arena per level; a level-(k) pattern
// references the level-(k-1) patterns it was derived from by arena index,
// never by pointer, so the knowledge graph can never form a cycle.
//
// ⚙️ Usage:
//
//	e := strangeloop.New(strangeloop.DefaultConfig(), clock.NewSystem())
//	e.LearnAtLevel(0, []string{"timeout", "timeout", "retry", "timeout"})
//	summary := e.Summary()
package strangeloop
