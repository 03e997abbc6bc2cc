// Package verifier implements the linear-temporal-logic verifier over
// finite traces: a bounded TemporalTrace, a TemporalFormula AST (True,
// False, Atom, Unary{G,F,X,Not}, Binary{And,Or,Implies,Until}), a
// structural-recursion finite-trace evaluator, and a confidence-weighted
// VerificationResult.
//
// ⚙️ Usage:
//
//	v := verifier.New(verifier.DefaultConfig())
//	v.Push(verifier.TemporalState{ID: 0, Propositions: map[string]bool{"safe": true}})
//	result, err := v.Verify(verifier.Globally(verifier.Atom("safe")))
package verifier
