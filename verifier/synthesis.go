package verifier

// Synthesize returns a set of proposition settings that would satisfy
// formula on the current trace prefix. Controller synthesis is
// out-of-scope for correctness here; this stub always reports no
// settings found, leaving room for a real constraint solver later.
func (v *Verifier) Synthesize(formula TemporalFormula) (map[string]bool, bool) {
	return nil, false
}
