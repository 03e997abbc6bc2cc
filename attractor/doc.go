// Package attractor implements the phase-space attractor analyzer: a
// bounded trajectory of PhasePoints, Rosenstein-style
// largest-Lyapunov-exponent estimation, a tangent-basis secondary-exponent
// approximation, and point/limit-cycle/strange/unknown classification.
//
// ⚙️ Usage:
//
//	a := attractor.New(attractor.Config{EmbeddingDimension: 1, MaxTrajectoryLength: 200})
//	for _, v := range series {
//	    _ = a.AddPoint([]float64{v}, ts)
//	}
//	info, err := a.Analyze() // ErrInsufficientData below 100 points
package attractor
