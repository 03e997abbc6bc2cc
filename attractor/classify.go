package attractor

import "math"

// settlingFraction is the trailing fraction of the trajectory checked for
// settling into a point attractor.
const settlingFraction = 0.2

// limitCycleAutocorrThreshold is the minimum autocorrelation at some
// non-trivial lag for a trajectory to be classified a limit cycle.
const limitCycleAutocorrThreshold = 0.85

// lambdaZeroTolerance is how close to zero λ must be to count as "≈ 0".
const lambdaZeroTolerance = 0.05

// classify implements the Point/LimitCycle/Strange/Unknown rules: a point
// attractor settles within a ball of radius eps for the trailing 20% of
// points with a non-positive leading exponent; a limit cycle repeats with
// high autocorrelation at some lag and a near-zero leading exponent; a
// strange attractor diverges locally (λ > 0) while staying bounded; any
// other combination is Unknown.
func classify(points []PhasePoint, lambda float64, eps float64) Kind {
	bounded := isBounded(points)

	if lambda <= 0 && settlesWithinBall(points, eps) {
		return Point
	}
	if math.Abs(lambda) <= lambdaZeroTolerance && hasStrongAutocorrelation(points) {
		return LimitCycle
	}
	if lambda > 0 && bounded {
		return Strange
	}
	return Unknown
}

// settlesWithinBall reports whether the trailing settlingFraction of
// points all lie within eps of their own centroid.
func settlesWithinBall(points []PhasePoint, eps float64) bool {
	n := len(points)
	tailStart := n - int(float64(n)*settlingFraction)
	if tailStart < 0 {
		tailStart = 0
	}
	tail := points[tailStart:]
	if len(tail) == 0 {
		return false
	}

	dim := len(tail[0].Coords)
	centroid := make([]float64, dim)
	for _, p := range tail {
		for d := 0; d < dim; d++ {
			centroid[d] += p.Coords[d]
		}
	}
	for d := 0; d < dim; d++ {
		centroid[d] /= float64(len(tail))
	}

	for _, p := range tail {
		if euclid(p.Coords, centroid) > eps {
			return false
		}
	}
	return true
}

// hasStrongAutocorrelation reports whether the scalar projection (first
// coordinate) of the trajectory has autocorrelation exceeding
// limitCycleAutocorrThreshold at any lag from 2 up to a quarter of the
// trajectory length — lag 0/1 are excluded since they are trivially near
// 1 for any slowly varying signal.
func hasStrongAutocorrelation(points []PhasePoint) bool {
	n := len(points)
	if n < 8 {
		return false
	}
	series := make([]float64, n)
	for i, p := range points {
		if len(p.Coords) > 0 {
			series[i] = p.Coords[0]
		}
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	var variance float64
	for _, v := range series {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return false
	}

	maxLag := n / 4
	for lag := 2; lag < maxLag; lag++ {
		var cov float64
		for i := 0; i+lag < n; i++ {
			cov += (series[i] - mean) * (series[i+lag] - mean)
		}
		corr := cov / variance
		if corr > limitCycleAutocorrThreshold {
			return true
		}
	}
	return false
}

// isBounded reports whether every point lies within a finite radius of
// the trajectory's centroid, i.e. the trajectory does not diverge to
// infinity.
func isBounded(points []PhasePoint) bool {
	n := len(points)
	if n == 0 {
		return true
	}
	dim := len(points[0].Coords)
	centroid := make([]float64, dim)
	for _, p := range points {
		for d := 0; d < dim; d++ {
			centroid[d] += p.Coords[d]
		}
	}
	for d := 0; d < dim; d++ {
		centroid[d] /= float64(n)
	}

	var maxRadius float64
	for _, p := range points {
		r := euclid(p.Coords, centroid)
		if math.IsInf(r, 1) || math.IsNaN(r) {
			return false
		}
		if r > maxRadius {
			maxRadius = r
		}
	}
	// a bound many orders of magnitude past the observed spread signals
	// unbounded growth rather than a merely wide attractor.
	return maxRadius < 1e12
}
