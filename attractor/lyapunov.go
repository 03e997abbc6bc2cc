package attractor

import "math"

// minTemporalSeparation bounds how close in time a Rosenstein nearest
// neighbor may be, so the neighbor reflects a genuinely different pass
// through phase space rather than temporal autocorrelation with the
// reference point itself.
const minTemporalSeparation = 5

// evolutionSteps is how many steps forward divergence is tracked for the
// largest-Lyapunov-exponent linear regression.
const evolutionSteps = 10

// largestLyapunov estimates λ1 via a Rosenstein-style nearest-neighbor
// divergence regression: for each point i, find the
// nearest neighbor j with |i-j| > minTemporalSeparation, track
// log-divergence as the pair evolves forward, and fit the slope of the
// quasi-linear region. Returns the slope and an R² fit-quality score in
// [0,1] that Analyze folds into AttractorInfo.Confidence.
func largestLyapunov(points []PhasePoint) (lambda, fitQuality float64) {
	n := len(points)
	if n < 2*minTemporalSeparation+evolutionSteps {
		return 0, 0
	}

	// sumLogDiv[k] accumulates log(d_k(i)) across valid reference points
	// i, for each evolution step k in [1, evolutionSteps].
	sumLogDiv := make([]float64, evolutionSteps+1)
	counts := make([]int, evolutionSteps+1)

	for i := 0; i+evolutionSteps < n; i++ {
		j, d0 := nearestNeighbor(points, i)
		if j < 0 || d0 <= 0 || j+evolutionSteps >= n {
			continue
		}
		for k := 1; k <= evolutionSteps; k++ {
			dk := euclid(points[i+k].Coords, points[j+k].Coords)
			if dk <= 0 {
				continue
			}
			sumLogDiv[k] += math.Log(dk)
			counts[k]++
		}
	}

	// build regression points (k, mean log-divergence) for k with data
	var xs, ys []float64
	for k := 1; k <= evolutionSteps; k++ {
		if counts[k] == 0 {
			continue
		}
		xs = append(xs, float64(k))
		ys = append(ys, sumLogDiv[k]/float64(counts[k]))
	}
	if len(xs) < 2 {
		return 0, 0
	}
	return linearRegressionSlope(xs, ys)
}

// nearestNeighbor returns the index j (with |i-j| > minTemporalSeparation)
// minimizing Euclidean distance to points[i], and that distance. Returns
// (-1, 0) if no candidate qualifies.
func nearestNeighbor(points []PhasePoint, i int) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for j := range points {
		if j == i {
			continue
		}
		sep := j - i
		if sep < 0 {
			sep = -sep
		}
		if sep <= minTemporalSeparation {
			continue
		}
		d := euclid(points[i].Coords, points[j].Coords)
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best, bestDist
}

func euclid(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// linearRegressionSlope fits y = slope*x + intercept by least squares and
// returns the slope plus the R² goodness of fit.
func linearRegressionSlope(xs, ys []float64) (slope, rSquared float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssTot, ssRes float64
	for i := range xs {
		pred := slope*xs[i] + intercept
		ssRes += (ys[i] - pred) * (ys[i] - pred)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}
	if ssTot == 0 {
		rSquared = 1
	} else {
		rSquared = 1 - ssRes/ssTot
	}
	if rSquared < 0 {
		rSquared = 0
	}
	return slope, rSquared
}

// secondaryExponents approximates additional Lyapunov exponents up to dim
// from the log-magnitude eigenvalues of the
// trajectory's tangent covariance matrix — the local displacement vectors
// between consecutive points, whose spread along each principal axis
// approximates the local expansion/contraction rate along that axis.
func secondaryExponents(points []PhasePoint, dim int) []float64 {
	n := len(points)
	if n < 2 || dim < 1 {
		return nil
	}

	cov := make([][]float64, dim)
	for i := range cov {
		cov[i] = make([]float64, dim)
	}
	var count int
	for i := 1; i < n; i++ {
		diff := make([]float64, dim)
		for d := 0; d < dim; d++ {
			diff[d] = points[i].Coords[d] - points[i-1].Coords[d]
		}
		for a := 0; a < dim; a++ {
			for b := 0; b < dim; b++ {
				cov[a][b] += diff[a] * diff[b]
			}
		}
		count++
	}
	if count == 0 {
		return nil
	}
	for a := 0; a < dim; a++ {
		for b := 0; b < dim; b++ {
			cov[a][b] /= float64(count)
		}
	}

	eigenvalues := jacobiEigenvalues(cov, 1e-9, 100)
	out := make([]float64, dim)
	for i, ev := range eigenvalues {
		if ev <= 0 {
			out[i] = math.Inf(-1) // a collapsed axis: maximally contracting
			continue
		}
		out[i] = 0.5 * math.Log(ev)
	}
	return out
}
