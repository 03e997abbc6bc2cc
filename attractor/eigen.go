package attractor

import "math"

// jacobiEigenvalues computes the eigenvalues of a real symmetric n×n
// matrix a via cyclic Jacobi rotations, adapted from
// lvlath/matrix/ops.Eigen's algorithm for the analyzer's own symmetric
// tangent-covariance matrix (no general Matrix type is needed here, only
// eigenvalues of one small, always-symmetric-by-construction matrix).
// tol is the convergence threshold on the largest off-diagonal element;
// maxIter caps the number of sweeps. a is modified in place.
func jacobiEigenvalues(a [][]float64, tol float64, maxIter int) []float64 {
	n := len(a)
	if n == 0 {
		return nil
	}

	for iter := 0; iter < maxIter; iter++ {
		// find largest off-diagonal |a[p][q]|
		maxOff := 0.0
		p, q := 0, 1
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a[i][j]); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq := a[p][p], a[q][q], a[p][q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			aip, aiq := a[i][p], a[i][q]
			a[i][p] = c*aip - s*aiq
			a[i][q] = s*aip + c*aiq
		}
		for j := 0; j < n; j++ {
			apj, aqj := a[p][j], a[q][j]
			a[p][j] = c*apj - s*aqj
			a[q][j] = s*apj + c*aqj
		}
	}

	eigenvalues := make([]float64, n)
	for i := 0; i < n; i++ {
		eigenvalues[i] = a[i][i]
	}
	return eigenvalues
}
