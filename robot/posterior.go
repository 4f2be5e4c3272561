package robot

import "fmt"

// PositionDistribution maps each position 0..maxPos (by index) to its
// probability mass.
type PositionDistribution []float64

// Sum returns the total probability mass.
func (d PositionDistribution) Sum() float64 {
	sum := 0.0
	for _, p := range d {
		sum += p
	}
	return sum
}

// pointMass is the distribution before any step: all mass at position 0.
func pointMass(maxPos int) PositionDistribution {
	d := make(PositionDistribution, maxPos+1)
	d[0] = 1.0
	return d
}

// ExactPosterior computes the exact distribution over final positions
// after steps time steps by iterating the transition matrix from a
// point mass at position 0. No sampling is involved; the result is
// deterministic and, for a unit-sum movement distribution, sums to 1
// within floating-point tolerance.
func ExactPosterior(maxPos int, moves MoveDistribution, steps int) (PositionDistribution, error) {
	if steps < 0 {
		return nil, fmt.Errorf("exact posterior: %w, got %d", ErrInvalidSteps, steps)
	}
	t := NewTransitionMatrix(maxPos, moves)
	dist := pointMass(maxPos)
	for i := 0; i < steps; i++ {
		next := make(PositionDistribution, maxPos+1)
		for p, mass := range dist {
			if mass == 0.0 {
				continue
			}
			for s, tp := range t[p] {
				next[s] += mass * tp
			}
		}
		dist = next
	}
	return dist, nil
}
