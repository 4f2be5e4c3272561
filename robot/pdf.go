// Package robot models a one-dimensional stochastic agent moving along a
// bounded line. At each time step the agent samples a movement distance
// from a discrete distribution, clamped at the rightmost position, and
// takes a noisy reading of the label at its landing square. The package
// provides both an exact dynamic-programming posterior over final
// positions and a Monte Carlo estimator of the same distribution.
package robot

import (
	"fmt"
	"math"
	"sort"
)

// MoveDistribution maps a movement distance to its probability.
type MoveDistribution map[int]float64

// DefaultMoves is the reference movement distribution.
var DefaultMoves = MoveDistribution{0: 0.1, 1: 0.7, 2: 0.2}

// DefaultMaxPos is the rightmost position of the reference line.
const DefaultMaxPos = 3

// Check reports whether the probabilities sum to 1 within 1e-9.
// Core computations never call it; a distribution that fails Check
// simply propagates non-unit-sum results downstream.
func (d MoveDistribution) Check() error {
	sum := 0.0
	for _, p := range d {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("movement probabilities sum to %v, want 1", sum)
	}
	return nil
}

// Distances returns the distribution's distances in ascending order.
func (d MoveDistribution) Distances() []int {
	moves := make([]int, 0, len(d))
	for m := range d {
		moves = append(moves, m)
	}
	sort.Ints(moves)
	return moves
}

// CDF caches a distribution's cumulative form for inverse-transform
// sampling: distances ascending, each paired with its cumulative
// probability.
type CDF struct {
	moves []int
	cum   []float64
}

// NewCDF precomputes the cumulative distribution of d.
func NewCDF(d MoveDistribution) CDF {
	moves := d.Distances()
	cum := make([]float64, len(moves))
	sum := 0.0
	for i, m := range moves {
		sum += d[m]
		cum[i] = sum
	}
	return CDF{moves: moves, cum: cum}
}

// Sample draws one distance from src by inverse transform: the first
// distance whose cumulative probability reaches the uniform draw wins.
// If rounding leaves the final cumulative sum just below the draw, the
// largest distance is returned so sampling always yields a valid value.
func (c CDF) Sample(src Source) int {
	u := src.Float64()
	for i, cm := range c.cum {
		if u <= cm {
			return c.moves[i]
		}
	}
	return c.moves[len(c.moves)-1]
}
