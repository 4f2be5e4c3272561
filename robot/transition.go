package robot

// TransitionMatrix holds the one-step transition probabilities of the
// line: row p is the distribution over destinations when starting at p.
type TransitionMatrix [][]float64

// NewTransitionMatrix builds the matrix for a line of positions
// 0..maxPos under the given movement distribution. Mass P(m) lands at
// min(p+m, maxPos); distances that clamp to the same destination
// accumulate. If the distribution does not sum to 1, neither will the
// rows.
func NewTransitionMatrix(maxPos int, moves MoveDistribution) TransitionMatrix {
	t := make(TransitionMatrix, maxPos+1)
	for p := range t {
		t[p] = make([]float64, maxPos+1)
		for m, pm := range moves {
			t[p][clamp(p+m, maxPos)] += pm
		}
	}
	return t
}

func clamp(pos, maxPos int) int {
	if pos > maxPos {
		return maxPos
	}
	return pos
}
