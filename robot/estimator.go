package robot

import "fmt"

// Estimate approximates the final-position distribution by Monte Carlo:
// trials independent trajectories of steps steps each, tallied into
// empirical frequencies. Every trial restarts the robot at position 0
// but continues the same random source, so raising trials refines the
// sample instead of repeating it. The returned probabilities are counts
// over trials and therefore sum to 1 exactly; by the law of large
// numbers they converge to ExactPosterior as trials grows.
func (s *Simulator) Estimate(steps, trials int) (PositionDistribution, error) {
	if trials < 1 {
		return nil, fmt.Errorf("estimate: %w, got %d", ErrInvalidTrials, trials)
	}
	if steps < 0 {
		return nil, fmt.Errorf("estimate: %w, got %d", ErrInvalidSteps, steps)
	}
	counts := make([]int, s.MaxPos+1)
	for i := 0; i < trials; i++ {
		s.Reset()
		final, err := s.Advance(steps)
		if err != nil {
			return nil, err
		}
		counts[final]++
	}
	probs := make(PositionDistribution, s.MaxPos+1)
	for p, c := range counts {
		probs[p] = float64(c) / float64(trials)
	}
	return probs, nil
}
