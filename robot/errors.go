package robot

import "errors"

var (
	// ErrInvalidSteps reports a negative step count.
	ErrInvalidSteps = errors.New("steps must be non-negative")
	// ErrInvalidTrials reports a trial count below 1.
	ErrInvalidTrials = errors.New("trials must be at least 1")
)
