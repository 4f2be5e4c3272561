package robot

import "fmt"

// TraceEntry records one step's landing position together with the true
// label there and the label the sensor reported.
type TraceEntry struct {
	Pos       int
	True      Label
	Perceived Label
}

// Simulator owns the robot's current position and the shared random
// source. It is not safe for concurrent use; every draw mutates the
// source.
type Simulator struct {
	MaxPos int
	Moves  MoveDistribution
	Sensor SensorModel

	cdf CDF
	pos int
	src Source
}

// NewSimulator places a robot at position 0 on a line of positions
// 0..maxPos.
func NewSimulator(maxPos int, moves MoveDistribution, sensor SensorModel, src Source) *Simulator {
	return &Simulator{
		MaxPos: maxPos,
		Moves:  moves,
		Sensor: sensor,
		cdf:    NewCDF(moves),
		src:    src,
	}
}

// Pos returns the robot's current position.
func (s *Simulator) Pos() int { return s.pos }

// Reset moves the robot back to position 0. The random source is left
// untouched.
func (s *Simulator) Reset() { s.pos = 0 }

// Advance runs the robot for steps time steps and returns the final
// position.
func (s *Simulator) Advance(steps int) (int, error) {
	pos, _, err := s.advance(steps, false)
	return pos, err
}

// AdvanceTrace is Advance plus the ordered per-step trace of
// (position, true label, perceived label).
func (s *Simulator) AdvanceTrace(steps int) (int, []TraceEntry, error) {
	return s.advance(steps, true)
}

// advance consumes exactly two draws per step, movement first, then
// perception. The perceived label never influences the target; sensing
// is an observation side-channel only.
func (s *Simulator) advance(steps int, trace bool) (int, []TraceEntry, error) {
	if steps < 0 {
		return s.pos, nil, fmt.Errorf("advance: %w, got %d", ErrInvalidSteps, steps)
	}
	var entries []TraceEntry
	if trace {
		entries = make([]TraceEntry, 0, steps)
	}
	for i := 0; i < steps; i++ {
		d := s.cdf.Sample(s.src)
		target := clamp(s.pos+d, s.MaxPos)
		truth := LabelAt(target)
		perceived := s.Sensor.Perceive(truth, s.src)
		s.pos = target
		if trace {
			entries = append(entries, TraceEntry{Pos: target, True: truth, Perceived: perceived})
		}
	}
	return s.pos, entries, nil
}
