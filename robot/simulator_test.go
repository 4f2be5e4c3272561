package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceClampsAtBoundary(t *testing.T) {
	sim := NewSimulator(3, MoveDistribution{2: 1.0}, PerfectSensor(), NewSource(0))

	pos, err := sim.Advance(1)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	sim.Reset()
	pos, err = sim.Advance(2)
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	sim.Reset()
	pos, err = sim.Advance(3)
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
}

func TestAdvanceZeroSteps(t *testing.T) {
	sim := NewSimulator(DefaultMaxPos, DefaultMoves, PerfectSensor(), NewSource(0))
	pos, err := sim.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
}

func TestAdvanceNegativeSteps(t *testing.T) {
	sim := NewSimulator(DefaultMaxPos, DefaultMoves, PerfectSensor(), NewSource(0))
	_, err := sim.Advance(-1)
	assert.ErrorIs(t, err, ErrInvalidSteps)
}

func TestAdvanceTwoDrawsPerStepMovementFirst(t *testing.T) {
	// Draw 1 picks distance 1 (cum 0.5 at distance 0), draw 2 feeds the
	// sensor, and so on. Three steps must consume exactly six draws.
	moves := MoveDistribution{0: 0.5, 1: 0.5}
	sensor := SensorModel{PCorrectWall: 0.5, PCorrectWindow: 0.5}
	src := &scriptedSource{draws: []float64{
		0.9, 0.9, // step 1: move 1 -> pos 1 (wall), misread as window
		0.9, 0.1, // step 2: move 1 -> pos 2 (window), read correctly
		0.1, 0.9, // step 3: stay -> pos 2 (window), misread as wall
	}}
	sim := NewSimulator(DefaultMaxPos, moves, sensor, src)

	pos, trace, err := sim.AdvanceTrace(3)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, 6, src.next)
	assert.Equal(t, []TraceEntry{
		{Pos: 1, True: Wall, Perceived: Window},
		{Pos: 2, True: Window, Perceived: Window},
		{Pos: 2, True: Window, Perceived: Wall},
	}, trace)
}

func TestAdvanceTracePerfectSensor(t *testing.T) {
	sim := NewSimulator(DefaultMaxPos, MoveDistribution{1: 1.0}, PerfectSensor(), NewSource(7))
	pos, trace, err := sim.AdvanceTrace(3)
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
	assert.Equal(t, []TraceEntry{
		{Pos: 1, True: Wall, Perceived: Wall},
		{Pos: 2, True: Window, Perceived: Window},
		{Pos: 3, True: Wall, Perceived: Wall},
	}, trace)
}

func TestPerceptionDoesNotAffectMovement(t *testing.T) {
	// Two sims with identical movement draws but opposite sensors must
	// land on the same positions.
	draws := []float64{0.3, 0.99, 0.8, 0.01, 0.5, 0.5, 0.95, 0.2}
	always := NewSimulator(DefaultMaxPos, DefaultMoves, PerfectSensor(), &scriptedSource{draws: draws})
	never := NewSimulator(DefaultMaxPos, DefaultMoves, SensorModel{}, &scriptedSource{draws: draws})

	posA, err := always.Advance(4)
	require.NoError(t, err)
	posB, err := never.Advance(4)
	require.NoError(t, err)
	assert.Equal(t, posA, posB)
}
