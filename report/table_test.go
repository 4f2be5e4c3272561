package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/multi-byte-pixel/robo-hw/robot"
)

func TestFprintDistribution(t *testing.T) {
	var buf bytes.Buffer
	FprintDistribution(&buf, "Final position probabilities:", robot.PositionDistribution{0.1, 0.7, 0.2, 0})

	out := buf.String()
	assert.Contains(t, out, "Final position probabilities:")
	assert.Contains(t, out, "pos 0:")
	assert.Contains(t, out, "0.1000")
	assert.Contains(t, out, "pos 3:")
	assert.Contains(t, out, "0.0000")
}

func TestFprintCatalog(t *testing.T) {
	var buf bytes.Buffer
	FprintCatalog(&buf, robot.DefaultCatalog())

	out := buf.String()
	assert.Contains(t, out, "dist 1:")
	assert.Contains(t, out, "dist 6:")
	assert.Contains(t, out, "reference")
	assert.Contains(t, out, "move 2:")
	assert.Contains(t, out, "wall 1.00, window 1.00")
}
