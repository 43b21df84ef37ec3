package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestDuringTickWaitsForNextTick(t *testing.T) {
	loop := NewLoop(60)
	var runs []float64

	var step func(float64)
	step = func(ts float64) {
		runs = append(runs, ts)
		if len(runs) < 3 {
			loop.RequestFrame(step)
		}
	}
	loop.RequestFrame(step)

	assert.Equal(t, 1, loop.Tick())
	assert.Len(t, runs, 1)
	assert.Equal(t, 1, loop.Pending())

	loop.Tick()
	loop.Tick()
	assert.Len(t, runs, 3)
	assert.Equal(t, 0, loop.Pending())
	assert.InDelta(t, 1000.0/60*3, loop.Now(), 1e-9)
	assert.Less(t, runs[0], runs[1])
}

func TestAdvance(t *testing.T) {
	loop := NewLoop(60)
	assert.Equal(t, 60, loop.Advance(time.Second))
	assert.InDelta(t, 1000, loop.Now(), 1e-6)
}

func TestDrainStopsAtMax(t *testing.T) {
	loop := NewLoop(0)
	var forever func(float64)
	forever = func(float64) { loop.RequestFrame(forever) }
	loop.RequestFrame(forever)

	assert.Equal(t, 5, loop.Drain(5))
	assert.Equal(t, 1, loop.Pending())
}
