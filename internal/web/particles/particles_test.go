package particles

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/web/dom/memdom"
	"github.com/templui/folio/internal/web/frame"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestResizeRegeneratesWithinBounds(t *testing.T) {
	f := NewField(seeded())
	f.Resize(1280, 720)

	require.Len(t, f.Particles, 58)
	for _, p := range f.Particles {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 1280.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 720.0)
		assert.GreaterOrEqual(t, p.Radius, MinRadius)
		assert.Less(t, p.Radius, MinRadius+RadiusSpread)
		assert.GreaterOrEqual(t, p.VX, -MaxSpeed)
		assert.Less(t, p.VX, MaxSpeed)
		assert.GreaterOrEqual(t, p.VY, -MaxSpeed)
		assert.Less(t, p.VY, MaxSpeed)
	}

	before := f.Particles[0]
	f.Resize(440, 300)
	assert.Len(t, f.Particles, 20)
	assert.NotEqual(t, before, f.Particles[0])
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(0))
	assert.Equal(t, 0, Count(21))
	assert.Equal(t, 1, Count(22))
	assert.Equal(t, 87, Count(1920))
}

func TestStepReflectsAtBothEdges(t *testing.T) {
	f := &Field{Width: 100, Height: 50, Particles: []Particle{
		{X: 0.25, Y: 10, VX: -0.25, VY: 0.125},
		{X: 99.75, Y: 10, VX: 0.25, VY: -0.125},
	}}

	f.Step()

	assert.Equal(t, 0.0, f.Particles[0].X)
	assert.Equal(t, 100.0, f.Particles[1].X)
	assert.Equal(t, 0.25, f.Particles[0].VX)
	assert.Equal(t, -0.25, f.Particles[1].VX)
	assert.Equal(t, 0.125, f.Particles[0].VY)
	assert.Equal(t, -0.125, f.Particles[1].VY)

	f.Step()
	assert.Equal(t, 0.25, f.Particles[0].X)
	assert.Equal(t, 99.75, f.Particles[1].X)
}

func TestStepKeepsParticlesNearField(t *testing.T) {
	f := NewField(seeded())
	f.Resize(300, 200)
	for range 10000 {
		f.Step()
	}
	for _, p := range f.Particles {
		assert.InDelta(t, 150, p.X, 150+MaxSpeed)
		assert.InDelta(t, 100, p.Y, 100+MaxSpeed)
	}
}

func TestBackgroundDrawsEveryFrame(t *testing.T) {
	loop := frame.NewLoop(frame.DefaultRate)
	canvas := &memdom.Canvas{}
	win := &memdom.Window{W: 660, H: 400}

	bg := Start(NewField(seeded()), canvas, loop, win)
	assert.Equal(t, 660.0, canvas.W)

	loop.Tick()
	loop.Tick()
	assert.Equal(t, 2, bg.Frames)
	assert.Equal(t, 2, canvas.Clears)
	require.Len(t, canvas.Circles, 30)
	assert.Equal(t, Color, canvas.Circles[0].Color)
	assert.Equal(t, 1, loop.Pending())

	win.Resize(220, 100)
	assert.Equal(t, 220.0, canvas.W)
	assert.Equal(t, 100.0, canvas.H)
	loop.Tick()
	assert.Len(t, canvas.Circles, 10)
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, 220, 120, seeded()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 220.0 120.0"`))
	assert.Equal(t, 10, strings.Count(out, "<circle "))
	assert.Equal(t, 20, strings.Count(out, "<animate "))
	assert.True(t, strings.HasSuffix(out, "</g></svg>"))
}
