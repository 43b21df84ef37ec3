// Package particles is the decorative background: points drifting at a
// constant velocity and bouncing off the edges of the viewport.
package particles

import (
	"math"
	"math/rand/v2"

	"github.com/templui/folio/internal/web/dom"
)

const (
	CanvasID = "particle-canvas"
	Color    = "rgba(34, 211, 238, 0.55)"

	// Spacing is the viewport width per particle.
	Spacing      = 22
	MinRadius    = 0.6
	RadiusSpread = 2.0
	MaxSpeed     = 0.225
)

type Particle struct {
	X, Y   float64
	Radius float64
	VX, VY float64
}

type Field struct {
	Width, Height float64
	Particles     []Particle
	rnd           *rand.Rand
}

// NewField returns an empty field drawing from rnd, or from a fresh random
// source when rnd is nil.
func NewField(rnd *rand.Rand) *Field {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{rnd: rnd}
}

// Count is the number of particles for a viewport width.
func Count(width float64) int {
	if width <= 0 {
		return 0
	}
	return int(math.Floor(width / Spacing))
}

// Resize replaces every particle with a fresh set for the new size.
func (f *Field) Resize(w, h float64) {
	f.Width, f.Height = w, h
	f.Particles = make([]Particle, Count(w))
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:      f.rnd.Float64() * w,
			Y:      f.rnd.Float64() * h,
			Radius: f.rnd.Float64()*RadiusSpread + MinRadius,
			VX:     (f.rnd.Float64() - 0.5) * 2 * MaxSpeed,
			VY:     (f.rnd.Float64() - 0.5) * 2 * MaxSpeed,
		}
	}
}

// Step moves every particle once. A velocity component flips when the
// particle is on or past that edge and still heading out.
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		if (p.X <= 0 && p.VX < 0) || (p.X >= f.Width && p.VX > 0) {
			p.VX = -p.VX
		}
		if (p.Y <= 0 && p.VY < 0) || (p.Y >= f.Height && p.VY > 0) {
			p.VY = -p.VY
		}
	}
}

func (f *Field) Draw(s dom.Surface) {
	for _, p := range f.Particles {
		s.FillCircle(p.X, p.Y, p.Radius, Color)
	}
}

// Background animates a field on a surface forever.
type Background struct {
	field   *Field
	surface dom.Surface
	frames  dom.Scheduler
	window  dom.Window
	Frames  int
}

// Start sizes the surface to the window, seeds the field and requests the
// first frame. Every resize regenerates the field.
func Start(field *Field, surface dom.Surface, frames dom.Scheduler, window dom.Window) *Background {
	b := &Background{
		field:   field,
		surface: surface,
		frames:  frames,
		window:  window,
	}
	b.resize()
	window.OnResize(b.resize)
	frames.RequestFrame(b.frame)
	return b
}

func (b *Background) resize() {
	w, h := b.window.Size()
	b.surface.SetSize(w, h)
	b.field.Resize(w, h)
}

func (b *Background) frame(float64) {
	b.surface.Clear()
	b.field.Step()
	b.field.Draw(b.surface)
	b.Frames++
	b.frames.RequestFrame(b.frame)
}
