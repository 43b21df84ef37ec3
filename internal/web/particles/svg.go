package particles

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/templui/folio/internal/web/frame"
)

const (
	svgSeconds     = 6
	svgSampleEvery = 6 // frames
)

// fixedWindow is a viewport that never resizes.
type fixedWindow struct{ w, h float64 }

func (v fixedWindow) Size() (float64, float64) { return v.w, v.h }
func (v fixedWindow) OnResize(func())          {}

// track records each particle's position on sampled frames.
type track struct {
	w, h    float64
	frame   int
	samples [][]sample
	current []sample
}

type sample struct{ x, y, r float64 }

func (t *track) Size() (float64, float64) { return t.w, t.h }
func (t *track) SetSize(w, h float64)     { t.w, t.h = w, h }

func (t *track) Clear() {
	if t.current != nil && t.frame%svgSampleEvery == 0 {
		t.samples = append(t.samples, t.current)
	}
	t.frame++
	t.current = []sample{}
}

func (t *track) FillCircle(x, y, r float64, _ string) {
	t.current = append(t.current, sample{x, y, r})
}

// WriteSVG simulates a width x height field for a few seconds and writes it
// as a looping animated SVG, for pages rendered without script.
func WriteSVG(w io.Writer, width, height float64, rnd *rand.Rand) error {
	loop := frame.NewLoop(frame.DefaultRate)
	t := &track{}
	Start(NewField(rnd), t, loop, fixedWindow{width, height})
	for range svgSeconds * frame.DefaultRate {
		loop.Tick()
	}
	t.Clear()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" preserveAspectRatio="xMidYMid slice">`, num(width), num(height))
	fmt.Fprintf(bw, `<g fill="%s">`, Color)
	if len(t.samples) > 0 {
		for i, first := range t.samples[0] {
			fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s">`, num(first.x), num(first.y), num(first.r))
			writeAnimate(bw, "cx", t.samples, func(s sample) float64 { return s.x }, i)
			writeAnimate(bw, "cy", t.samples, func(s sample) float64 { return s.y }, i)
			bw.WriteString(`</circle>`)
		}
	}
	bw.WriteString(`</g></svg>`)
	return bw.Flush()
}

func writeAnimate(w *bufio.Writer, attr string, samples [][]sample, pick func(sample) float64, i int) {
	values := make([]string, len(samples))
	for n, row := range samples {
		values[n] = num(pick(row[i]))
	}
	fmt.Fprintf(w, `<animate attributeName="%s" dur="%ds" repeatCount="indefinite" values="%s"/>`,
		attr, svgSeconds, strings.Join(values, ";"))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
