// Package counter animates .metric-number elements from zero to their
// data-target the first time they are half visible.
package counter

import (
	"math"
	"strconv"
	"time"

	"github.com/templui/folio/internal/web/dom"
)

const (
	Selector  = ".metric-number"
	Threshold = 0.5
	Duration  = 1200 * time.Millisecond

	// runAttr tags an element with its current animation so a superseded
	// loop can notice and stop.
	runAttr = "data-counter-run"
)

// Suffix is "%" for a target of exactly 100 and "+" otherwise, unless the
// element carries its own data-suffix.
func Suffix(target int, override string, hasOverride bool) string {
	if hasOverride {
		return override
	}
	if target == 100 {
		return "%"
	}
	return "+"
}

func Format(value int, suffix string) string {
	return strconv.Itoa(value) + suffix
}

// Progress is the linear position at elapsed milliseconds, clamped to [0, 1].
func Progress(elapsed float64) float64 {
	return math.Min(math.Max(elapsed/float64(Duration.Milliseconds()), 0), 1)
}

type Animator struct {
	frames dom.Scheduler
	runs   int
}

func NewAnimator(frames dom.Scheduler) *Animator {
	return &Animator{frames: frames}
}

// Watch starts one animation per .metric-number element when it first
// crosses the threshold, then stops observing it.
func Watch(doc dom.Document, observe dom.ObserveFunc, frames dom.Scheduler) *Animator {
	a := NewAnimator(frames)
	els := doc.QueryAll(Selector)
	if len(els) == 0 {
		return a
	}

	o := observe(Threshold, func(entries []dom.Entry, o dom.Observer) {
		for _, e := range entries {
			if !e.Intersecting {
				continue
			}
			target, _ := dom.DataInt(e.Target, "target")
			a.Animate(e.Target, target)
			o.Unobserve(e.Target)
		}
	})
	for _, el := range els {
		o.Observe(el)
	}
	return a
}

// Animate counts el up to target. Starting a new animation on an element
// that is already animating takes over from the running one.
func (a *Animator) Animate(el dom.Element, target int) {
	a.runs++
	run := strconv.Itoa(a.runs)
	el.SetAttr(runAttr, run)

	override, hasOverride := el.Attr("data-suffix")
	suffix := Suffix(target, override, hasOverride)

	start := math.NaN()
	var step dom.FrameFunc
	step = func(ts float64) {
		if current, _ := el.Attr(runAttr); current != run {
			return
		}
		if math.IsNaN(start) {
			start = ts
		}

		p := Progress(ts - start)
		if p < 1 {
			el.SetText(Format(int(math.Floor(p*float64(target))), suffix))
			a.frames.RequestFrame(step)
			return
		}
		el.SetText(Format(target, suffix))
		el.RemoveAttr(runAttr)
	}
	a.frames.RequestFrame(step)
}
