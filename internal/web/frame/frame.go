// Package frame is a cooperative frame scheduler ticking at a fixed nominal
// rate. A callback requested while a tick is running waits for the next tick,
// so an animation never runs twice in one frame.
package frame

import (
	"time"

	"github.com/templui/folio/internal/web/dom"
)

// DefaultRate is the nominal display refresh rate.
const DefaultRate = 60

type Loop struct {
	interval float64 // ms
	now      float64
	pending  []dom.FrameFunc
}

func NewLoop(hz int) *Loop {
	if hz <= 0 {
		hz = DefaultRate
	}
	return &Loop{interval: 1000 / float64(hz)}
}

func (l *Loop) RequestFrame(fn dom.FrameFunc) {
	l.pending = append(l.pending, fn)
}

// Tick advances the clock by one interval and runs the callbacks queued
// before it started. It returns how many ran.
func (l *Loop) Tick() int {
	batch := l.pending
	l.pending = nil
	l.now += l.interval
	for _, fn := range batch {
		fn(l.now)
	}
	return len(batch)
}

// Advance ticks until d has elapsed and returns the number of ticks.
func (l *Loop) Advance(d time.Duration) int {
	target := l.now + float64(d)/float64(time.Millisecond)
	ticks := 0
	for l.now+l.interval <= target+1e-9 {
		l.Tick()
		ticks++
	}
	return ticks
}

// Drain ticks until nothing is queued or max ticks have run.
func (l *Loop) Drain(max int) int {
	ticks := 0
	for len(l.pending) > 0 && ticks < max {
		l.Tick()
		ticks++
	}
	return ticks
}

func (l *Loop) Pending() int {
	return len(l.pending)
}

// Now is the timestamp of the last tick in milliseconds.
func (l *Loop) Now() float64 {
	return l.now
}
