package counter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/web/dom/memdom"
	"github.com/templui/folio/internal/web/frame"
)

func TestSuffix(t *testing.T) {
	assert.Equal(t, "%", Suffix(100, "", false))
	assert.Equal(t, "+", Suffix(12, "", false))
	assert.Equal(t, "+", Suffix(0, "", false))
	assert.Equal(t, " pkgs", Suffix(100, " pkgs", true))
	assert.Equal(t, "", Suffix(7, "", true))
}

func TestAnimateEndsOnTarget(t *testing.T) {
	for _, target := range []int{0, 1, 7, 99, 100, 250} {
		loop := frame.NewLoop(frame.DefaultRate)
		el := memdom.El("span", memdom.Class("metric-number"))

		NewAnimator(loop).Animate(el, target)
		loop.Drain(1000)

		assert.Equal(t, Format(target, Suffix(target, "", false)), el.Text())
		_, running := el.Attr(runAttr)
		assert.False(t, running)
	}
}

func TestAnimateIsMonotonicAndTakesDuration(t *testing.T) {
	loop := frame.NewLoop(frame.DefaultRate)
	el := memdom.El("span")
	NewAnimator(loop).Animate(el, 40)

	loop.Tick()
	assert.Equal(t, "0+", el.Text())

	loop.Advance(620 * time.Millisecond)
	assert.Equal(t, "20+", el.Text())
	assert.Equal(t, 1, loop.Pending())

	loop.Advance(Duration)
	assert.Equal(t, "40+", el.Text())
	assert.Equal(t, 0, loop.Pending())
}

func TestWatchFiresOnce(t *testing.T) {
	metric := memdom.El("span", memdom.Class("metric-number"), memdom.Attr("data-target", "100"))
	doc := memdom.New(metric)
	loop := frame.NewLoop(frame.DefaultRate)

	Watch(doc, doc.Observe, loop)

	doc.Intersect(metric, 0.3)
	assert.Equal(t, 0, loop.Pending())

	doc.Intersect(metric, 0.6)
	require.Equal(t, 1, loop.Pending())
	assert.Equal(t, 0, doc.Observed(metric))

	loop.Drain(1000)
	assert.Equal(t, "100%", metric.Text())

	doc.Intersect(metric, 1)
	assert.Equal(t, 0, loop.Pending(), "never retriggers")
}

func TestSuffixOverride(t *testing.T) {
	metric := memdom.El("span", memdom.Attr("data-suffix", "k"))
	loop := frame.NewLoop(frame.DefaultRate)
	NewAnimator(loop).Animate(metric, 100)
	loop.Drain(1000)
	assert.Equal(t, "100k", metric.Text())
}

func TestNewAnimationSupersedesRunning(t *testing.T) {
	loop := frame.NewLoop(frame.DefaultRate)
	el := memdom.El("span")
	a := NewAnimator(loop)

	a.Animate(el, 10)
	loop.Advance(300 * time.Millisecond)

	a.Animate(el, 3)
	assert.Equal(t, 2, loop.Pending())
	loop.Tick()
	// the superseded loop dropped out; only the new one rescheduled
	assert.Equal(t, 1, loop.Pending())

	loop.Drain(1000)
	assert.Equal(t, "3+", el.Text())
}
