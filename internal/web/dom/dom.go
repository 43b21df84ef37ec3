// Package dom is the slice of the browser the client controllers need. Every
// source of input (clicks, submits, resizes, intersections, frames) is a
// subscription that calls a handler with a typed payload.
package dom

import (
	"strconv"
	"strings"
)

// Event is delivered to listeners registered with Element.On.
type Event struct {
	Type   string
	Target Element
	// Prevent cancels the browser's default action; nil when there is none.
	Prevent func()
}

func (e Event) PreventDefault() {
	if e.Prevent != nil {
		e.Prevent()
	}
}

type Listener func(Event)

type Element interface {
	ID() string
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)
	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass flips name and reports whether it is now present.
	ToggleClass(name string) bool
	Text() string
	SetText(text string)
	// Value is the live value of a form control.
	Value() string
	SetValue(value string)
	// HTML is the serialized markup of the element's children.
	HTML() string
	SetHTML(markup string)
	On(event string, fn Listener)
	// QueryAll returns the descendants matching selector in document order.
	QueryAll(selector string) []Element
}

type Document interface {
	// Root is the document element (<html>).
	Root() Element
	// ByID returns nil when no element has the id.
	ByID(id string) Element
	// Query returns the first match or nil.
	Query(selector string) Element
	QueryAll(selector string) []Element
	// Exec runs an editing command on the current selection of an editable
	// region, the way document.execCommand does.
	Exec(command, value string)
}

// Entry is one intersection change.
type Entry struct {
	Target       Element
	Intersecting bool
}

type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
}

// ObserveFunc creates an intersection observer that fires fn whenever an
// observed element crosses threshold.
type ObserveFunc func(threshold float64, fn func(entries []Entry, o Observer)) Observer

// Storage persists small string values across page loads.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// FrameFunc receives the frame timestamp in milliseconds.
type FrameFunc func(ts float64)

// Scheduler runs a callback on the next display frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// Surface is a 2D drawing canvas.
type Surface interface {
	Size() (w, h float64)
	SetSize(w, h float64)
	Clear()
	FillCircle(x, y, r float64, color string)
}

type Window interface {
	Size() (w, h float64)
	OnResize(fn func())
}

// Env bundles everything one page offers to its controllers.
type Env struct {
	Doc     Document
	Storage Storage
	Frames  Scheduler
	Observe ObserveFunc
	Window  Window
	// Canvas returns nil when the element is missing or has no 2D context.
	Canvas func(id string) Surface
	// Prompt asks the user for a line of text; ok is false when dismissed.
	Prompt func(message string) (answer string, ok bool)
}

// DataInt parses a data-* attribute holding an integer.
func DataInt(el Element, name string) (int, bool) {
	v, ok := el.Attr("data-" + name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	return n, err == nil
}
