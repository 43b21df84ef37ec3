package memdom

import (
	"errors"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/templui/folio/internal/web/dom"
)

type Document struct {
	root      *Node
	observers []*observer
	// Commands records every Exec call in order.
	Commands []Command
}

// Command is one editing command run through Exec.
type Command struct {
	Name  string
	Value string
}

// New builds <html><body>...</body></html> around body.
func New(body ...*Node) *Document {
	return &Document{
		root: El("html", Child(El("body", Child(body...)))),
	}
}

// Parse builds a document from full page markup, such as a rendered handler
// response.
func Parse(markup string) (*Document, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return &Document{root: adopt(c)}, nil
		}
	}
	return nil, errors.New("memdom: markup has no html element")
}

func (d *Document) Root() dom.Element {
	return d.root
}

func (d *Document) ByID(id string) dom.Element {
	var found *Node
	d.root.walk(func(n *Node) {
		if found == nil && n.ID() == id {
			found = n
		}
	})
	if found == nil {
		return nil
	}
	return found
}

func (d *Document) Query(selector string) dom.Element {
	all := d.QueryAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func (d *Document) QueryAll(selector string) []dom.Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	var out []dom.Element
	d.root.walk(func(n *Node) {
		if sel.Match(n.h) {
			out = append(out, n)
		}
	})
	return out
}

func (d *Document) Exec(command, value string) {
	d.Commands = append(d.Commands, Command{Name: command, Value: value})
}

type observer struct {
	threshold float64
	fn        func([]dom.Entry, dom.Observer)
	targets   []dom.Element
}

func (o *observer) Observe(el dom.Element) {
	if !slices.Contains(o.targets, el) {
		o.targets = append(o.targets, el)
	}
}

func (o *observer) Unobserve(el dom.Element) {
	o.targets = slices.DeleteFunc(o.targets, func(t dom.Element) bool { return t == el })
}

// Observe satisfies dom.ObserveFunc.
func (d *Document) Observe(threshold float64, fn func([]dom.Entry, dom.Observer)) dom.Observer {
	o := &observer{threshold: threshold, fn: fn}
	d.observers = append(d.observers, o)
	return o
}

// Intersect reports that el is now visible by ratio (0 to 1) to every
// observer watching it.
func (d *Document) Intersect(el dom.Element, ratio float64) {
	for _, o := range slices.Clone(d.observers) {
		if !slices.Contains(o.targets, el) {
			continue
		}
		o.fn([]dom.Entry{{
			Target:       el,
			Intersecting: ratio > 0 && ratio >= o.threshold,
		}}, o)
	}
}

// Observed counts the observers currently watching el.
func (d *Document) Observed(el dom.Element) int {
	n := 0
	for _, o := range d.observers {
		if slices.Contains(o.targets, el) {
			n++
		}
	}
	return n
}

type Storage map[string]string

func (s Storage) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

func (s Storage) Set(key, value string) {
	s[key] = value
}

type Window struct {
	W, H    float64
	resized []func()
}

func (w *Window) Size() (float64, float64) {
	return w.W, w.H
}

func (w *Window) OnResize(fn func()) {
	w.resized = append(w.resized, fn)
}

// Resize changes the viewport and fires the resize listeners.
func (w *Window) Resize(width, height float64) {
	w.W, w.H = width, height
	for _, fn := range w.resized {
		fn()
	}
}

type Circle struct {
	X, Y, R float64
	Color   string
}

// Canvas records what was drawn since the last Clear.
type Canvas struct {
	W, H    float64
	Clears  int
	Circles []Circle
}

func (c *Canvas) Size() (float64, float64) {
	return c.W, c.H
}

func (c *Canvas) SetSize(w, h float64) {
	c.W, c.H = w, h
}

func (c *Canvas) Clear() {
	c.Clears++
	c.Circles = c.Circles[:0]
}

func (c *Canvas) FillCircle(x, y, r float64, color string) {
	c.Circles = append(c.Circles, Circle{X: x, Y: y, R: r, Color: color})
}
