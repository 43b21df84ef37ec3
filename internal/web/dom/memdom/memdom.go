// Package memdom is an in-memory dom implementation for exercising client
// controllers without a browser. Elements live in an x/net/html tree and
// selectors are matched by cascadia, so queries behave as they do in a page.
package memdom

import (
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/templui/folio/internal/web/dom"
)

// Node is an element. Text and comments exist only in the backing tree.
type Node struct {
	h         *html.Node
	children  []*Node
	listeners map[string][]dom.Listener
}

type Option func(*Node)

func ID(id string) Option {
	return Attr("id", id)
}

func Class(names ...string) Option {
	return func(n *Node) {
		for _, name := range names {
			n.AddClass(name)
		}
	}
}

func Attr(name, value string) Option {
	return func(n *Node) { n.SetAttr(name, value) }
}

func Text(text string) Option {
	return func(n *Node) {
		n.h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func Child(children ...*Node) Option {
	return func(n *Node) {
		for _, c := range children {
			if c.h.Parent != nil {
				c.h.Parent.RemoveChild(c.h)
			}
			n.h.AppendChild(c.h)
			n.children = append(n.children, c)
		}
	}
}

func El(tag string, opts ...Option) *Node {
	tag = strings.ToLower(tag)
	n := &Node{
		h: &html.Node{
			Type:     html.ElementNode,
			Data:     tag,
			DataAtom: atom.Lookup([]byte(tag)),
		},
		listeners: map[string][]dom.Listener{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// adopt wraps a parsed subtree.
func adopt(h *html.Node) *Node {
	n := &Node{h: h, listeners: map[string][]dom.Listener{}}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n.children = append(n.children, adopt(c))
		}
	}
	return n
}

func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) SetAttr(name, value string) {
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == name {
			n.h.Attr[i].Val = value
			return
		}
	}
	n.h.Attr = append(n.h.Attr, html.Attribute{Key: name, Val: value})
}

func (n *Node) RemoveAttr(name string) {
	n.h.Attr = slices.DeleteFunc(n.h.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == name
	})
}

func (n *Node) classes() []string {
	v, _ := n.Attr("class")
	return strings.Fields(v)
}

func (n *Node) setClasses(classes []string) {
	if len(classes) == 0 {
		n.RemoveAttr("class")
		return
	}
	n.SetAttr("class", strings.Join(classes, " "))
}

func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.classes(), name)
}

func (n *Node) AddClass(name string) {
	if classes := n.classes(); !slices.Contains(classes, name) {
		n.setClasses(append(classes, name))
	}
}

func (n *Node) RemoveClass(name string) {
	n.setClasses(slices.DeleteFunc(n.classes(), func(c string) bool { return c == name }))
}

func (n *Node) ToggleClass(name string) bool {
	if n.HasClass(name) {
		n.RemoveClass(name)
		return false
	}
	n.AddClass(name)
	return true
}

// Text is the concatenated text of every descendant, like textContent.
func (n *Node) Text() string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(h *html.Node) {
		if h.Type == html.TextNode {
			sb.WriteString(h.Data)
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n.h)
	return sb.String()
}

func (n *Node) SetText(text string) {
	n.clear()
	if text != "" {
		n.h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (n *Node) clear() {
	for c := n.h.FirstChild; c != nil; {
		next := c.NextSibling
		n.h.RemoveChild(c)
		c = next
	}
	n.children = nil
}

// Value follows the form control rules: a textarea holds its text, a select
// its selected option (or the first one), anything else its value attribute.
func (n *Node) Value() string {
	switch n.h.DataAtom {
	case atom.Textarea:
		return n.Text()
	case atom.Select:
		options := n.options()
		for _, o := range options {
			if _, ok := o.Attr("selected"); ok {
				return o.optionValue()
			}
		}
		if len(options) > 0 {
			return options[0].optionValue()
		}
		return ""
	}
	v, _ := n.Attr("value")
	return v
}

func (n *Node) SetValue(value string) {
	switch n.h.DataAtom {
	case atom.Textarea:
		n.SetText(value)
	case atom.Select:
		for _, o := range n.options() {
			if o.optionValue() == value {
				o.SetAttr("selected", "")
			} else {
				o.RemoveAttr("selected")
			}
		}
	default:
		n.SetAttr("value", value)
	}
}

func (n *Node) options() []*Node {
	var out []*Node
	for _, c := range n.children {
		c.walk(func(d *Node) {
			if d.h.DataAtom == atom.Option {
				out = append(out, d)
			}
		})
	}
	return out
}

func (n *Node) optionValue() string {
	if v, ok := n.Attr("value"); ok {
		return v
	}
	return strings.TrimSpace(n.Text())
}

// HTML renders the children of n.
func (n *Node) HTML() string {
	var sb strings.Builder
	for c := n.h.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return sb.String()
		}
	}
	return sb.String()
}

// SetHTML parses markup in the context of n and replaces its children.
func (n *Node) SetHTML(markup string) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), n.h)
	if err != nil {
		n.SetText(markup)
		return
	}
	n.clear()
	for _, h := range nodes {
		n.h.AppendChild(h)
		if h.Type == html.ElementNode {
			n.children = append(n.children, adopt(h))
		}
	}
}

func (n *Node) On(event string, fn dom.Listener) {
	n.listeners[event] = append(n.listeners[event], fn)
}

// Dispatch delivers event to the listeners registered on n and reports
// whether one of them prevented the default action. There is no bubbling.
func (n *Node) Dispatch(event string) (prevented bool) {
	ev := dom.Event{Type: event, Target: n, Prevent: func() { prevented = true }}
	for _, fn := range slices.Clone(n.listeners[event]) {
		fn(ev)
	}
	return prevented
}

func (n *Node) Click() {
	n.Dispatch("click")
}

// QueryAll matches descendants only, never n itself. An invalid selector
// matches nothing.
func (n *Node) QueryAll(selector string) []dom.Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	var out []dom.Element
	for _, c := range n.children {
		c.walk(func(d *Node) {
			if sel.Match(d.h) {
				out = append(out, d)
			}
		})
	}
	return out
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}
