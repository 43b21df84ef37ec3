package ui

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// Attr is one HTML attribute. A boolean attribute has no value; an Attr with
// an empty Key is skipped.
type Attr struct {
	Key   string
	Value string
	Bool  bool
}

func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Flag is a boolean attribute such as hidden or disabled.
func Flag(key string) Attr {
	return Attr{Key: key, Bool: true}
}

// If returns a when cond holds and a no-op attribute otherwise.
func If(cond bool, a Attr) Attr {
	if !cond {
		return Attr{}
	}
	return a
}

// Class merges utility classes, later ones winning over conflicting earlier
// ones.
func Class(classes ...string) Attr {
	return A("class", twmerge.Merge(classes...))
}

// HTML writes escaped markup and keeps the first write error.
type HTML struct {
	ctx context.Context
	w   io.Writer
	err error
}

// Component adapts a writer function to templ.
func Component(fn func(h *HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &HTML{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

func (h *HTML) Context() context.Context {
	return h.ctx
}

func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

func (h *HTML) Open(tag string, attrs ...Attr) {
	h.Raw("<" + tag)
	for _, a := range attrs {
		switch {
		case a.Key == "":
		case a.Bool:
			h.Raw(" " + a.Key)
		default:
			h.Raw(" " + a.Key + `="` + templ.EscapeString(a.Value) + `"`)
		}
	}
	h.Raw(">")
}

func (h *HTML) Close(tag string) {
	h.Raw("</" + tag + ">")
}

// Elem writes a complete element with escaped text content.
func (h *HTML) Elem(tag, text string, attrs ...Attr) {
	h.Open(tag, attrs...)
	h.Text(text)
	h.Close(tag)
}

// Wrap writes tag around whatever body writes.
func (h *HTML) Wrap(tag string, body func(), attrs ...Attr) {
	h.Open(tag, attrs...)
	body()
	h.Close(tag)
}

func (h *HTML) Render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}
