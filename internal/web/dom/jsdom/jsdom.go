//go:build js && wasm

// Package jsdom binds the dom interfaces to the browser through syscall/js.
package jsdom

import (
	"math"
	"net/url"
	"strings"
	"syscall/js"

	"github.com/templui/folio/internal/web/dom"
)

// cookieMaxAge keeps stored preferences for a year.
const cookieMaxAge = "31536000"

// New returns the environment of the current page.
func New() dom.Env {
	global := js.Global()
	doc := &document{v: global.Get("document")}
	return dom.Env{
		Doc:     doc,
		Storage: &cookieStorage{doc: doc.v},
		Frames:  rafScheduler{global: global},
		Observe: observe,
		Window:  &window{v: global},
		Canvas:  doc.canvas,
		Prompt:  prompt,
	}
}

func prompt(message string) (string, bool) {
	v := js.Global().Call("prompt", message)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

// OnPageShow runs fn whenever the page is shown, including restores from
// the back/forward cache.
func OnPageShow(fn func()) {
	js.Global().Call("addEventListener", "pageshow", js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	}))
}

type element struct {
	v js.Value
}

func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &element{v: v}
}

func wrapAll(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := range n {
		out = append(out, &element{v: list.Index(i)})
	}
	return out
}

func (e *element) ID() string {
	return e.v.Get("id").String()
}

func (e *element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *element) RemoveAttr(name string) {
	e.v.Call("removeAttribute", name)
}

func (e *element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *element) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e *element) RemoveClass(name string) {
	e.v.Get("classList").Call("remove", name)
}

func (e *element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e *element) Text() string {
	return e.v.Get("textContent").String()
}

func (e *element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *element) Value() string {
	return e.v.Get("value").String()
}

func (e *element) SetValue(value string) {
	e.v.Set("value", value)
}

func (e *element) HTML() string {
	return e.v.Get("innerHTML").String()
}

func (e *element) SetHTML(markup string) {
	e.v.Set("innerHTML", markup)
}

func (e *element) On(event string, fn dom.Listener) {
	e.v.Call("addEventListener", event, js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := dom.Event{Type: event, Target: e}
		if len(args) > 0 {
			native := args[0]
			ev.Prevent = func() { native.Call("preventDefault") }
		}
		fn(ev)
		return nil
	}))
}

func (e *element) QueryAll(selector string) []dom.Element {
	return wrapAll(e.v.Call("querySelectorAll", selector))
}

type document struct {
	v js.Value
}

func (d *document) Root() dom.Element {
	return wrap(d.v.Get("documentElement"))
}

func (d *document) ByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d *document) Query(selector string) dom.Element {
	return wrap(d.v.Call("querySelector", selector))
}

func (d *document) QueryAll(selector string) []dom.Element {
	return wrapAll(d.v.Call("querySelectorAll", selector))
}

func (d *document) Exec(command, value string) {
	d.v.Call("execCommand", command, false, value)
}

func (d *document) canvas(id string) dom.Surface {
	el := d.v.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil
	}
	return &surface{el: el, ctx: ctx}
}

type observer struct {
	v js.Value
}

func observe(threshold float64, fn func([]dom.Entry, dom.Observer)) dom.Observer {
	o := &observer{}
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		list := args[0]
		entries := make([]dom.Entry, list.Length())
		for i := range entries {
			entry := list.Index(i)
			entries[i] = dom.Entry{
				Target:       wrap(entry.Get("target")),
				Intersecting: entry.Get("isIntersecting").Bool(),
			}
		}
		fn(entries, o)
		return nil
	})
	o.v = js.Global().Get("IntersectionObserver").New(cb, map[string]any{"threshold": threshold})
	return o
}

func (o *observer) Observe(el dom.Element) {
	o.v.Call("observe", el.(*element).v)
}

func (o *observer) Unobserve(el dom.Element) {
	o.v.Call("unobserve", el.(*element).v)
}

// cookieStorage keeps values in first-party cookies so the server renders
// the same state on the next request.
type cookieStorage struct {
	doc js.Value
}

func (s *cookieStorage) Get(key string) (string, bool) {
	for _, part := range strings.Split(s.doc.Get("cookie").String(), ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || name != key {
			continue
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return value, true
		}
		return v, true
	}
	return "", false
}

func (s *cookieStorage) Set(key, value string) {
	s.doc.Set("cookie", key+"="+url.QueryEscape(value)+"; path=/; max-age="+cookieMaxAge+"; samesite=lax")
}

type rafScheduler struct {
	global js.Value
}

func (r rafScheduler) RequestFrame(fn dom.FrameFunc) {
	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		cb.Release()
		fn(args[0].Float())
		return nil
	})
	r.global.Call("requestAnimationFrame", cb)
}

type window struct {
	v js.Value
}

func (w *window) Size() (float64, float64) {
	return w.v.Get("innerWidth").Float(), w.v.Get("innerHeight").Float()
}

func (w *window) OnResize(fn func()) {
	w.v.Call("addEventListener", "resize", js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	}))
}

type surface struct {
	el, ctx js.Value
}

func (s *surface) Size() (float64, float64) {
	return s.el.Get("width").Float(), s.el.Get("height").Float()
}

func (s *surface) SetSize(w, h float64) {
	s.el.Set("width", w)
	s.el.Set("height", h)
}

func (s *surface) Clear() {
	w, h := s.Size()
	s.ctx.Call("clearRect", 0, 0, w, h)
}

func (s *surface) FillCircle(x, y, r float64, color string) {
	s.ctx.Set("fillStyle", color)
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	s.ctx.Call("fill")
}
