// Package theme keeps the light/dark preference. The same key is read by the
// server from the request cookie and by the client from storage.
package theme

import "github.com/templui/folio/internal/web/dom"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const (
	// StorageKey is both the storage key and the cookie name.
	StorageKey = "theme"
	Attr       = "data-theme"
	ToggleID   = "theme-toggle"
)

// Parse maps anything but "dark" to Light.
func Parse(s string) Theme {
	if Theme(s) == Dark {
		return Dark
	}
	return Light
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) Glyph() string {
	if t == Dark {
		return "🌙"
	}
	return "☀️"
}

func (t Theme) String() string {
	return string(t)
}

type Controller struct {
	doc     dom.Document
	storage dom.Storage
}

// Setup applies the saved preference and binds the toggle control if the
// page has one.
func Setup(doc dom.Document, storage dom.Storage) *Controller {
	c := &Controller{doc: doc, storage: storage}

	saved, _ := storage.Get(StorageKey)
	c.Apply(Parse(saved))

	if toggle := doc.ByID(ToggleID); toggle != nil {
		// the server renders the toggle as a form submit for pages without
		// script; here it only flips the attribute
		toggle.SetAttr("type", "button")
		toggle.On("click", func(dom.Event) { c.Toggle() })
	}
	return c
}

// Apply reflects t onto the document and the toggle glyph and persists it.
func (c *Controller) Apply(t Theme) {
	c.doc.Root().SetAttr(Attr, t.String())
	c.storage.Set(StorageKey, t.String())
	if toggle := c.doc.ByID(ToggleID); toggle != nil {
		toggle.SetText(t.Glyph())
	}
}

// Current reads the theme from the document, not from storage.
func (c *Controller) Current() Theme {
	v, _ := c.doc.Root().Attr(Attr)
	return Parse(v)
}

func (c *Controller) Toggle() Theme {
	next := c.Current().Toggle()
	c.Apply(next)
	return next
}
