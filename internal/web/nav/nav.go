// Package nav drives the collapsible mobile menu.
package nav

import "github.com/templui/folio/internal/web/dom"

const (
	ToggleSelector = ".menu-toggle"
	LinksSelector  = ".nav-links"
	OpenClass      = "open"
)

type Menu struct {
	toggle dom.Element
	links  dom.Element
}

// Setup binds the menu. It returns nil when the page has no menu.
func Setup(doc dom.Document) *Menu {
	toggle := doc.Query(ToggleSelector)
	links := doc.Query(LinksSelector)
	if toggle == nil || links == nil {
		return nil
	}

	m := &Menu{toggle: toggle, links: links}
	toggle.On("click", func(dom.Event) { m.Toggle() })
	for _, a := range links.QueryAll("a") {
		a.On("click", func(dom.Event) { m.Close() })
	}
	return m
}

func (m *Menu) Open() bool {
	v, _ := m.toggle.Attr("aria-expanded")
	return v == "true"
}

func (m *Menu) Toggle() {
	if m.Open() {
		m.Close()
		return
	}
	m.toggle.SetAttr("aria-expanded", "true")
	m.links.AddClass(OpenClass)
}

func (m *Menu) Close() {
	m.toggle.SetAttr("aria-expanded", "false")
	m.links.RemoveClass(OpenClass)
}
