package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/web/dom/memdom"
)

func page() (*memdom.Document, *memdom.Node, *memdom.Node, *memdom.Node) {
	toggle := memdom.El("button", memdom.Class("menu-toggle"), memdom.Attr("aria-expanded", "false"))
	link := memdom.El("a", memdom.Attr("href", "#projects"))
	links := memdom.El("ul", memdom.Class("nav-links"), memdom.Child(memdom.El("li", memdom.Child(link))))
	return memdom.New(memdom.El("nav", memdom.Child(toggle, links))), toggle, links, link
}

func TestToggleFlipsState(t *testing.T) {
	doc, toggle, links, _ := page()
	m := Setup(doc)
	require.NotNil(t, m)

	toggle.Click()
	assert.True(t, m.Open())
	assert.True(t, links.HasClass("open"))

	toggle.Click()
	assert.False(t, m.Open())
	assert.False(t, links.HasClass("open"))
	v, _ := toggle.Attr("aria-expanded")
	assert.Equal(t, "false", v)
}

func TestLinkClickCollapses(t *testing.T) {
	doc, toggle, links, link := page()
	m := Setup(doc)

	toggle.Click()
	require.True(t, m.Open())

	link.Click()
	assert.False(t, m.Open())
	assert.False(t, links.HasClass("open"))

	// closing an already closed menu leaves it closed
	link.Click()
	assert.False(t, m.Open())
}

func TestSetupWithoutMenu(t *testing.T) {
	assert.Nil(t, Setup(memdom.New()))
}
