package memdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/web/dom"
)

func texts(els []dom.Element) []string {
	var out []string
	for _, el := range els {
		out = append(out, el.Text())
	}
	return out
}

func TestQuerySelectors(t *testing.T) {
	doc := New(
		El("div", ID("a"),
			Child(
				El("span", Class("b"), Text("direct")),
				El("div", Child(El("span", Class("b"), Text("nested")))),
			)),
		El("form", Attr("data-guard", ""), Child(
			El("button", Attr("type", "submit"), Text("save")),
			El("button", Attr("type", "button"), Text("bold")),
		)),
		El("form", Child(El("button", Attr("type", "submit"), Text("plain")))),
		El("ul", Child(
			El("li", Text("one")),
			El("li", Text("two")),
			El("li", Text("three")),
		)),
	)

	tests := []struct {
		selector string
		want     []string
	}{
		{"#a > .b", []string{"direct"}},
		{"#a .b", []string{"direct", "nested"}},
		{"form[data-guard] button[type=submit]", []string{"save"}},
		{"button[type=submit]", []string{"save", "plain"}},
		{"li:nth-child(2)", []string{"two"}},
		{"li:last-child", []string{"three"}},
		{"ul > li:not(:first-child)", []string{"two", "three"}},
		{"section", nil},
		{"li:nth-child(", nil},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(doc.QueryAll(tt.selector)))
		})
	}

	assert.Nil(t, doc.Query("li:nth-child("))
	assert.Equal(t, "one", doc.Query("li").Text())
	assert.Equal(t, "a", doc.ByID("a").ID())
	assert.Nil(t, doc.ByID("missing"))
}

func TestNodeQueryExcludesItself(t *testing.T) {
	inner := El("div", Class("box"), Text("inner"))
	outer := El("div", Class("box"), Child(inner))
	New(outer)

	got := outer.QueryAll(".box")
	require.Len(t, got, 1)
	assert.Same(t, inner, got[0])
	assert.Nil(t, outer.QueryAll("["))
}

func TestClassAttribute(t *testing.T) {
	n := El("p", Class("a", "b"))
	v, _ := n.Attr("class")
	assert.Equal(t, "a b", v)

	n.AddClass("a")
	assert.True(t, n.ToggleClass("c"))
	v, _ = n.Attr("class")
	assert.Equal(t, "a b c", v)

	n.RemoveClass("a")
	n.RemoveClass("b")
	assert.False(t, n.ToggleClass("c"))
	_, ok := n.Attr("class")
	assert.False(t, ok)
}

func TestValue(t *testing.T) {
	t.Run("textarea", func(t *testing.T) {
		n := El("textarea", Text("<p>hi</p>"))
		assert.Equal(t, "<p>hi</p>", n.Value())
		n.SetValue("bye")
		assert.Equal(t, "bye", n.Value())
		assert.Equal(t, "bye", n.Text())
	})

	t.Run("select", func(t *testing.T) {
		first := El("option", Attr("value", "html"), Text("Rich text"))
		second := El("option", Text(" markdown "))
		n := El("select", Child(first, second))
		assert.Equal(t, "html", n.Value())

		n.SetValue("markdown")
		assert.Equal(t, "markdown", n.Value())
		_, ok := first.Attr("selected")
		assert.False(t, ok)

		n.SetValue("html")
		assert.Equal(t, "html", n.Value())
		_, ok = second.Attr("selected")
		assert.False(t, ok)

		assert.Empty(t, El("select").Value())
	})

	t.Run("input", func(t *testing.T) {
		n := El("input", Attr("value", "a"))
		assert.Equal(t, "a", n.Value())
		n.SetValue("b")
		v, _ := n.Attr("value")
		assert.Equal(t, "b", v)
	})
}

func TestHTML(t *testing.T) {
	n := El("div", Child(El("p", Text("x & y")), El("br")))
	assert.Equal(t, "<p>x &amp; y</p><br/>", n.HTML())

	n.SetHTML(`<ul><li class="item">one</li><li class="item">two <b>2</b></li></ul>`)
	items := n.QueryAll(".item")
	require.Len(t, items, 2)
	assert.Equal(t, "two 2", items[1].Text())
	assert.Equal(t, `<ul><li class="item">one</li><li class="item">two <b>2</b></li></ul>`, n.HTML())

	clicked := false
	items[0].On("click", func(dom.Event) { clicked = true })
	items[0].(*Node).Click()
	assert.True(t, clicked)

	n.SetText("plain")
	assert.Empty(t, n.QueryAll(".item"))
	assert.Equal(t, "plain", n.HTML())
}

func TestDispatchReportsPrevented(t *testing.T) {
	n := El("form")
	var target dom.Element
	n.On("submit", func(e dom.Event) {
		target = e.Target
		e.PreventDefault()
	})
	n.On("reset", func(dom.Event) {})

	assert.True(t, n.Dispatch("submit"))
	assert.Same(t, n, target)
	assert.False(t, n.Dispatch("reset"))
	assert.False(t, n.Dispatch("unheard"))
}

func TestParse(t *testing.T) {
	doc, err := Parse(`<!doctype html><html><body><main id="m"><p class="x">a</p><p class="x">b</p></main></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, texts(doc.QueryAll("#m > p.x")))
	assert.Equal(t, "m", doc.Query("body > main").ID())
	assert.NotNil(t, doc.Root())
}

func TestExecRecordsCommands(t *testing.T) {
	doc := New()
	doc.Exec("bold", "")
	doc.Exec("createLink", "https://a.dev")

	assert.Equal(t, []Command{{Name: "bold"}, {Name: "createLink", Value: "https://a.dev"}}, doc.Commands)
}
