package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/templui/folio/internal/model"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func query(t *testing.T, markup, selector string) []*html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return cascadia.MustCompile(selector).MatchAll(doc)
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func link(s string) *string { return &s }

func TestItemListRows(t *testing.T) {
	tests := []struct {
		name   string
		items  []model.Item
		titles []string
	}{
		{"empty", nil, nil},
		{"one row", []model.Item{{Title: "Folio"}}, []string{"Folio"}},
		{
			"several rows in order",
			[]model.Item{{Title: "newest"}, {Title: "middle"}, {Title: "oldest"}},
			[]string{"newest", "middle", "oldest"},
		},
		{"untitled row", []model.Item{{Description: "just text"}}, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, ItemList(model.CategoryProjects, tt.items))

			require.Len(t, query(t, out, "#projects.item-list"), 1)
			notes := query(t, out, "#projects > p.small-note")
			rows := query(t, out, "#projects > .list-item")
			require.Len(t, rows, len(tt.titles))

			if len(tt.items) == 0 {
				require.Len(t, notes, 1)
				assert.Equal(t, EmptyNote, textOf(notes[0]))
				return
			}
			assert.Empty(t, notes)

			var got []string
			for _, h := range query(t, out, "#projects > .list-item > h4") {
				got = append(got, textOf(h))
			}
			assert.Equal(t, tt.titles, got)
		})
	}
}

func TestItemListContainerIDs(t *testing.T) {
	for _, c := range model.Categories {
		out := render(t, ItemList(c, nil))
		assert.Len(t, query(t, out, "#"+c.ContainerID()), 1, c)
	}
}

func TestItemListLink(t *testing.T) {
	items := []model.Item{
		{Title: "linked", URL: link("https://a.dev/x?y=1&z=2")},
		{Title: "unlinked"},
		{Title: "empty url", URL: link("")},
		{Title: "script url", URL: link("javascript:alert(1)")},
	}
	out := render(t, ItemList(model.CategoryWebApps, items))

	rows := query(t, out, "#web-apps > .list-item")
	require.Len(t, rows, 4)

	links := query(t, out, "#web-apps > .list-item > a")
	require.Len(t, links, 1)
	assert.Equal(t, "https://a.dev/x?y=1&z=2", attr(links[0], "href"))
	assert.Equal(t, "_blank", attr(links[0], "target"))
	assert.Equal(t, "noreferrer", attr(links[0], "rel"))
	assert.Equal(t, "Visit ↗", textOf(links[0]))
	assert.Equal(t, rows[0], links[0].Parent)
}

func TestItemListBody(t *testing.T) {
	items := []model.Item{
		{Title: "rich", Description: "plain fallback", DescriptionHTML: "<p>Built with <strong>Go</strong></p>"},
		{Title: "plain", Description: "only <plain> text"},
		{Title: "bare"},
	}
	out := render(t, ItemList(model.CategoryProjects, items))

	rows := query(t, out, "#projects > .list-item")
	require.Len(t, rows, 3)

	strong := query(t, out, "#projects > .list-item:nth-child(1) > p > strong")
	require.Len(t, strong, 1)
	assert.Equal(t, "Go", textOf(strong[0]))
	assert.NotContains(t, out, "plain fallback")

	plain := query(t, out, "#projects > .list-item:nth-child(2) > p")
	require.Len(t, plain, 1)
	assert.Equal(t, "only <plain> text", textOf(plain[0]))
	assert.Contains(t, out, "only &lt;plain&gt; text")

	assert.Empty(t, query(t, out, "#projects > .list-item:nth-child(3) > p"))
}

func TestItemListKeepsRowsInsideContainer(t *testing.T) {
	items := []model.Item{
		{Title: "first", DescriptionHTML: "<p>one</div></div><b>bold"},
		{Title: "second", DescriptionHTML: "<p>two</p>"},
	}
	out := render(t, ItemList(model.CategoryProjects, items))

	assert.Equal(t, strings.Count(out, "<div"), strings.Count(out, "</div>"), out)
	assert.Equal(t, strings.Count(out, "<b>"), strings.Count(out, "</b>"), out)

	rows := query(t, out, "#projects > .list-item")
	require.Len(t, rows, 2)
	assert.Equal(t, "second", textOf(query(t, out, "#projects > .list-item:nth-child(2) > h4")[0]))
}

func TestItemListDropsScripts(t *testing.T) {
	items := []model.Item{{Title: "x", DescriptionHTML: `<p onclick="steal()">hi</p><script>steal()</script>`}}
	out := render(t, ItemList(model.CategoryProjects, items))

	assert.NotContains(t, out, "steal")
	assert.Contains(t, out, "<p>hi</p>")
}

func TestMetrics(t *testing.T) {
	k := "k"
	out := render(t, Metrics([]Metric{
		{Label: "Projects", Target: 12},
		{Label: "Open source", Target: 100},
		{Label: "Downloads", Target: 40, Suffix: &k},
	}))

	numbers := query(t, out, ".metrics.reveal > .metric > .metric-number")
	require.Len(t, numbers, 3)
	assert.Equal(t, "12", attr(numbers[0], "data-target"))
	assert.Equal(t, "12+", textOf(numbers[0]))
	assert.Equal(t, "100%", textOf(numbers[1]))
	assert.Equal(t, "40k", textOf(numbers[2]))
	assert.Equal(t, "k", attr(numbers[2], "data-suffix"))
	assert.Empty(t, query(t, out, ".metric:nth-child(1) > [data-suffix]"))

	labels := query(t, out, ".metric > .metric-label")
	require.Len(t, labels, 3)
	assert.Equal(t, "Downloads", textOf(labels[2]))
}
