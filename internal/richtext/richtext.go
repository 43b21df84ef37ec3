// Package richtext converts between the rich (HTML) and plain forms of an
// item description.
package richtext

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/templui/folio/internal/markdown"
)

// Strip removes all markup from s and trims the result. Entities are decoded
// by the tokenizer.
// The contents of script and style elements are dropped entirely.
func Strip(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader produces
			return strings.TrimSpace(sb.String())
		case html.StartTagToken:
			if isRawText(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawText(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

func isRawText(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	a := atom.Lookup(name)
	return a == atom.Script || a == atom.Style
}

var allowedTags = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Strong: true, atom.B: true, atom.Em: true,
	atom.I: true, atom.U: true, atom.S: true, atom.Ul: true, atom.Ol: true,
	atom.Li: true, atom.A: true, atom.H3: true, atom.H4: true, atom.Blockquote: true,
	atom.Code: true, atom.Pre: true, atom.Div: true, atom.Span: true,
}

// Sanitize keeps a small allowlist of formatting tags and drops every attribute
// except a safe href on links. Disallowed tags are removed but their text kept.
// The input is parsed as a fragment and re-rendered, so the result is always
// well formed: stray end tags vanish and open elements are closed.
func Sanitize(s string) string {
	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return html.EscapeString(Strip(s))
	}

	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		copyAllowed(root, n)
	}

	var sb strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return html.EscapeString(Strip(s))
		}
	}
	return sb.String()
}

// copyAllowed appends the allowed part of n under parent. Comments and
// doctypes are dropped, and script and style are dropped with their content.
func copyAllowed(parent, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.Data})
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
		target := parent
		if allowedTags[n.DataAtom] {
			target = &html.Node{
				Type:     html.ElementNode,
				Data:     n.DataAtom.String(),
				DataAtom: n.DataAtom,
				Attr:     allowedAttrs(n),
			}
			parent.AppendChild(target)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			copyAllowed(target, c)
		}
	}
}

func allowedAttrs(n *html.Node) []html.Attribute {
	if n.DataAtom != atom.A {
		return nil
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "href" && SafeURL(attr.Val) {
			return []html.Attribute{
				{Key: "href", Val: attr.Val},
				{Key: "target", Val: "_blank"},
				{Key: "rel", Val: "noreferrer"},
			}
		}
	}
	return nil
}

// SafeURL reports whether u is an absolute http(s) or mailto URL.
func SafeURL(u string) bool {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.Host != ""
	case "mailto":
		return parsed.Opaque != ""
	}
	return false
}

var md = markdown.NewParser()

// FromMarkdown renders a markdown body to HTML.
func FromMarkdown(src string) (string, error) {
	out, err := md.Parse([]byte(src))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
