package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Just text", "Just text"},
		{"paragraphs", "<p>Hello <strong>world</strong></p>", "Hello world"},
		{"trims", "  <div>\n padded \n</div>  ", "padded"},
		{"entities", "<p>AT&amp;T &lt;3</p>", "AT&T <3"},
		{"script dropped", "<p>a</p><script>alert(1)</script><p>b</p>", "ab"},
		{"style dropped", "<style>p{color:red}</style>text", "text"},
		{"link text kept", `<a href="https://x.dev">site</a>`, "site"},
		{"comment dropped", "a<!-- hidden -->b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}

func TestStripIsIdempotent(t *testing.T) {
	inputs := []string{
		"<p>Hello <em>there</em></p>",
		"already plain",
		"<ul><li>one</li><li>two</li></ul>",
		"a < b and c > d",
	}

	for _, in := range inputs {
		once := Strip(in)
		assert.Equal(t, once, Strip(once), "input %q", in)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"allowed tags", "<p>Hi <strong>there</strong></p>", "<p>Hi <strong>there</strong></p>"},
		{"attributes dropped", `<p class="x" onclick="evil()">a</p>`, "<p>a</p>"},
		{"unknown tag unwrapped", "<marquee>wow</marquee>", "wow"},
		{"script removed", "<p>a</p><script>alert(1)</script>", "<p>a</p>"},
		{"safe link", `<a href="https://example.com">x</a>`, `<a href="https://example.com" target="_blank" rel="noreferrer">x</a>`},
		{"javascript link", `<a href="javascript:alert(1)">x</a>`, "<a>x</a>"},
		{"text escaped", "1 &lt; 2", "1 &lt; 2"},
		{"br", "a<br>b<br/>c", "a<br/>b<br/>c"},
		{"comment dropped", "a<!-- x -->b", "ab"},
		{"stray end tags dropped", "<p>one</div></div><b>bold", "<p>one<b>bold</b></p>"},
		{"unclosed tags closed", "<ul><li>a<li>b", "<ul><li>a</li><li>b</li></ul>"},
		{"misnested", "<b><i>x</b>y</i>", "<b><i>x</i></b><i>y</i>"},
		{"unwrapped children kept", `<section><p>a</p><img src="x.png"><em>b</em></section>`, "<p>a</p><em>b</em>"},
		{"quoted href", `<a href="https://x.dev/?q=&quot;a&quot;">x</a>`, `<a href="https://x.dev/?q=&#34;a&#34;" target="_blank" rel="noreferrer">x</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeIsBalanced(t *testing.T) {
	inputs := []string{
		"<p>one</div></div><b>bold",
		"</span></span><div><div>",
		"<ul><li><p>x</ul></p>",
		"<blockquote><pre>code",
	}

	for _, in := range inputs {
		out := Sanitize(in)
		for _, tag := range []string{"div", "span", "p", "b", "ul", "li", "blockquote", "pre"} {
			assert.Equal(t,
				strings.Count(out, "<"+tag+">"),
				strings.Count(out, "</"+tag+">"),
				"input %q tag %s in %q", in, tag, out)
		}
		assert.Equal(t, out, Sanitize(out), "input %q", in)
	}
}

func TestSafeURL(t *testing.T) {
	assert.True(t, SafeURL("https://example.com/x"))
	assert.True(t, SafeURL("http://example.com"))
	assert.True(t, SafeURL("mailto:me@example.com"))
	assert.False(t, SafeURL("javascript:alert(1)"))
	assert.False(t, SafeURL("/relative"))
	assert.False(t, SafeURL("https://"))
	assert.False(t, SafeURL(""))
}

func TestFromMarkdown(t *testing.T) {
	out, err := FromMarkdown("Hello **world**")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello <strong>world</strong></p>", out)
	assert.Equal(t, "Hello world", Strip(out))
}
