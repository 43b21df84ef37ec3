package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/web/dom/memdom"
	"github.com/templui/folio/internal/web/editor"
)

func editorForm(h *ui.HTML) {
	h.Wrap("form", func() {
		h.Elem("textarea", "<p>saved</p>", ui.A("name", "body"))
		RichEditor(h, "Description")
		h.Wrap("select", func() {
			h.Elem("option", "Rich text (HTML)", ui.A("value", "html"), ui.Flag("selected"))
			h.Elem("option", "Markdown", ui.A("value", "markdown"))
		}, ui.A("name", "format"))
	}, ui.A("class", "admin-form"))
}

func TestRichEditorShipsHidden(t *testing.T) {
	out := render(t, ui.Component(editorForm))

	require.Len(t, query(t, out, "form > .rich-editor[hidden]"), 1)
	surface := query(t, out, ".rich-editor > .editor-surface[contenteditable=true]")
	require.Len(t, surface, 1)
	assert.Equal(t, "Description", attr(surface[0], "aria-label"))

	buttons := query(t, out, ".rich-editor > .editor-toolbar > button[type=button]")
	require.Len(t, buttons, len(editor.Tools))
	for i, tool := range editor.Tools {
		assert.Equal(t, tool.Command, attr(buttons[i], "data-command"))
		assert.Equal(t, tool.Value, attr(buttons[i], "data-value"))
		assert.Equal(t, tool.Prompt, attr(buttons[i], "data-prompt"))
		assert.Equal(t, tool.Label, textOf(buttons[i]))
	}
	assert.Empty(t, query(t, out, ".rich-editor button[type=submit]"))
}

func TestRichEditorBindsOnClient(t *testing.T) {
	out := render(t, ui.Component(editorForm))
	doc, err := memdom.Parse("<html><body>" + out + "</body></html>")
	require.NoError(t, err)

	require.Equal(t, 1, editor.Setup(doc, nil))

	surface := doc.Query(".editor-surface").(*memdom.Node)
	assert.Equal(t, "<p>saved</p>", surface.HTML())

	surface.SetHTML("<p>saved <b>again</b></p>")
	doc.Query("form").(*memdom.Node).Dispatch("submit")
	assert.Equal(t, "<p>saved <b>again</b></p>", doc.Query("textarea").Value())
}
