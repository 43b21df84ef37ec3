package components

import (
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/web/editor"
)

// RichEditor writes the formatting surface the client swaps in for a form's
// body textarea. It ships hidden so the textarea works without the client.
func RichEditor(h *ui.HTML, label string) {
	h.Wrap("div", func() {
		h.Wrap("div", func() {
			for _, t := range editor.Tools {
				h.Elem("button", t.Label,
					ui.A("type", "button"),
					ui.A("class", "editor-tool"),
					ui.A("data-command", t.Command),
					ui.If(t.Value != "", ui.A("data-value", t.Value)),
					ui.If(t.Prompt != "", ui.A("data-prompt", t.Prompt)),
					ui.A("title", t.Title),
					ui.A("aria-label", t.Title),
				)
			}
		}, ui.A("class", "editor-toolbar"), ui.A("role", "toolbar"), ui.A("aria-label", "Formatting"))
		h.Elem("div", "",
			ui.A("class", "editor-surface"),
			ui.A("contenteditable", "true"),
			ui.A("role", "textbox"),
			ui.A("aria-multiline", "true"),
			ui.A("aria-label", label),
		)
	}, ui.A("class", "rich-editor"), ui.Flag("hidden"))
}
