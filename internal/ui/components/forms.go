package components

import (
	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/middleware"
	"github.com/templui/folio/internal/ui"
)

// CSRF is the hidden token input every POST form carries.
func CSRF(h *ui.HTML) {
	h.Open("input",
		ui.A("type", "hidden"),
		ui.A("name", middleware.CSRFFormField),
		ui.A("value", ctxkeys.CSRFToken(h.Context())),
	)
}

// PostForm writes a guarded POST form around body.
func PostForm(h *ui.HTML, action string, body func(), attrs ...ui.Attr) {
	attrs = append([]ui.Attr{
		ui.A("method", "post"),
		ui.A("action", action),
		ui.Flag("data-guard"),
	}, attrs...)
	h.Wrap("form", func() {
		CSRF(h)
		body()
	}, attrs...)
}

func Field(h *ui.HTML, label, name, kind, value string, attrs ...ui.Attr) {
	h.Wrap("label", func() {
		h.Elem("span", label)
		h.Open("input", append([]ui.Attr{
			ui.A("type", kind),
			ui.A("name", name),
			ui.A("value", value),
		}, attrs...)...)
	})
}

func Button(h *ui.HTML, text string, class string, attrs ...ui.Attr) {
	h.Elem("button", text, append([]ui.Attr{
		ui.A("type", "submit"),
		ui.Class("btn rounded-md px-4 py-2 font-medium", class),
	}, attrs...)...)
}
