package pages

import (
	"github.com/a-h/templ"

	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/layouts"
)

func NotFound() templ.Component {
	return layouts.Base("Not found", ui.Component(func(h *ui.HTML) {
		h.Wrap("section", func() {
			h.Elem("h1", "Page not found")
			h.Elem("a", "Back to the portfolio", ui.A("href", "/"))
		}, ui.A("class", "not-found"))
	}))
}
