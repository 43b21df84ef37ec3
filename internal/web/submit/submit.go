// Package submit disables a form's submit buttons while its request is in
// flight, so a double click cannot post the same entry twice.
package submit

import "github.com/templui/folio/internal/web/dom"

const (
	Selector = "form[data-guard]"
	buttons  = "button[type=submit]"
)

// Guard binds every guarded form on the page and returns how many it found.
func Guard(doc dom.Document) int {
	forms := doc.QueryAll(Selector)
	for _, form := range forms {
		form.On("submit", func(dom.Event) {
			if busy, _ := form.Attr("aria-busy"); busy == "true" {
				return
			}
			form.SetAttr("aria-busy", "true")
			for _, b := range form.QueryAll(buttons) {
				b.SetAttr("disabled", "")
			}
		})
	}
	return len(forms)
}

// Release re-enables a form, e.g. when the page is restored from the
// back/forward cache.
func Release(form dom.Element) {
	form.RemoveAttr("aria-busy")
	for _, b := range form.QueryAll(buttons) {
		b.RemoveAttr("disabled")
	}
}
