// Package reveal marks sections visible the first time they scroll into view.
package reveal

import "github.com/templui/folio/internal/web/dom"

const (
	Selector     = ".reveal"
	VisibleClass = "visible"
	Threshold    = 0.1
)

// Setup observes every .reveal element and returns how many there were.
// Elements stay observed after they become visible; they are never hidden
// again.
func Setup(doc dom.Document, observe dom.ObserveFunc) int {
	els := doc.QueryAll(Selector)
	if len(els) == 0 {
		return 0
	}

	o := observe(Threshold, func(entries []dom.Entry, _ dom.Observer) {
		for _, e := range entries {
			if e.Intersecting {
				e.Target.AddClass(VisibleClass)
			}
		}
	})
	for _, el := range els {
		o.Observe(el)
	}
	return len(els)
}
