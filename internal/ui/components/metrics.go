package components

import "github.com/templui/folio/internal/web/counter"

type Metric struct {
	Label  string
	Target int
	// Suffix replaces the default "+" or "%" when set.
	Suffix *string
}

// Display is the value as the counter leaves it once finished.
func (m Metric) Display() string {
	override := ""
	if m.Suffix != nil {
		override = *m.Suffix
	}
	return counter.Format(m.Target, counter.Suffix(m.Target, override, m.Suffix != nil))
}
