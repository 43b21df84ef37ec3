package pages

import (
	"github.com/a-h/templ"

	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/components"
	"github.com/templui/folio/internal/ui/layouts"
)

// Home is the portfolio: hero with live counts, one section per category.
func Home(portfolio *service.Portfolio) templ.Component {
	return layouts.Base("", ui.Component(func(h *ui.HTML) {
		cfg := ctxkeys.Config(h.Context())
		owner, tagline := "", ""
		if cfg != nil {
			owner, tagline = cfg.OwnerName, cfg.AppTagline
		}

		h.Wrap("section", func() {
			h.Elem("h1", owner)
			h.Elem("p", tagline, ui.A("class", "lead"))
			h.Render(components.Metrics(homeMetrics(portfolio)))
		}, ui.A("class", "hero reveal"), ui.A("id", "top"))

		for _, section := range portfolio.Sections {
			h.Wrap("section", func() {
				h.Elem("h2", section.Category.Label())
				h.Render(components.ItemList(section.Category, section.Items))
			}, ui.A("class", "portfolio-section reveal"), ui.A("id", "section-"+section.Category.ContainerID()))
		}

		h.Wrap("section", func() {
			h.Elem("h2", "About")
			h.Elem("p", tagline)
		}, ui.A("class", "reveal"), ui.A("id", "about"))
	}))
}

func homeMetrics(p *service.Portfolio) []components.Metric {
	metrics := make([]components.Metric, 0, len(model.Categories)+2)
	for _, c := range model.Categories {
		metrics = append(metrics, components.Metric{Label: c.Label(), Target: p.Count(c)})
	}
	return append(metrics,
		components.Metric{Label: "Entries", Target: p.Total()},
		components.Metric{Label: "Open source", Target: 100},
	)
}
