package layouts

import (
	"github.com/a-h/templ"

	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/components"
	"github.com/templui/folio/internal/web/particles"
	"github.com/templui/folio/internal/web/theme"
)

// Base is the document shell shared by every page.
func Base(title string, body templ.Component) templ.Component {
	return ui.Component(func(h *ui.HTML) {
		ctx := h.Context()
		cfg := ctxkeys.Config(ctx)
		nonce := templ.GetNonce(ctx)
		current := theme.Parse(ctxkeys.Theme(ctx))

		appName, tagline, showParticles := "Folio", "", false
		if cfg != nil {
			appName, tagline, showParticles = cfg.AppName, cfg.AppTagline, cfg.Particles
		}

		h.Raw("<!doctype html>")
		h.Open("html", ui.A("lang", "en"), ui.A(theme.Attr, current.String()))

		h.Open("head")
		h.Open("meta", ui.A("charset", "utf-8"))
		h.Open("meta", ui.A("name", "viewport"), ui.A("content", "width=device-width, initial-scale=1"))
		if title != "" {
			h.Elem("title", title+" · "+appName)
		} else {
			h.Elem("title", appName)
		}
		h.Open("meta", ui.A("name", "description"), ui.A("content", tagline))
		h.Open("meta", ui.A("name", "csrf-token"), ui.A("content", ctxkeys.CSRFToken(ctx)))
		h.Open("link", ui.A("rel", "stylesheet"), ui.A("href", "/assets/css/site.css"))
		h.Elem("script", "", ui.A("src", "/assets/js/wasm_exec.js"), ui.A("nonce", nonce), ui.Flag("defer"))
		h.Elem("script", "", ui.A("src", "/assets/js/boot.js"), ui.A("nonce", nonce), ui.Flag("defer"))
		h.Close("head")

		h.Open("body")
		if showParticles {
			h.Open("img",
				ui.A("class", "particle-fallback"),
				ui.A("src", "/particles.svg?w=1280&h=720"),
				ui.A("alt", ""),
				ui.A("aria-hidden", "true"),
			)
			h.Elem("canvas", "", ui.A("id", particles.CanvasID), ui.A("aria-hidden", "true"))
		}
		h.Render(components.Nav())
		h.Wrap("main", func() { h.Render(body) })
		h.Render(components.Footer())
		h.Close("body")
		h.Close("html")
	})
}
