//go:build js && wasm

// Command client is the WebAssembly side of the site. It binds the theme
// toggle, the mobile menu, scroll reveals, metric counters, the particle
// background, the admin rich-text editors and the admin form guards once the
// page has loaded.
package main

import (
	"log/slog"

	"github.com/templui/folio/internal/web/counter"
	"github.com/templui/folio/internal/web/dom/jsdom"
	"github.com/templui/folio/internal/web/editor"
	"github.com/templui/folio/internal/web/nav"
	"github.com/templui/folio/internal/web/particles"
	"github.com/templui/folio/internal/web/reveal"
	"github.com/templui/folio/internal/web/submit"
	"github.com/templui/folio/internal/web/theme"
)

func main() {
	env := jsdom.New()

	// lets the stylesheet hide the static fallbacks
	env.Doc.Root().SetAttr("data-client", "wasm")

	current := theme.Setup(env.Doc, env.Storage).Current()
	nav.Setup(env.Doc)
	revealed := reveal.Setup(env.Doc, env.Observe)
	counter.Watch(env.Doc, env.Observe, env.Frames)

	if canvas := env.Canvas(particles.CanvasID); canvas != nil {
		particles.Start(particles.NewField(nil), canvas, env.Frames, env.Window)
	}

	if submit.Guard(env.Doc) > 0 {
		jsdom.OnPageShow(func() {
			for _, form := range env.Doc.QueryAll(submit.Selector) {
				submit.Release(form)
			}
		})
	}

	editors := editor.Setup(env.Doc, env.Prompt)

	slog.Debug("client ready", "theme", current, "reveal", revealed, "editors", editors)

	select {}
}
