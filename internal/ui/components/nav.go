package components

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/web/theme"
)

// Nav is the site header: brand, the collapsible menu and the theme toggle.
func Nav() templ.Component {
	return ui.Component(func(h *ui.HTML) {
		ctx := h.Context()
		cfg := ctxkeys.Config(ctx)
		path := ctxkeys.URLPath(ctx)

		h.Open("header", ui.A("class", "site-header"))
		h.Open("nav", ui.A("class", "nav"), ui.A("aria-label", "Main"))

		appName := "Folio"
		if cfg != nil {
			appName = cfg.AppName
		}
		h.Elem("a", appName, ui.A("class", "brand"), ui.A("href", "/"))

		h.Elem("button", "☰",
			ui.A("class", "menu-toggle"),
			ui.A("type", "button"),
			ui.A("aria-expanded", "false"),
			ui.A("aria-controls", "nav-links"),
			ui.A("aria-label", "Toggle menu"),
		)

		h.Wrap("ul", func() {
			for _, c := range model.Categories {
				navLink(h, "/#"+c.ContainerID(), c.Label(), false)
			}
			navLink(h, "/#about", "About", false)
			navLink(h, "/admin", "Admin", path == "/admin")
		}, ui.A("class", "nav-links"), ui.A("id", "nav-links"))

		ThemeToggle(h)

		h.Close("nav")
		h.Close("header")
	})
}

func navLink(h *ui.HTML, href, label string, active bool) {
	h.Wrap("li", func() {
		h.Elem("a", label, ui.A("href", href), ui.If(active, ui.A("aria-current", "page")))
	})
}

// ThemeToggle posts to /theme without script; the client turns the button
// into a plain toggle.
func ThemeToggle(h *ui.HTML) {
	current := theme.Parse(ctxkeys.Theme(h.Context()))
	PostForm(h, "/theme", func() {
		h.Open("input", ui.A("type", "hidden"), ui.A("name", "redirect"), ui.A("value", ctxkeys.URLPath(h.Context())))
		h.Elem("button", current.Glyph(),
			ui.A("id", theme.ToggleID),
			ui.A("type", "submit"),
			ui.A("aria-label", "Toggle theme"),
		)
	}, ui.A("class", "theme-form"))
}

func Footer() templ.Component {
	return ui.Component(func(h *ui.HTML) {
		owner := ""
		if cfg := ctxkeys.Config(h.Context()); cfg != nil {
			owner = cfg.OwnerName
		}
		h.Wrap("footer", func() {
			h.Wrap("p", func() {
				h.Text("© ")
				h.Elem("span", strconv.Itoa(time.Now().Year()), ui.A("id", "year"))
				h.Text(" " + owner)
			})
		}, ui.A("class", "site-footer"))
	})
}
