package pages

import (
	"github.com/a-h/templ"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/components"
	"github.com/templui/folio/internal/ui/layouts"
)

const DisabledMessage = "Admin login is disabled. Set SUPABASE_URL and SUPABASE_ANON_KEY to enable it."

// AdminView is everything the admin page shows for one request.
type AdminView struct {
	Enabled bool
	Session *model.Session
	Message string
	Error   bool
	// Forms holds the state of each category's form; missing ones are empty.
	Forms map[model.Category]model.ItemForm
	Items []model.Item
	Email string
}

func (v *AdminView) Form(c model.Category) model.ItemForm {
	if f, ok := v.Forms[c]; ok {
		return f
	}
	return model.EmptyForm(c)
}

func Admin(v *AdminView) templ.Component {
	return layouts.Base("Admin", ui.Component(func(h *ui.HTML) {
		h.Open("section", ui.A("class", "admin"))
		h.Elem("h1", "Admin")

		msg := v.Message
		if !v.Enabled {
			msg = DisabledMessage
		}
		h.Elem("p", msg,
			ui.A("id", "admin-message"),
			ui.Class("status", statusClass(v)),
			ui.A("role", "status"),
		)

		if v.Enabled {
			loginForm(h, v)
			h.Wrap("div", func() {
				if v.Session != nil {
					adminTools(h, v)
				}
			}, ui.A("id", "admin-tools"), ui.If(v.Session == nil, ui.Flag("hidden")))
		}

		h.Close("section")
	}))
}

func statusClass(v *AdminView) string {
	if v.Error || !v.Enabled {
		return "status-error"
	}
	return ""
}

func loginForm(h *ui.HTML, v *AdminView) {
	attrs := []ui.Attr{ui.A("id", "login-form"), ui.A("class", "login-form")}
	if v.Session != nil {
		attrs = append(attrs, ui.Flag("hidden"))
	}
	components.PostForm(h, "/admin/login", func() {
		components.Field(h, "Email", "email", "email", v.Email, ui.A("autocomplete", "username"))
		components.Field(h, "Password", "password", "password", "", ui.A("autocomplete", "current-password"))
		components.Button(h, "Sign in", "")
	}, attrs...)
}

func adminTools(h *ui.HTML, v *AdminView) {
	h.Wrap("div", func() {
		h.Elem("span", "Signed in as "+v.Session.Email)
		components.PostForm(h, "/admin/refresh", func() {
			components.Button(h, "Refresh", "bg-transparent")
		}, ui.A("class", "inline-form"))
		components.PostForm(h, "/admin/logout", func() {
			components.Button(h, "Sign out", "bg-transparent")
		}, ui.A("class", "inline-form"))
	}, ui.A("class", "admin-bar"))

	h.Wrap("div", func() {
		for _, c := range model.Categories {
			itemForm(h, v.Form(c))
		}
	}, ui.A("class", "admin-forms"))

	h.Wrap("div", func() {
		h.Elem("h2", "Entries")
		if len(v.Items) == 0 {
			h.Elem("p", components.EmptyNote, ui.A("class", "small-note"))
		}
		for i := range v.Items {
			components.AdminItem(h, &v.Items[i])
		}
	}, ui.A("id", "admin-list"))
}

func itemForm(h *ui.HTML, f model.ItemForm) {
	heading := "Add " + f.Type.Label()
	if f.Editing() {
		heading = "Edit " + f.Type.Label()
	}

	components.PostForm(h, "/admin/items", func() {
		h.Elem("h3", heading)
		h.Open("input", ui.A("type", "hidden"), ui.A("name", "type"), ui.A("value", string(f.Type)))
		if f.Editing() {
			h.Open("input", ui.A("type", "hidden"), ui.A("name", "id"), ui.A("value", f.ID.String()))
		}
		components.Field(h, "Title", "title", "text", f.Title)
		components.Field(h, "URL", "url", "url", f.URL)

		h.Wrap("label", func() {
			h.Elem("span", "Description")
			h.Elem("textarea", f.Body, ui.A("name", "body"), ui.A("rows", "6"))
		})
		components.RichEditor(h, "Description")
		h.Wrap("label", func() {
			h.Elem("span", "Format")
			h.Wrap("select", func() {
				h.Elem("option", "Rich text (HTML)", ui.A("value", model.FormatHTML), ui.If(f.Format != model.FormatMarkdown, ui.Flag("selected")))
				h.Elem("option", "Markdown", ui.A("value", model.FormatMarkdown), ui.If(f.Format == model.FormatMarkdown, ui.Flag("selected")))
			}, ui.A("name", "format"))
		})

		label := "Save"
		if f.Editing() {
			label = "Update"
		}
		components.Button(h, label, "")
		if f.Editing() {
			components.Button(h, "Cancel", "bg-transparent",
				ui.A("formaction", "/admin/forms/"+string(f.Type)+"/cancel"),
			)
		}
	}, ui.A("class", "admin-form"), ui.A("data-type", string(f.Type)), ui.A("id", "form-"+f.Type.ContainerID()))
}
