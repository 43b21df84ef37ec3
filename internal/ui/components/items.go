package components

import (
	"net/url"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/ui"
)

const EmptyNote = "No items yet. Add entries from admin panel."

// AdminItem is a list entry with edit and delete controls.
func AdminItem(h *ui.HTML, item *model.Item) {
	path := "/admin/items/" + url.PathEscape(item.ID.String())
	h.Open("div", ui.A("class", "list-item admin-item"), ui.A("data-id", item.ID.String()))
	h.Elem("h4", item.Title)
	h.Elem("small", item.Type.Label(), ui.A("class", "item-type"))
	h.Render(ItemBody(item))
	h.Wrap("div", func() {
		h.Elem("a", "Edit", ui.A("href", path+"/edit"), ui.A("class", "btn"))
		PostForm(h, path+"/delete", func() {
			Button(h, "Delete", "bg-red-600 text-white")
		}, ui.A("class", "inline-form"))
	}, ui.A("class", "item-actions"))
	h.Close("div")
}
