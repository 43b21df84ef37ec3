package submit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/templui/folio/internal/web/dom/memdom"
)

func TestGuardDisablesButtons(t *testing.T) {
	button := memdom.El("button", memdom.Attr("type", "submit"))
	form := memdom.El("form", memdom.Class("admin-form"), memdom.Attr("data-guard", ""), memdom.Attr("data-type", "projects"),
		memdom.Child(memdom.El("input", memdom.Attr("name", "title")), button))
	plain := memdom.El("form", memdom.Child(memdom.El("button", memdom.Attr("type", "submit"))))
	doc := memdom.New(form, plain)

	assert.Equal(t, 1, Guard(doc))

	form.Dispatch("submit")
	_, disabled := button.Attr("disabled")
	assert.True(t, disabled)
	busy, _ := form.Attr("aria-busy")
	assert.Equal(t, "true", busy)

	Release(form)
	_, disabled = button.Attr("disabled")
	assert.False(t, disabled)
	_, busy2 := form.Attr("aria-busy")
	assert.False(t, busy2)
}
