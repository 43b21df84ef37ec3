package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/web/dom/memdom"
)

func TestToggleIsInvolution(t *testing.T) {
	for _, th := range []Theme{Light, Dark} {
		assert.Equal(t, th, th.Toggle().Toggle())
	}
	assert.Equal(t, Light, Parse(""))
	assert.Equal(t, Light, Parse("sepia"))
	assert.Equal(t, Dark, Parse("dark"))
}

func TestSetupDefaultsToLight(t *testing.T) {
	toggle := memdom.El("button", memdom.ID(ToggleID))
	doc := memdom.New(toggle)
	storage := memdom.Storage{}

	c := Setup(doc, storage)

	assert.Equal(t, Light, c.Current())
	v, _ := doc.Root().Attr(Attr)
	assert.Equal(t, "light", v)
	assert.Equal(t, "☀️", toggle.Text())
	assert.Equal(t, "light", storage[StorageKey])
}

func TestClickTogglesAndPersists(t *testing.T) {
	toggle := memdom.El("button", memdom.ID(ToggleID), memdom.Attr("type", "submit"))
	doc := memdom.New(toggle)
	storage := memdom.Storage{StorageKey: "dark"}

	c := Setup(doc, storage)
	require.Equal(t, Dark, c.Current())
	kind, _ := toggle.Attr("type")
	assert.Equal(t, "button", kind)
	assert.Equal(t, "🌙", toggle.Text())

	toggle.Click()
	assert.Equal(t, Light, c.Current())
	assert.Equal(t, "light", storage[StorageKey])

	toggle.Click()
	assert.Equal(t, Dark, c.Current())
	assert.Equal(t, "dark", storage[StorageKey])
}

func TestToggleFollowsDocumentAttribute(t *testing.T) {
	doc := memdom.New()
	storage := memdom.Storage{}
	c := Setup(doc, storage)

	// the attribute wins over storage when they disagree
	doc.Root().SetAttr(Attr, "dark")
	assert.Equal(t, Light, c.Toggle())
	assert.Equal(t, "light", storage[StorageKey])
}
