package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryWebApps        Category = "web_apps"
	CategoryProjects       Category = "projects"
	CategoryPythonPackages Category = "python_packages"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryWebApps,
	CategoryProjects,
	CategoryPythonPackages,
}

var labelCaser = cases.Title(language.English)

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWebApps, CategoryProjects, CategoryPythonPackages:
		return true
	}
	return false
}

// ContainerID is the DOM id of the list that renders this category.
func (c Category) ContainerID() string {
	switch c {
	case CategoryWebApps:
		return "web-apps"
	case CategoryPythonPackages:
		return "python-packages"
	}
	return string(c)
}

func (c Category) Label() string {
	return labelCaser.String(strings.ReplaceAll(string(c), "_", " "))
}

// ItemID is assigned by the store. Supabase tables usually use bigint identity
// columns, the SQL backend uses uuids, so both JSON numbers and strings decode.
type ItemID string

func (id *ItemID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("item id: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

func (id ItemID) String() string {
	return string(id)
}

// Int reports the id as an integer when the store uses numeric ids.
func (id ItemID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return n, err == nil
}

type Item struct {
	ID              ItemID    `db:"id" json:"id"`
	Type            Category  `db:"type" json:"type"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	DescriptionHTML string    `db:"description_html" json:"description_html"`
	URL             *string   `db:"url" json:"url"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

func (i *Item) HasURL() bool {
	return i.URL != nil && *i.URL != ""
}

func (i *Item) Link() string {
	if i.URL == nil {
		return ""
	}
	return *i.URL
}

// Partition splits items by category, preserving their order within each category.
func Partition(items []Item) map[Category][]Item {
	out := make(map[Category][]Item, len(Categories))
	for _, c := range Categories {
		out[c] = []Item{}
	}
	for _, item := range items {
		if _, ok := out[item.Type]; ok {
			out[item.Type] = append(out[item.Type], item)
		}
	}
	return out
}

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// ItemForm is the state of one authoring form. ID is empty while creating.
type ItemForm struct {
	ID     ItemID
	Type   Category
	Title  string
	URL    string
	Body   string
	Format string
}

func (f ItemForm) Editing() bool {
	return f.ID != ""
}

// EmptyForm returns a cleared form for the category.
func EmptyForm(c Category) ItemForm {
	return ItemForm{Type: c, Format: FormatHTML}
}

// FormFromItem populates an authoring form from a stored item.
func FormFromItem(item Item) ItemForm {
	body := item.DescriptionHTML
	if body == "" {
		body = item.Description
	}
	return ItemForm{
		ID:     item.ID,
		Type:   item.Type,
		Title:  item.Title,
		URL:    item.Link(),
		Body:   body,
		Format: FormatHTML,
	}
}
