// Package editor swaps each admin form's description textarea for a
// contenteditable surface with a formatting toolbar. The textarea remains the
// submitted field: the surface's markup is copied into it on submit, and it
// is what the form shows when the client never runs.
package editor

import (
	"strings"

	"github.com/templui/folio/internal/web/dom"
)

const (
	FormSelector    = "form.admin-form"
	Selector        = ".rich-editor"
	SurfaceSelector = ".editor-surface"
	ToolSelector    = "button[data-command]"

	bodySelector   = "textarea[name=body]"
	formatSelector = "select[name=format]"

	// richFormat is the format option whose body is HTML.
	richFormat = "html"
)

// Tool is one toolbar button. Command and Value are passed to the
// document's editing command.
type Tool struct {
	Command string
	Value   string
	Label   string
	Title   string
	// Prompt, when set, asks for the value each time the tool is used.
	Prompt string
}

var Tools = []Tool{
	{Command: "bold", Label: "B", Title: "Bold"},
	{Command: "italic", Label: "I", Title: "Italic"},
	{Command: "underline", Label: "U", Title: "Underline"},
	{Command: "formatBlock", Value: "<h3>", Label: "H", Title: "Heading"},
	{Command: "formatBlock", Value: "<p>", Label: "¶", Title: "Paragraph"},
	{Command: "formatBlock", Value: "<blockquote>", Label: "❝", Title: "Quote"},
	{Command: "insertUnorderedList", Label: "•", Title: "Bulleted list"},
	{Command: "insertOrderedList", Label: "1.", Title: "Numbered list"},
	{Command: "createLink", Label: "Link", Title: "Link", Prompt: "Link URL"},
	{Command: "removeFormat", Label: "✕", Title: "Clear formatting"},
}

// Prompter asks for a line of text; ok is false when the user dismisses it.
type Prompter func(message string) (answer string, ok bool)

// Setup binds every admin form that carries an editor and returns how many
// it bound.
func Setup(doc dom.Document, prompt Prompter) int {
	n := 0
	for _, form := range doc.QueryAll(FormSelector) {
		if bind(doc, form, prompt) {
			n++
		}
	}
	return n
}

type binding struct {
	doc     dom.Document
	prompt  Prompter
	body    dom.Element
	format  dom.Element
	root    dom.Element
	surface dom.Element
	active  bool
}

func first(el dom.Element, selector string) dom.Element {
	if all := el.QueryAll(selector); len(all) > 0 {
		return all[0]
	}
	return nil
}

func bind(doc dom.Document, form dom.Element, prompt Prompter) bool {
	b := &binding{
		doc:    doc,
		prompt: prompt,
		body:   first(form, bodySelector),
		format: first(form, formatSelector),
		root:   first(form, Selector),
	}
	if b.body == nil || b.root == nil {
		return false
	}
	if b.surface = first(b.root, SurfaceSelector); b.surface == nil {
		return false
	}

	b.sync()
	if b.format != nil {
		b.format.On("change", func(dom.Event) { b.sync() })
	}
	for _, tool := range b.root.QueryAll(ToolSelector) {
		// keep the selection in the surface
		tool.On("mousedown", func(e dom.Event) { e.PreventDefault() })
		tool.On("click", func(dom.Event) { b.run(tool) })
	}
	form.On("submit", func(dom.Event) { b.flush() })
	return true
}

// sync shows the surface while the form's format is rich text and the
// textarea otherwise, carrying the body across each switch.
func (b *binding) sync() {
	rich := b.format == nil || b.format.Value() == richFormat
	if rich == b.active {
		return
	}
	if rich {
		b.surface.SetHTML(b.body.Value())
		b.root.RemoveAttr("hidden")
		b.body.SetAttr("hidden", "")
	} else {
		b.flush()
		b.root.SetAttr("hidden", "")
		b.body.RemoveAttr("hidden")
	}
	b.active = rich
}

func (b *binding) flush() {
	if b.active {
		b.body.SetValue(b.surface.HTML())
	}
}

func (b *binding) run(tool dom.Element) {
	if !b.active {
		return
	}
	command, _ := tool.Attr("data-command")
	value, _ := tool.Attr("data-value")
	if message, ok := tool.Attr("data-prompt"); ok {
		if b.prompt == nil {
			return
		}
		answer, ok := b.prompt(message)
		answer = strings.TrimSpace(answer)
		if !ok || answer == "" {
			return
		}
		value = answer
	}
	b.doc.Exec(command, value)
}
