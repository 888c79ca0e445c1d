// Package helper holds the rendering configuration attached to forms and
// formsets: HTML attributes, behaviour flags, declared submit inputs, and an
// optional declarative layout. Helpers are read-only during rendering; the
// renderer never mutates one.
package helper

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-crispy/pkg/forms"
)

// Layout is the declarative render contract consumed by the dispatcher. The
// context is the flat variable mapping built for the current render pass,
// already extended with the form (and forloop metadata inside formsets).
type Layout interface {
	Render(form *forms.Form, context map[string]any) (string, error)
}

// Input declares a form control rendered in the actions area of a pack
// template, typically a submit button.
type Input struct {
	Type  string            `json:"type" yaml:"type"`
	Name  string            `json:"name" yaml:"name"`
	Value string            `json:"value" yaml:"value"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Submit declares an <input type="submit">.
func Submit(name, value string) Input {
	return Input{Type: "submit", Name: name, Value: value}
}

// Reset declares an <input type="reset">.
func Reset(name, value string) Input {
	return Input{Type: "reset", Name: name, Value: value}
}

// Button declares an <input type="button">.
func Button(name, value string) Input {
	return Input{Type: "button", Name: name, Value: value}
}

// Hidden declares an <input type="hidden">.
func Hidden(name, value string) Input {
	return Input{Type: "hidden", Name: name, Value: value}
}

// Helper is an explicit, typed configuration bag. The zero value carries Go
// zero defaults, which differ from the documented rendering defaults; use New
// to start from the canonical ones (method "post", form tag on, errors shown).
type Helper struct {
	// FormMethod is the HTTP method emitted on the <form> tag.
	FormMethod string

	// FormTag controls whether the pack template wraps output in <form>.
	FormTag bool

	// FormStyle selects an optional pack-specific style variant.
	FormStyle string

	// FormErrorTitle and FormsetErrorTitle caption the error summary blocks.
	FormErrorTitle    string
	FormsetErrorTitle string

	// FormShowErrors toggles error rendering entirely.
	FormShowErrors bool

	// HelpTextInline renders field help text inline instead of as a block.
	HelpTextInline bool

	// HTML5Required emits the HTML5 required attribute on required fields.
	HTML5Required bool

	// Inputs lists the declared action controls (submit buttons etc.).
	Inputs []Input

	// Attrs holds HTML attributes for the form tag. The action, class and id
	// keys surface as dedicated context variables; everything else is folded
	// into flat_attrs.
	Attrs map[string]string

	// Layout, when present, takes over per-form field arrangement.
	Layout Layout

	// Extra passes custom keys through to the render context. Extra values
	// never overwrite the computed context variables.
	Extra map[string]any
}

// New returns a Helper carrying the documented defaults.
func New() *Helper {
	return &Helper{
		FormMethod:     "post",
		FormTag:        true,
		FormShowErrors: true,
	}
}

// Attr returns a single attribute value, empty when unset.
func (h *Helper) Attr(name string) string {
	if h == nil || h.Attrs == nil {
		return ""
	}
	return h.Attrs[name]
}

// Action returns the form action attribute.
func (h *Helper) Action() string { return h.Attr("action") }

// Class returns the form class attribute.
func (h *Helper) Class() string { return h.Attr("class") }

// ID returns the form id attribute.
func (h *Helper) ID() string { return h.Attr("id") }

// Method normalises FormMethod against the "post" default.
func (h *Helper) Method() string {
	if h == nil {
		return "post"
	}
	method := strings.TrimSpace(strings.ToLower(h.FormMethod))
	if method == "" {
		return "post"
	}
	return method
}

// FlatAttrs renders the escaped attribute string appended verbatim to the
// form tag. Attributes with dedicated context variables (action, class, id)
// are excluded. Keys are sorted so output is deterministic.
func (h *Helper) FlatAttrs() string {
	if h == nil || len(h.Attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(h.Attrs))
	for key := range h.Attrs {
		switch key {
		case "action", "class", "id":
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(" ")
		sb.WriteString(html.EscapeString(key))
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(h.Attrs[key]))
		sb.WriteString(`"`)
	}
	return sb.String()
}
