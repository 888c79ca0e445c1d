// Package layout provides small building blocks that satisfy the
// helper.Layout contract. Packs remain responsible for field-level widget
// markup; these types cover the common cases of injecting template-driven
// fragments and composing several layouts into one.
package layout

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-crispy/pkg/forms"
	"github.com/goliatone/go-crispy/pkg/helper"
)

// HTML renders a pongo2 template string against the render context. The
// context already carries the current form (and forloop metadata inside
// formsets), so fragments can reference loop position:
//
//	layout.HTML{Template: `<legend>Item {{ forloop.counter }}</legend>`}
//
// When Sanitize is set the rendered fragment is passed through the fragment
// policy before being returned, for templates interpolating untrusted values.
type HTML struct {
	Template string
	Sanitize bool

	once     sync.Once
	compiled *pongo2.Template
	compErr  error
}

// Render implements helper.Layout.
func (h *HTML) Render(form *forms.Form, context map[string]any) (string, error) {
	h.once.Do(func() {
		h.compiled, h.compErr = pongo2.FromString(h.Template)
	})
	if h.compErr != nil {
		return "", fmt.Errorf("layout: parse html fragment: %w", h.compErr)
	}

	data := make(pongo2.Context, len(context)+1)
	for key, value := range context {
		data[key] = value
	}
	if _, ok := data["form"]; !ok {
		data["form"] = form
	}

	out, err := h.compiled.Execute(data)
	if err != nil {
		return "", fmt.Errorf("layout: render html fragment: %w", err)
	}
	if h.Sanitize {
		out = sanitizeFragment(out)
	}
	return out, nil
}

// Func adapts a plain function to the helper.Layout contract.
type Func func(form *forms.Form, context map[string]any) (string, error)

// Render implements helper.Layout.
func (fn Func) Render(form *forms.Form, context map[string]any) (string, error) {
	if fn == nil {
		return "", nil
	}
	return fn(form, context)
}

// Group concatenates the output of several layouts in order.
type Group []helper.Layout

// Render implements helper.Layout.
func (g Group) Render(form *forms.Form, context map[string]any) (string, error) {
	var sb strings.Builder
	for idx, member := range g {
		if member == nil {
			continue
		}
		fragment, err := member.Render(form, context)
		if err != nil {
			return "", fmt.Errorf("layout: group member %d: %w", idx, err)
		}
		sb.WriteString(fragment)
	}
	return sb.String(), nil
}

var (
	_ helper.Layout = (*HTML)(nil)
	_ helper.Layout = Func(nil)
	_ helper.Layout = Group(nil)
)
