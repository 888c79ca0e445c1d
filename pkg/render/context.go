package render

import (
	"fmt"

	"github.com/goliatone/go-crispy/pkg/forms"
	"github.com/goliatone/go-crispy/pkg/helper"
)

// CSRFTokenKey is the ambient context key whose value, when present, is
// copied into the render context unchanged so pack templates can emit the
// hidden token input.
const CSRFTokenKey = "csrf_token"

// Context is the flat variable mapping a pack template renders against. It is
// owned by a single render pass and discarded afterwards.
type Context map[string]any

// Clone returns a shallow copy. The dispatcher clones before injecting
// per-iteration variables so concurrent renders and sibling iterations never
// observe each other's entries.
func (c Context) Clone() Context {
	out := make(Context, len(c)+2)
	for key, value := range c {
		out[key] = value
	}
	return out
}

// BuildContext resolves a form/formset and a helper into the response
// mapping. A nil helperArg falls back to the form's attached helper, then to
// a fresh default helper. The ambient mapping is read-only; only the CSRF
// token key is consulted.
//
// Key naming follows the form_/formset_ prefix convention, so a template only
// ever sees the variables for the kind of object it renders, plus the
// kind-agnostic flags. Helper extras merge through last and never overwrite
// computed variables.
func BuildContext(formOrFormset forms.FormLike, helperArg any, ambient map[string]any) (Context, error) {
	h, err := resolveHelper(formOrFormset, helperArg)
	if err != nil {
		return nil, err
	}
	return buildContext(formOrFormset, h, ambient), nil
}

// resolveHelper applies the helper fallback chain: explicit argument, the
// form's attached helper, then an empty default. Anything else fails with
// ErrInvalidHelper.
func resolveHelper(formOrFormset forms.FormLike, explicit any) (*helper.Helper, error) {
	candidate := explicit
	if candidate == nil && formOrFormset != nil {
		candidate = formOrFormset.AttachedHelper()
	}
	if candidate == nil {
		return helper.New(), nil
	}

	h, ok := candidate.(*helper.Helper)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", ErrInvalidHelper, candidate)
	}
	if h == nil {
		return helper.New(), nil
	}
	return h, nil
}

func buildContext(formOrFormset forms.FormLike, h *helper.Helper, ambient map[string]any) Context {
	_, isFormset := formOrFormset.(*forms.Formset)
	prefix := "form"
	if isFormset {
		prefix = "formset"
	}

	inputs := make([]helper.Input, len(h.Inputs))
	copy(inputs, h.Inputs)

	// Templates receive the attribute mapping when one is declared; the empty
	// string otherwise, matching the documented default.
	var attrs any = ""
	if len(h.Attrs) > 0 {
		copied := make(map[string]string, len(h.Attrs))
		for key, value := range h.Attrs {
			copied[key] = value
		}
		attrs = copied
	}

	ctx := Context{
		prefix + "_action":    h.Action(),
		prefix + "_method":    h.Method(),
		prefix + "_tag":       h.FormTag,
		prefix + "_class":     h.Class(),
		prefix + "_id":        h.ID(),
		prefix + "_style":     h.FormStyle,
		"form_error_title":    h.FormErrorTitle,
		"formset_error_title": h.FormsetErrorTitle,
		"form_show_errors":    h.FormShowErrors,
		"help_text_inline":    h.HelpTextInline,
		"html5_required":      h.HTML5Required,
		"inputs":              inputs,
		"is_formset":          isFormset,
		prefix + "_attrs":     attrs,
		"flat_attrs":          h.FlatAttrs(),
	}

	for key, value := range h.Extra {
		if _, exists := ctx[key]; exists {
			continue
		}
		ctx[key] = value
	}

	if token, ok := ambient[CSRFTokenKey]; ok {
		ctx[CSRFTokenKey] = token
	}

	return ctx
}
