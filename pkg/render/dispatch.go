package render

import (
	"fmt"

	"github.com/goliatone/go-crispy/pkg/forms"
	"github.com/goliatone/go-crispy/pkg/helper"
)

// ForLoopKey is the context key under which layouts observe the loop cursor
// snapshot while a formset renders.
const ForLoopKey = "forloop"

// ApplyLayout runs the helper's layout against each form, capturing the
// produced markup on Form.FormHTML. Without a helper or a layout this is a
// no-op and FormHTML stays untouched, which pack templates treat as "render
// fields without layout".
//
// Inside a formset, each iteration sees a fresh clone of the context carrying
// the cursor snapshot taken before that iteration's advance; the cursor
// itself stays private to this loop.
func ApplyLayout(formOrFormset forms.FormLike, h *helper.Helper, ctx Context) error {
	if h == nil || h.Layout == nil {
		return nil
	}

	switch v := formOrFormset.(type) {
	case *forms.Form:
		local := ctx.Clone()
		local["form"] = v
		html, err := h.Layout.Render(v, local)
		if err != nil {
			return fmt.Errorf("render: apply layout: %w", err)
		}
		v.FormHTML = html

	case *forms.Formset:
		loop := NewForLoop(len(v.Forms))
		for idx, form := range v.Forms {
			local := ctx.Clone()
			local[ForLoopKey] = loop.Snapshot()
			html, err := h.Layout.Render(form, local)
			if err != nil {
				return fmt.Errorf("render: apply layout to form %d: %w", idx, err)
			}
			form.FormHTML = html
			loop.Advance()
		}
	}

	return nil
}
