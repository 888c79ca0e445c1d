// Package testsupport provides shared fixtures for package tests: small
// forms, formsets and helpers with predictable content.
package testsupport

import (
	"fmt"

	"github.com/goliatone/go-crispy/pkg/forms"
	"github.com/goliatone/go-crispy/pkg/helper"
)

// SampleForm returns a two-field form with no attached helper.
func SampleForm() *forms.Form {
	return &forms.Form{
		Fields: []forms.Field{
			{
				Name:     "title",
				Type:     forms.FieldTypeString,
				Label:    "Title",
				Required: true,
				Help:     "Shown on the listing page.",
			},
			{
				Name:  "published",
				Type:  forms.FieldTypeBoolean,
				Label: "Published",
			},
		},
	}
}

// SampleFormset returns a formset holding n copies of the sample form, each
// with a distinct title value.
func SampleFormset(n int) *forms.Formset {
	fs := &forms.Formset{Forms: make([]*forms.Form, 0, n)}
	for i := 0; i < n; i++ {
		form := SampleForm()
		form.Fields[0].Value = fmt.Sprintf("Entry %d", i+1)
		fs.Forms = append(fs.Forms, form)
	}
	return fs
}

// SampleHelper returns a helper with attributes, one submit input and an
// extra pass-through key.
func SampleHelper() *helper.Helper {
	h := helper.New()
	h.Attrs = map[string]string{
		"action": "/articles",
		"class":  "article-form",
		"id":     "create-article",
	}
	h.Inputs = []helper.Input{helper.Submit("save", "Save")}
	h.Extra = map[string]any{"wrapper_class": "row"}
	return h
}
