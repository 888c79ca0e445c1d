// Package forms defines the form and formset value types consumed by the
// render pipeline. A Form is a flat list of named fields plus the transient
// output slot the layout dispatcher writes into; a Formset is an ordered
// collection of Forms rendered together in insertion order.
package forms

import "strings"

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// Field models an individual input inside a form. Widget-level rendering is
// delegated to template packs, so the struct carries presentation metadata
// rather than markup.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Help        string            `json:"help,omitempty"`
	Value       any               `json:"value,omitempty"`
	Enum        []any             `json:"enum,omitempty"`
	Errors      []string          `json:"errors,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// InputType maps the field kind onto the HTML input type the fallback
// (layout-less) pack markup uses.
func (f Field) InputType() string {
	switch f.Type {
	case FieldTypeBoolean:
		return "checkbox"
	case FieldTypeInteger, FieldTypeNumber:
		return "number"
	default:
		switch f.Format {
		case "email":
			return "email"
		case "password":
			return "password"
		case "uri", "url":
			return "url"
		case "date":
			return "date"
		case "date-time":
			return "datetime-local"
		default:
			return "text"
		}
	}
}

// Form is a single collection of named fields. Helper usually holds a
// *helper.Helper; it is kept loosely typed because helpers arrive from caller
// context and the renderer validates the value before use. FormHTML is written
// by the layout dispatcher during a render pass and read back by the
// surrounding pack template; it carries no meaning across render calls.
type Form struct {
	Fields []Field `json:"fields"`

	// Helper is the form's attached rendering configuration, used when the
	// caller does not pass one explicitly.
	Helper any `json:"-"`

	// Errors holds form-level (non-field) validation messages.
	Errors []string `json:"errors,omitempty"`

	// FormHTML receives the layout output for this form during rendering.
	FormHTML string `json:"-"`
}

// AttachedHelper returns the helper configured on the form, if any.
func (f *Form) AttachedHelper() any {
	if f == nil {
		return nil
	}
	return f.Helper
}

// Field returns the named field and whether it exists. Lookup is
// case-sensitive on the field name.
func (f *Form) Field(name string) (*Field, bool) {
	if f == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	for idx := range f.Fields {
		if f.Fields[idx].Name == name {
			return &f.Fields[idx], true
		}
	}
	return nil, false
}

func (f *Form) formLike() {}

// Formset is an ordered, fixed-size collection of Forms rendered together.
// Insertion order is render order.
type Formset struct {
	Forms []*Form `json:"forms"`

	// Helper mirrors Form.Helper for the formset as a whole.
	Helper any `json:"-"`

	// Errors holds formset-level validation messages.
	Errors []string `json:"errors,omitempty"`
}

// AttachedHelper returns the helper configured on the formset, if any.
func (fs *Formset) AttachedHelper() any {
	if fs == nil {
		return nil
	}
	return fs.Helper
}

// Len reports the number of member forms.
func (fs *Formset) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.Forms)
}

func (fs *Formset) formLike() {}

// FormLike is implemented by *Form and *Formset only; the renderer decides
// between the form and formset templates by type.
type FormLike interface {
	AttachedHelper() any
	formLike()
}

var (
	_ FormLike = (*Form)(nil)
	_ FormLike = (*Formset)(nil)
)
