package forms

import "testing"

func TestField_InputType(t *testing.T) {
	cases := []struct {
		field Field
		want  string
	}{
		{field: Field{Type: FieldTypeBoolean}, want: "checkbox"},
		{field: Field{Type: FieldTypeInteger}, want: "number"},
		{field: Field{Type: FieldTypeNumber}, want: "number"},
		{field: Field{Type: FieldTypeString}, want: "text"},
		{field: Field{Type: FieldTypeString, Format: "email"}, want: "email"},
		{field: Field{Type: FieldTypeString, Format: "password"}, want: "password"},
		{field: Field{Type: FieldTypeString, Format: "uri"}, want: "url"},
		{field: Field{Type: FieldTypeString, Format: "url"}, want: "url"},
		{field: Field{Type: FieldTypeString, Format: "date"}, want: "date"},
		{field: Field{Type: FieldTypeString, Format: "date-time"}, want: "datetime-local"},
		{field: Field{Type: FieldTypeArray}, want: "text"},
		{field: Field{}, want: "text"},
	}

	for _, tc := range cases {
		if got := tc.field.InputType(); got != tc.want {
			t.Fatalf("InputType(%s/%s) = %q, want %q", tc.field.Type, tc.field.Format, got, tc.want)
		}
	}
}

func TestForm_FieldLookup(t *testing.T) {
	form := &Form{Fields: []Field{
		{Name: "title"},
		{Name: "body"},
	}}

	field, ok := form.Field("body")
	if !ok || field.Name != "body" {
		t.Fatalf("lookup failed: %v %v", field, ok)
	}

	// The returned pointer aliases the slice entry.
	field.Label = "Body"
	if form.Fields[1].Label != "Body" {
		t.Fatalf("expected lookup to return an aliasing pointer")
	}

	if _, ok := form.Field("missing"); ok {
		t.Fatalf("unexpected hit for missing field")
	}
	if _, ok := form.Field(" title "); !ok {
		t.Fatalf("lookup should trim surrounding whitespace")
	}

	var nilForm *Form
	if _, ok := nilForm.Field("title"); ok {
		t.Fatalf("nil form lookup should miss")
	}
}

func TestAttachedHelper(t *testing.T) {
	form := &Form{Helper: "anything"}
	if form.AttachedHelper() != "anything" {
		t.Fatalf("form helper not returned")
	}

	fs := &Formset{Helper: 7}
	if fs.AttachedHelper() != 7 {
		t.Fatalf("formset helper not returned")
	}

	var nilForm *Form
	var nilFormset *Formset
	if nilForm.AttachedHelper() != nil || nilFormset.AttachedHelper() != nil {
		t.Fatalf("nil receivers should report no helper")
	}
}

func TestFormset_Len(t *testing.T) {
	fs := &Formset{Forms: []*Form{{}, {}, {}}}
	if fs.Len() != 3 {
		t.Fatalf("expected 3 forms, got %d", fs.Len())
	}

	var nilFormset *Formset
	if nilFormset.Len() != 0 {
		t.Fatalf("nil formset should be empty")
	}
}
