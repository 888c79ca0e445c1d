package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-crispy/pkg/forms"
	"github.com/goliatone/go-crispy/pkg/helper"
)

func sampleForm() *forms.Form {
	return &forms.Form{
		Fields: []forms.Field{
			{Name: "title", Type: forms.FieldTypeString, Label: "Title", Value: "First post"},
		},
	}
}

func TestHTML_RendersContextVariables(t *testing.T) {
	h := &HTML{Template: `<legend>{{ form_method }}: {{ form.Fields.0.Value }}</legend>`}

	out, err := h.Render(sampleForm(), map[string]any{"form_method": "post"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<legend>post: First post</legend>" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestHTML_InjectsFormWhenAbsent(t *testing.T) {
	h := &HTML{Template: `{{ form.Fields.0.Name }}`}

	out, err := h.Render(sampleForm(), map[string]any{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "title" {
		t.Fatalf("expected form injected under its key, got %q", out)
	}
}

func TestHTML_PrefersContextForm(t *testing.T) {
	other := &forms.Form{Fields: []forms.Field{{Name: "other"}}}
	h := &HTML{Template: `{{ form.Fields.0.Name }}`}

	out, err := h.Render(sampleForm(), map[string]any{"form": other})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "other" {
		t.Fatalf("context form must win, got %q", out)
	}
}

func TestHTML_ForLoopMetadata(t *testing.T) {
	h := &HTML{Template: `Item {{ forloop.counter }}{% if forloop.first %} (first){% endif %}`}

	out, err := h.Render(sampleForm(), map[string]any{
		"forloop": map[string]any{"counter": 2, "first": false},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Item 2" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestHTML_ParseErrorSurfacesOnEveryRender(t *testing.T) {
	h := &HTML{Template: `{% if unclosed %}`}

	for i := 0; i < 2; i++ {
		if _, err := h.Render(sampleForm(), nil); err == nil {
			t.Fatalf("render %d: expected parse error", i)
		}
	}
}

func TestHTML_SanitizeStripsScripts(t *testing.T) {
	h := &HTML{
		Template: `<fieldset class="box"><legend>Safe</legend><script>alert(1)</script><a href="#" onclick="x()">go</a></fieldset>`,
		Sanitize: true,
	}

	out, err := h.Render(sampleForm(), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script") || strings.Contains(out, "onclick") {
		t.Fatalf("unsafe markup survived sanitisation: %q", out)
	}
	if !strings.Contains(out, "<fieldset") || !strings.Contains(out, `class="box"`) || !strings.Contains(out, "<legend>Safe</legend>") {
		t.Fatalf("structural markup stripped: %q", out)
	}
}

func TestFunc_Adapts(t *testing.T) {
	called := false
	fn := Func(func(form *forms.Form, context map[string]any) (string, error) {
		called = true
		return "ok", nil
	})

	out, err := fn.Render(sampleForm(), nil)
	if err != nil || out != "ok" || !called {
		t.Fatalf("unexpected result: %q %v called=%v", out, err, called)
	}

	var nilFn Func
	out, err = nilFn.Render(sampleForm(), nil)
	if err != nil || out != "" {
		t.Fatalf("nil func should render nothing, got %q %v", out, err)
	}
}

func TestGroup_ConcatenatesInOrder(t *testing.T) {
	group := Group{
		Func(func(*forms.Form, map[string]any) (string, error) { return "<a>", nil }),
		nil,
		Func(func(*forms.Form, map[string]any) (string, error) { return "<b>", nil }),
	}

	out, err := group.Render(sampleForm(), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<a><b>" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGroup_StopsOnMemberError(t *testing.T) {
	boom := errors.New("boom")
	group := Group{
		Func(func(*forms.Form, map[string]any) (string, error) { return "first", nil }),
		Func(func(*forms.Form, map[string]any) (string, error) { return "", boom }),
		Func(func(*forms.Form, map[string]any) (string, error) {
			t.Fatalf("member after failure must not run")
			return "", nil
		}),
	}

	_, err := group.Render(sampleForm(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected member error, got %v", err)
	}
}

func TestGroup_SatisfiesLayout(t *testing.T) {
	var l helper.Layout = Group{&HTML{Template: "x"}}
	out, err := l.Render(sampleForm(), nil)
	if err != nil || out != "x" {
		t.Fatalf("unexpected result: %q %v", out, err)
	}
}
