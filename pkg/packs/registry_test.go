package packs

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestNew_RegistersBuiltins(t *testing.T) {
	reg := New()

	for _, name := range []string{Bootstrap, UniForm} {
		if !reg.Has(name) {
			t.Fatalf("expected built-in pack %q registered", name)
		}
	}
	got := reg.List()
	want := []string{Bootstrap, UniForm}
	if len(got) != len(want) {
		t.Fatalf("unexpected pack list: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected pack list order: %v", got)
		}
	}
}

func TestRegister_Validation(t *testing.T) {
	reg := New()
	files := fstest.MapFS{"whole_form.html": &fstest.MapFile{Data: []byte("x")}}

	if err := reg.Register("", files); err == nil {
		t.Fatalf("expected error for empty pack name")
	}
	if err := reg.Register("custom", nil); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}
	if err := reg.Register("custom", files); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("custom", files); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(Bootstrap, files); err == nil {
		t.Fatalf("expected error when shadowing a built-in pack")
	}
}

func TestRegistryFS_RoutesByPackName(t *testing.T) {
	reg := New()
	reg.MustRegister("custom", fstest.MapFS{
		"whole_form.html": &fstest.MapFile{Data: []byte("custom form")},
	})

	view := reg.FS()

	file, err := view.Open("custom/whole_form.html")
	if err != nil {
		t.Fatalf("open custom template: %v", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("read custom template: %v", err)
	}
	if string(content) != "custom form" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestRegistryFS_BuiltinTemplatesReadable(t *testing.T) {
	view := New().FS()

	for _, path := range []string{
		"bootstrap/whole_form.html",
		"bootstrap/whole_formset.html",
		"uni_form/whole_form.html",
		"uni_form/whole_formset.html",
	} {
		file, err := view.Open(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !strings.Contains(string(content), "form") {
			t.Fatalf("%s: unexpected content", path)
		}
	}
}

func TestRegistryFS_MissingEntries(t *testing.T) {
	view := New().FS()

	for _, path := range []string{
		"nope/whole_form.html",
		"bootstrap",
		"bootstrap/",
	} {
		_, err := view.Open(path)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("open %s: expected fs.ErrNotExist, got %v", path, err)
		}
	}
}

func TestTemplates_ExposesEmbeddedBundle(t *testing.T) {
	content, err := fs.ReadFile(Templates(), "bootstrap/whole_form.html")
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if !strings.Contains(string(content), "csrf_token") {
		t.Fatalf("embedded template missing expected markup")
	}
}
