package helper

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store indexes helper definitions loaded from configuration files by name.
type Store struct {
	helpers map[string]*Helper
}

// Get returns a copy-safe pointer to the named helper definition.
func (s *Store) Get(name string) (*Helper, bool) {
	if s == nil {
		return nil, false
	}
	h, ok := s.helpers[name]
	return h, ok
}

// Names returns the defined helper names in no particular order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.helpers))
	for name := range s.helpers {
		names = append(names, name)
	}
	return names
}

// Empty reports whether the store holds any helper definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.helpers) == 0
}

// LoadFS walks the provided filesystem and parses JSON/YAML helper definition
// files. Layouts cannot be declared in configuration; callers attach them in
// code after lookup. When fsys is nil or holds no definition files, the
// returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{helpers: make(map[string]*Helper)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("helper: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Helpers {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("helper: file %s defines an empty helper name", path)
			}
			if _, exists := store.helpers[id]; exists {
				return fmt.Errorf("helper: duplicate helper %q (file %s)", id, path)
			}
			store.helpers[id] = raw.build()
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Helpers map[string]helperFile `json:"helpers" yaml:"helpers"`
}

// helperFile mirrors the on-disk shape. Boolean flags use pointers so an
// absent key falls back to the documented default instead of Go's zero value.
type helperFile struct {
	FormMethod        string            `json:"form_method" yaml:"form_method"`
	FormTag           *bool             `json:"form_tag" yaml:"form_tag"`
	FormStyle         string            `json:"form_style" yaml:"form_style"`
	FormErrorTitle    string            `json:"form_error_title" yaml:"form_error_title"`
	FormsetErrorTitle string            `json:"formset_error_title" yaml:"formset_error_title"`
	FormShowErrors    *bool             `json:"form_show_errors" yaml:"form_show_errors"`
	HelpTextInline    *bool             `json:"help_text_inline" yaml:"help_text_inline"`
	HTML5Required     *bool             `json:"html5_required" yaml:"html5_required"`
	Attrs             map[string]string `json:"attrs" yaml:"attrs"`
	Inputs            []Input           `json:"inputs" yaml:"inputs"`
	Extra             map[string]any    `json:"extra" yaml:"extra"`
}

func (raw helperFile) build() *Helper {
	h := New()
	if method := strings.TrimSpace(raw.FormMethod); method != "" {
		h.FormMethod = method
	}
	if raw.FormTag != nil {
		h.FormTag = *raw.FormTag
	}
	h.FormStyle = strings.TrimSpace(raw.FormStyle)
	h.FormErrorTitle = raw.FormErrorTitle
	h.FormsetErrorTitle = raw.FormsetErrorTitle
	if raw.FormShowErrors != nil {
		h.FormShowErrors = *raw.FormShowErrors
	}
	if raw.HelpTextInline != nil {
		h.HelpTextInline = *raw.HelpTextInline
	}
	if raw.HTML5Required != nil {
		h.HTML5Required = *raw.HTML5Required
	}
	if len(raw.Attrs) > 0 {
		h.Attrs = make(map[string]string, len(raw.Attrs))
		for key, value := range raw.Attrs {
			h.Attrs[strings.TrimSpace(key)] = value
		}
	}
	if len(raw.Inputs) > 0 {
		h.Inputs = append([]Input(nil), raw.Inputs...)
	}
	if len(raw.Extra) > 0 {
		h.Extra = make(map[string]any, len(raw.Extra))
		for key, value := range raw.Extra {
			h.Extra[strings.TrimSpace(key)] = value
		}
	}
	return h
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("helper: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("helper: parse %s: invalid JSON or YAML", source)
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
