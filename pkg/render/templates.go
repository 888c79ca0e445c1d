package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-crispy/pkg/packs"
	"github.com/goliatone/go-crispy/pkg/render/template"
)

// Top-level template file names inside a pack.
const (
	WholeFormTemplate    = "whole_form.html"
	WholeFormsetTemplate = "whole_formset.html"
)

// TemplateSet selects between the form and formset top-level templates of a
// pack. With reload unset, repeated selections return the loader's cached
// handle; with reload set every selection performs a fresh lookup, trading
// lookup cost for hot-reload during development.
type TemplateSet struct {
	loader      template.Loader
	formName    string
	formsetName string
	reload      bool
}

// NewTemplateSet builds a selector over the named pack. An empty pack name
// falls back to the default pack.
func NewTemplateSet(loader template.Loader, pack string, reload bool) *TemplateSet {
	if pack == "" {
		pack = packs.DefaultPack
	}
	return &TemplateSet{
		loader:      loader,
		formName:    pack + "/" + WholeFormTemplate,
		formsetName: pack + "/" + WholeFormsetTemplate,
		reload:      reload,
	}
}

// Select returns the handle for the form or formset template.
func (ts *TemplateSet) Select(isFormset bool) (template.Handle, error) {
	if isFormset {
		return ts.load(ts.formsetName)
	}
	return ts.load(ts.formName)
}

func (ts *TemplateSet) load(name string) (template.Handle, error) {
	if ts == nil || ts.loader == nil {
		return nil, errors.New("render: template loader is nil")
	}
	handle, err := ts.loader.Load(name, ts.reload)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", name, errors.Join(ErrMissingTemplate, err))
	}
	return handle, nil
}
