// Package pongo adapts a pongo2 template set to the template.Loader seam.
// pongo2 speaks the Django template dialect the bundled packs are written in.
package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-crispy/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	globalData map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS, typically an embedded pack bundle.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithGlobalData seeds values available to every template rendered by this
// engine.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine satisfies template.Loader using a pongo2 template set with a
// per-path handle cache. Loads with reload set refresh the cached entry so
// edited templates show up without a restart.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*handle
}

var _ template.Loader = (*Engine)(nil)

// New constructs an Engine from the provided options. At least one template
// source (base dir or fs.FS) is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("pongo: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	engine := &Engine{
		set:   pongo2.NewSet("crispy", loaders...),
		cache: make(map[string]*handle),
	}

	if len(cfg.globalData) > 0 {
		if engine.set.Globals == nil {
			engine.set.Globals = make(pongo2.Context)
		}
		for key, value := range cfg.globalData {
			engine.set.Globals[key] = value
		}
	}

	return engine, nil
}

// Load resolves a template path into a handle. Cached handles are returned
// as-is unless reload is set, in which case the template is re-read and the
// cache entry replaced.
func (e *Engine) Load(name string, reload bool) (template.Handle, error) {
	if e == nil || e.set == nil {
		return nil, errors.New("pongo: engine is nil")
	}

	if !reload {
		e.mu.RLock()
		if cached, ok := e.cache[name]; ok {
			e.mu.RUnlock()
			return cached, nil
		}
		e.mu.RUnlock()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !reload {
		if cached, ok := e.cache[name]; ok {
			return cached, nil
		}
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", name, err)
	}

	loaded := &handle{name: name, tmpl: tmpl}
	e.cache[name] = loaded
	return loaded, nil
}

// RenderString parses and renders an inline template, bypassing the cache.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}

	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template string: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("pongo: execute template string: %w", err)
	}
	return buf.String(), nil
}

type handle struct {
	name string
	tmpl *pongo2.Template
}

func (h *handle) Render(data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("pongo: execute template %q: %w", h.name, err)
	}
	return buf.String(), nil
}
