package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-crispy/pkg/forms"
	"github.com/goliatone/go-crispy/pkg/helper"
	"github.com/goliatone/go-crispy/pkg/packs"
	"github.com/goliatone/go-crispy/pkg/render/template"
	"github.com/goliatone/go-crispy/pkg/render/template/pongo"
)

// Theme template keys a go-theme manifest can use to override the pack's
// top-level templates.
const (
	ThemeFormTemplate    = "crispy.form"
	ThemeFormsetTemplate = "crispy.formset"
)

// Option customises the node configuration.
type Option func(*config)

type config struct {
	loader       template.Loader
	templateFS   fs.FS
	registry     *packs.Registry
	pack         string
	reload       bool
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

// WithLoader injects a custom template loader, bypassing the built-in pongo2
// engine entirely.
func WithLoader(loader template.Loader) Option {
	return func(cfg *config) {
		if loader != nil {
			cfg.loader = loader
		}
	}
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. Template
// paths must keep the "{pack}/whole_form.html" shape.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithPackRegistry serves templates from a pack registry instead of the
// embedded bundle, making registered custom packs addressable by name.
func WithPackRegistry(registry *packs.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithPack selects the template pack. Defaults to the bootstrap pack.
func WithPack(name string) Option {
	return func(cfg *config) {
		cfg.pack = name
	}
}

// WithReload forces a fresh template lookup on every render instead of using
// the process-wide cached handles. Meant for development; leave off in
// production.
func WithReload(reload bool) Option {
	return func(cfg *config) {
		cfg.reload = reload
	}
}

// WithThemeSelector resolves the named theme/variant once at construction.
// The selection's manifest may override the top-level templates via the
// crispy.form and crispy.formset template keys, and its tokens surface to
// templates under the theme context variable.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Node is the render entry point: it wires the context builder, the layout
// dispatcher and the template selector together. A Node carries only
// immutable configuration and cached template handles, so a single instance
// is safe for concurrent render calls; all per-call state lives in the pass's
// own Context and ForLoop.
type Node struct {
	templates *TemplateSet
	themeCtx  map[string]any
}

// NewNode constructs a Node from the provided options, defaulting to the
// embedded packs served through the pongo2 engine.
func NewNode(options ...Option) (*Node, error) {
	cfg := &config{pack: packs.DefaultPack}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	loader := cfg.loader
	if loader == nil {
		var engineOpts []pongo.Option
		switch {
		case cfg.templateFS != nil:
			engineOpts = append(engineOpts, pongo.WithFS(cfg.templateFS))
		case cfg.registry != nil:
			engineOpts = append(engineOpts, pongo.WithFS(cfg.registry.FS()))
		default:
			engineOpts = append(engineOpts, pongo.WithFS(packs.Templates()))
		}
		engine, err := pongo.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("render: configure template engine: %w", err)
		}
		loader = engine
	}

	node := &Node{
		templates: NewTemplateSet(loader, cfg.pack, cfg.reload),
	}

	if cfg.selector != nil {
		if err := node.applyTheme(cfg); err != nil {
			return nil, err
		}
	}

	return node, nil
}

// Render produces the final markup for a form or formset: it builds the
// response context, applies the helper's layout when one is declared, injects
// the form/formset under its conventional key, and renders the selected pack
// template. The only side effect is writing each rendered form's FormHTML.
func (n *Node) Render(ctx context.Context, formOrFormset forms.FormLike, h *helper.Helper, ambient map[string]any) (string, error) {
	if ctx == nil {
		return "", errors.New("render: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if formOrFormset == nil {
		return "", errors.New("render: form or formset is required")
	}

	var helperArg any
	if h != nil {
		helperArg = h
	}
	resolved, err := resolveHelper(formOrFormset, helperArg)
	if err != nil {
		return "", err
	}

	response := buildContext(formOrFormset, resolved, ambient)

	if err := ApplyLayout(formOrFormset, resolved, response); err != nil {
		return "", err
	}

	_, isFormset := formOrFormset.(*forms.Formset)
	if isFormset {
		response["formset"] = formOrFormset
	} else {
		response["form"] = formOrFormset
	}

	for key, value := range n.themeCtx {
		if _, exists := response[key]; !exists {
			response[key] = value
		}
	}

	handle, err := n.templates.Select(isFormset)
	if err != nil {
		return "", err
	}

	markup, err := handle.Render(response)
	if err != nil {
		return "", fmt.Errorf("render: render template: %w", err)
	}
	return markup, nil
}

// applyTheme resolves the configured theme once and folds its template
// overrides and tokens into the node.
func (n *Node) applyTheme(cfg *config) error {
	selection, err := cfg.selector.Select(cfg.themeName, cfg.themeVariant)
	if err != nil {
		return fmt.Errorf("render: resolve theme %q: %w", cfg.themeName, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	manifest := selection.Manifest
	templates := map[string]string{}
	tokens := map[string]string{}
	for key, value := range manifest.Templates {
		templates[key] = value
	}
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Templates {
			templates[key] = value
		}
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	if name := templates[ThemeFormTemplate]; name != "" {
		n.templates.formName = name
	}
	if name := templates[ThemeFormsetTemplate]; name != "" {
		n.templates.formsetName = name
	}

	n.themeCtx = map[string]any{
		"theme": map[string]any{
			"name":    selection.Theme,
			"variant": selection.Variant,
			"tokens":  tokens,
		},
	}
	return nil
}
