// Package template defines the engine-agnostic template seam the render node
// relies on, so packs can be served by any engine and tests can substitute
// fakes for the pongo2 adapter.
package template

// Handle is a loaded template artifact ready to render.
type Handle interface {
	Render(data map[string]any) (string, error)
}

// Loader resolves template names into handles. When reload is true the loader
// must perform a fresh lookup instead of returning a cached handle; loaders
// without a cache may ignore the flag.
type Loader interface {
	Load(name string, reload bool) (Handle, error)
}
