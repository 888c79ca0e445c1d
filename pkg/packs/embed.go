// Package packs bundles the built-in template packs and keeps a registry so
// callers can plug in their own. A pack is a directory of Django-dialect
// templates providing whole_form.html and whole_formset.html.
package packs

import (
	"embed"
	"io/fs"
)

//go:embed bootstrap/*.html uni_form/*.html
var embeddedPacks embed.FS

// Built-in pack names.
const (
	Bootstrap = "bootstrap"
	UniForm   = "uni_form"
)

// DefaultPack is the pack used when callers do not choose one.
const DefaultPack = Bootstrap

// Templates exposes the embedded pack bundle. Template paths are prefixed
// with the pack name, e.g. "bootstrap/whole_form.html".
func Templates() fs.FS {
	return embeddedPacks
}

func builtinFS(name string) fs.FS {
	sub, err := fs.Sub(embeddedPacks, name)
	if err != nil {
		// The embedded directories are fixed at build time.
		panic(err)
	}
	return sub
}
