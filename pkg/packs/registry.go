package packs

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
)

// Registry stores template packs by name. The zero value is not usable; New
// returns a registry with the built-in packs registered.
type Registry struct {
	mu    sync.RWMutex
	packs map[string]fs.FS
}

// New creates a registry holding the built-in bootstrap and uni_form packs.
func New() *Registry {
	reg := &Registry{packs: make(map[string]fs.FS)}
	reg.packs[Bootstrap] = builtinFS(Bootstrap)
	reg.packs[UniForm] = builtinFS(UniForm)
	return reg
}

// Register adds a pack backed by the provided filesystem. The filesystem root
// must contain whole_form.html and whole_formset.html. Duplicate names return
// an error.
func (r *Registry) Register(name string, files fs.FS) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("packs: pack name is required")
	}
	if files == nil {
		return fmt.Errorf("packs: pack %q: filesystem is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.packs[name]; exists {
		return fmt.Errorf("packs: pack %q already registered", name)
	}
	r.packs[name] = files
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, files fs.FS) {
	if err := r.Register(name, files); err != nil {
		panic(err)
	}
}

// Has reports whether a pack is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.packs[name]
	return ok
}

// List returns the registered pack names sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.packs))
	for name := range r.packs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FS returns a filesystem view of the registry where every pack's templates
// appear under its name, matching the "{pack}/whole_form.html" lookup
// convention used by the render node.
func (r *Registry) FS() fs.FS {
	return registryFS{reg: r}
}

type registryFS struct {
	reg *Registry
}

func (f registryFS) Open(name string) (fs.File, error) {
	pack, rest, ok := strings.Cut(name, "/")
	if !ok || rest == "" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	f.reg.mu.RLock()
	files, registered := f.reg.packs[pack]
	f.reg.mu.RUnlock()

	if !registered {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return files.Open(rest)
}
