// Package route maps normalized paths to page components.
package route

import (
	"fmt"
	"io"
	"sort"

	"github.com/ziadkadry99/fpdocs/internal/nav"
)

// Component is an opaque renderable page.
type Component interface {
	// ID names the logical page, shared by both editions (e.g. "Pipe").
	ID() string
	Locale() nav.Locale
	Title() string
	Render(w io.Writer) error
}

// Entry is one row of the page table.
type Entry struct {
	Path      string
	Component Component
}

// Registry is an immutable exact-match page table with a home fallback.
type Registry struct {
	home   Component
	pages  map[string]Component
	routes []string
}

// NewRegistry builds a registry. Paths must be unique and already
// normalized; home is the fallback for every unknown path.
func NewRegistry(home Component, entries []Entry) (*Registry, error) {
	if home == nil {
		return nil, fmt.Errorf("route: home component is required")
	}
	r := &Registry{
		home:  home,
		pages: make(map[string]Component, len(entries)),
	}
	for _, e := range entries {
		if e.Component == nil {
			return nil, fmt.Errorf("route: nil component for %q", e.Path)
		}
		if nav.Normalize(e.Path) != e.Path {
			return nil, fmt.Errorf("route: path %q is not normalized", e.Path)
		}
		if _, dup := r.pages[e.Path]; dup {
			return nil, fmt.Errorf("route: duplicate path %q", e.Path)
		}
		r.pages[e.Path] = e.Component
		r.routes = append(r.routes, e.Path)
	}
	sort.Strings(r.routes)
	return r, nil
}

// Resolve returns the component registered for path, or the home component
// when there is none. It never returns nil.
func (r *Registry) Resolve(path string) Component {
	c, _ := r.Lookup(path)
	return c
}

// Lookup is Resolve that also reports whether path was registered.
func (r *Registry) Lookup(path string) (Component, bool) {
	if c, ok := r.pages[nav.Normalize(path)]; ok {
		return c, true
	}
	return r.home, false
}

// Home returns the fallback component.
func (r *Registry) Home() Component { return r.home }

// Routes returns every registered path in sorted order.
func (r *Registry) Routes() []string {
	out := make([]string, len(r.routes))
	copy(out, r.routes)
	return out
}

// Len returns the number of registered paths.
func (r *Registry) Len() int { return len(r.routes) }
