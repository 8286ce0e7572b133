// Package sidebar derives the navigation menu from the navigation state and
// turns link activations into store mutations.
package sidebar

import (
	"github.com/ziadkadry99/fpdocs/internal/nav"
)

// Item is one link in a section.
type Item struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Section is a titled group of links.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Table holds the sections for each locale.
type Table map[nav.Locale][]Section

// RenderedItem is an Item with its active flag for the current route.
type RenderedItem struct {
	Item
	Active bool `json:"active"`
}

// RenderedSection is a Section as shown for the current route.
type RenderedSection struct {
	Title string         `json:"title"`
	Items []RenderedItem `json:"items"`
}

// Controller renders the menu for a store's current state.
type Controller struct {
	store   *nav.Store
	table   Table
	state   nav.State
	release func()
}

// New subscribes a controller to store.
func New(store *nav.Store, table Table) *Controller {
	c := &Controller{store: store, table: table}
	c.state, c.release = store.Watch(func(s nav.State) { c.state = s })
	return c
}

// Close releases the store subscription.
func (c *Controller) Close() { c.release() }

// Route returns the route the menu is rendered for.
func (c *Controller) Route() string { return c.state.Route }

// Korean reports whether the menu shows the Korean edition.
func (c *Controller) Korean() bool { return nav.IsKorean(c.state.Route) }

// Open reports whether the mobile drawer is open.
func (c *Controller) Open() bool { return c.state.SidebarOpen }

// Sections returns the locale-selected sections with active flags.
func (c *Controller) Sections() []RenderedSection {
	return Render(c.table, c.state.Route)
}

// Activate navigates to path and closes the mobile drawer.
func (c *Controller) Activate(path string) {
	c.store.NavigateTo(path)
	c.store.SetSidebarOpen(false)
}

// CloseOverlay closes the drawer without navigating.
func (c *Controller) CloseOverlay() {
	c.store.SetSidebarOpen(false)
}

// Toggle flips the drawer.
func (c *Controller) Toggle() {
	c.store.SetSidebarOpen(!c.state.SidebarOpen)
}

// Render computes the menu of table for route.
func Render(table Table, route string) []RenderedSection {
	sections := table[nav.LocaleOf(route)]
	out := make([]RenderedSection, 0, len(sections))
	for _, s := range sections {
		rs := RenderedSection{Title: s.Title, Items: make([]RenderedItem, 0, len(s.Items))}
		for _, it := range s.Items {
			rs.Items = append(rs.Items, RenderedItem{Item: it, Active: IsActive(route, it.Path)})
		}
		out = append(out, rs)
	}
	return out
}

// IsActive reports whether an item with path is highlighted at route. An
// item is active under either edition of its path.
func IsActive(route, path string) bool {
	return route == path || route == nav.KoreanPrefix+path
}
