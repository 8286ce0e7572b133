// Package layout owns the persistent page shell and keeps the page shown in
// its main region in sync with the navigation store.
package layout

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/fpdocs/internal/nav"
	"github.com/ziadkadry99/fpdocs/internal/route"
	"github.com/ziadkadry99/fpdocs/internal/sidebar"
)

// Resolver maps a route to a page. It must be total.
type Resolver interface {
	Resolve(path string) route.Component
}

// Options customize the shell.
type Options struct {
	SiteName  string
	SessionID string
}

// Controller is the mounted shell.
type Controller struct {
	store    *nav.Store
	resolver Resolver
	sidebar  *sidebar.Controller
	opts     Options

	state       nav.State
	page        route.Component
	transitions int
	release     func()
}

// New mounts a shell on store: it subscribes and resolves the initial page.
func New(store *nav.Store, resolver Resolver, sb *sidebar.Controller, opts Options) *Controller {
	if opts.SiteName == "" {
		opts.SiteName = "fp"
	}
	c := &Controller{store: store, resolver: resolver, sidebar: sb, opts: opts}
	c.state, c.release = store.Watch(c.update)
	c.page = resolver.Resolve(c.state.Route)
	return c
}

func (c *Controller) update(s nav.State) {
	c.state = s
	c.page = c.resolver.Resolve(s.Route)
	c.transitions++
}

// Close releases the store subscription.
func (c *Controller) Close() { c.release() }

// Page returns the page currently shown in the main region.
func (c *Controller) Page() route.Component { return c.page }

// State returns the state the shell was last rendered for.
func (c *Controller) State() nav.State { return c.state }

// Transitions counts store notifications received since mount.
func (c *Controller) Transitions() int { return c.transitions }

// Title returns the document title for the current page.
func (c *Controller) Title() string {
	return c.page.Title() + " - " + c.opts.SiteName
}

// LocaleSwitch returns the link to the current page in the other edition.
func (c *Controller) LocaleSwitch() (href, label string) {
	href = nav.Counterpart(c.state.Route)
	if nav.IsKorean(c.state.Route) {
		return href, "English"
	}
	return href, "한국어"
}

// Render writes the full shell: header, sidebar and main region.
func (c *Controller) Render(w io.Writer) error {
	data, err := c.data()
	if err != nil {
		return err
	}
	return shellTemplate.ExecuteTemplate(w, "shell", data)
}

// RenderMain writes only the main region.
func (c *Controller) RenderMain(w io.Writer) error {
	data, err := c.data()
	if err != nil {
		return err
	}
	return shellTemplate.ExecuteTemplate(w, "main", data)
}

// RenderSidebar writes only the sidebar region.
func (c *Controller) RenderSidebar(w io.Writer) error {
	data, err := c.data()
	if err != nil {
		return err
	}
	return shellTemplate.ExecuteTemplate(w, "sidebar", data)
}

// shellData is the template model of the shell.
type shellData struct {
	Lang        string
	Title       string
	SiteName    string
	SessionID   string
	Route       string
	SidebarOpen bool
	Sections    []sidebar.RenderedSection
	Content     template.HTML
	SwitchHref  string
	SwitchLabel string
	HomeHref    string
}

func (c *Controller) data() (shellData, error) {
	var buf bytes.Buffer
	if err := c.page.Render(&buf); err != nil {
		return shellData{}, fmt.Errorf("rendering %s: %w", c.page.ID(), err)
	}

	locale := nav.LocaleOf(c.state.Route)
	d := shellData{
		Lang:        locale.Tag().String(),
		Title:       c.Title(),
		SiteName:    c.opts.SiteName,
		SessionID:   c.opts.SessionID,
		Route:       c.state.Route,
		SidebarOpen: c.state.SidebarOpen,
		Content:     template.HTML(buf.String()),
		HomeHref:    "/",
	}
	d.SwitchHref, d.SwitchLabel = c.LocaleSwitch()
	if locale == nav.Korean {
		d.HomeHref = nav.KoreanPrefix
	}
	if c.sidebar != nil {
		d.Sections = c.sidebar.Sections()
	}
	return d, nil
}
