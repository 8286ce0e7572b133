// Package session gives every browser tab its own navigation store with a
// mounted layout and sidebar, driven over a websocket.
package session

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ziadkadry99/fpdocs/internal/layout"
	"github.com/ziadkadry99/fpdocs/internal/metrics"
	"github.com/ziadkadry99/fpdocs/internal/nav"
	"github.com/ziadkadry99/fpdocs/internal/route"
	"github.com/ziadkadry99/fpdocs/internal/sidebar"
)

// Event types sent by the browser.
const (
	EventNavigate      = "navigate"
	EventToggleSidebar = "toggle_sidebar"
	EventCloseSidebar  = "close_sidebar"
	EventPopState      = "popstate"
)

// Event is a browser gesture.
type Event struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// Update carries the re-rendered regions back to the browser. Push is set
// when the browser must add a history entry.
type Update struct {
	Type        string `json:"type"`
	Route       string `json:"route"`
	Title       string `json:"title"`
	Lang        string `json:"lang"`
	SidebarOpen bool   `json:"sidebar_open"`
	Main        string `json:"main"`
	Sidebar     string `json:"sidebar"`
	SwitchHref  string `json:"switch_href"`
	SwitchLabel string `json:"switch_label"`
	Push        string `json:"push,omitempty"`
}

// browserHistory mirrors the tab's location. Pushes are queued until the
// next update tells the browser about them.
type browserHistory struct {
	location string
	pending  string
}

func (h *browserHistory) Location() string { return h.location }

func (h *browserHistory) Push(path string) {
	h.location = path
	h.pending = path
}

func (h *browserHistory) take() string {
	p := h.pending
	h.pending = ""
	return p
}

// Session is one tab's navigation state. Its methods are safe for
// concurrent use; events are applied one at a time.
type Session struct {
	ID string

	mu       sync.Mutex
	store    *nav.Store
	history  *browserHistory
	layout   *layout.Controller
	sidebar  *sidebar.Controller
	recorder metrics.Recorder
	lastSeen time.Time
	attached bool
	closed   bool
}

// fallbackResolver counts lookups that miss the registry.
type fallbackResolver struct {
	registry *route.Registry
	recorder metrics.Recorder
}

func (r fallbackResolver) Resolve(path string) route.Component {
	c, ok := r.registry.Lookup(path)
	if !ok {
		r.recorder.IncFallback()
	}
	return c
}

func newSession(id, location string, registry *route.Registry, table sidebar.Table, siteName string, recorder metrics.Recorder, now time.Time) *Session {
	h := &browserHistory{location: nav.Normalize(location)}
	store := nav.NewStore(h)
	sb := sidebar.New(store, table)
	lc := layout.New(store, fallbackResolver{registry: registry, recorder: recorder}, sb, layout.Options{
		SiteName:  siteName,
		SessionID: id,
	})
	return &Session{
		ID:       id,
		store:    store,
		history:  h,
		layout:   lc,
		sidebar:  sb,
		recorder: recorder,
		lastSeen: now,
	}
}

// State returns the current navigation state.
func (s *Session) State() nav.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.State()
}

// Page returns the page the layout currently shows.
func (s *Session) Page() route.Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.Page()
}

// Render writes the full shell for the current state.
func (s *Session) Render(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.Render(w)
}

// Handle applies a browser event and returns the resulting update.
func (s *Session) Handle(ev Event, now time.Time) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Update{}, fmt.Errorf("session %s is closed", s.ID)
	}
	s.lastSeen = now

	switch ev.Type {
	case EventNavigate:
		s.sidebar.Activate(ev.Path)
		s.recorder.IncNavigation(string(s.store.State().Locale()))
	case EventToggleSidebar:
		s.sidebar.Toggle()
	case EventCloseSidebar:
		s.sidebar.CloseOverlay()
	case EventPopState:
		s.history.location = nav.Normalize(ev.Path)
		s.store.Restore(ev.Path)
	default:
		return Update{}, fmt.Errorf("unknown event type %q", ev.Type)
	}
	return s.snapshot()
}

// Snapshot renders the current state without applying an event.
func (s *Session) Snapshot() (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() (Update, error) {
	var main, side bytes.Buffer
	if err := s.layout.RenderMain(&main); err != nil {
		return Update{}, err
	}
	if err := s.layout.RenderSidebar(&side); err != nil {
		return Update{}, err
	}
	st := s.store.State()
	href, label := s.layout.LocaleSwitch()
	return Update{
		Type:        "update",
		Route:       st.Route,
		Title:       s.layout.Title(),
		Lang:        st.Locale().Tag().String(),
		SidebarOpen: st.SidebarOpen,
		Main:        main.String(),
		Sidebar:     side.String(),
		SwitchHref:  href,
		SwitchLabel: label,
		Push:        s.history.take(),
	}, nil
}

// idleSince is zero while a socket is attached.
func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		return 0
	}
	return now.Sub(s.lastSeen)
}

func (s *Session) isAttached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

func (s *Session) seenAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) setAttached(attached bool, now time.Time) {
	s.mu.Lock()
	s.attached = attached
	s.lastSeen = now
	s.mu.Unlock()
}

// close releases the controllers' subscriptions.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.layout.Close()
	s.sidebar.Close()
}
