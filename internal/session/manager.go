package session

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/fpdocs/internal/metrics"
	"github.com/ziadkadry99/fpdocs/internal/route"
	"github.com/ziadkadry99/fpdocs/internal/sidebar"
)

// DefaultMaxPending bounds sessions that have been opened by a page load but
// have no socket attached yet.
const DefaultMaxPending = 1000

// Options configure a Manager.
type Options struct {
	SiteName string
	Recorder metrics.Recorder
	Verbose  bool
	// MaxPending caps unattached sessions; the oldest are closed first.
	// Zero means DefaultMaxPending.
	MaxPending int
	// AllowAllOrigins accepts websocket handshakes from any origin.
	// Otherwise only same-host and localhost origins are accepted.
	AllowAllOrigins bool
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Manager owns the open sessions.
type Manager struct {
	registry *route.Registry
	table    sidebar.Table
	opts     Options
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a manager serving pages from registry.
func NewManager(registry *route.Registry, table sidebar.Table, opts Options) *Manager {
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MaxPending <= 0 {
		opts.MaxPending = DefaultMaxPending
	}
	return &Manager{
		registry: registry,
		table:    table,
		opts:     opts,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin(opts.AllowAllOrigins)},
		sessions: make(map[string]*Session),
	}
}

// Open starts a session at location, the path the browser loaded.
func (m *Manager) Open(location string) *Session {
	s := newSession(uuid.NewString(), location, m.registry, m.table, m.opts.SiteName, m.opts.Recorder, m.opts.Now())

	m.mu.Lock()
	m.sessions[s.ID] = s
	evicted := m.evictPendingLocked()
	n := len(m.sessions)
	m.mu.Unlock()

	for _, old := range evicted {
		old.close()
	}
	if len(evicted) > 0 && m.opts.Verbose {
		log.Printf("session: closed %d unattached sessions over the limit of %d", len(evicted), m.opts.MaxPending)
	}

	m.opts.Recorder.IncPageView(string(s.State().Locale()))
	m.opts.Recorder.SetActiveSessions(n)
	return s
}

// evictPendingLocked removes the oldest unattached sessions until at most
// MaxPending remain. m.mu must be held.
func (m *Manager) evictPendingLocked() []*Session {
	var pending []*Session
	for _, s := range m.sessions {
		if !s.isAttached() {
			pending = append(pending, s)
		}
	}
	excess := len(pending) - m.opts.MaxPending
	if excess <= 0 {
		return nil
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].seenAt().Before(pending[j].seenAt())
	})
	evicted := pending[:excess]
	for _, s := range evicted {
		delete(m.sessions, s.ID)
	}
	return evicted
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close drops the session with id and releases its subscriptions.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	if ok {
		s.close()
		m.opts.Recorder.SetActiveSessions(n)
	}
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than maxIdle and returns how many
// were closed.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	now := m.opts.Now()

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if s.idleSince(now) > maxIdle {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	for _, s := range stale {
		s.close()
	}
	if len(stale) > 0 {
		m.opts.Recorder.IncSessionsSwept(len(stale))
		m.opts.Recorder.SetActiveSessions(n)
	}
	return len(stale)
}

// Handle applies ev to the session with id.
func (m *Manager) Handle(id string, ev Event) (Update, error) {
	s, ok := m.Get(id)
	if !ok {
		return Update{}, ErrUnknownSession
	}
	return s.Handle(ev, m.opts.Now())
}
