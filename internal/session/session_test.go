package session

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/fpdocs/internal/nav"
	"github.com/ziadkadry99/fpdocs/internal/pages"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func setupManager(t *testing.T) (*Manager, *fakeClock) {
	t.Helper()
	registry, err := pages.NewRegistry("")
	if err != nil {
		t.Fatalf("pages.NewRegistry: %v", err)
	}
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewManager(registry, pages.Sections(), Options{SiteName: "fp", Now: clock.Now})
	return m, clock
}

func TestOpenRendersInitialLocation(t *testing.T) {
	m, _ := setupManager(t)
	s := m.Open("/ko/composition/pipe/")

	if got := s.State(); got.Route != "/ko/composition/pipe" || got.SidebarOpen {
		t.Errorf("initial state = %+v", got)
	}
	if p := s.Page(); p.ID() != "Pipe" || p.Locale() != nav.Korean {
		t.Errorf("page = %s/%s", p.ID(), p.Locale())
	}

	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), `data-session="`+s.ID+`"`) {
		t.Error("shell does not carry the session id")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d", m.Len())
	}
}

func TestNavigateEvent(t *testing.T) {
	m, _ := setupManager(t)
	s := m.Open("/")

	if _, err := m.Handle(s.ID, Event{Type: EventToggleSidebar}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	u, err := m.Handle(s.ID, Event{Type: EventNavigate, Path: "/array/chunk/"})
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}

	if u.Type != "update" || u.Route != "/array/chunk" {
		t.Errorf("update = %+v", u)
	}
	if u.Push != "/array/chunk" {
		t.Errorf("push = %q, want /array/chunk", u.Push)
	}
	if u.SidebarOpen {
		t.Error("navigation should close the drawer")
	}
	if !strings.Contains(u.Main, "chunk") || !strings.Contains(u.Sidebar, `class="active"`) {
		t.Error("regions not re-rendered for the new page")
	}
	if u.Lang != "en" || u.SwitchHref != "/ko/array/chunk" {
		t.Errorf("lang=%q switch=%q", u.Lang, u.SwitchHref)
	}

	// The same route again notifies but adds no history entry.
	u, err = m.Handle(s.ID, Event{Type: EventNavigate, Path: "/array/chunk"})
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if u.Push != "" {
		t.Errorf("repeat navigation pushed %q", u.Push)
	}
}

func TestPopStateEvent(t *testing.T) {
	m, _ := setupManager(t)
	s := m.Open("/")
	if _, err := m.Handle(s.ID, Event{Type: EventNavigate, Path: "/ko/control/when"}); err != nil {
		t.Fatalf("navigate: %v", err)
	}

	u, err := m.Handle(s.ID, Event{Type: EventPopState, Path: "/"})
	if err != nil {
		t.Fatalf("popstate: %v", err)
	}
	if u.Route != "/" || u.Push != "" {
		t.Errorf("popstate update = route %q push %q", u.Route, u.Push)
	}
	if u.Lang != "en" {
		t.Errorf("lang = %q", u.Lang)
	}
}

func TestOverlayClose(t *testing.T) {
	m, _ := setupManager(t)
	s := m.Open("/array/map")
	m.Handle(s.ID, Event{Type: EventToggleSidebar})

	u, err := m.Handle(s.ID, Event{Type: EventCloseSidebar})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if u.SidebarOpen || u.Route != "/array/map" || u.Push != "" {
		t.Errorf("update = %+v", u)
	}
}

func TestHandleErrors(t *testing.T) {
	m, _ := setupManager(t)
	if _, err := m.Handle("nope", Event{Type: EventNavigate}); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("err = %v, want ErrUnknownSession", err)
	}

	s := m.Open("/")
	if _, err := m.Handle(s.ID, Event{Type: "dance"}); err == nil {
		t.Error("expected error for unknown event type")
	}

	m.Close(s.ID)
	if _, err := s.Handle(Event{Type: EventNavigate, Path: "/"}, time.Now()); err == nil {
		t.Error("expected error on closed session")
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d after close", m.Len())
	}
}

func TestSweep(t *testing.T) {
	m, clock := setupManager(t)
	idle := m.Open("/")
	clock.t = clock.t.Add(20 * time.Minute)
	busy := m.Open("/")

	if n := m.Sweep(10 * time.Minute); n != 1 {
		t.Fatalf("Sweep = %d, want 1", n)
	}
	if _, ok := m.Get(idle.ID); ok {
		t.Error("idle session survived")
	}
	if _, ok := m.Get(busy.ID); !ok {
		t.Error("fresh session was swept")
	}
}

func TestSweepSkipsAttachedSessions(t *testing.T) {
	m, clock := setupManager(t)
	s := m.Open("/")
	s.setAttached(true, clock.t)
	clock.t = clock.t.Add(time.Hour)

	if n := m.Sweep(10 * time.Minute); n != 0 {
		t.Errorf("Sweep = %d, want 0 while attached", n)
	}

	s.setAttached(false, clock.t)
	clock.t = clock.t.Add(time.Hour)
	if n := m.Sweep(10 * time.Minute); n != 1 {
		t.Errorf("Sweep = %d, want 1 after detach", n)
	}
}

func TestSweeperLifecycle(t *testing.T) {
	m, _ := setupManager(t)
	s, err := NewSweeper(m, time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("NewSweeper: %v", err)
	}
	s.Start()
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestServeWS(t *testing.T) {
	m, _ := setupManager(t)
	s := m.Open("/")

	srv := httptest.NewServer(http.HandlerFunc(m.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?session=" + s.ID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(Event{Type: EventNavigate, Path: "/composition/pipe"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var u Update
	if err := conn.ReadJSON(&u); err != nil {
		t.Fatalf("read: %v", err)
	}
	if u.Route != "/composition/pipe" || u.Push != "/composition/pipe" {
		t.Errorf("update = route %q push %q", u.Route, u.Push)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	var e errorMessage
	if err := conn.ReadJSON(&e); err != nil {
		t.Fatalf("read: %v", err)
	}
	if e.Type != "error" {
		t.Errorf("expected error message, got %+v", e)
	}
}

func TestServeWSUnknownSession(t *testing.T) {
	m, _ := setupManager(t)
	w := httptest.NewRecorder()
	m.ServeWS(w, httptest.NewRequest("GET", "/ws?session=missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(w.Body.String(), `"error":"unknown session"`) {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestOpenCapsPendingSessions(t *testing.T) {
	registry, err := pages.NewRegistry("")
	if err != nil {
		t.Fatalf("pages.NewRegistry: %v", err)
	}
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewManager(registry, pages.Sections(), Options{MaxPending: 2, Now: clock.Now})

	attached := m.Open("/")
	attached.setAttached(true, clock.t)

	var opened []*Session
	for i := 0; i < 4; i++ {
		clock.t = clock.t.Add(time.Second)
		opened = append(opened, m.Open("/array/map"))
	}

	if m.Len() != 3 {
		t.Fatalf("Len = %d, want 2 pending plus 1 attached", m.Len())
	}
	if _, ok := m.Get(attached.ID); !ok {
		t.Error("attached session was evicted")
	}
	for i, s := range opened {
		_, ok := m.Get(s.ID)
		if want := i >= 2; ok != want {
			t.Errorf("session %d present = %v, want %v", i, ok, want)
		}
	}
	if _, err := opened[0].Handle(Event{Type: EventToggleSidebar}, clock.t); err == nil {
		t.Error("evicted session should reject events")
	}
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name     string
		allowAll bool
		host     string
		origin   string
		want     bool
	}{
		{"no origin", false, "docs.example.com", "", true},
		{"same host", false, "docs.example.com", "https://docs.example.com", true},
		{"localhost", false, "docs.example.com", "http://localhost:3000", true},
		{"loopback ip", false, "docs.example.com", "http://127.0.0.1:8080", true},
		{"other site", false, "docs.example.com", "https://evil.example", false},
		{"malformed", false, "docs.example.com", "::", false},
		{"allow all", true, "docs.example.com", "https://evil.example", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/ws", nil)
			r.Host = tt.host
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if got := checkOrigin(tt.allowAll)(r); got != tt.want {
				t.Errorf("checkOrigin = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServeWSRejectsForeignOrigin(t *testing.T) {
	m, _ := setupManager(t)
	s := m.Open("/")

	srv := httptest.NewServer(http.HandlerFunc(m.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?session=" + s.ID
	header := http.Header{"Origin": []string{"https://evil.example"}}
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail for a foreign origin")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %v, want 403", resp)
	}
}
