package session

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
)

// ErrUnknownSession is returned for events addressed to a session that does
// not exist (never opened, swept or closed).
var ErrUnknownSession = errors.New("unknown session")

// checkOrigin mirrors the HTTP CORS policy: any origin when allowAll is set,
// otherwise the page's own host or localhost. Requests without an Origin
// header are not from a browser and are accepted.
func checkOrigin(allowAll bool) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false
		}
		if u.Host == r.Host {
			return true
		}
		host := u.Hostname()
		if host == "localhost" {
			return true
		}
		ip := net.ParseIP(host)
		return ip != nil && ip.IsLoopback()
	}
}

// errorMessage is sent when an event cannot be applied.
type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ServeWS attaches a websocket to the session named by the "session" query
// parameter. The session is closed when the socket goes away.
func (m *Manager) ServeWS(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	s, ok := m.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, ErrUnknownSession.Error())
		return
	}

	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("session: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	defer m.Close(id)

	s.setAttached(true, m.opts.Now())
	if m.opts.Verbose {
		log.Printf("session: %s attached at %s", id, s.State().Route)
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("session: websocket read: %v", err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			m.sendError(conn, "invalid message format")
			continue
		}

		update, err := s.Handle(ev, m.opts.Now())
		if err != nil {
			m.sendError(conn, err.Error())
			continue
		}
		if m.opts.Verbose {
			log.Printf("session: %s %s -> %s", id, ev.Type, update.Route)
		}
		if err := conn.WriteJSON(update); err != nil {
			log.Printf("session: websocket write: %v", err)
			return
		}
	}
}

func (m *Manager) sendError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(errorMessage{Type: "error", Message: message}); err != nil {
		log.Printf("session: websocket write error: %v", err)
	}
}

// writeError answers a plain HTTP request with a JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("session: encoding error response: %v", err)
	}
}
