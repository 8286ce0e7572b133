package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/ziadkadry99/fpdocs/internal/layout"
	"github.com/ziadkadry99/fpdocs/internal/nav"
	"github.com/ziadkadry99/fpdocs/internal/sidebar"
)

// assetExts are file types browsers and crawlers request on their own. They
// are never pages, so they get a 404 instead of a session and the home page.
var assetExts = map[string]bool{
	".ico": true, ".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".txt": true, ".xml": true, ".json": true,
	".js": true, ".css": true, ".map": true, ".webmanifest": true,
}

// isAssetPath reports whether p names a static file rather than a page.
func isAssetPath(p string) bool {
	return assetExts[strings.ToLower(path.Ext(p))]
}

// handlePage opens a session at the requested path and renders the shell.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if isAssetPath(r.URL.Path) {
		http.NotFound(w, r)
		return
	}
	sess := s.sessions.Open(r.URL.Path)

	var buf bytes.Buffer
	if err := sess.Render(&buf); err != nil {
		s.sessions.Close(sess.ID)
		log.Printf("server: rendering %s: %v", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", string(sess.State().Locale()))
	w.Write(buf.Bytes())
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(layout.Stylesheet))
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(layout.Script))
}

// routesResponse is the JSON response for /api/routes.
type routesResponse struct {
	Routes []string `json:"routes"`
	Count  int      `json:"count"`
}

// handleRoutes lists registered routes, optionally filtered by ?match= globs
// (comma-separated).
func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	var patterns []string
	if m := r.URL.Query().Get("match"); m != "" {
		patterns = strings.Split(m, ",")
	}
	routes := s.registry.Match(patterns)
	if routes == nil {
		routes = []string{}
	}
	writeJSON(w, routesResponse{Routes: routes, Count: len(routes)})
}

// resolveResponse is the JSON response for /api/resolve.
type resolveResponse struct {
	Route    string `json:"route"`
	ID       string `json:"id"`
	Locale   string `json:"locale"`
	Title    string `json:"title"`
	Fallback bool   `json:"fallback"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	routePath := nav.Normalize(r.URL.Query().Get("path"))
	c, ok := s.registry.Lookup(routePath)
	writeJSON(w, resolveResponse{
		Route:    routePath,
		ID:       c.ID(),
		Locale:   string(c.Locale()),
		Title:    c.Title(),
		Fallback: !ok,
	})
}

// navResponse is the JSON response for /api/nav.
type navResponse struct {
	Route    string                    `json:"route"`
	Locale   string                    `json:"locale"`
	Sections []sidebar.RenderedSection `json:"sections"`
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	routePath := nav.Normalize(r.URL.Query().Get("path"))
	writeJSON(w, navResponse{
		Route:    routePath,
		Locale:   string(nav.LocaleOf(routePath)),
		Sections: sidebar.Render(s.table, routePath),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}
