package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/fpdocs/internal/metrics"
	"github.com/ziadkadry99/fpdocs/internal/route"
	"github.com/ziadkadry99/fpdocs/internal/session"
	"github.com/ziadkadry99/fpdocs/internal/sidebar"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server is the documentation site server.
type Server struct {
	cfg        Config
	registry   *route.Registry
	table      sidebar.Table
	sessions   *session.Manager
	prom       *metrics.PrometheusRecorder
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. prom may be nil to disable /metrics.
func New(cfg Config, registry *route.Registry, table sidebar.Table, sessions *session.Manager, prom *metrics.PrometheusRecorder) *Server {
	s := &Server{
		cfg:      cfg,
		registry: registry,
		table:    table,
		sessions: sessions,
		prom:     prom,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The socket outlives any request timeout.
	r.Get("/ws", s.sessions.ServeWS)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		if s.prom != nil {
			r.Method(http.MethodGet, "/metrics", s.prom.Handler())
		}

		r.Get("/static/style.css", s.handleStylesheet)
		r.Get("/static/app.js", s.handleScript)

		r.Get("/api/routes", s.handleRoutes)
		r.Get("/api/resolve", s.handleResolve)
		r.Get("/api/nav", s.handleNav)

		// Every other path is a page; unknown ones render the home page.
		r.Get("/*", s.handlePage)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Sessions returns the session manager.
func (s *Server) Sessions() *session.Manager { return s.sessions }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("fpdocs server listening on %s (%d pages)", addr, s.registry.Len())
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
