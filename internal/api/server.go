// Package api exposes the built verb definitions over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oriolrp/verbdefs/internal/config"
	"github.com/oriolrp/verbdefs/internal/definitions"
)

// Server is the HTTP query server for verb definitions.
type Server struct {
	router chi.Router
	store  *definitions.Store
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store *definitions.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: store,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/usage", s.handleUsage)

	r.Get("/verb/{word}", s.handleVerb)
	r.Get("/index/{letter}", s.handleIndex)
	r.Get("/autocomplete/{prefix}", s.handleAutocomplete)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
