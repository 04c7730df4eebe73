package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/notegest/internal/compose"
	"github.com/dgallion1/notegest/internal/config"
	"github.com/dgallion1/notegest/internal/content"
	"github.com/dgallion1/notegest/internal/metrics"
)

// Server is the HTTP API server for notegest.
type Server struct {
	router chi.Router
	stats  *metrics.Recorder
	log    *slog.Logger
	cfg    config.Config
	now    func() time.Time
}

// NewServer creates and configures the HTTP server.
func NewServer(stats *metrics.Recorder, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		stats: stats,
		log:   log,
		cfg:   cfg,
		now:   time.Now,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Route("/api/content", func(r chi.Router) {
			r.Post("/text", s.handleText)
			r.Post("/summary", s.handleSummary)
			r.Post("/markdown", s.handleMarkdown)
			r.Post("/html", s.handleHTML)
			r.Post("/batch", s.handleBatch)
		})

		r.Route("/api/compose", func(r chi.Router) {
			r.Post("/update", s.handleComposeUpdate)
			r.Post("/append", s.handleComposeAppend)
			r.Post("/note", s.handleComposeNote)
			r.Post("/table", s.handleComposeTable)
			r.Post("/title", s.handleComposeTitle)
			r.Post("/replace", s.handleComposeReplace)
			r.Post("/page", s.handleComposePage)
			r.Post("/listing", s.handleComposeListing)
		})

		r.Post("/api/import", s.handleImport)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// encoder returns an encoder using the configured options unless the
// request overrides them.
func (s *Server) encoder(orderedLists, sanitize *bool) *content.Encoder {
	return content.NewEncoder(content.EncoderOptions{
		OrderedLists:  boolOr(orderedLists, s.cfg.OrderedLists),
		SanitizeLinks: boolOr(sanitize, s.cfg.SanitizeLinks),
	})
}

func (s *Server) composer() *compose.Composer {
	return compose.New(s.cfg.FooterLabel, s.encoder(nil, nil))
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
