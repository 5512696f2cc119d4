package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/stylecast/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP inspection surface over the resolvers: upload a .docx,
// then query resolved properties and numbering paths.
type Server struct {
	router   chi.Router
	registry *Registry
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(registry *Registry, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		registry: registry,
		log:      log,
		cfg:      cfg,
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
		r.Use(AuthMiddleware(s.cfg.StylecastAPIKey, s.log))

		r.Post("/api/documents", s.handleLoadDocument)
		r.Get("/api/documents", s.handleListDocuments)
		r.Get("/api/documents/{docID}/outline", s.handleOutline)
		r.Delete("/api/documents/{docID}", s.handleDeleteDocument)

		r.Post("/api/documents/{docID}/resolve/run", s.handleResolveRun)
		r.Post("/api/documents/{docID}/resolve/paragraph", s.handleResolveParagraph)
		r.Post("/api/documents/{docID}/resolve/cell", s.handleResolveCell)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
