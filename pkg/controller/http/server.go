package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/tandem-lab/tandem/pkg/usecase"
)

// Server represents the HTTP presentation surface
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing the analysis API
func NewServer(ctx context.Context, addr string, analyzer *usecase.Analyzer, defaultDelimiter rune, defaultView types.ResultView) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := &reportHandler{
		analyzer:  analyzer,
		delimiter: defaultDelimiter,
		view:      defaultView,
	}

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Post("/reports", handler.handleCreateReport)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// Router returns the underlying router, used by tests
func (s *Server) Router() chi.Router {
	return s.router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
