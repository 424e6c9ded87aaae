// Package server wires the HTTP surface: routing, request logging and
// lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ldanko/idleheroes/internal/database"
	"github.com/ldanko/idleheroes/internal/engine"
	"github.com/ldanko/idleheroes/internal/handler"
	"github.com/ldanko/idleheroes/internal/hero"
	"github.com/ldanko/idleheroes/internal/logger"
	"github.com/ldanko/idleheroes/internal/metrics"
	"github.com/ldanko/idleheroes/internal/quest"
)

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance with all routes registered.
func NewServer(port int, dbPool database.Pool, heroService hero.Service, questService quest.Service, eng *engine.Engine) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in the order defined.
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/heroes", func(r chi.Router) {
			r.Get("/", handler.HandleListHeroes(heroService))
			r.Post("/", handler.HandleCreateHero(heroService))

			r.Route("/{heroID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetHero(heroService))
				r.Get("/action", handler.HandleGetLastAction(eng))

				r.Post("/items/use", handler.HandleUseItem(heroService))
				r.Post("/items/equip", handler.HandleEquipItem(heroService))

				r.Post("/smite", handler.HandleSmite(heroService))
				r.Post("/speech", handler.HandleDivineSpeech(heroService))
			})
		})

		r.Route("/quests", func(r chi.Router) {
			r.Post("/", handler.HandleCreateQuest(questService))
			r.Post("/{questID}/approve", handler.HandleApproveQuest(questService))
		})

		r.Get("/world/event", handler.HandleGetGlobalEvent(eng))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics endpoints are scraped constantly; keep them
		// out of the logs.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
