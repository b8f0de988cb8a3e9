// Package api provides the HTTP server for Momentum. It exposes the task
// lifecycle, suggestions, day closing, and the stats surfaces as a small
// JSON REST API for local clients.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/momentum-hq/momentum/internal/app/tracker"
	"github.com/momentum-hq/momentum/internal/health"
)

// Server is the Momentum HTTP API server.
type Server struct {
	tracker        *tracker.Tracker
	checker        *health.Checker
	metricsEnabled bool
}

// NewServer creates a new API server over the tracker.
func NewServer(tr *tracker.Tracker) *Server {
	return &Server{tracker: tr}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealthChecker wires the daemon's health checker into /health.
func (s *Server) SetHealthChecker(c *health.Checker) { s.checker = c }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if s.checker == nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		status, code := "ok", http.StatusOK
		if !s.checker.IsHealthy() {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]interface{}{
			"status": status,
			"checks": s.checker.Statuses(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{
				"version": "0.1.0",
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleAddTask)
			r.Get("/{id}", s.handleGetTask)
			r.Post("/{id}/start", s.handleStartTask)
			r.Post("/{id}/complete", s.handleCompleteTask)
			r.Post("/{id}/skip", s.handleSkipTask)
			r.Post("/{id}/defer", s.handleDeferTask)
		})

		r.Post("/suggestions", s.handleSuggestions)

		r.Route("/day", func(r chi.Router) {
			r.Post("/close", s.handleCloseDay)
			r.Get("/log", s.handleDayLog)
		})

		r.Get("/stats", s.handleStats)
		r.Get("/streak", s.handleStreak)
		r.Get("/streak/analysis", s.handleStreakAnalysis)
		r.Get("/recovery", s.handleRecovery)

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", s.handleAchievements)
			r.Post("/{id}/celebrated", s.handleAchievementCelebrated)
		})
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
