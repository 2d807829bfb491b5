package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/espalier/pkg/registry"
)

// Server exposes the solver registry over HTTP.
type Server struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// SolveResponse is the body returned by the solve endpoint.
type SolveResponse struct {
	Solver string `json:"solver"`
	Result any    `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the registry.
//
// Routes:
//
//	GET  /healthz            liveness probe
//	GET  /metrics            Prometheus metrics
//	GET  /solvers            registered solver names
//	POST /solve/{solver}     run a solver; body is its JSON args object
func NewHandler(reg *registry.Registry, logger *slog.Logger) http.Handler {
	s := &Server{registry: reg, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/solvers", s.handleList)
	r.Post("/solve/{solver}", s.handleSolve)

	return enableCORS(r)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Names())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "solver")

	// An empty body means "no args".
	args := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	result, err := s.registry.Solve(r.Context(), name, args)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, registry.ErrNotFound) {
			status = http.StatusNotFound
		}
		s.logger.Debug("solve request failed", "solver", name, "err", err)
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Debug("solve request served", "solver", name)
	writeJSON(w, http.StatusOK, SolveResponse{Solver: name, Result: result})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
