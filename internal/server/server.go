// SPDX-License-Identifier: MIT

// Package server exposes shortest-path queries over one loaded graph as a
// small read-only JSON API.
//
// Routes:
//
//	GET /healthz                 {"status":"ok"}
//	GET /vertices                {"vertices":[...]}
//	GET /path?from=A&to=E        {"from","to","path","distance"} or 404 {"error":"no path"}
//	GET /distances?source=A      {"source","distances":{...}}; unreachable vertices omitted
//
// The graph must not be mutated while the server runs; handlers only read it,
// so concurrent requests need no locking.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

const (
	shutdownTimeout = 5 * time.Second
	requestTimeout  = 30 * time.Second
)

// Server answers queries against a fixed graph.
type Server struct {
	g      *core.Graph
	logger *log.Logger
	router chi.Router
}

// New builds the router for g. A nil logger disables request logging.
func New(g *core.Graph, logger *log.Logger) *Server {
	s := &Server{g: g, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	if logger != nil {
		r.Use(s.logRequests)
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/vertices", s.handleVertices)
	r.Get("/path", s.handlePath)
	r.Get("/distances", s.handleDistances)
	s.router = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	if s.logger != nil {
		s.logger.Info("listening", "addr", addr, "vertices", s.g.VertexCount(), "edges", s.g.EdgeCount())
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type pathResponse struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Path     []string `json:"path"`
	Distance float64  `json:"distance"`
}

type distancesResponse struct {
	Source    string             `json:"source"`
	Distances map[string]float64 `json:"distances"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVertices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"vertices": s.g.Vertices()})
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	p, ok := dijkstra.ShortestPath(s.g, from, to, dijkstra.WithLogger(s.logger))
	if !ok {
		writeError(w, http.StatusNotFound, "no path")
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{From: from, To: to, Path: p.Vertices, Distance: p.Distance})
}

func (s *Server) handleDistances(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		writeError(w, http.StatusBadRequest, "source is required")
		return
	}

	dist, _, err := dijkstra.Dijkstra(s.g, dijkstra.Source(source), dijkstra.WithLogger(s.logger))
	if errors.Is(err, dijkstra.ErrVertexNotFound) {
		writeError(w, http.StatusNotFound, "unknown source")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// JSON has no infinity.
	reachable := make(map[string]float64, len(dist))
	for v, d := range dist {
		if !math.IsInf(d, 1) {
			reachable[v] = d
		}
	}
	writeJSON(w, http.StatusOK, distancesResponse{Source: source, Distances: reachable})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
