package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/piratemap/internal/presentation/chart"
	"github.com/aretw0/piratemap/internal/sanitize"
	"github.com/aretw0/piratemap/pkg/adapters/file"
	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/aretw0/piratemap/pkg/navigation"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine is the decoding core served over HTTP.
type Engine interface {
	ComposeMaps(m1, m2 domain.TreasureMap) (*chart.Chart, error)
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithGatherer exposes the given registry on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithMaxInputSize caps each map body, in bytes.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.MaxInputSize = n
	}
}

// Server holds the handlers of the decode API.
type Server struct {
	Engine       Engine
	Logger       *slog.Logger
	Gatherer     prometheus.Gatherer
	MaxInputSize int
}

// DecodeRequest is the body of POST /decode.
type DecodeRequest struct {
	Map1 string `json:"map1"`
	Map2 string `json:"map2"`
}

// DecodeResponse is the reply of POST /decode.
//
// Treasure is the row and column of the 'x' in Map. Offset is the first
// map's minimum cell, so Treasure plus Offset is the treasure in the first
// map's own coordinates.
type DecodeResponse struct {
	Map      string            `json:"map"`
	Treasure domain.Coordinate `json:"treasure"`
	Offset   domain.Coordinate `json:"offset"`
}

// TraceRequest is the body of POST /trace.
type TraceRequest struct {
	Map string `json:"map"`
}

// TraceResponse is the reply of POST /trace.
type TraceResponse struct {
	Legs   []domain.Waypoint `json:"legs"`
	Path   domain.Path       `json:"path"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
}

// ErrorResponse is written for every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine: engine,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/decode", s.Decode)
	r.Post("/trace", s.Trace)
	r.Get("/healthz", s.Health)
	if s.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
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

// Decode handles the POST /decode request.
func (s *Server) Decode(w http.ResponseWriter, r *http.Request) {
	var body DecodeRequest
	if !s.readJSON(w, r, &body) {
		return
	}

	m1, err := s.parseMap(body.Map1)
	if err != nil {
		s.fail(w, "Decode", fmt.Errorf("map1: %w", err))
		return
	}
	m2, err := s.parseMap(body.Map2)
	if err != nil {
		s.fail(w, "Decode", fmt.Errorf("map2: %w", err))
		return
	}

	ch, err := s.Engine.ComposeMaps(m1, m2)
	if err != nil {
		s.fail(w, "Decode", err)
		return
	}

	s.writeJSON(w, http.StatusOK, DecodeResponse{
		Map:      ch.String(),
		Treasure: ch.Treasure,
		Offset:   ch.Offset,
	})
}

// Trace handles the POST /trace request.
func (s *Server) Trace(w http.ResponseWriter, r *http.Request) {
	var body TraceRequest
	if !s.readJSON(w, r, &body) {
		return
	}

	m, err := s.parseMap(body.Map)
	if err != nil {
		s.fail(w, "Trace", err)
		return
	}

	path := navigation.TraceMap(m)
	width, height := navigation.BoundingBox(path)
	s.writeJSON(w, http.StatusOK, TraceResponse{Legs: m.Waypoints, Path: path, Width: width, Height: height})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	// Two maps plus JSON framing.
	limit := s.limit()*2 + 1024
	dec := json.NewDecoder(io.LimitReader(r.Body, int64(limit)))
	if err := dec.Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "err", err)
		return false
	}
	return true
}

func (s *Server) parseMap(text string) (domain.TreasureMap, error) {
	clean, err := sanitize.InputWithLimit(text, s.limit())
	if err != nil {
		return domain.TreasureMap{}, err
	}
	return file.ParseString(clean)
}

func (s *Server) limit() int {
	if s.MaxInputSize > 0 {
		return s.MaxInputSize
	}
	return sanitize.MaxInputSize()
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error(op+" failed", "err", err)
	} else {
		s.Logger.Warn(op+" rejected", "err", err, "status", status)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "err", err)
	}
}

// StatusFor maps a decode error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrParse),
		errors.Is(err, domain.ErrInvalidAzimuth),
		errors.Is(err, sanitize.ErrInputTooLarge),
		errors.Is(err, sanitize.ErrInvalidUTF8):
		return http.StatusBadRequest
	case chart.IsRenderError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
