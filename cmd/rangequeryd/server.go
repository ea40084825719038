package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ihorborys/rangecache/pkg/rangesum"
	"github.com/ihorborys/rangecache/pkg/ratelimit"
)

// queryServer serializes all access to the service; the array-and-cache pair
// has no internal synchronization for the read-then-invalidate sequence.
type queryServer struct {
	mu     sync.Mutex
	svc    *rangesum.Service
	logger *slog.Logger
}

func newQueryServer(svc *rangesum.Service, logger *slog.Logger) *queryServer {
	return &queryServer{svc: svc, logger: logger}
}

func (s *queryServer) routes(limiter ratelimit.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(ratelimit.Middleware(limiter, ratelimit.ByClientIP))
		r.Get("/sum", s.handleSum)
		r.Post("/update", s.handleUpdate)
		r.Get("/stats", s.handleStats)
	})

	return r
}

func (s *queryServer) handleSum(w http.ResponseWriter, r *http.Request) {
	left, err := intQuery(r, "left")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	right, err := intQuery(r, "right")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	sum, err := s.svc.Sum(left, right)
	s.mu.Unlock()
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"left":  left,
		"right": right,
		"sum":   sum,
	})
}

func (s *queryServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int   `json:"index"`
		Value int64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	err := s.svc.Update(req.Index, req.Value)
	s.mu.Unlock()
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"index": req.Index,
		"value": req.Value,
	})
}

func (s *queryServer) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	hits, misses := s.svc.CacheStats()
	cached := s.svc.CacheLen()
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]any{
		"cache_hits":    hits,
		"cache_misses":  misses,
		"cached_ranges": cached,
	})
}

func (s *queryServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", ww.Header().Get("X-Request-ID"),
		)
	})
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("missing query parameter " + name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("query parameter " + name + " must be an integer")
	}
	return v, nil
}

func statusFor(err error) int {
	if errors.Is(err, rangesum.ErrIndexOutOfRange) || errors.Is(err, rangesum.ErrInvalidRange) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
