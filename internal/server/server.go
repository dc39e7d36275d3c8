// Package server exposes primer design over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"qpcr/core/design"
	"qpcr/internal/jsonutil"
	"qpcr/internal/metrics"
	"qpcr/internal/output"
	"qpcr/internal/runutil"
	"qpcr/pkg/api"
)

// MaxBodyBytes caps the size of a design request body.
const MaxBodyBytes = 1 << 20

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// Config configures a Server. Logger and Metrics are required.
type Config struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Workers   int // design.Params.Workers for every request
	CacheSize int // recent results kept; <= 0 disables the cache
}

type cacheKey struct {
	seq string // sanitized and truncated
	p   design.Params
}

// Server handles design requests. It is safe for concurrent use.
type Server struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	workers int
	cache   *runutil.LRU[cacheKey, design.Result]
}

func New(cfg Config) *Server {
	s := &Server{log: cfg.Logger, metrics: cfg.Metrics, workers: cfg.Workers}
	if cfg.CacheSize > 0 {
		s.cache = runutil.NewLRU[cacheKey, design.Result](cfg.CacheSize)
	}
	return s
}

// Router wires all public endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestID)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())
	r.Post("/v1/design", s.handleDesign)
	return r
}

type ctxKey struct{}

// requestID reuses a well-formed incoming X-Request-ID or mints a UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequestID returns the ID assigned by the router, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonutil.WriteResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	reqID := RequestID(ctx)

	var req api.DesignRequestV1
	if err := jsonutil.DecodeStrict(http.MaxBytesReader(w, r.Body, MaxBodyBytes), &req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.reject(w, r, http.StatusRequestEntityTooLarge, "request_too_large", "request body exceeds 1 MiB")
			return
		}
		s.reject(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body: "+err.Error())
		return
	}

	p := ParamsFromRequest(req)
	p.Workers = s.workers
	if err := p.ValidateBounded(); err != nil {
		s.reject(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	res, cached := s.run(req.Sequence, p)
	s.metrics.ObserveResponse(len(res.Pairs), cached)
	s.log.InfoContext(ctx, "design",
		"request_id", reqID,
		"sequence_length", res.Stats.SequenceLen,
		"truncated", res.Stats.Truncated,
		"pairs", len(res.Pairs),
		"cached", cached,
		"duration", time.Since(start),
	)

	jsonutil.WriteResponse(w, http.StatusOK, api.DesignResponseV1{
		RequestID:      reqID,
		SequenceLength: res.Stats.SequenceLen,
		Truncated:      res.Stats.Truncated,
		Pairs:          output.ToAPIPairs(output.RowsFor("", res.Pairs)),
	})
}

// run designs raw under p, serving repeats from the cache.
func (s *Server) run(raw string, p design.Params) (design.Result, bool) {
	clean, _ := design.Prepare(raw)
	key := cacheKey{seq: clean, p: p}
	if s.cache != nil {
		if res, ok := s.cache.Get(key); ok {
			return res, true
		}
	}
	start := time.Now()
	res := design.Run(raw, p)
	s.metrics.ObserveRun(start, res)
	s.log.Debug("design run",
		"sequence_length", res.Stats.SequenceLen,
		"forward_candidates", res.Stats.ForwardCandidates,
		"reverse_candidates", res.Stats.ReverseCandidates,
		"pairs_scored", res.Stats.PairsScored,
		"duration", time.Since(start),
	)
	if s.cache != nil {
		s.cache.Add(key, res)
	}
	return res, false
}

// ParamsFromRequest overlays the request's non-nil fields on the defaults.
func ParamsFromRequest(req api.DesignRequestV1) design.Params {
	p := design.DefaultParams()
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setInt(&p.PrimerMin, req.PrimerMin)
	setInt(&p.PrimerMax, req.PrimerMax)
	setFloat(&p.GCMin, req.GCMin)
	setFloat(&p.GCMax, req.GCMax)
	setFloat(&p.TmTarget, req.TmTarget)
	setFloat(&p.TmTol, req.TmTol)
	setInt(&p.AmpMin, req.AmpMin)
	setInt(&p.AmpMax, req.AmpMax)
	setInt(&p.TopN, req.TopN)
	setInt(&p.MaxCandidatesPerSide, req.MaxCandidatesPerSide)
	return p
}

func (s *Server) reject(w http.ResponseWriter, r *http.Request, status int, code, desc string) {
	s.metrics.IncBadRequest()
	s.log.WarnContext(r.Context(), "rejected design request",
		"request_id", RequestID(r.Context()),
		"status", status,
		"error", desc,
	)
	jsonutil.WriteResponse(w, status, api.ErrorV1{Error: code, ErrorDescription: desc})
}
