// Package server provides the HTTP REST API for the resume analyzer.
//
// The API is stateless: every request carries its own resume text and job
// records, and every response is computed fresh from the scoring core.
// Storage, authentication, and document conversion live upstream.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

// maxRequestBody bounds request payloads; resume text plus a job batch fits
// comfortably under this.
const maxRequestBody = 2 << 20 // 2 MiB

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	tax         *taxonomy.Taxonomy
	log         *zap.Logger
	rateLimiter *ratelimit.Limiter

	matchLimit    int
	maxTextLength int
}

// Config holds server configuration
type Config struct {
	Port          int
	MatchLimit    int
	MaxTextLength int
	Taxonomy      *taxonomy.Taxonomy
	Logger        *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Taxonomy == nil {
		return nil, fmt.Errorf("server requires a taxonomy")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.MatchLimit <= 0 {
		cfg.MatchLimit = config.DefaultMatchLimit
	}
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = config.DefaultMaxTextLength
	}

	s := &Server{
		tax:           cfg.Taxonomy,
		log:           cfg.Logger,
		rateLimiter:   ratelimit.NewLimiter(ratelimit.DefaultCapacity, ratelimit.DefaultRefillRate),
		matchLimit:    cfg.MatchLimit,
		maxTextLength: cfg.MaxTextLength,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /matches", s.handleMatches)
	mux.HandleFunc("GET /taxonomy", s.handleTaxonomy)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestID(s.withRateLimit(s.withLogging(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until an interrupt or
// SIGTERM triggers graceful shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the configured handler chain for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withRequestID tags each request with a UUID, echoed in X-Request-ID
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(withRequestIDContext(r.Context(), requestID)))
	})
}

// withLogging logs each request with method, path, status, and duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", requestIDFromContext(r.Context())),
		)
	})
}

// withRateLimit enforces the per-client token bucket
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r))

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))

		if !allowed {
			retryAfter := max(int(time.Until(info.Reset).Seconds()), 1)
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientID identifies the requester by remote IP
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

type contextKey string

const requestIDKey contextKey = "request_id"

func withRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
