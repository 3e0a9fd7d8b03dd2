package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/bilingo/internal/lang"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	RateLimit       float64 // requests per second per client, 0 disables
	RateBurst       int
}

// Server serves the JSON API.
type Server struct {
	cfg     Config
	handler http.Handler
	limiter *RateLimiter
	logger  *zap.Logger
}

// New builds the router and middleware chain.
func New(cfg Config, svc Service, detector lang.Detector, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if detector == nil {
		detector = lang.CJKDetector{}
	}
	logger = logger.Named("server")

	h := &handlers{svc: svc, detector: detector, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/translate", h.translate)
	mux.HandleFunc("POST /api/translate_with_examples", h.translateWithExamples)
	mux.HandleFunc("GET /api/dictionary/{word}", h.dictionary)
	mux.HandleFunc("GET /api/health", h.health)

	mws := []Middleware{Recovery(logger), RequestID, Logger(logger), CORS(cfg.CORSOrigins)}

	s := &Server{cfg: cfg, logger: logger}
	if cfg.RateLimit > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		mws = append(mws, s.limiter.Middleware)
	}
	s.handler = Chain(mws...)(mux)

	return s
}

// Handler returns the HTTP handler including all middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if s.limiter != nil {
		g.Go(func() error {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					s.limiter.Prune(10 * time.Minute)
				}
			}
		})
	}

	return g.Wait()
}
