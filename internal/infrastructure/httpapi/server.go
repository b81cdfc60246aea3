// Package httpapi exposes the keep-alive triggers to the kiosk page over a
// local HTTP API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/application/usecase"
	"github.com/bnema/kioskclock/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// WakeLockController is the part of the keep-alive manager the API drives.
type WakeLockController interface {
	port.TriggerHandler
	Status() usecase.WakeLockStatus
}

// Config holds API server configuration.
type Config struct {
	Listen           string
	InteractionRate  float64
	InteractionBurst int
	// FinanceStaleAfter is the age past which the finance feed is reported stale.
	FinanceStaleAfter time.Duration
}

// Server is the HTTP trigger API.
type Server struct {
	config  Config
	wake    WakeLockController
	finance port.FinanceFeedSource
	clock   clock.Clock
	limiter *rate.Limiter
	server  *http.Server
	router  http.Handler
}

// New creates the server. finance may be nil; clk defaults to the wall clock.
func New(cfg Config, wake WakeLockController, finance port.FinanceFeedSource, clk clock.Clock) *Server {
	if clk == nil {
		clk = clock.New()
	}
	if cfg.InteractionRate <= 0 {
		cfg.InteractionRate = 2
	}
	if cfg.InteractionBurst < 1 {
		cfg.InteractionBurst = 1
	}

	s := &Server{
		config:  cfg,
		wake:    wake,
		finance: finance,
		clock:   clk,
		limiter: rate.NewLimiter(rate.Limit(cfg.InteractionRate), cfg.InteractionBurst),
	}
	s.router = s.setupRoutes()
	return s
}

// IsLoopback reports whether the host:port address only accepts local
// connections. Hostnames other than localhost and unspecified hosts are not.
func IsLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logging.FromContext(ctx)

	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	addr := ln.Addr().String()
	log.Info().Str("listen", addr).Msg("trigger API listening")
	if !IsLoopback(addr) {
		log.Warn().Str("listen", addr).
			Msg("trigger API is unauthenticated and allows any origin; anyone who can reach this address can toggle the wake lock")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("trigger API shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		<-errCh
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(allowAnyOrigin)

	r.Get("/kiosk.js", handleScript)

	r.Route("/api", func(r chi.Router) {
		r.Route("/triggers", func(r chi.Router) {
			r.Post("/mount", s.handleMount)
			r.With(s.rateLimit).Post("/interaction", s.handleInteraction)
			r.Post("/visibility", s.handleVisibility)
			r.Post("/unmount", s.handleUnmount)
		})
		r.Get("/wakelock", s.handleWakeLock)
		r.Get("/feeds/finance", s.handleFinanceFeed)
	})

	return r
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.FromContext(r.Context()).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("http request")
	})
}

// allowAnyOrigin lets a page served from another local origin read the API.
func allowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

// rateLimit drops interaction bursts; every pointer event would otherwise
// reach the platform while a request is denied.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "too many interaction triggers")
			return
		}
		next.ServeHTTP(w, r)
	})
}
