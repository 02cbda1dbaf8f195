// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package server exposes gauges over HTTP.
//
//	GET /health
//	GET /formats
//	GET /gauge.{format}?t=21&secondary=14&size=400
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/gogpu/dodecagon"
	"github.com/gogpu/dodecagon/export"
	"github.com/gogpu/dodecagon/internal/config"
)

// Server is the HTTP gauge server.
type Server struct {
	router chi.Router
	cfg    config.ServerConfig
	engine dodecagon.Config
	canvas int
	locale language.Tag
}

// New creates a configured server with all routes and middleware.
func New(cfg *config.Config) (*Server, error) {
	engine, err := cfg.Engine()
	if err != nil {
		return nil, fmt.Errorf("gauge config: %w", err)
	}
	locale, err := cfg.Locale()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg.Server,
		engine: engine,
		canvas: cfg.Gauge.Canvas,
		locale: locale,
	}
	s.router = s.buildRouter()
	return s, nil
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run but accepts connections on ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpSrv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		// Requests outlive ctx so Shutdown can drain them.
		BaseContext: func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	log := dodecagon.Logger()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server: listening", "addr", ln.Addr().String())
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	origins := []string{"*"}
	if len(s.cfg.CORSOrigins) > 0 {
		origins = s.cfg.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/formats", s.handleFormats)
	r.Get("/gauge.{format}", s.handleGauge)
	return r
}

// requestLogger logs each request through the shared slog logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			dodecagon.Logger().Debug("server: request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"formats": export.Encoders()})
}

func (s *Server) handleGauge(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	enc, err := export.NewEncoder(format, export.Options{Locale: s.locale})
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	disk, err := s.diskFromQuery(r)
	if err != nil {
		dodecagon.Logger().Warn("server: rejected gauge request", "query", r.URL.RawQuery, "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Encode to a buffer so a failure can still produce a clean error response.
	var buf bytes.Buffer
	if err := enc.Encode(&buf, disk); err != nil {
		dodecagon.Logger().Error("server: encode failed", "format", format, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", enc.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// diskFromQuery builds a Disk from the t, secondary and size parameters.
func (s *Server) diskFromQuery(r *http.Request) (*dodecagon.Disk, error) {
	q := r.URL.Query()

	t, err := floatParam(q.Get("t"), "t")
	if err != nil {
		return nil, err
	}
	size := s.canvas
	if v := q.Get("size"); v != "" {
		if size, err = intParam(v, "size"); err != nil {
			return nil, err
		}
		if s.cfg.MaxCanvas > 0 && size > s.cfg.MaxCanvas {
			return nil, fmt.Errorf("size %d exceeds limit %d", size, s.cfg.MaxCanvas)
		}
	}

	opts := []dodecagon.DiskOption{dodecagon.WithConfig(s.engine)}
	if v := q.Get("secondary"); v != "" {
		sec, err := floatParam(v, "secondary")
		if err != nil {
			return nil, err
		}
		opts = append(opts, dodecagon.WithSecondary(sec))
	}
	return dodecagon.NewDisk(size, t, opts...)
}

func intParam(v, name string) (int, error) {
	if v == "" {
		return 0, fmt.Errorf("missing query parameter %q", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q: not an integer: %q", name, v)
	}
	return n, nil
}

// floatParam parses a temperature. NaN and infinities parse but are
// rejected by NewDisk as out of range.
func floatParam(v, name string) (float64, error) {
	if v == "" {
		return 0, fmt.Errorf("missing query parameter %q", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q: not a number: %q", name, v)
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		dodecagon.Logger().Error("server: write json", slog.Any("err", err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
