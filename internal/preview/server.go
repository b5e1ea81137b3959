// Package preview serves live camera frames over HTTP: an MJPEG stream for
// browsers, a single-shot snapshot route, and Prometheus metrics.
package preview

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Source delivers raw frames to the server. Next blocks until a frame is
// available or ctx is done. Implementations are called from one goroutine
// per open stream, so they must either be safe for concurrent use or fan
// frames out themselves.
type Source interface {
	Next(ctx context.Context) (Image, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (Image, error)

func (f SourceFunc) Next(ctx context.Context) (Image, error) { return f(ctx) }

// Config carries the server settings.
type Config struct {
	Addr    string
	Quality int
	Logger  zerolog.Logger
}

// Server streams frames from a Source over HTTP.
type Server struct {
	cfg     Config
	source  Source
	router  *mux.Router
	metrics *metrics
	log     zerolog.Logger
}

// NewServer wires the routes. The source must outlive the server.
func NewServer(cfg Config, src Source) *Server {
	s := &Server{
		cfg:     cfg,
		source:  src,
		router:  mux.NewRouter(),
		metrics: newMetrics(),
		log:     cfg.Logger,
	}

	s.router.HandleFunc("/stream", s.handleStream).Methods(http.MethodGet)
	s.router.HandleFunc("/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	return s
}

// Handler exposes the route table, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("preview server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(`<!doctype html><title>realsense preview</title><img src="/stream">`))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	img, err := s.source.Next(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot: no frame")
		http.Error(w, "no frame available", http.StatusServiceUnavailable)
		return
	}

	jpg, err := s.encode(img)
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot: encode failed")
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := w.Write(jpg); err != nil {
		return
	}
	s.metrics.framesServed.WithLabelValues("snapshot").Inc()
	s.metrics.bytesSent.Add(float64(len(jpg)))
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	s.metrics.streamers.Inc()
	defer s.metrics.streamers.Dec()

	log := s.log.With().Str("remote", r.RemoteAddr).Logger()
	log.Info().Msg("stream opened")
	defer log.Info().Msg("stream closed")

	out := NewMJPEGWriter(w)
	for {
		img, err := s.source.Next(r.Context())
		if err != nil {
			if r.Context().Err() == nil {
				log.Error().Err(err).Msg("stream: no frame")
			}
			return
		}

		jpg, err := s.encode(img)
		if err != nil {
			log.Error().Err(err).Msg("stream: encode failed")
			return
		}

		if _, err := out.Write(jpg); err != nil {
			return
		}
		s.metrics.framesServed.WithLabelValues("stream").Inc()
		s.metrics.bytesSent.Add(float64(len(jpg)))
	}
}

func (s *Server) encode(img Image) ([]byte, error) {
	start := time.Now()
	jpg, err := EncodeJPEG(img, s.cfg.Quality)
	if err == nil {
		s.metrics.encodeTime.Observe(time.Since(start).Seconds())
	}
	return jpg, err
}
