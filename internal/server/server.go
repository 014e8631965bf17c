package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bribes/minecraft-avatar-api/internal/imaging"
)

// DefaultMaxSize bounds the requested avatar edge when no limit is configured.
const DefaultMaxSize = 512

// TextureFetcher resolves a texture id to raw image bytes.
type TextureFetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// Server serves avatar images derived from remote textures.
type Server struct {
	fetcher TextureFetcher
	logger  *zap.Logger
	metrics *Metrics
	maxSize int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for access and error logs.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics sets the metrics collectors exposed on /metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithMaxSize sets the largest accepted width or size.
func WithMaxSize(n int) Option {
	return func(s *Server) { s.maxSize = n }
}

// New creates a new avatar server instance
func New(fetcher TextureFetcher, opts ...Option) *Server {
	s := &Server{
		fetcher: fetcher,
		logger:  zap.NewNop(),
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	return s
}

// Handler builds the router with all middlewares applied.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	get := []string{http.MethodGet, http.MethodHead}

	router.HandleFunc("/", s.handleIndex).Methods(get...)
	router.HandleFunc("/healthz", handleHealth).Methods(get...)
	router.Handle("/metrics", s.metrics.Handler()).Methods(get...)

	cape := s.metrics.Instrument(imaging.CapeOptions{}.Name(), s.handleCape)
	router.HandleFunc("/cape/{textureId}", cape).Methods(get...)
	router.HandleFunc("/cape/{textureId}/{width}", cape).Methods(get...)

	face := s.metrics.Instrument(imaging.FaceOptions{}.Name(), s.handleFace)
	router.HandleFunc("/face/{textureId}", face).Methods(get...)
	router.HandleFunc("/face/{textureId}/{size}", face).Methods(get...)

	return WithRequestLogging(router, s.logger)
}
