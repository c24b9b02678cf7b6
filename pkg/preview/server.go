package preview

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/markup/pkg/manifest"
)

// tracerName identifies preview spans in trace backends.
const tracerName = "markup/preview"

// Config configures the preview server.
type Config struct {
	// ManifestPath is the YAML manifest rendered at "/".
	ManifestPath string

	// Minimize renders without whitespace or comments.
	Minimize bool

	// LiveReload injects the reload client script into rendered pages
	// and serves the websocket endpoint it connects to.
	LiveReload bool

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Registry is the Prometheus registry for preview metrics.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Server renders a manifest on demand and pushes reload notifications to
// connected browsers when the manifest changes on disk.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	metrics  *metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader

	clients *clientSet
}

// New creates a preview server for the given configuration.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(cfg.Registry),
		tracer:  otel.Tracer(tracerName),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: newClientSet(),
	}
}

// Handler returns the HTTP handler for the preview server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", s.metricsHandler())
	if s.cfg.LiveReload {
		r.Get("/_livereload", s.handleLiveReload)
	}

	return r
}

// handleIndex loads, builds, and renders the manifest.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "preview.render",
		trace.WithAttributes(attribute.String("manifest.path", s.cfg.ManifestPath)),
	)
	defer span.End()

	start := time.Now()

	m, err := manifest.LoadFile(s.cfg.ManifestPath)
	if err != nil {
		s.renderError(w, span, err)
		return
	}

	page, err := m.Build()
	if err != nil {
		s.renderError(w, span, err)
		return
	}

	if s.cfg.LiveReload {
		page.InlineScripts = append(page.InlineScripts, liveReloadScript)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, s.cfg.Minimize || m.Minimize); err != nil {
		s.renderError(w, span, err)
		return
	}

	elapsed := time.Since(start)
	s.metrics.renders.Inc()
	s.metrics.renderDuration.Observe(elapsed.Seconds())
	span.SetAttributes(attribute.Int("render.bytes", buf.Len()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("writing response", "error", err)
	}

	s.logger.Debug("rendered manifest",
		"path", s.cfg.ManifestPath,
		"bytes", buf.Len(),
		"duration", elapsed,
	)
}

// renderError reports a failed render to the client, the span, and the
// metrics.
func (s *Server) renderError(w http.ResponseWriter, span trace.Span, err error) {
	s.metrics.renderErrors.Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.Error("rendering manifest", "path", s.cfg.ManifestPath, "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// metricsHandler serves the configured registry when it is also a
// Gatherer, falling back to the process-default gatherer.
func (s *Server) metricsHandler() http.Handler {
	if g, ok := s.cfg.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
