package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/aretw0/specdoc/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the stored artifact of one schema.
type Server struct {
	Store    ports.ArtifactStore
	Artifact string
	Streams  *StreamManager
	Metrics  *Metrics
	Version  string
	Logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithStreams shares a stream manager with a Publisher, so reloads reach SSE clients.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		if sm != nil {
			s.Streams = sm
		}
	}
}

// WithMetrics shares a metrics registry with a Publisher.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.Metrics = m
		}
	}
}

func WithVersion(version string) Option {
	return func(s *Server) {
		s.Version = strings.TrimSpace(version)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// NewHandler creates a new HTTP handler serving the artifact named artifact from store.
func NewHandler(store ports.ArtifactStore, artifact string, opts ...Option) http.Handler {
	server := &Server{
		Store:    store,
		Artifact: artifact,
		Version:  "unknown",
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}
	if server.Streams == nil {
		server.Streams = NewStreamManager()
	}
	if server.Metrics == nil {
		server.Metrics = NewMetrics()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(server.Metrics.Middleware)

	r.Get("/healthz", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/entries", server.ListEntries)
	r.Get("/entries/{key}", server.GetEntry)
	r.Get("/reference.md", server.GetMarkdown)
	r.Get("/schema.json", server.GetJSONSchema)
	r.Get("/events", server.SubscribeEvents)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(server.Metrics.Registry, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// load fetches the current artifact, writing the error response itself on failure.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (*domain.Artifact, bool) {
	artifact, err := s.Store.Load(r.Context(), s.Artifact)
	if errors.Is(err, domain.ErrArtifactNotFound) {
		http.Error(w, fmt.Sprintf("artifact %q has not been published yet", s.Artifact), http.StatusServiceUnavailable)
		return nil, false
	}
	if err != nil {
		http.Error(w, "Failed to load artifact", http.StatusInternalServerError)
		s.Logger.Error("Failed to load artifact", "artifact", s.Artifact, "error", err)
		return nil, false
	}
	return artifact, true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":      "specdoc-http",
		"version":  s.Version,
		"artifact": s.Artifact,
	})
}

// ListEntries handles the GET /entries request, optionally filtered by ?prefix=a.b.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	var prefix string
	if err := runtime.BindQueryParameter("form", true, false, "prefix", r.URL.Query(), &prefix); err != nil {
		http.Error(w, fmt.Sprintf("Invalid prefix: %v", err), http.StatusBadRequest)
		return
	}

	artifact, ok := s.load(w, r)
	if !ok {
		return
	}

	entries := artifact.Entries
	if prefix != "" {
		entries = domain.FilterEntries(entries, domain.ParsePath(prefix))
	}
	s.writeJSON(w, entries)
}

// GetEntry handles the GET /entries/{key} request.
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	var key string
	err := runtime.BindStyledParameterWithLocation("simple", false, "key", runtime.ParamLocationPath, chi.URLParam(r, "key"), &key)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid key: %v", err), http.StatusBadRequest)
		return
	}

	artifact, ok := s.load(w, r)
	if !ok {
		return
	}

	entry, found := domain.FindEntry(artifact.Entries, domain.ParsePath(key))
	if !found {
		http.Error(w, fmt.Sprintf("Unknown key %q", key), http.StatusNotFound)
		return
	}
	s.writeJSON(w, entry)
}

// GetMarkdown handles the GET /reference.md request.
func (s *Server) GetMarkdown(w http.ResponseWriter, r *http.Request) {
	artifact, ok := s.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(artifact.Markdown))
}

// GetJSONSchema handles the GET /schema.json request.
func (s *Server) GetJSONSchema(w http.ResponseWriter, r *http.Request) {
	artifact, ok := s.load(w, r)
	if !ok {
		return
	}
	if len(artifact.JSONSchema) == 0 {
		http.Error(w, "No JSON schema in artifact", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	_, _ = w.Write(artifact.JSONSchema)
}
