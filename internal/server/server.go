// Package server exposes the analysis pipeline as a small JSON API for an
// external dashboard frontend. The server computes tables and chart
// payloads; rendering them is the frontend's job.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/KaramelBytes/costview-cli/internal/config"
	"github.com/KaramelBytes/costview-cli/internal/dataset"
)

// Server serves the dashboard data API. The default dataset goes through a
// shared mtime-keyed cache; each session may carry its own uploaded override.
type Server struct {
	cfg      *config.Global
	cache    *dataset.Cache
	sessions *SessionStore
	policy   dataset.EmptySelectionPolicy
	log      zerolog.Logger
}

// New builds a Server over the given configuration.
func New(cfg *config.Global, log zerolog.Logger) (*Server, error) {
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:      cfg,
		cache:    dataset.NewCache(cfg.DatasetPath, dataset.Options{Delimiter: delim}),
		sessions: NewSessionStore(),
		policy:   policy,
		log:      log,
	}, nil
}

// Handler returns the API routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/session", s.handleCreateSession)
	mux.HandleFunc("PUT /api/session/{id}/countries", s.handleSetCountries)
	mux.HandleFunc("POST /api/session/{id}/dataset", s.handleUpload)
	mux.HandleFunc("GET /api/session/{id}/summary", s.handleSummary)
	mux.HandleFunc("GET /api/session/{id}/top", s.handleTop)
	mux.HandleFunc("GET /api/session/{id}/correlation", s.handleCorrelation)
	mux.HandleFunc("GET /api/session/{id}/histogram", s.handleHistogram)
	mux.HandleFunc("GET /api/session/{id}/export", s.handleExport)
	return s.logRequests(mux)
}

// ListenAndServe runs the API on the configured address.
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.cfg.ServeAddr).Msg("serving dashboard API")
	srv := &http.Server{
		Addr:         s.cfg.ServeAddr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// filtered runs the Loader(cache) -> Cleaner -> Filter stages for a
// session and returns the fresh snapshot for this interaction. It reads
// the session through SessionStore.View so a concurrent selection or
// upload change on the same session cannot race this request.
func (s *Server) filtered(id string) (*dataset.Dataset, error) {
	countries, override, ok := s.sessions.View(id)
	if !ok {
		return nil, fmt.Errorf("unknown session %q", id)
	}
	base := override
	if base == nil {
		cached, err := s.cache.Get()
		if err != nil {
			return nil, err
		}
		base = cached
	}
	cleaned := dataset.Clean(base)
	return dataset.Filter(cleaned, countries, s.policy), nil
}
