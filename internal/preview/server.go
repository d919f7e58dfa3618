// Package preview serves built output over HTTP while watching the source
// tree and rebuilding on changes.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docfence/internal/config"
	"git.home.luguber.info/inful/docfence/internal/logfields"
	"git.home.luguber.info/inful/docfence/internal/metrics"
)

// RebuildFunc performs one full build of the configured source tree.
type RebuildFunc func(ctx context.Context) error

// Server is the preview server: static files from the build output, a
// /metrics endpoint, and a rebuild loop fed by file watching and the
// optional periodic schedule.
type Server struct {
	cfg      *config.Config
	rebuild  RebuildFunc
	registry *prom.Registry

	mu        sync.Mutex
	lastError error
}

// New creates a preview server. registry may be nil to disable /metrics.
func New(cfg *config.Config, rebuild RebuildFunc, registry *prom.Registry) *Server {
	return &Server{cfg: cfg, rebuild: rebuild, registry: registry}
}

// Run builds once, then serves until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	s.runRebuild(ctx)

	watcher, err := newWatcher(s.cfg.Source)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	debounce := newDebouncer()

	if interval := s.cfg.Serve.RebuildInterval(); interval > 0 {
		sched, err := newScheduler(interval, debounce.Trigger)
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	httpServer := &http.Server{
		Addr:              s.cfg.Serve.Addr,
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", logfields.Addr(s.cfg.Serve.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)

		case err := <-serveErr:
			return err

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleEvent(watcher, event, debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))

		case <-debounce.Requests():
			s.runRebuild(ctx)
		}
	}
}

func (s *Server) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event, debounce *debouncer) {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}
	if event.Op.Has(fsnotify.Create) {
		// New directories need their own watch; Add on a plain file fails
		// harmlessly when it disappears again.
		_ = addDirsRecursive(watcher, event.Name)
	}
	if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		slog.Debug("Source changed", logfields.Path(event.Name))
		debounce.Trigger()
	}
}

func (s *Server) runRebuild(ctx context.Context) {
	start := time.Now()
	err := s.rebuild(ctx)
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
	if err != nil {
		slog.Error("Rebuild failed", logfields.Error(err))
		return
	}
	slog.Info("Rebuilt",
		logfields.DurationMS(float64(time.Since(start).Milliseconds())),
	)
}

// LastError returns the most recent rebuild error, nil when the last
// rebuild succeeded.
func (s *Server) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Output)))
	if s.registry != nil {
		mux.Handle("/metrics", metrics.HTTPHandler(s.registry))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := s.LastError(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}
