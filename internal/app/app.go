package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/txtread/internal/config"
	"github.com/dgallion1/txtread/internal/parser"
	"github.com/dgallion1/txtread/internal/pathstore"
	"github.com/dgallion1/txtread/internal/pipeline"
	"github.com/dgallion1/txtread/internal/session"
	"github.com/dgallion1/txtread/internal/settings"
)

// Reader bundles the wired core shared by the server and the terminal
// front end.
type Reader struct {
	Store        settings.Store
	Session      *session.Session
	Orchestrator *pipeline.Orchestrator

	ps *pathstore.Client
}

// New opens the settings store, applies seed values and builds the
// session and its event loop. The loop is not started.
func New(cfg config.Config, log *slog.Logger) (*Reader, error) {
	r := &Reader{}

	if cfg.PathstoreURL != "" {
		r.ps = pathstore.NewClient(cfg.PathstoreURL, cfg.PathstoreAPIKey, cfg.PathstoreTimeout)
		r.Store = settings.NewRemoteStore(r.ps, cfg.PathstorePrefix, cfg.PathstoreTimeout)
		log.Info("using pathstore settings", "url", cfg.PathstoreURL, "prefix", cfg.PathstorePrefix)
	} else {
		fs, err := settings.OpenFileStore(cfg.SettingsFile)
		if err != nil {
			return nil, err
		}
		r.Store = fs
		log.Info("using settings file", "path", fs.Path())
	}

	if cfg.SeedFilePath != "" {
		if err := r.Store.Set(settings.KeyFilePath, cfg.SeedFilePath); err != nil {
			return nil, fmt.Errorf("seed file path: %w", err)
		}
	}
	if cfg.SeedPageSize > 0 {
		if err := r.Store.Set(settings.KeyPageSize, cfg.SeedPageSize); err != nil {
			return nil, fmt.Errorf("seed page size: %w", err)
		}
	}

	loader, err := parser.NewLoader(cfg.Encoding, cfg.MaxFileBytes)
	if err != nil {
		return nil, err
	}

	r.Session = session.New(session.Options{
		Store:           r.Store,
		Loader:          loader.Load,
		Notifier:        session.LogNotifier{Log: log},
		Log:             log,
		DefaultPageSize: cfg.DefaultPageSize,
	})
	r.Orchestrator = pipeline.NewOrchestrator(r.Session, cfg.QueueSize, log)
	r.Orchestrator.Watch(r.Store)
	return r, nil
}

// Start runs the event loop and queues the initial load.
func (r *Reader) Start(ctx context.Context) error {
	r.Orchestrator.Start(ctx)
	return r.Orchestrator.Submit(session.ReloadRequested{})
}

// Close stops the event loop and releases clients.
func (r *Reader) Close() {
	r.Orchestrator.Stop()
	if r.ps != nil {
		r.ps.Close()
	}
}
