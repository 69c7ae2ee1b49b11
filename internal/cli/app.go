package cli

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/jyang234/taskdeck/internal/config"
	"github.com/jyang234/taskdeck/internal/logging"
	"github.com/jyang234/taskdeck/internal/model"
	"github.com/jyang234/taskdeck/internal/state"
	"github.com/jyang234/taskdeck/internal/storage"
)

// app wires configuration, logging, the storage backend, and the state
// store for one command invocation. The collection is loaded exactly once
// here and every mutation goes back out through store.Replace.
type app struct {
	cfg   *config.Config
	log   *logrus.Logger
	store *state.Store
	kv    storage.KV
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.Init(verbose)

	var kv storage.KV
	switch cfg.Storage.Backend {
	case "", "file":
		kv, err = storage.NewFileKV(cfg.DataDir())
	case "sqlite":
		kv, err = storage.NewSQLiteKV(filepath.Join(cfg.DataDir(), "taskdeck.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want file or sqlite)", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	store := state.New(storage.New(kv, log))
	if err := store.Load(); err != nil {
		kv.Close()
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	store.Subscribe(func(tasks []model.Task) {
		log.WithField("tasks", len(tasks)).Debug("collection replaced")
	})

	return &app{cfg: cfg, log: log, store: store, kv: kv}, nil
}

func (a *app) Close() {
	a.kv.Close()
}
