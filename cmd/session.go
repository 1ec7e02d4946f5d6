package cmd

import (
	"context"
	"fmt"

	"inventory-control/core/config"
	"inventory-control/core/database"
	inv "inventory-control/core/inventory"
	"inventory-control/core/logger"
	"inventory-control/core/snapshot"
	"inventory-control/core/storage"
	"inventory-control/feature/inventory"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// session is one process' view of the persisted inventory.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *inventory.Service
	closers []func()
}

// loadSession reads configuration from the working directory and opens a session.
func loadSession(ctx context.Context, metrics *inventory.Metrics) (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return openSession(ctx, cfg, logg, metrics)
}

// openSession restores the inventory from the configured snapshot backend and
// persists every later mutation back to it. A snapshot that cannot be read is
// logged and leaves its collection empty.
func openSession(ctx context.Context, cfg *config.Config, logg *zap.Logger, metrics *inventory.Metrics) (*session, error) {
	s := &session{cfg: cfg, logger: logg}

	backend, err := s.openBackend(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}

	snap := snapshot.New(backend, logg, cfg.Snapshot.Timeout())
	state, err := snap.Load(ctx)
	if err != nil {
		logg.Warn("Snapshot partially restored", zap.Error(err))
	}

	store := inv.NewStore()
	store.Restore(state)
	store.SetMutationHook(snap.Hook())

	s.service = inventory.NewService(store, cfg.Scan, cfg.Reconcile, metrics, logg)
	logg.Debug("Session restored",
		zap.String("backend", cfg.Snapshot.Backend),
		zap.Int("theoretical", len(state.Theoretical)),
		zap.Int("real", len(state.Real)),
		zap.Int("history", len(state.History)),
		zap.Int("incidents", len(state.Incidents)),
	)
	return s, nil
}

func (s *session) openBackend(ctx context.Context) (snapshot.Backend, error) {
	switch s.cfg.Snapshot.Backend {
	case snapshot.BackendFile, "":
		return snapshot.NewFileBackend(afero.NewOsFs(), s.cfg.Snapshot.Dir), nil

	case snapshot.BackendDatabase:
		db, err := database.Connect(s.cfg.Database)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			s.closers = append(s.closers, func() { _ = sqlDB.Close() })
		}
		backend := snapshot.NewGormBackend(db)
		if err := backend.Migrate(ctx); err != nil {
			return nil, err
		}
		return backend, nil

	case snapshot.BackendObject:
		client, err := storage.NewClient(s.cfg.Storage)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(ctx, client, s.cfg.Storage); err != nil {
			return nil, err
		}
		return snapshot.NewObjectBackend(client, s.cfg.Storage.Bucket, s.cfg.Snapshot.Prefix), nil

	default:
		return nil, fmt.Errorf("unknown snapshot backend: %q", s.cfg.Snapshot.Backend)
	}
}

// Close releases the backend and flushes the logger.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
	_ = s.logger.Sync()
}
