package backend

import (
	"fmt"

	"mindledger/internal/log"
	"mindledger/internal/memory"
	"mindledger/internal/storage"
)

// Open builds the configured store and returns it with its cleanup func.
func Open(cfg Config, logger *log.Logger) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		logger.Info("Initialized SQLite backend", log.FieldBackend, cfg.Type.String(), "db_path", cfg.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		store := memory.New()
		logger.Info("Initialized memory backend", log.FieldBackend, cfg.Type.String())
		return &Result{Store: store, Cleanup: store.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
