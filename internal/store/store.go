package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"president-server/internal/config"
	"president-server/pkg/db"
	"president-server/pkg/record"
)

// Open returns the record store for the configured driver
// Postgres is migrated before it is handed out
func Open(ctx context.Context, cfg config.StoreConfig, logger logrus.FieldLogger) (record.Store, error) {
	logger = logger.WithField("driver", cfg.Driver)

	switch cfg.Driver {
	case config.StoreMemory:
		logger.Warn("finished games are only kept in memory")
		return record.NewMemoryStore(), nil
	case config.StoreSQLite:
		logger.WithField("path", cfg.SQLitePath).Info("opening game records")
		s, err := record.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}

		return s, nil
	case config.StorePostgres:
		conn, err := db.Open(cfg.PGDSN)
		if err != nil {
			return nil, fmt.Errorf("could not connect to postgres: %w", err)
		}

		if err := db.Migrate(conn, cfg.MigrationsPath); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("could not migrate: %w", err)
		}

		logger.Info("opening game records")
		return record.NewPostgresStore(conn), nil
	}

	return nil, fmt.Errorf("%w: %s", config.ErrUnknownStoreDriver, cfg.Driver)
}
