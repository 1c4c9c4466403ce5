package app

import (
	"context"
	"fmt"

	boltstore "github.com/jsamuelsen11/listsync/internal/adapters/storage/bolt"
	"github.com/jsamuelsen11/listsync/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/listsync/internal/platform/config"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

// localStore is the combined surface both store drivers provide.
type localStore interface {
	ports.ListStore
	ports.MemberStore
	ports.HealthChecker
	Close() error
}

// openStore opens the store selected by cfg.Driver. With migrate set the
// postgres schema is migrated first; bolt buckets are always ensured.
func openStore(ctx context.Context, cfg config.StoreConfig, migrate bool) (localStore, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		db, err := boltstore.Open(cfg.Bolt)
		if err != nil {
			return nil, err
		}
		store, err := boltstore.New(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return store, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		store := postgres.New(db)
		if migrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				_ = store.Close()
				return nil, err
			}
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
