package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/listsync/internal/platform/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Prepare the local store",
		Long: `Prepare the local store for serving. The bolt driver creates its buckets,
the postgres driver creates or updates the lists and members tables.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	store, err := openStore(cmd.Context(), cfg.Store, true)
	if err != nil {
		return fmt.Errorf("migrating %s store: %w", cfg.Store.Driver, err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}

	logger.Info("store migrated", slog.String("driver", cfg.Store.Driver))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s store is up to date\n", cfg.Store.Driver)
	return err
}
