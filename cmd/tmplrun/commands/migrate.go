package commands

import (
	"log"

	"github.com/corvidrun/tmplengine/cmd/tmplrun/internal/config"
	"github.com/corvidrun/tmplengine/internal/templatestore"
)

// Migrate opens (creating if absent) the sqlite database named by
// cfg.Cache.Path and applies any pending goose migrations, then closes it.
// It is the only tmplrun command that opens the store; render, watch and
// preview do not read or write it.
func Migrate(cfg config.Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if !cfg.Cache.Enabled {
		logger.Printf("migrate: cache is disabled in config, nothing to migrate")
		return nil
	}
	store, err := templatestore.Open(cfg.Cache.Path)
	if err != nil {
		return err
	}
	logger.Printf("migrate: applied migrations to %s", cfg.Cache.Path)
	return store.Close()
}
