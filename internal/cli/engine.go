package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sdutta9/mealscan/internal/analyze"
	"github.com/sdutta9/mealscan/internal/cache"
	"github.com/sdutta9/mealscan/internal/config"
	"github.com/sdutta9/mealscan/internal/providers"
)

// buildStore selects the cache backend from config.
func buildStore(cfg config.CacheConfig) (cache.Store, error) {
	switch cfg.Backend {
	case "file", "":
		return cache.NewFileStore(cfg.Dir, cfg.MaxBytes)
	case "sqlite":
		return cache.NewSQLiteStore(cfg.Path, cfg.MaxBytes)
	case "memory":
		return cache.NewMemoryStore(cfg.MaxBytes), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}

func buildCache(cfg config.CacheConfig) (*cache.Cache, error) {
	if !cfg.Enabled {
		return cache.Disabled(), nil
	}
	store, err := buildStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	return cache.New(store), nil
}

func buildEngine(cfg config.Config, log *zap.Logger) (*analyze.Engine, error) {
	client, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		return nil, err
	}
	c, err := buildCache(cfg.Cache)
	if err != nil {
		return nil, err
	}
	return analyze.New(client, c, log), nil
}
