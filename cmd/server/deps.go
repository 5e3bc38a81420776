package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/clients/external"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/config"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/redis"
)

// connectRedis creates the client and pings it so startup fails fast
func connectRedis(ctx context.Context, redisCfg config.RedisConfig) (redis.Client, error) {
	client, err := redis.NewClient(redisCfg.Address, &redis.Options{
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
		PoolSize: redisCfg.PoolSize,
		UseTLS:   redisCfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redis.Ping(ctx, client, redisCfg.PingTimeout); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// newCatalogLoader picks the reference data source. The builtin source has
// no loader; catalog.Load then serves the built-in tables.
func newCatalogLoader(catalogCfg config.CatalogConfig) (catalog.Loader, error) {
	switch catalogCfg.Source {
	case config.CatalogSourceFile:
		return catalog.NewFileLoader(catalogCfg.Dir), nil
	case config.CatalogSourceAPI:
		client, err := external.New(&external.Config{
			BaseURL:        catalogCfg.APIBaseURL,
			HTTPTimeout:    catalogCfg.HTTPTimeout,
			CacheTTL:       catalogCfg.CacheTTL,
			MaxConcurrency: catalogCfg.MaxConcurrency,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create SRD API client: %w", err)
		}
		return client, nil
	default:
		return nil, nil
	}
}

// loadCatalogs never fails on an unreachable source; it degrades to built-in data
func loadCatalogs(ctx context.Context, catalogCfg config.CatalogConfig) (*catalog.Catalogs, error) {
	loader, err := newCatalogLoader(catalogCfg)
	if err != nil {
		return nil, err
	}

	catalogs := catalog.Load(ctx, loader)
	slog.InfoContext(ctx, "reference catalogs ready",
		"source", catalogCfg.Source,
		"armor", len(catalogs.ListArmor()),
		"classes", len(catalogs.ListClasses()),
		"skills", len(catalogs.ListSkills()),
		"races", len(catalogs.ListRaces()),
		"fallbacks", catalogs.FallbackTables())
	return catalogs, nil
}
