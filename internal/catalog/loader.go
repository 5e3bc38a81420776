package catalog

//go:generate mockgen -destination=mock/mock_loader.go -package=catalogmock github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog Loader

import (
	"context"
	"log/slog"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
)

// Loader fetches reference tables from an external source
type Loader interface {
	// Load returns whatever tables the source has. Empty tables are allowed.
	Load(ctx context.Context) (*Tables, error)
}

// Load builds catalogs from a loader. A nil loader, a failing loader and
// empty tables all degrade to the built-in data; Load itself never fails.
func Load(ctx context.Context, loader Loader) *Catalogs {
	if loader == nil {
		return New(nil)
	}

	tables, err := loader.Load(ctx)
	if err != nil {
		level := slog.LevelError
		if errors.IsUnavailable(err) {
			level = slog.LevelWarn
		}
		slog.Log(ctx, level, "reference data source failed, using built-in catalogs",
			"error", err.Error())
		return New(nil)
	}

	c := New(tables)
	if fallbacks := c.FallbackTables(); len(fallbacks) > 0 {
		slog.InfoContext(ctx, "reference data source returned empty tables, using built-in data",
			"tables", fallbacks)
	}
	return c
}
