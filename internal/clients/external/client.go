// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"golang.org/x/sync/errgroup"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog"
	internalDnd5e "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
)

// armorCategoryKey is the SRD equipment category that lists every armor and shield
const armorCategoryKey = "armor"

// Client fetches reference data from the D&D 5e SRD API
type Client interface {
	catalog.Loader

	// ListArmorDefinitions returns every armor type in the SRD armor category
	ListArmorDefinitions(ctx context.Context) ([]internalDnd5e.ArmorTypeDefinition, error)

	// ListClassDefinitions returns every class with hit die, saves and armor training
	ListClassDefinitions(ctx context.Context) ([]internalDnd5e.ClassDefinition, error)

	// ListRaceDefinitions returns every race with its walking speed
	ListRaceDefinitions(ctx context.Context) ([]internalDnd5e.RaceDefinition, error)
}

type client struct {
	dnd5eClient    dnd5e.Interface
	maxConcurrency int
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// MaxConcurrency bounds in-flight detail requests (optional, defaults to 8)
	MaxConcurrency int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 8
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "must not be negative")
	}
	if cfg.MaxConcurrency < 0 {
		vb.InvalidField("MaxConcurrency", "must not be negative")
	}
	return vb.Build()
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient:    dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
		maxConcurrency: cfg.MaxConcurrency,
	}, nil
}

// Load fetches armor, classes and races concurrently. Skills are left empty
// so the built-in table serves them.
func (c *client) Load(ctx context.Context) (*catalog.Tables, error) {
	tables := &catalog.Tables{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		armor, err := c.ListArmorDefinitions(gctx)
		tables.Armor = armor
		return err
	})
	g.Go(func() error {
		classes, err := c.ListClassDefinitions(gctx)
		tables.Classes = classes
		return err
	})
	g.Go(func() error {
		races, err := c.ListRaceDefinitions(gctx)
		tables.Races = races
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "loaded reference data from SRD API",
		"armor", len(tables.Armor),
		"classes", len(tables.Classes),
		"races", len(tables.Races))

	return tables, nil
}

func (c *client) ListArmorDefinitions(ctx context.Context) ([]internalDnd5e.ArmorTypeDefinition, error) {
	category, err := c.dnd5eClient.GetEquipmentCategory(armorCategoryKey)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get armor category")
	}
	if category == nil {
		return nil, nil
	}

	results := make([]*internalDnd5e.ArmorTypeDefinition, len(category.Equipment))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit())
	for i, ref := range category.Equipment {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			equipment, err := c.dnd5eClient.GetEquipment(ref.Key)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable,
					fmt.Sprintf("failed to get armor %s", ref.Key))
			}
			results[i] = convertArmor(equipment)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compact(results), nil
}

func (c *client) ListClassDefinitions(ctx context.Context) ([]internalDnd5e.ClassDefinition, error) {
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list classes")
	}

	results := make([]*internalDnd5e.ClassDefinition, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit())
	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			class, err := c.dnd5eClient.GetClass(ref.Key)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable,
					fmt.Sprintf("failed to get class %s", ref.Key))
			}
			results[i] = convertClass(class)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compact(results), nil
}

func (c *client) ListRaceDefinitions(ctx context.Context) ([]internalDnd5e.RaceDefinition, error) {
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list races")
	}

	results := make([]*internalDnd5e.RaceDefinition, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit())
	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			race, err := c.dnd5eClient.GetRace(ref.Key)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable,
					fmt.Sprintf("failed to get race %s", ref.Key))
			}
			results[i] = convertRace(race)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compact(results), nil
}

func (c *client) limit() int {
	if c.maxConcurrency <= 0 {
		return 1
	}
	return c.maxConcurrency
}

// compact drops the slots left nil by skipped or unconvertible entries
func compact[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
