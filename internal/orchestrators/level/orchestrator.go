// Package level implements the level orchestrator: it selects a generator,
// builds or loads the layout, bakes the grid into entities and places the
// stairs and the player.
package level

//go:generate mockgen -destination=mock/mock_service.go -package=levelmock github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/level Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/generators"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/placement"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/layout"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

const (
	// EventLevelGenerated is published once per generated level with the
	// level as the event source
	EventLevelGenerated = "mapgen.level.generated"

	MinWidth  = 20
	MaxWidth  = 200
	MinHeight = 20
	MaxHeight = 120
)

// Service defines the interface for level generation
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// SelectFunc resolves environment and algorithm names into a generator
type SelectFunc func(src rng.Source, envName, algName string) (*generators.Selection, error)

// Config holds the dependencies for the level orchestrator
type Config struct {
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	// LayoutRepo caches seeded layouts; nil disables caching
	LayoutRepo layout.Repository
	// DiceRoller backs unseeded generation; defaults to dice.DefaultRoller
	DiceRoller dice.Roller
	Clock      clock.Clock
	// Select defaults to generators.Select
	Select SelectFunc
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen      idgen.Generator
	eventBus   events.EventBus
	layoutRepo layout.Repository
	roller     dice.Roller
	clock      clock.Clock
	selectGen  SelectFunc
}

// NewOrchestrator creates a new level orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		idGen:      cfg.IDGenerator,
		eventBus:   cfg.EventBus,
		layoutRepo: cfg.LayoutRepo,
		roller:     cfg.DiceRoller,
		clock:      cfg.Clock,
		selectGen:  cfg.Select,
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.selectGen == nil {
		o.selectGen = generators.Select
	}

	return o, nil
}

func validateInput(input *GenerateInput) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("width", input.Width, MinWidth, MaxWidth, vb)
	errors.ValidateRange("height", input.Height, MinHeight, MaxHeight, vb)
	if input.Depth < 0 {
		vb.InvalidField("depth", "must not be negative")
	}

	return vb.Build()
}

type sources struct {
	selection rng.Source
	layout    rng.Source
	placement rng.Source
}

func (o *orchestrator) sourcesFor(seed *int64) sources {
	if seed == nil {
		src := rng.FromRoller(o.roller)
		return sources{selection: src, layout: src, placement: src}
	}
	return sources{
		selection: rng.NewStream(*seed, rng.StreamSelection),
		layout:    rng.NewStream(*seed, rng.StreamLayout),
		placement: rng.NewStream(*seed, rng.StreamPlacement),
	}
}

// Generate builds a complete level
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	srcs := o.sourcesFor(input.Seed)

	sel, err := o.selectGen(srcs.selection, input.Environment, input.Algorithm)
	if err != nil {
		return nil, err
	}

	grid, cacheHit := o.loadLayout(ctx, input, sel)
	if grid == nil {
		grid = sel.Generator.Generate(srcs.layout, input.Width, input.Height)
		if grid == nil {
			return nil, errors.Internalf("generator %s produced no grid", sel.Generator.Name())
		}
		o.saveLayout(ctx, input, sel, grid)
	}

	levelID := o.idGen.Generate()
	lvl := &entities.Level{
		ID:          levelID,
		Depth:       input.Depth,
		Width:       grid.Width(),
		Height:      grid.Height(),
		Environment: sel.Environment,
		Algorithm:   sel.Algorithm,
		Seed:        input.Seed,
		CreatedAt:   o.clock.Now(),
		Room:        entities.NewLevelRoom(levelID, grid.Width(), grid.Height()),
	}

	creator := placement.NewLevelCreator(lvl, o.idGen)
	placement.Bake(grid, creator)

	placed, err := placement.Place(grid, srcs.placement, creator, placement.Request{
		Preferred:  entities.Pt(input.PlayerX, input.PlayerY),
		Upstairs:   input.HasUpstairs,
		Downstairs: input.HasDownstairs,
		Player:     input.CreatePlayer,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to place entities on %s level", sel.Environment)
	}
	lvl.Upstairs = placed.Upstairs
	lvl.Downstairs = placed.Downstairs
	lvl.Player = placed.Player

	if err := o.eventBus.Publish(ctx, events.NewGameEvent(EventLevelGenerated, lvl, nil)); err != nil {
		slog.Warn("Failed to publish level generated event",
			"level_id", lvl.ID,
			"error", err,
		)
	}

	slog.Info("Level generated",
		"level_id", lvl.ID,
		"depth", lvl.Depth,
		"environment", lvl.Environment,
		"algorithm", lvl.Algorithm,
		"seeded", input.Seed != nil,
		"width", lvl.Width,
		"height", lvl.Height,
		"entities", len(lvl.Entities),
		"open_cells", len(grid.OpenInteriorCells()),
		"cache_hit", cacheHit,
	)

	return &GenerateOutput{
		Level:    lvl,
		Grid:     grid,
		CacheHit: cacheHit,
	}, nil
}

func layoutKey(input *GenerateInput, sel *generators.Selection) layout.Key {
	return layout.Key{
		Environment: sel.Environment,
		Algorithm:   sel.Algorithm,
		Width:       input.Width,
		Height:      input.Height,
		Seed:        *input.Seed,
	}
}

// loadLayout returns nil when caching is off or the layout is not usable
func (o *orchestrator) loadLayout(
	ctx context.Context, input *GenerateInput, sel *generators.Selection,
) (*terrain.Grid, bool) {
	if o.layoutRepo == nil || input.Seed == nil {
		return nil, false
	}

	key := layoutKey(input, sel)
	out, err := o.layoutRepo.Get(ctx, layout.GetInput{Key: key})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("Failed to load cached layout",
				"key", key.String(),
				"error", err,
			)
		}
		return nil, false
	}
	if out == nil || out.Layout == nil || out.Layout.Grid == nil {
		return nil, false
	}

	slog.Debug("Using cached layout", "key", key.String())
	return out.Layout.Grid, true
}

func (o *orchestrator) saveLayout(
	ctx context.Context, input *GenerateInput, sel *generators.Selection, grid *terrain.Grid,
) {
	if o.layoutRepo == nil || input.Seed == nil {
		return
	}

	key := layoutKey(input, sel)
	if _, err := o.layoutRepo.Save(ctx, layout.SaveInput{Key: key, Grid: grid}); err != nil {
		slog.Warn("Failed to cache layout",
			"key", key.String(),
			"error", err,
		)
	}
}
