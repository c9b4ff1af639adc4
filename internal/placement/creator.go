package placement

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/idgen"
)

var (
	_ core.Entity   = (*entities.Entity)(nil)
	_ core.Entity   = (*entities.Level)(nil)
	_ EntityCreator = (*LevelCreator)(nil)
)

// LevelCreator appends every created entity to a level and places it in the
// level's room
type LevelCreator struct {
	level *entities.Level
	ids   idgen.Generator
}

// NewLevelCreator returns a creator that fills level using ids for entity IDs.
// A level without a room gets one sized to its width and height.
func NewLevelCreator(level *entities.Level, ids idgen.Generator) *LevelCreator {
	if level.Room == nil {
		level.Room = entities.NewLevelRoom(level.ID, level.Width, level.Height)
	}
	return &LevelCreator{level: level, ids: ids}
}

// CreateEntity implements EntityCreator
func (c *LevelCreator) CreateEntity(kind entities.Kind, x, y int) core.Entity {
	e := &entities.Entity{
		ID:       c.ids.Generate(),
		Kind:     kind,
		Position: entities.Pt(x, y),
	}
	c.level.Entities = append(c.level.Entities, e)

	if err := c.level.Room.PlaceEntity(e, e.Position.Spatial()); err != nil {
		slog.Warn("Failed to place entity in level room",
			"level_id", c.level.ID,
			"entity_id", e.ID,
			"kind", kind,
			"x", x,
			"y", y,
			"error", err,
		)
	}
	return e
}
