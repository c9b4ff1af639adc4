package level

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// GenerateInput defines the request for generating a level
type GenerateInput struct {
	// Depth is the dungeon level number recorded on the result
	Depth  int
	Width  int
	Height int
	// PlayerX and PlayerY are the preferred player start
	PlayerX       int
	PlayerY       int
	HasUpstairs   bool
	HasDownstairs bool
	CreatePlayer  bool
	// Environment is picked at random when empty
	Environment string
	// Algorithm only applies to dungeons; empty means rooms_corridors
	Algorithm string
	// Seed makes the level reproducible and enables the layout cache
	Seed *int64
}

// GenerateOutput defines the response for generating a level
type GenerateOutput struct {
	Level *entities.Level
	Grid  *terrain.Grid
	// CacheHit is true when the layout came from the layout cache
	CacheHit bool
}
