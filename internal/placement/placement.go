// Package placement bakes a finished terrain grid into entities and places
// the stairs and the player on open floor.
package placement

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

//go:generate mockgen -destination=mock/mock_creator.go -package=placementmock github.com/KirkDiggler/rpg-mapgen/internal/placement EntityCreator

// EntityCreator creates the entity for a terrain tile, stair or actor
type EntityCreator interface {
	CreateEntity(kind entities.Kind, x, y int) core.Entity
}

// Request selects which special entities to place
type Request struct {
	// Preferred is where the player should start when that cell is open
	Preferred  entities.Point
	Upstairs   bool
	Downstairs bool
	Player     bool
}

// Result holds where each requested entity went
type Result struct {
	Upstairs   *entities.Point
	Downstairs *entities.Point
	Player     *entities.Point
	// Entities are the created special entities in placement order
	Entities []core.Entity
}

// Bake creates one entity per grid cell in row-major order and returns them
func Bake(g *terrain.Grid, creator EntityCreator) []core.Entity {
	out := make([]core.Entity, 0, g.Width()*g.Height())
	g.Each(func(x, y int, kind entities.TileKind) {
		out = append(out, creator.CreateEntity(kind.Kind(), x, y))
	})
	return out
}

// Place puts the requested stairs and player on distinct open interior
// cells. Upstairs lands on a random cell, downstairs on the cell farthest
// from upstairs (random when there is no upstairs), and the player on
// Preferred when it is open and free, otherwise on a random free cell.
func Place(g *terrain.Grid, src rng.Source, creator EntityCreator, req Request) (*Result, error) {
	valid := g.OpenInteriorCells()
	if len(valid) == 0 {
		return nil, errors.Internal("no valid floor positions for stair/player placement").
			WithMeta("width", g.Width()).
			WithMeta("height", g.Height())
	}

	reserved := mapset.New[entities.Point]()
	result := &Result{}
	place := func(kind entities.Kind, p entities.Point) *entities.Point {
		reserved.Put(p)
		result.Entities = append(result.Entities, creator.CreateEntity(kind, p.X, p.Y))
		return &p
	}
	free := func() []entities.Point {
		out := make([]entities.Point, 0, len(valid))
		for _, p := range valid {
			if !reserved.Has(p) {
				out = append(out, p)
			}
		}
		return out
	}

	if req.Upstairs {
		result.Upstairs = place(entities.KindUpstairs, rng.Pick(src, valid))
	}

	if req.Downstairs {
		var down entities.Point
		switch candidates := free(); {
		case len(candidates) == 0:
			down = rng.Pick(src, valid)
		case result.Upstairs != nil:
			down = FarthestFrom(*result.Upstairs, candidates)[0]
		default:
			down = rng.Pick(src, candidates)
		}
		result.Downstairs = place(entities.KindDownstairs, down)
	}

	if req.Player {
		p := req.Preferred
		if !g.InInterior(p.X, p.Y) || g.IsBlocked(p.X, p.Y) || reserved.Has(p) {
			if candidates := free(); len(candidates) > 0 {
				p = rng.Pick(src, candidates)
			} else {
				p = rng.Pick(src, valid)
			}
		}
		result.Player = place(entities.KindPlayer, p)
	}

	return result, nil
}

// FarthestFrom returns candidates ordered by descending Manhattan distance
// from origin. Equal distances keep their input order.
func FarthestFrom(origin entities.Point, candidates []entities.Point) []entities.Point {
	out := make([]entities.Point, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Manhattan(origin) > out[j].Manhattan(origin)
	})
	return out
}
