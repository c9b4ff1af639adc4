package terrain

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

// CheckEnclosed verifies the outer ring is entirely wall
func CheckEnclosed(g *Grid) error {
	var breach *entities.Point
	g.Each(func(x, y int, kind entities.TileKind) {
		if breach != nil || g.InInterior(x, y) {
			return
		}
		if kind != entities.TileWall {
			p := entities.Pt(x, y)
			breach = &p
		}
	})
	if breach != nil {
		return errors.FailedPreconditionf("border cell (%d,%d) is not a wall", breach.X, breach.Y).
			WithMeta("x", breach.X).
			WithMeta("y", breach.Y)
	}
	return nil
}

// CheckConnected verifies the open cells form a single region
func CheckConnected(g *Grid) error {
	regions := Regions(g)
	if len(regions) > 1 {
		return errors.FailedPreconditionf("open cells form %d disconnected regions", len(regions)).
			WithMeta("regions", len(regions))
	}
	return nil
}
