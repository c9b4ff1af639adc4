// Package entities provides core data structures for rpg-mapgen.
package entities

// TileKind is the terrain category of one grid cell
type TileKind uint8

// Tile kinds. Upstairs and Downstairs only exist transiently on a grid; stairs
// are normally placed as entities after baking.
const (
	TileFloor TileKind = iota
	TileWall
	TileWater
	TileTrees
	TileGrass
	TileDirt
	TileUpstairs
	TileDownstairs
)

// AllTileKinds lists every tile kind in declaration order
var AllTileKinds = []TileKind{
	TileFloor, TileWall, TileWater, TileTrees, TileGrass, TileDirt, TileUpstairs, TileDownstairs,
}

// Blocks reports whether the tile prevents traversal
func (t TileKind) Blocks() bool {
	switch t {
	case TileWall, TileWater, TileTrees:
		return true
	case TileFloor, TileGrass, TileDirt, TileUpstairs, TileDownstairs:
		return false
	default:
		return true
	}
}

// Kind returns the entity kind created when the tile is baked
func (t TileKind) Kind() Kind {
	switch t {
	case TileFloor:
		return KindFloor
	case TileWall:
		return KindWall
	case TileWater:
		return KindWater
	case TileTrees:
		return KindTrees
	case TileGrass:
		return KindGrass
	case TileDirt:
		return KindDirt
	case TileUpstairs:
		return KindUpstairs
	case TileDownstairs:
		return KindDownstairs
	default:
		return KindWall
	}
}

// Glyph is the single-character rendering hint for the tile
func (t TileKind) Glyph() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	case TileWater:
		return '~'
	case TileTrees:
		return 'T'
	case TileGrass:
		return '"'
	case TileDirt:
		return ':'
	case TileUpstairs:
		return '<'
	case TileDownstairs:
		return '>'
	default:
		return '?'
	}
}

// String returns the tile's entity kind name
func (t TileKind) String() string {
	return string(t.Kind())
}

// TileFromGlyph is the inverse of Glyph
func TileFromGlyph(r rune) (TileKind, bool) {
	for _, t := range AllTileKinds {
		if t.Glyph() == r {
			return t, true
		}
	}
	return TileWall, false
}

// Kind names what an entity creation request produces: a baked terrain tile
// or a placed feature/actor.
type Kind string

// Entity kinds
const (
	KindFloor      Kind = "floor"
	KindWall       Kind = "wall"
	KindWater      Kind = "water"
	KindTrees      Kind = "trees"
	KindGrass      Kind = "grass"
	KindDirt       Kind = "dirt"
	KindUpstairs   Kind = "upstairs"
	KindDownstairs Kind = "downstairs"
	KindPlayer     Kind = "player"
)

// Glyph is the rendering hint for the entity kind
func (k Kind) Glyph() rune {
	switch k {
	case KindPlayer:
		return '@'
	case KindFloor:
		return TileFloor.Glyph()
	case KindWall:
		return TileWall.Glyph()
	case KindWater:
		return TileWater.Glyph()
	case KindTrees:
		return TileTrees.Glyph()
	case KindGrass:
		return TileGrass.Glyph()
	case KindDirt:
		return TileDirt.Glyph()
	case KindUpstairs:
		return TileUpstairs.Glyph()
	case KindDownstairs:
		return TileDownstairs.Glyph()
	default:
		return '?'
	}
}

// IsTerrain reports whether the kind is produced by baking a grid cell
func (k Kind) IsTerrain() bool {
	switch k {
	case KindFloor, KindWall, KindWater, KindTrees, KindGrass, KindDirt:
		return true
	default:
		return false
	}
}
