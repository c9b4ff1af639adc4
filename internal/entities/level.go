package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/tools/spatial"
)

// EntityTypeLevel is the core.Entity type reported by a Level
const EntityTypeLevel = "level"

// Entity is a placed terrain tile, feature or actor
type Entity struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	Position Point  `json:"position"`
}

// GetID implements core.Entity
func (e *Entity) GetID() string {
	return e.ID
}

// GetType implements core.Entity
func (e *Entity) GetType() string {
	return string(e.Kind)
}

// Level holds every entity produced for one generated map
type Level struct {
	ID          string      `json:"id"`
	Depth       int         `json:"depth"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Environment Environment `json:"environment"`
	Algorithm   Algorithm   `json:"algorithm,omitempty"`
	Seed        *int64      `json:"seed,omitempty"`
	// Entities lists every entity in creation order
	Entities    []*Entity   `json:"entities"`
	Upstairs    *Point      `json:"upstairs,omitempty"`
	Downstairs  *Point      `json:"downstairs,omitempty"`
	Player      *Point      `json:"player,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`

	// Room holds the same entities indexed by position
	Room *spatial.BasicRoom `json:"-"`
}

// NewLevelRoom returns the square grid room a width x height level places
// its entities in
func NewLevelRoom(id string, width, height int) *spatial.BasicRoom {
	return spatial.NewBasicRoom(spatial.BasicRoomConfig{
		ID:   id,
		Type: EntityTypeLevel,
		Grid: spatial.NewSquareGrid(spatial.SquareGridConfig{
			Width:  float64(width),
			Height: float64(height),
		}),
	})
}

// GetID implements core.Entity
func (l *Level) GetID() string {
	return l.ID
}

// GetType implements core.Entity
func (l *Level) GetType() string {
	return EntityTypeLevel
}

// CountKind returns how many entities of kind k the level holds
func (l *Level) CountKind(k Kind) int {
	n := 0
	for _, e := range l.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// CountTerrain returns how many baked terrain entities the level holds
func (l *Level) CountTerrain() int {
	n := 0
	for _, e := range l.Entities {
		if e.Kind.IsTerrain() {
			n++
		}
	}
	return n
}
