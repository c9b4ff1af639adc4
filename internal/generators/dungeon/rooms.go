package dungeon

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// RoomsConfig tunes the rooms and corridors layout
type RoomsConfig struct {
	MinRoomSize int
	MaxRoomSize int
	// HeightShrink is subtracted from MaxRoomSize for room heights
	HeightShrink int
	MinRooms     int
	MaxRooms     int
	// AttemptsPerRoom bounds placement attempts at AttemptsPerRoom * target
	AttemptsPerRoom int
	// Buffer is the gap kept between rooms
	Buffer int
	// LoopDivisor sets extra loop corridors to ceil(mstEdges / LoopDivisor)
	LoopDivisor int
}

// DefaultRoomsConfig returns the standard tunables
func DefaultRoomsConfig() RoomsConfig {
	return RoomsConfig{
		MinRoomSize:     4,
		MaxRoomSize:     12,
		HeightShrink:    2,
		MinRooms:        15,
		MaxRooms:        25,
		AttemptsPerRoom: 3,
		Buffer:          1,
		LoopDivisor:     5,
	}
}

// RoomsCorridors places non-overlapping rooms and joins them with a minimum
// spanning tree of corridors plus a few random loops.
type RoomsCorridors struct {
	Config RoomsConfig
}

// NewRoomsCorridors returns the generator with default tunables
func NewRoomsCorridors() *RoomsCorridors {
	return &RoomsCorridors{Config: DefaultRoomsConfig()}
}

// Name returns the algorithm identifier
func (g *RoomsCorridors) Name() string {
	return string(entities.AlgorithmRoomsCorridors)
}

// Generate carves a rooms and corridors layout
func (g *RoomsCorridors) Generate(src rng.Source, width, height int) *terrain.Grid {
	grid, rooms := g.Layout(src, width, height)
	slog.Debug("rooms and corridors layout generated",
		"rooms", len(rooms),
		"width", width,
		"height", height)
	return grid
}

// Layout is Generate that also returns the accepted rooms
func (g *RoomsCorridors) Layout(src rng.Source, width, height int) (*terrain.Grid, []entities.Room) {
	cfg := g.Config
	grid := terrain.New(width, height, entities.TileWall)

	rooms := PlaceRooms(grid, src, cfg)

	if len(rooms) >= 2 {
		edges := MinimumSpanningTree(rooms)
		for _, e := range edges {
			connectRooms(grid, src, rooms[e.From], rooms[e.To])
		}

		extra := LoopEdges(len(edges), cfg.LoopDivisor)
		for i := 0; i < extra; i++ {
			a := src.Intn(len(rooms))
			b := src.Intn(len(rooms))
			if a != b {
				connectRooms(grid, src, rooms[a], rooms[b])
			}
		}
	}

	grid.AddBorderWalls()
	return grid, rooms
}

// LoopEdges returns how many extra corridors to add on top of mstEdges
// spanning tree edges: ceil(mstEdges/divisor), never fewer than one.
func LoopEdges(mstEdges, divisor int) int {
	divisor = max(divisor, 1)
	return max(1, (mstEdges+divisor-1)/divisor)
}

// PlaceRooms rejection samples rooms into grid until the target count is
// reached or the attempt budget runs out. Accepted rooms are carved to floor.
func PlaceRooms(grid *terrain.Grid, src rng.Source, cfg RoomsConfig) []entities.Room {
	target := rng.Between(src, cfg.MinRooms, cfg.MaxRooms)
	maxAttempts := target * cfg.AttemptsPerRoom

	var rooms []entities.Room
	for attempt := 0; attempt < maxAttempts && len(rooms) < target; attempt++ {
		room, ok := tryRoom(grid, src, cfg, rooms)
		if !ok {
			continue
		}
		grid.FillRect(room, entities.TileFloor)
		rooms = append(rooms, room)
	}
	return rooms
}

func tryRoom(grid *terrain.Grid, src rng.Source, cfg RoomsConfig, rooms []entities.Room) (entities.Room, bool) {
	w := rng.Between(src, cfg.MinRoomSize, cfg.MaxRoomSize)
	h := rng.Between(src, cfg.MinRoomSize, cfg.MaxRoomSize-cfg.HeightShrink)

	maxX := grid.Width() - w - 2
	maxY := grid.Height() - h - 2
	if maxX < 1 || maxY < 1 {
		return entities.Room{}, false
	}

	room := entities.Room{
		X:      rng.Between(src, 1, maxX),
		Y:      rng.Between(src, 1, maxY),
		Width:  w,
		Height: h,
	}
	for _, other := range rooms {
		if room.Intersects(other, cfg.Buffer) {
			return entities.Room{}, false
		}
	}
	return room, true
}

func connectRooms(grid *terrain.Grid, src rng.Source, a, b entities.Room) {
	from := a.Center()
	to := b.Center()
	terrain.CarveCorridor(grid, src, from.X, from.Y, to.X, to.Y, 1, entities.TileFloor)
}
