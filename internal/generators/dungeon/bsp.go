package dungeon

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// BSPConfig tunes the binary space partition layout
type BSPConfig struct {
	MinSize  int
	MaxDepth int
	// MinRoomRatio and MaxRoomRatio bound a leaf room's size relative to its node
	MinRoomRatio float64
	MaxRoomRatio float64
	MinCorridor  int
	MaxCorridor  int
}

// DefaultBSPConfig returns the standard tunables
func DefaultBSPConfig() BSPConfig {
	return BSPConfig{
		MinSize:      8,
		MaxDepth:     4,
		MinRoomRatio: 0.6,
		MaxRoomRatio: 0.9,
		MinCorridor:  1,
		MaxCorridor:  2,
	}
}

// Node is a BSP tree node. Internal nodes own exactly two children; leaves
// own at most one room.
type Node struct {
	Bounds entities.Room
	Left   *Node
	Right  *Node
	Room   *entities.Room
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the leaf nodes in pre-order
func (n *Node) Leaves() []*Node {
	if n.IsLeaf() {
		return []*Node{n}
	}
	return append(n.Left.Leaves(), n.Right.Leaves()...)
}

// Depth returns the number of edges on the longest root to leaf path
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// FirstRoom returns the first room found by a pre-order search, or nil
func (n *Node) FirstRoom() *entities.Room {
	if n.Room != nil {
		return n.Room
	}
	if n.Left != nil {
		if r := n.Left.FirstRoom(); r != nil {
			return r
		}
	}
	if n.Right != nil {
		return n.Right.FirstRoom()
	}
	return nil
}

// BSP partitions the map into a tree, drops a room in every leaf and joins
// sibling subtrees with corridors.
type BSP struct {
	Config BSPConfig
}

// NewBSP returns the generator with default tunables
func NewBSP() *BSP {
	return &BSP{Config: DefaultBSPConfig()}
}

// Name returns the algorithm identifier
func (g *BSP) Name() string {
	return string(entities.AlgorithmBSP)
}

// Generate carves a BSP layout
func (g *BSP) Generate(src rng.Source, width, height int) *terrain.Grid {
	grid, root := g.Layout(src, width, height)
	slog.Debug("bsp layout generated",
		"leaves", len(root.Leaves()),
		"depth", root.Depth(),
		"width", width,
		"height", height)
	return grid
}

// Layout is Generate that also returns the partition tree
func (g *BSP) Layout(src rng.Source, width, height int) (*terrain.Grid, *Node) {
	cfg := g.Config
	grid := terrain.New(width, height, entities.TileWall)

	root := &Node{Bounds: entities.Room{X: 1, Y: 1, Width: width - 2, Height: height - 2}}
	SplitTree(root, src, cfg, 0)

	for _, leaf := range root.Leaves() {
		room := leafRoom(leaf.Bounds, src, cfg)
		leaf.Room = &room
		grid.FillRect(room, entities.TileFloor)
	}

	connectSiblings(grid, src, root, cfg)
	grid.AddBorderWalls()
	return grid, root
}

// SplitTree recursively splits node until MaxDepth or until neither side
// is at least twice MinSize.
func SplitTree(node *Node, src rng.Source, cfg BSPConfig, depth int) {
	if depth >= cfg.MaxDepth {
		return
	}
	if !splitNode(node, src, cfg.MinSize) {
		return
	}
	SplitTree(node.Left, src, cfg, depth+1)
	SplitTree(node.Right, src, cfg, depth+1)
}

func splitNode(node *Node, src rng.Source, minSize int) bool {
	b := node.Bounds
	if b.Width < 2*minSize && b.Height < 2*minSize {
		return false
	}

	var horizontal bool
	switch {
	case b.Width < 2*minSize:
		horizontal = true
	case b.Height < 2*minSize:
		horizontal = false
	default:
		horizontal = rng.Coin(src)
	}

	if horizontal {
		at := rng.Between(src, minSize, b.Height-minSize)
		node.Left = &Node{Bounds: entities.Room{X: b.X, Y: b.Y, Width: b.Width, Height: at}}
		node.Right = &Node{Bounds: entities.Room{X: b.X, Y: b.Y + at, Width: b.Width, Height: b.Height - at}}
		return true
	}

	at := rng.Between(src, minSize, b.Width-minSize)
	node.Left = &Node{Bounds: entities.Room{X: b.X, Y: b.Y, Width: at, Height: b.Height}}
	node.Right = &Node{Bounds: entities.Room{X: b.X + at, Y: b.Y, Width: b.Width - at, Height: b.Height}}
	return true
}

// leafRoom sizes a room at MinRoomRatio..MaxRoomRatio of the node and
// centers it
func leafRoom(b entities.Room, src rng.Source, cfg BSPConfig) entities.Room {
	w := rng.Between(src, int(float64(b.Width)*cfg.MinRoomRatio), int(float64(b.Width)*cfg.MaxRoomRatio))
	h := rng.Between(src, int(float64(b.Height)*cfg.MinRoomRatio), int(float64(b.Height)*cfg.MaxRoomRatio))
	w = max(w, 1)
	h = max(h, 1)
	return entities.Room{
		X:      b.X + (b.Width-w)/2,
		Y:      b.Y + (b.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

func connectSiblings(grid *terrain.Grid, src rng.Source, node *Node, cfg BSPConfig) {
	if node.Left == nil || node.Right == nil {
		return
	}

	left := node.Left.FirstRoom()
	right := node.Right.FirstRoom()
	if left != nil && right != nil {
		from := left.Center()
		to := right.Center()
		width := rng.Between(src, cfg.MinCorridor, cfg.MaxCorridor)
		terrain.CarveCorridor(grid, src, from.X, from.Y, to.X, to.Y, width, entities.TileFloor)
	}

	connectSiblings(grid, src, node.Left, cfg)
	connectSiblings(grid, src, node.Right, cfg)
}
