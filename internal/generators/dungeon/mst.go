package dungeon

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
)

// Edge joins two rooms by index
type Edge struct {
	From int
	To   int
}

// MinimumSpanningTree links room centers with Prim's algorithm over
// Manhattan distance, growing from room 0. Each step scans every
// connected x unconnected pair in index order and keeps the first strictly
// shortest one. Fewer than two rooms yield no edges.
func MinimumSpanningTree(rooms []entities.Room) []Edge {
	if len(rooms) < 2 {
		return nil
	}

	centers := make([]entities.Point, len(rooms))
	for i, r := range rooms {
		centers[i] = r.Center()
	}

	connected := make([]bool, len(rooms))
	connected[0] = true
	edges := make([]Edge, 0, len(rooms)-1)

	for len(edges) < len(rooms)-1 {
		best := Edge{From: -1, To: -1}
		bestDist := 0
		for i := range rooms {
			if !connected[i] {
				continue
			}
			for j := range rooms {
				if connected[j] {
					continue
				}
				d := centers[i].Manhattan(centers[j])
				if best.From < 0 || d < bestDist {
					best = Edge{From: i, To: j}
					bestDist = d
				}
			}
		}
		connected[best.To] = true
		edges = append(edges, best)
	}
	return edges
}
