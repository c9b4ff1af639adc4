// Package dungeon implements the three dungeon layouts: rooms joined by a
// minimum spanning tree of corridors, cellular automata caves, and binary
// space partition rooms.
//
// Every generator starts from solid wall, carves floor, and finishes with
// border walls so the result is enclosed and 4-connected.
package dungeon
