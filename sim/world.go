// sim/world.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"

	"github.com/avfritz/gatc/log"
	"github.com/avfritz/gatc/math"
	"github.com/avfritz/gatc/util"
)

// planeIDAlphabet is the fixed 25-symbol alphabet that spawn ids are
// assigned from, cycling with silent wraparound: after 25 spawns ids
// repeat, whether or not the earlier holder is still flying.
const planeIDAlphabet = "abcdefghijklmnopqrstuvwxy"

// Exit is a designated boundary location through which a plane must
// depart: a wall, an offset along it, and the heading a departing plane
// must be flying.
type Exit struct {
	ID      int
	Wall    Wall
	Offset  int
	Heading math.CardinalOrdinalDirection
}

// World owns the tile grid, the exit table, and the set of active planes.
// It is the single source of truth for the simulation; nothing else
// mutates shared state.
type World struct {
	width, height int
	tiles         [][]Tile // row-major, indexed [y][x]
	exits         map[int]Exit
	exitOrder     []int // registration order; the last exit registered at a (wall, offset) wins
	planes        map[byte]*Plane
	nextPlaneID   int
	lg            *log.Logger
}

func NewWorld(width, height int, lg *log.Logger) *World {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &World{
		width:  width,
		height: height,
		tiles:  tiles,
		exits:  make(map[int]Exit),
		planes: make(map[byte]*Plane),
		lg:     lg,
	}
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

func (w *World) checkPosBounds(p math.Point) error {
	if p[0] < 0 || p[0] >= w.width {
		return fmt.Errorf("%w: not 0 <= %d < %d", ErrPosOutOfBounds, p[0], w.width)
	}
	if p[1] < 0 || p[1] >= w.height {
		return fmt.Errorf("%w: not 0 <= %d < %d", ErrPosOutOfBounds, p[1], w.height)
	}
	return nil
}

// PlaceTile overwrites the cell at p. Level construction only; tiles are
// immutable once the simulation is ticking.
func (w *World) PlaceTile(t Tile, p math.Point) error {
	if err := w.checkPosBounds(p); err != nil {
		return err
	}
	w.tiles[p[1]][p[0]] = t
	return nil
}

func (w *World) TileAt(p math.Point) Tile {
	return w.tiles[p[1]][p[0]]
}

// PlaceRouteInLine paints route tiles along the digital line from a to b.
// Both endpoints are bounds-checked before any tile is painted, so a
// failure never leaves a partial line behind.
func (w *World) PlaceRouteInLine(a, b math.Point) error {
	if err := w.checkPosBounds(a); err != nil {
		return err
	}
	if err := w.checkPosBounds(b); err != nil {
		return err
	}

	for _, p := range math.LinePoints(a, b) {
		if p[0] < 0 || p[1] < 0 {
			// The rasterizer only sees bounds-checked endpoints, so a
			// negative intermediate point is a logic fault, not a level
			// authoring mistake.
			return fmt.Errorf("%w: %v", ErrPosFromSigned, p)
		}
		if err := w.PlaceTile(RouteTile(), p); err != nil {
			return err
		}
	}
	return nil
}

// PlaceExit registers (or overwrites) the exit record for id. The offset
// is checked against the wall's axis extent. Nothing prevents two ids from
// sharing a (wall, offset); the one registered last wins when matching and
// rendering.
func (w *World) PlaceExit(wall Wall, heading math.CardinalOrdinalDirection, offset, id int) error {
	extent := w.width
	if wall == EastWall || wall == WestWall {
		extent = w.height
	}
	if offset < 0 || offset >= extent {
		return fmt.Errorf("%w: not 0 <= %d < %d", ErrExitPosOutOfBounds, offset, extent)
	}

	if _, ok := w.exits[id]; ok {
		w.exitOrder = util.FilterSlice(w.exitOrder, func(eid int) bool { return eid != id })
	}
	w.exits[id] = Exit{ID: id, Wall: wall, Offset: offset, Heading: heading}
	w.exitOrder = append(w.exitOrder, id)
	return nil
}

// Exit returns the exit registered for id.
func (w *World) Exit(id int) (Exit, bool) {
	e, ok := w.exits[id]
	return e, ok
}

// ExitIDs returns the registered exit ids, sorted.
func (w *World) ExitIDs() []int {
	return util.SortedMapKeys(w.exits)
}

// AirportIDs returns the ids of all airport tiles in the grid, in scan
// order.
func (w *World) AirportIDs() []int {
	var ids []int
	for y := range w.tiles {
		for x := range w.tiles[y] {
			if w.tiles[y][x].Type == TileAirport {
				ids = append(ids, w.tiles[y][x].ID)
			}
		}
	}
	return ids
}

// exitAt returns the exit registered at the given wall and offset. With
// multiple exits sharing the position, the most recently registered one
// wins.
func (w *World) exitAt(wall Wall, offset int) (Exit, bool) {
	for i := len(w.exitOrder) - 1; i >= 0; i-- {
		e := w.exits[w.exitOrder[i]]
		if e.Wall == wall && e.Offset == offset {
			return e, true
		}
	}
	return Exit{}, false
}

// spawnPoint returns the grid edge cell a plane entering through e appears
// on.
func (w *World) spawnPoint(e Exit) math.Point {
	switch e.Wall {
	case NorthWall:
		return math.Point{e.Offset, 0}
	case SouthWall:
		return math.Point{e.Offset, w.height - 1}
	case WestWall:
		return math.Point{0, e.Offset}
	default: // EastWall
		return math.Point{w.width - 1, e.Offset}
	}
}

type wallPos struct {
	wall   Wall
	offset int
}

// boundaryWalls returns the (wall, offset) pairs the cell at p lies on; a
// corner cell lies on two walls. The scan order (west, east, north, south)
// is fixed so corner handling is deterministic.
func (w *World) boundaryWalls(p math.Point) []wallPos {
	var walls []wallPos
	if p[0] == 0 {
		walls = append(walls, wallPos{WestWall, p[1]})
	}
	if p[0] == w.width-1 {
		walls = append(walls, wallPos{EastWall, p[1]})
	}
	if p[1] == 0 {
		walls = append(walls, wallPos{NorthWall, p[0]})
	}
	if p[1] == w.height-1 {
		walls = append(walls, wallPos{SouthWall, p[0]})
	}
	return walls
}

// SpawnPlaneAtExit creates a plane entering the grid through the given
// exit, flying the exit's heading reversed, at the spawn height, with a
// two-tick grace period before boundary and landing checks apply to it.
func (w *World) SpawnPlaneAtExit(exitID int, kind PlaneKind, dest Destination) (*Plane, error) {
	e, ok := w.exits[exitID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoExitForID, exitID)
	}

	id := planeIDAlphabet[w.nextPlaneID%len(planeIDAlphabet)]
	w.nextPlaneID++
	id = util.Select(kind == PlaneJet, id&^0x20, id|0x20) // jets uppercase, small planes lowercase

	p := &Plane{
		ID:          id,
		Pos:         w.spawnPoint(e),
		Height:      SpawnHeight,
		Heading:     e.Heading.Reversed(),
		Kind:        kind,
		Destination: dest,
		JustSpawned: true,
	}
	w.planes[id] = p

	w.lg.Info("spawned plane", "plane", p, "exit", exitID)
	return p, nil
}

// Plane returns the active plane with the given id.
func (w *World) Plane(id byte) (*Plane, bool) {
	p, ok := w.planes[id]
	return p, ok
}

// PlaneIDs returns the ids of all active planes, sorted.
func (w *World) PlaneIDs() []byte {
	return util.SortedMapKeys(w.planes)
}

func (w *World) PlaneCount() int {
	return len(w.planes)
}

// TurnPlane sets the heading of the plane with the given id.
func (w *World) TurnPlane(id byte, heading math.CardinalOrdinalDirection) error {
	p, ok := w.planes[id]
	if !ok {
		return fmt.Errorf("%w: %c", ErrNoPlaneForID, id)
	}
	p.Heading = heading
	return nil
}

// ChangePlaneHeight adjusts the height of the plane with the given id by
// delta, clamped to the representable 0..9 band.
func (w *World) ChangePlaneHeight(id byte, delta int) error {
	p, ok := w.planes[id]
	if !ok {
		return fmt.Errorf("%w: %c", ErrNoPlaneForID, id)
	}
	p.Height = math.Clamp(p.Height+delta, 0, 9)
	return nil
}
