// sim/tick.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"errors"

	"github.com/avfritz/gatc/math"
	"github.com/avfritz/gatc/util"
)

// TickPlanes advances the entire world by one discrete time step and
// classifies the result. Planes advance in sorted-id order, and the checks
// run in a fixed priority: fuel, exits, landings, collisions, walls. The
// first terminal condition found ends the tick; tile and exit state are
// never touched, so a terminal tick leaves the world fully rendered-able
// for the driver's final frame.
func (w *World) TickPlanes() Outcome {
	// Advance every plane. Fuel runs out before the plane would move this
	// tick; a move that leaves the grid is a wall violation unless the
	// exit check below had already claimed the plane on a previous tick.
	for _, id := range w.PlaneIDs() {
		p := w.planes[id]
		if err := p.Tick(); err != nil {
			if errors.Is(err, ErrPlaneNoFuel) {
				w.lg.Info("plane out of fuel", "plane", p)
				return Outcome{Type: PlaneNoFuel, PlaneID: id}
			}
			// ErrPlaneNextPosBad: the move was rejected before an
			// ordinate went negative.
			wp := w.crossedWallLow(p)
			w.lg.Info("plane flew off the grid", "plane", p)
			return Outcome{Type: PlaneTouchesWall, PlaneID: id, Wall: wp.wall, Offset: wp.offset}
		}
		if w.checkPosBounds(p.Pos) != nil {
			wp := w.crossedWallHigh(p)
			w.lg.Info("plane flew off the grid", "plane", p)
			return Outcome{Type: PlaneTouchesWall, PlaneID: id, Wall: wp.wall, Offset: wp.offset}
		}
	}

	// Exit check: a plane sitting on a boundary cell that has an exit
	// either departs (destination matches) or is flagged. When two exits
	// share the cell, exitAt resolves to the last one registered.
	for _, id := range w.PlaneIDs() {
		p := w.planes[id]
		if p.JustSpawned {
			continue
		}
		for _, wp := range w.boundaryWalls(p.Pos) {
			e, ok := w.exitAt(wp.wall, wp.offset)
			if !ok {
				continue
			}
			if p.Destination == ExitDestination(e.ID) {
				w.lg.Info("plane departed", "plane", p, "exit", e.ID)
				delete(w.planes, id)
			} else {
				return Outcome{Type: WrongExit, PlaneID: id, ExitID: e.ID}
			}
			break
		}
	}

	// Landing check: height 0 either puts the plane on the ground at its
	// destination airport, facing the right way, or it has crashed.
	for _, id := range w.PlaneIDs() {
		p := w.planes[id]
		if p.JustSpawned || p.Height != 0 {
			continue
		}
		t := w.TileAt(p.Pos)
		if t.Type != TileAirport || p.Destination.Kind != DestinationAirport || t.Facing != p.Heading {
			w.lg.Info("plane crashed", "plane", p, "tile", t.Type.String())
			return Outcome{Type: PlaneCrash, PlaneID: id}
		}
		if t.ID != p.Destination.ID {
			return Outcome{Type: WrongAirport, PlaneID: id, AirportID: t.ID}
		}
		w.lg.Info("plane landed", "plane", p, "airport", t.ID)
		delete(w.planes, id)
	}

	// Collision check: same cell, same height, after everyone has moved.
	// Grace-period planes are exempt since a follow-on spawn may share a
	// spawn cell for a tick.
	ids := util.FilterSlice(w.PlaneIDs(), func(id byte) bool { return !w.planes[id].JustSpawned })
	for i, ida := range ids {
		a := w.planes[ida]
		for _, idb := range ids[i+1:] {
			b := w.planes[idb]
			if a.Pos == b.Pos && a.Height == b.Height {
				w.lg.Info("planes collided", "plane", a, "other", b)
				return Outcome{Type: PlaneCollision, PlaneID: ida, OtherPlaneID: idb}
			}
		}
	}

	// Wall check: a boundary cell with no exit registered on any of its
	// walls is a violation.
	for _, id := range w.PlaneIDs() {
		p := w.planes[id]
		if p.JustSpawned {
			continue
		}
		walls := w.boundaryWalls(p.Pos)
		if len(walls) == 0 {
			continue
		}
		exited := false
		for _, wp := range walls {
			if _, ok := w.exitAt(wp.wall, wp.offset); ok {
				exited = true
				break
			}
		}
		if !exited {
			w.lg.Info("plane touched a wall", "plane", p)
			return Outcome{Type: PlaneTouchesWall, PlaneID: id, Wall: walls[0].wall, Offset: walls[0].offset}
		}
	}

	return Outcome{Type: Ongoing}
}

// crossedWallLow names the wall a plane crossed when its move was rejected
// for going negative: column 0 is the west wall and row 0 the north wall.
func (w *World) crossedWallLow(p *Plane) wallPos {
	d := gridDelta(p.Heading)
	if p.Pos[0]+d[0] < 0 {
		return wallPos{WestWall, p.Pos[1]}
	}
	return wallPos{NorthWall, p.Pos[0]}
}

// crossedWallHigh names the wall a plane crossed when its position ended
// up past the far edge of the grid.
func (w *World) crossedWallHigh(p *Plane) wallPos {
	if p.Pos[0] >= w.width {
		return wallPos{EastWall, math.Clamp(p.Pos[1], 0, w.height-1)}
	}
	return wallPos{SouthWall, math.Clamp(p.Pos[0], 0, w.width-1)}
}
