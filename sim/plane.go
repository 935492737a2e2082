// sim/plane.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"
	"log/slog"

	"github.com/avfritz/gatc/math"
)

///////////////////////////////////////////////////////////////////////////
// plane kinds

type PlaneKind int

const (
	PlaneSmall PlaneKind = iota
	PlaneJet
)

func (k PlaneKind) String() string {
	return [...]string{"Small", "Jet"}[k]
}

// FuelTicks returns the number of elapsed ticks at which a plane of this
// kind runs out of fuel.
func (k PlaneKind) FuelTicks() int {
	if k == PlaneJet {
		return 120
	}
	return 50
}

// moveInterval returns the tick cadence at which a plane of this kind
// advances: jets move every tick, small planes every second tick.
func (k PlaneKind) moveInterval() int {
	if k == PlaneJet {
		return 1
	}
	return 2
}

///////////////////////////////////////////////////////////////////////////
// destinations

type DestinationKind int

const (
	DestinationExit DestinationKind = iota
	DestinationAirport
)

// Destination is where a plane must end up: a specific exit or a specific
// airport.
type Destination struct {
	Kind DestinationKind
	ID   int
}

func ExitDestination(id int) Destination {
	return Destination{Kind: DestinationExit, ID: id}
}

func AirportDestination(id int) Destination {
	return Destination{Kind: DestinationAirport, ID: id}
}

func (d Destination) String() string {
	if d.Kind == DestinationExit {
		return fmt.Sprintf("exit %d", d.ID)
	}
	return fmt.Sprintf("airport %d", d.ID)
}

///////////////////////////////////////////////////////////////////////////
// planes

const SpawnHeight = 7

// graceTicks is how many ticks after spawn a plane is exempt from the
// exit, landing, collision, and wall checks; without it a freshly spawned
// plane would be flagged for sitting on the boundary cell it was placed on.
const graceTicks = 2

// Plane is the per-aircraft simulation state. Fields are exported so that
// recordings and render snapshots can carry planes around wholesale; only
// the world mutates them.
type Plane struct {
	ID          byte
	Pos         math.Point
	Height      int // 0..9
	Heading     math.CardinalOrdinalDirection
	Kind        PlaneKind
	Ticks       int
	Destination Destination
	JustSpawned bool
}

// Tick advances the plane by one simulation step: the elapsed-tick counter
// always increments, fuel is checked before any movement, and the plane
// moves one cell along its heading if its kind moves this tick.
func (p *Plane) Tick() error {
	p.Ticks++

	if p.Ticks >= p.Kind.FuelTicks() {
		return fmt.Errorf("%w: plane %c", ErrPlaneNoFuel, p.ID)
	}

	if p.Ticks >= graceTicks {
		p.JustSpawned = false
	}

	if p.movesThisTick() {
		return p.advance()
	}
	return nil
}

func (p *Plane) movesThisTick() bool {
	return p.Ticks%p.Kind.moveInterval() == 0
}

func (p *Plane) advance() error {
	next := math.Add2i(p.Pos, gridDelta(p.Heading))
	if next[0] < 0 || next[1] < 0 {
		return fmt.Errorf("%w: plane %c at %v heading %s", ErrPlaneNextPosBad, p.ID, p.Pos, p.Heading)
	}
	p.Pos = next
	return nil
}

// gridDelta maps a heading to a per-tick cell offset. Row 0 is the north
// wall, so North carries a plane away from it; East and West are mirrored
// the same way. Spawn headings (the exit heading reversed) rely on this
// table to carry planes into the grid.
func gridDelta(d math.CardinalOrdinalDirection) math.Point {
	switch d {
	case math.North:
		return math.Point{0, 1}
	case math.NorthEast:
		return math.Point{1, 1}
	case math.East:
		return math.Point{-1, 0}
	case math.SouthEast:
		return math.Point{1, -1}
	case math.South:
		return math.Point{0, -1}
	case math.SouthWest:
		return math.Point{-1, -1}
	case math.West:
		return math.Point{1, 0}
	case math.NorthWest:
		return math.Point{-1, 1}
	default:
		return math.Point{0, 0}
	}
}

// Glyph returns the 2-character rendering of the plane: its id (case
// encodes kind) followed by its height digit.
func (p *Plane) Glyph() string {
	return fmt.Sprintf("%c%d", p.ID, p.Height)
}

func (p *Plane) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", string(p.ID)),
		slog.Int("x", p.Pos[0]),
		slog.Int("y", p.Pos[1]),
		slog.Int("height", p.Height),
		slog.String("heading", p.Heading.ShortString()),
		slog.String("kind", p.Kind.String()),
		slog.Int("ticks", p.Ticks),
		slog.String("destination", p.Destination.String()))
}
