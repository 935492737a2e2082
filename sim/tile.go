// sim/tile.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"

	"github.com/avfritz/gatc/math"
)

///////////////////////////////////////////////////////////////////////////
// tiles

type TileType int

const (
	TileEmpty TileType = iota
	TileRoute
	TileBeacon
	TileAirport
	NumTileTypes
)

func (t TileType) String() string {
	return [...]string{"Empty", "Route", "Beacon", "Airport"}[t]
}

// Tile is one cell of the world grid. Facing and ID are only meaningful
// for airports; ID alone for beacons.
type Tile struct {
	Type   TileType
	Facing math.CardinalOrdinalDirection
	ID     int
}

func RouteTile() Tile {
	return Tile{Type: TileRoute}
}

func BeaconTile(id int) Tile {
	return Tile{Type: TileBeacon, ID: id}
}

func AirportTile(facing math.CardinalOrdinalDirection, id int) Tile {
	return Tile{Type: TileAirport, Facing: facing, ID: id}
}

// Glyph returns the fixed-width 2-character rendering of the tile.
func (t Tile) Glyph() string {
	switch t.Type {
	case TileEmpty:
		return ". "
	case TileRoute:
		return "+ "
	case TileBeacon:
		return fmt.Sprintf("b%d", t.ID)
	case TileAirport:
		return facingGlyph(t.Facing) + fmt.Sprintf("%d", t.ID)
	default:
		return "??"
	}
}

func facingGlyph(d math.CardinalOrdinalDirection) string {
	switch d {
	case math.North:
		return "^"
	case math.East:
		return ">"
	case math.South:
		return "v"
	case math.West:
		return "<"
	default:
		return "?"
	}
}

///////////////////////////////////////////////////////////////////////////
// walls

// Wall identifies one of the four grid edges. The north wall is row 0 and
// the west wall is column 0; exits hang off walls at an offset along them.
type Wall int

const (
	NorthWall Wall = iota
	EastWall
	SouthWall
	WestWall
	NumWalls
)

func (w Wall) String() string {
	return [...]string{"north", "east", "south", "west"}[w]
}

func ParseWall(s string) (Wall, error) {
	switch s {
	case "N":
		return NorthWall, nil
	case "E":
		return EastWall, nil
	case "S":
		return SouthWall, nil
	case "W":
		return WestWall, nil
	}

	return Wall(0), fmt.Errorf("%q: invalid wall", s)
}
