// math/heading.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
)

///////////////////////////////////////////////////////////////////////////
// headings and directions

type CardinalOrdinalDirection int

const (
	North CardinalOrdinalDirection = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumCardinalOrdinalDirections
)

func (co CardinalOrdinalDirection) String() string {
	return [...]string{"North", "NorthEast", "East", "SouthEast",
		"South", "SouthWest", "West", "NorthWest"}[co]
}

func (co CardinalOrdinalDirection) ShortString() string {
	switch co {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "ERROR"
	}
}

// Reversed returns the direction 180 degrees away.
func (co CardinalOrdinalDirection) Reversed() CardinalOrdinalDirection {
	return (co + 4) % NumCardinalOrdinalDirections
}

func ParseCardinalOrdinalDirection(s string) (CardinalOrdinalDirection, error) {
	switch s {
	case "N":
		return North, nil
	case "NE":
		return NorthEast, nil
	case "E":
		return East, nil
	case "SE":
		return SouthEast, nil
	case "S":
		return South, nil
	case "SW":
		return SouthWest, nil
	case "W":
		return West, nil
	case "NW":
		return NorthWest, nil
	}

	return CardinalOrdinalDirection(0), fmt.Errorf("%q: invalid direction", s)
}
