// sim/outcome.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"
	"log/slog"
)

type OutcomeType int

const (
	Ongoing OutcomeType = iota
	PlaneCollision
	WrongExit
	WrongAirport
	PlaneTouchesWall
	PlaneCrash
	PlaneNoFuel
	NumOutcomeTypes
)

func (t OutcomeType) String() string {
	return [...]string{"Ongoing", "PlaneCollision", "WrongExit", "WrongAirport",
		"PlaneTouchesWall", "PlaneCrash", "PlaneNoFuel"}[t]
}

// Outcome is the tagged result of advancing the world by one tick. Which
// payload fields are meaningful depends on Type; everything other than
// Ongoing is terminal for the surrounding game loop.
type Outcome struct {
	Type         OutcomeType
	PlaneID      byte
	OtherPlaneID byte // PlaneCollision
	ExitID       int  // WrongExit
	AirportID    int  // WrongAirport
	Wall         Wall // PlaneTouchesWall
	Offset       int  // PlaneTouchesWall
}

func (o Outcome) Terminal() bool {
	return o.Type != Ongoing
}

func (o Outcome) String() string {
	switch o.Type {
	case Ongoing:
		return "ongoing"
	case PlaneCollision:
		return fmt.Sprintf("planes %c and %c collided", o.PlaneID, o.OtherPlaneID)
	case WrongExit:
		return fmt.Sprintf("plane %c left through exit %d, which is not its destination", o.PlaneID, o.ExitID)
	case WrongAirport:
		return fmt.Sprintf("plane %c landed at airport %d, which is not its destination", o.PlaneID, o.AirportID)
	case PlaneTouchesWall:
		return fmt.Sprintf("plane %c touched the %s wall at offset %d", o.PlaneID, o.Wall, o.Offset)
	case PlaneCrash:
		return fmt.Sprintf("plane %c crashed", o.PlaneID)
	case PlaneNoFuel:
		return fmt.Sprintf("plane %c ran out of fuel", o.PlaneID)
	default:
		return fmt.Sprintf("unknown outcome %d", o.Type)
	}
}

func (o Outcome) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("type", o.Type.String())}
	if o.Type != Ongoing {
		attrs = append(attrs, slog.String("plane", string(o.PlaneID)))
	}
	switch o.Type {
	case PlaneCollision:
		attrs = append(attrs, slog.String("other_plane", string(o.OtherPlaneID)))
	case WrongExit:
		attrs = append(attrs, slog.Int("exit", o.ExitID))
	case WrongAirport:
		attrs = append(attrs, slog.Int("airport", o.AirportID))
	case PlaneTouchesWall:
		attrs = append(attrs, slog.String("wall", o.Wall.String()), slog.Int("offset", o.Offset))
	}
	return slog.GroupValue(attrs...)
}
