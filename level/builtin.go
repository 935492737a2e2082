// level/builtin.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package level

import (
	"github.com/avfritz/gatc/log"
	"github.com/avfritz/gatc/util"
)

// Builtin returns the default level: a 20x20 grid with a north-south
// airway between the two exits, an east-west crossing route with a beacon
// at the intersection, and a single airport.
func Builtin(lg *log.Logger) *Level {
	def := levelDef{
		Name:   "default",
		Width:  20,
		Height: 20,
		Routes: []routeDef{
			{From: [2]int{10, 0}, To: [2]int{10, 19}},
			{From: [2]int{0, 5}, To: [2]int{19, 5}},
		},
		Beacons: []markerDef{
			{ID: 0, X: 10, Y: 5},
		},
		Airports: []airportDef{
			{ID: 0, X: 4, Y: 12, Facing: "N"},
		},
		Exits: []exitDef{
			{ID: 0, Wall: "N", Offset: 10, Heading: "S"},
			{ID: 1, Wall: "S", Offset: 10, Heading: "N"},
		},
		Spawn: spawnDef{Interval: 10, MaxPlanes: 4},
	}

	var e util.ErrorLogger
	lvl := buildLevel(def, lg, &e)
	if e.HaveErrors() {
		// The definition above is compiled in; failing to build it is a
		// programming error, not an authoring one.
		panic("builtin level failed validation: " + e.String())
	}
	return lvl
}
