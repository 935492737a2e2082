// level/level.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package level

import (
	"github.com/avfritz/gatc/log"
	"github.com/avfritz/gatc/math"
	"github.com/avfritz/gatc/sim"
	"github.com/avfritz/gatc/util"
)

// Level is a named, fully constructed world plus the spawn schedule the
// driver runs it with.
type Level struct {
	Name  string
	World *sim.World
	Spawn SpawnSchedule
}

// SpawnSchedule controls how the spawner feeds planes into a level.
type SpawnSchedule struct {
	Interval  int // ticks between spawn attempts
	MaxPlanes int // cap on simultaneously active planes
}

///////////////////////////////////////////////////////////////////////////
// level definitions

// levelDef is the JSON form of a level. All placement happens through the
// world's own operations during building, so definition mistakes surface
// as the same errors level authors would get calling the API directly.
type levelDef struct {
	Name     string       `json:"name"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Routes   []routeDef   `json:"routes,omitempty"`
	Beacons  []markerDef  `json:"beacons,omitempty"`
	Airports []airportDef `json:"airports,omitempty"`
	Exits    []exitDef    `json:"exits"`
	Spawn    spawnDef     `json:"spawn"`
}

type routeDef struct {
	From [2]int `json:"from"`
	To   [2]int `json:"to"`
}

type markerDef struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

type airportDef struct {
	ID     int    `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Facing string `json:"facing"`
}

type exitDef struct {
	ID      int    `json:"id"`
	Wall    string `json:"wall"`
	Offset  int    `json:"offset"`
	Heading string `json:"heading"`
}

type spawnDef struct {
	Interval  int `json:"interval,omitempty"`
	MaxPlanes int `json:"max_planes,omitempty"`
}

const (
	defaultSpawnInterval = 12
	defaultMaxPlanes     = 6
)

// LoadBytes parses and validates a JSON level definition, accumulating
// problems in e rather than stopping at the first one. It returns nil if
// the definition is unusable.
func LoadBytes(name string, b []byte, lg *log.Logger, e *util.ErrorLogger) *Level {
	e.Push(name)
	defer e.Pop()

	var def levelDef
	if err := util.UnmarshalJSON(b, &def); err != nil {
		e.Error(err)
		return nil
	}
	if def.Name == "" {
		def.Name = name
	}

	return buildLevel(def, lg, e)
}

// cardinalDirection parses s as one of the four cardinal directions,
// reporting ordinals and garbage to e.
func cardinalDirection(s string, e *util.ErrorLogger) math.CardinalOrdinalDirection {
	dir, err := math.ParseCardinalOrdinalDirection(s)
	if err != nil {
		e.Error(err)
		return math.North
	}
	if dir%2 != 0 { // ordinals sit between the cardinals in the enum
		e.ErrorString("%s: must be a cardinal direction", s)
		return math.North
	}
	return dir
}

func buildLevel(def levelDef, lg *log.Logger, e *util.ErrorLogger) *Level {
	if def.Width <= 0 || def.Height <= 0 {
		e.ErrorString("level dimensions must be positive: %dx%d", def.Width, def.Height)
		return nil
	}
	// The render surface and the exit table assume single-digit ids and
	// positions that fit a terminal; keep authored levels sane.
	if def.Width > 80 || def.Height > 80 {
		e.ErrorString("level dimensions too large: %dx%d", def.Width, def.Height)
		return nil
	}

	w := sim.NewWorld(def.Width, def.Height, lg)

	e.Push("routes")
	for _, r := range def.Routes {
		if err := w.PlaceRouteInLine(math.Point(r.From), math.Point(r.To)); err != nil {
			e.Error(err)
		}
	}
	e.Pop()

	e.Push("beacons")
	for _, b := range def.Beacons {
		if err := w.PlaceTile(sim.BeaconTile(b.ID), math.Point{b.X, b.Y}); err != nil {
			e.Error(err)
		}
	}
	e.Pop()

	e.Push("airports")
	for _, a := range def.Airports {
		facing := cardinalDirection(a.Facing, e)
		if err := w.PlaceTile(sim.AirportTile(facing, a.ID), math.Point{a.X, a.Y}); err != nil {
			e.Error(err)
		}
	}
	e.Pop()

	e.Push("exits")
	if len(def.Exits) == 0 {
		e.ErrorString("a level needs at least one exit to spawn planes from")
	}
	for _, x := range def.Exits {
		wall, err := sim.ParseWall(x.Wall)
		if err != nil {
			e.Error(err)
			continue
		}
		heading := cardinalDirection(x.Heading, e)
		if err := w.PlaceExit(wall, heading, x.Offset, x.ID); err != nil {
			e.Error(err)
		}
	}
	e.Pop()

	spawn := SpawnSchedule{
		Interval:  def.Spawn.Interval,
		MaxPlanes: def.Spawn.MaxPlanes,
	}
	if spawn.Interval == 0 {
		spawn.Interval = defaultSpawnInterval
	}
	if spawn.MaxPlanes == 0 {
		spawn.MaxPlanes = defaultMaxPlanes
	}
	if spawn.Interval < 0 || spawn.MaxPlanes < 0 {
		e.ErrorString("spawn interval and max_planes must be positive")
	}

	if e.HaveErrors() {
		return nil
	}
	return &Level{Name: def.Name, World: w, Spawn: spawn}
}
