// level/spawn_test.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package level

import (
	"testing"

	"github.com/avfritz/gatc/math"
	"github.com/avfritz/gatc/sim"
)

func spawnTestWorld(t *testing.T) *sim.World {
	t.Helper()
	w := sim.NewWorld(20, 20, nil)
	for _, err := range []error{
		w.PlaceExit(sim.NorthWall, math.South, 5, 0),
		w.PlaceExit(sim.SouthWall, math.North, 5, 1),
		w.PlaceTile(sim.AirportTile(math.North, 0), math.Point{10, 10}),
	} {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return w
}

func TestSpawnerSchedule(t *testing.T) {
	w := spawnTestWorld(t)
	s := NewSpawner(SpawnSchedule{Interval: 3, MaxPlanes: 2}, 1, nil)

	// No world ticks here, so spawned planes never leave; only the
	// spawner's own schedule and the plane cap are in play.
	for tick := 1; tick <= 9; tick++ {
		p, err := s.Tick(w)
		if err != nil {
			t.Fatalf("tick %d: unexpected error: %v", tick, err)
		}
		onSchedule := tick%3 == 0
		atCap := w.PlaneCount() >= 2
		if p == nil && onSchedule && !atCap {
			t.Errorf("tick %d: no plane was spawned", tick)
		}
		if p != nil && !onSchedule {
			t.Errorf("tick %d: plane spawned off schedule", tick)
		}
	}
	if w.PlaneCount() != 2 {
		t.Errorf("got %d planes, expected the cap of 2", w.PlaneCount())
	}

	// Spawned planes carry sensible destinations for this level.
	for _, id := range w.PlaneIDs() {
		p, _ := w.Plane(id)
		switch p.Destination.Kind {
		case sim.DestinationAirport:
			if p.Destination.ID != 0 {
				t.Errorf("plane %c: destination %s does not exist", id, p.Destination)
			}
		case sim.DestinationExit:
			if _, ok := w.Exit(p.Destination.ID); !ok {
				t.Errorf("plane %c: destination %s does not exist", id, p.Destination)
			}
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	type spawned struct {
		id   byte
		kind sim.PlaneKind
		dest sim.Destination
		pos  math.Point
	}

	run := func() []spawned {
		w := spawnTestWorld(t)
		s := NewSpawner(SpawnSchedule{Interval: 1, MaxPlanes: 10}, 42, nil)
		var planes []spawned
		for tick := 0; tick < 8; tick++ {
			p, err := s.Tick(w)
			if err != nil {
				t.Fatalf("tick %d: unexpected error: %v", tick+1, err)
			}
			if p != nil {
				planes = append(planes, spawned{id: p.ID, kind: p.Kind, dest: p.Destination, pos: p.Pos})
			}
		}
		return planes
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("got %d and %d planes from identical runs", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("spawn %d: got %+v and %+v from identical runs", i, a[i], b[i])
		}
	}
}
