// level/spawn.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package level

import (
	"github.com/avfritz/gatc/log"
	"github.com/avfritz/gatc/rand"
	"github.com/avfritz/gatc/sim"
	"github.com/avfritz/gatc/util"
)

// Spawner feeds planes into a world on the level's schedule, picking the
// entry exit, the plane kind, and the destination at random. It is
// deterministic for a given seed.
type Spawner struct {
	sched SpawnSchedule
	r     rand.Rand
	lg    *log.Logger
	ticks int
}

func NewSpawner(sched SpawnSchedule, seed int64, lg *log.Logger) *Spawner {
	s := &Spawner{sched: sched, r: rand.New(), lg: lg}
	s.r.Seed(seed)
	return s
}

// Tick is called once per world tick; on schedule ticks it spawns a plane
// unless the level is already at its plane cap. The spawned plane (if
// any) is returned so the driver can surface it.
func (s *Spawner) Tick(w *sim.World) (*sim.Plane, error) {
	s.ticks++
	if s.ticks%s.sched.Interval != 0 {
		return nil, nil
	}
	if w.PlaneCount() >= s.sched.MaxPlanes {
		s.lg.Debugf("spawn suppressed: %d planes active", w.PlaneCount())
		return nil, nil
	}

	exits := w.ExitIDs()
	if len(exits) == 0 {
		return nil, nil
	}
	entry := rand.SampleSlice(&s.r, exits)
	kind := util.Select(s.r.Intn(2) == 0, sim.PlaneSmall, sim.PlaneJet)

	return w.SpawnPlaneAtExit(entry, kind, s.pickDestination(w, entry))
}

// pickDestination chooses an airport or an exit other than the entry,
// favoring neither; a plane is only sent back out the exit it came in
// through when the level has nothing else.
func (s *Spawner) pickDestination(w *sim.World, entry int) sim.Destination {
	airports := w.AirportIDs()
	exits := util.FilterSlice(w.ExitIDs(), func(id int) bool { return id != entry })

	if len(airports) > 0 && (len(exits) == 0 || s.r.Intn(2) == 0) {
		return sim.AirportDestination(rand.SampleSlice(&s.r, airports))
	}
	if len(exits) == 0 {
		return sim.ExitDestination(entry)
	}
	return sim.ExitDestination(rand.SampleSlice(&s.r, exits))
}
