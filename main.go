// main.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// This file contains the implementation of the main() function, which
// initializes the system and then runs the game loop until the game ends.

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avfritz/gatc/level"
	"github.com/avfritz/gatc/log"
	"github.com/avfritz/gatc/math"
	"github.com/avfritz/gatc/sim"

	"github.com/gdamore/tcell/v2"
)

var (
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log file directory")
	levelFile  = flag.String("level", "", "filename of JSON file with a level definition")
	tickMS     = flag.Int("tick", 0, "milliseconds between simulation ticks (overrides config)")
	seed       = flag.Int64("seed", 0, "spawn schedule seed; 0 derives one from the clock")
	recordFile = flag.String("record", "", "write a recording of the run to this file")
)

func main() {
	flag.Parse()

	// Initialize the logging system first and foremost.
	lg := log.New(*logLevel, *logDir)
	defer func() {
		if err := lg.CatchAndLogCrash(); err != nil {
			os.Exit(1)
		}
	}()

	config := LoadOrMakeDefaultConfig(lg)
	if *tickMS != 0 {
		config.TickMS = *tickMS
	}

	var lvl *level.Level
	if *levelFile != "" {
		var err error
		lvl, err = level.NewLoader(lg).Load(*levelFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	} else {
		lvl = level.Builtin(lg)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	spawner := level.NewSpawner(lvl.Spawn, *seed, lg)

	var recorder *sim.Recorder
	if *recordFile != "" {
		f, err := os.Create(*recordFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		recorder, err = sim.NewRecorder(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *recordFile, err)
			os.Exit(1)
		}
		defer recorder.Close()
	}

	if err := runGame(lvl, spawner, recorder, config, lg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	config.Save(lg)
}

type game struct {
	world    *sim.World
	spawner  *level.Spawner
	recorder *sim.Recorder
	lg       *log.Logger

	selected byte // 0 when no plane is selected
	status   string
	paused   bool
	over     bool
}

func runGame(lvl *level.Level, spawner *level.Spawner, recorder *sim.Recorder, config *Config, lg *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	g := &game{
		world:    lvl.World,
		spawner:  spawner,
		recorder: recorder,
		lg:       lg,
		status:   lvl.Name,
	}

	events := make(chan tcell.Event)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Duration(config.TickMS) * time.Millisecond)
	defer ticker.Stop()

	g.draw(screen)
	for {
		select {
		case <-ticker.C:
			g.advance()
			g.draw(screen)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if g.handleKey(ev) {
					return nil
				}
				g.draw(screen)
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}

func (g *game) advance() {
	if g.paused || g.over {
		return
	}

	outcome := g.world.TickPlanes()
	if !outcome.Terminal() {
		if _, err := g.spawner.Tick(g.world); err != nil {
			g.lg.Errorf("spawn: %v", err)
		}
	}

	if g.recorder != nil {
		if err := g.recorder.Record(g.world, outcome); err != nil {
			g.lg.Errorf("recording: %v", err)
			g.recorder = nil
		}
	}

	if outcome.Terminal() {
		g.lg.Info("game over", "outcome", outcome)
		g.status = outcome.String() + " - press q to quit"
		g.over = true
	}
}

func (g *game) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true

	// Arrow keys steer the selected plane in screen directions. South
	// carries a plane toward the top wall (the heading deltas are what the
	// spawn geometry requires), so the visually-up arrow maps to South.
	case tcell.KeyUp:
		g.turnSelected(math.South)
	case tcell.KeyDown:
		g.turnSelected(math.North)
	case tcell.KeyLeft:
		g.turnSelected(math.East)
	case tcell.KeyRight:
		g.turnSelected(math.West)

	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true
		case r == ' ':
			g.paused = !g.paused
		case r == '+' || r == '=':
			g.changeSelectedHeight(1)
		case r == '-':
			g.changeSelectedHeight(-1)
		case r >= 'a' && r <= 'y', r >= 'A' && r <= 'Y':
			g.selectPlane(byte(r))
		}
	}
	return false
}

// selectPlane selects the plane with the given id, in either case: the
// case of a plane's id encodes its kind, but controllers shouldn't need
// the shift key to pick a jet.
func (g *game) selectPlane(id byte) {
	for _, pid := range [2]byte{id, id ^ 0x20} {
		if p, ok := g.world.Plane(pid); ok {
			g.selected = pid
			g.status = fmt.Sprintf("%c: %s plane, height %d, heading %s, to %s",
				p.ID, p.Kind, p.Height, p.Heading.ShortString(), p.Destination)
			return
		}
	}
	g.selected = 0
	g.status = fmt.Sprintf("no plane %c", id)
}

func (g *game) turnSelected(d math.CardinalOrdinalDirection) {
	if g.selected == 0 {
		return
	}
	if err := g.world.TurnPlane(g.selected, d); err != nil {
		g.status = err.Error()
		g.selected = 0
	}
}

func (g *game) changeSelectedHeight(delta int) {
	if g.selected == 0 {
		return
	}
	if err := g.world.ChangePlaneHeight(g.selected, delta); err != nil {
		g.status = err.Error()
		g.selected = 0
	}
}

func (g *game) draw(screen tcell.Screen) {
	screen.Clear()

	snap := g.world.Snapshot()
	style := tcell.StyleDefault
	y := 0
	for _, line := range strings.Split(snap.Render(), "\n") {
		drawText(screen, 0, y, style, line)
		y++
	}

	status := g.status
	if g.paused {
		status = "paused | " + status
	}
	drawText(screen, 0, y+1, style, fmt.Sprintf("%d planes | %s", snap.PlaneCount(), status))

	screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
