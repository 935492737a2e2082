// sim/render.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avfritz/gatc/math"
	"github.com/avfritz/gatc/util"

	"github.com/brunoga/deep"
)

// Snapshot returns a read-only copy of the world for a rendering pass, so
// the renderer never holds live references to plane state across ticks.
func (w *World) Snapshot() *World {
	return &World{
		width:       w.width,
		height:      w.height,
		tiles:       util.MapSlice(w.tiles, util.DuplicateSlice[Tile]),
		exits:       util.DuplicateMap(w.exits),
		exitOrder:   util.DuplicateSlice(w.exitOrder),
		planes:      deep.MustCopy(w.planes),
		nextPlaneID: w.nextPlaneID,
		lg:          w.lg,
	}
}

// Render returns the textual dump of the grid: a bordered rectangle where
// each interior cell is a fixed-width 2-character glyph, planes drawn over
// their tiles. This is the only state the rendering layer sees; it is
// lossy where planes transiently share a cell.
func (w *World) Render() string {
	// Planes drawn over tiles; with two planes on one cell the higher id
	// wins, which the collision check turns terminal anyway.
	overlay := make(map[math.Point]*Plane)
	for _, id := range w.PlaneIDs() {
		p := w.planes[id]
		overlay[p.Pos] = p
	}

	lines := make([]string, 0, w.height+2)
	var sb strings.Builder

	sb.WriteString("┌")
	for x := 0; x < w.width; x++ {
		sb.WriteString(w.wallGlyph(NorthWall, x))
	}
	sb.WriteString("┐")
	lines = append(lines, sb.String())
	sb.Reset()

	for y := 0; y < w.height; y++ {
		sb.WriteString(w.wallGlyph(WestWall, y))
		for x := 0; x < w.width; x++ {
			if p, ok := overlay[math.Point{x, y}]; ok {
				sb.WriteString(p.Glyph())
			} else {
				sb.WriteString(w.tiles[y][x].Glyph())
			}
		}
		sb.WriteString(w.wallGlyph(EastWall, y))
		lines = append(lines, sb.String())
		sb.Reset()
	}

	sb.WriteString("└")
	for x := 0; x < w.width; x++ {
		sb.WriteString(w.wallGlyph(SouthWall, x))
	}
	sb.WriteString("┘")
	lines = append(lines, sb.String())

	return strings.Join(lines, "\n")
}

// wallGlyph renders one border cell: an exit marker if an exit is
// registered at that wall offset, a plain wall glyph otherwise. The north
// and south border cells are two characters wide to match the interior
// glyphs; the side walls are one, so their exit markers are the bare id.
func (w *World) wallGlyph(wall Wall, offset int) string {
	e, ok := w.exitAt(wall, offset)
	switch wall {
	case NorthWall, SouthWall:
		if ok {
			return fmt.Sprintf("e%d", e.ID)
		}
		return "──"
	default:
		if ok {
			return strconv.Itoa(e.ID)
		}
		return "│"
	}
}
