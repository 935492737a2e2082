// sim/record_test.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"bytes"
	"testing"

	"github.com/avfritz/gatc/math"
)

func TestRecorderRoundTrip(t *testing.T) {
	w := NewWorld(20, 20, nil)
	if err := w.PlaceExit(NorthWall, math.South, 10, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.SpawnPlaneAtExit(0, PlaneJet, ExitDestination(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	r, err := NewRecorder(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		o := w.TickPlanes()
		if o.Terminal() {
			t.Fatalf("tick %d: unexpected terminal outcome %s", i+1, o)
		}
		if err := r.Record(w, o); err != nil {
			t.Fatalf("tick %d: unexpected error: %v", i+1, err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frames, err := ReadRecording(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames, expected 3", len(frames))
	}
	for i, frame := range frames {
		if frame.Tick != i+1 {
			t.Errorf("frame %d: got tick %d, expected %d", i, frame.Tick, i+1)
		}
		if frame.Outcome.Type != Ongoing {
			t.Errorf("frame %d: got outcome %s, expected Ongoing", i, frame.Outcome)
		}
		if len(frame.Planes) != 1 {
			t.Fatalf("frame %d: got %d planes, expected 1", i, len(frame.Planes))
		}
		p := frame.Planes[0]
		if p.ID != 'A' || p.Kind != PlaneJet || p.Height != SpawnHeight {
			t.Errorf("frame %d: got plane %+v", i, p)
		}
		// The jet moves one cell north per tick from its (10, 0) spawn.
		if want := (math.Point{10, i + 1}); p.Pos != want {
			t.Errorf("frame %d: got position %v, expected %v", i, p.Pos, want)
		}
	}
}

func TestReadRecordingEmpty(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRecorder(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frames, err := ReadRecording(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("got %d frames from an empty recording", len(frames))
	}
}
