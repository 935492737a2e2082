// level/loader_test.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package level

import (
	"os"
	"path/filepath"
	"testing"
)

const loaderTestDef = `{
	"name": "corridor",
	"width": 16,
	"height": 12,
	"exits": [
		{"id": 0, "wall": "N", "offset": 8, "heading": "S"},
		{"id": 1, "wall": "S", "offset": 8, "heading": "N"}
	]
}`

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corridor.json")
	if err := os.WriteFile(path, []byte(loaderTestDef), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ld := NewLoader(nil)

	a, err := ld.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "corridor" {
		t.Errorf("got name %q", a.Name)
	}

	// Each load builds a fresh world so two games never share plane state.
	b, err := ld.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.World == b.World {
		t.Errorf("repeated loads returned a shared world")
	}

	// The parsed definition is cached: removing the file does not break
	// further loads.
	if err := os.Remove(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ld.Load(path); err != nil {
		t.Errorf("unexpected error after cache warm-up: %v", err)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	ld := NewLoader(nil)
	if _, err := ld.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("no error was returned for a missing file")
	}
}

func TestLoaderInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"width": 10, "height": 10}`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ld := NewLoader(nil)
	if _, err := ld.Load(path); err == nil {
		t.Errorf("no error was returned for an invalid definition")
	}
}
