// util/generic_test.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"strings"
	"testing"
)

func TestSelect(t *testing.T) {
	if Select(true, 1, 2) != 1 {
		t.Errorf("Select true returned second value")
	}
	if Select(false, 1, 2) != 2 {
		t.Errorf("Select false returned first value")
	}
}

func TestSortedMapKeys(t *testing.T) {
	m := map[byte]int{'c': 0, 'a': 1, 'x': 2, 'b': 3}
	if got := SortedMapKeys(m); !slices.Equal(got, []byte{'a', 'b', 'c', 'x'}) {
		t.Errorf("got %v", got)
	}
	if got := SortedMapKeys(map[int]int{}); len(got) != 0 {
		t.Errorf("got %v from an empty map", got)
	}
}

func TestMapSlice(t *testing.T) {
	doubled := MapSlice([]int{1, 2, 3}, func(x int) int { return 2 * x })
	if !slices.Equal(doubled, []int{2, 4, 6}) {
		t.Errorf("got %v", doubled)
	}
}

func TestFilterSlice(t *testing.T) {
	odd := FilterSlice([]int{1, 2, 3, 4, 5}, func(x int) bool { return x%2 == 1 })
	if !slices.Equal(odd, []int{1, 3, 5}) {
		t.Errorf("got %v", odd)
	}
}

func TestDuplicateSlice(t *testing.T) {
	orig := []int{1, 2, 3}
	dupe := DuplicateSlice(orig)
	dupe[0] = 99
	if orig[0] != 1 {
		t.Errorf("duplicate shares storage with the original")
	}
}

func TestDuplicateMap(t *testing.T) {
	orig := map[string]int{"a": 1}
	dupe := DuplicateMap(orig)
	dupe["a"] = 99
	if orig["a"] != 1 {
		t.Errorf("duplicate shares storage with the original")
	}
}

func TestErrorLogger(t *testing.T) {
	var e ErrorLogger
	if e.HaveErrors() {
		t.Errorf("fresh logger reports errors")
	}

	e.Push("level")
	e.Push("exits")
	e.ErrorString("bad wall %q", "Q")
	e.Pop()
	e.Pop()

	if !e.HaveErrors() {
		t.Errorf("no errors reported")
	}
	if got := e.String(); !strings.Contains(got, "level / exits") || !strings.Contains(got, `bad wall "Q"`) {
		t.Errorf("got %q", got)
	}
}

func TestUnmarshalJSONErrorLocation(t *testing.T) {
	var out struct {
		N int `json:"n"`
	}
	err := UnmarshalJSON([]byte("{\n  \"n\": \"nope\"\n}"), &out)
	if err == nil {
		t.Fatalf("no error was returned")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("got %q, expected the line of the bad value", err.Error())
	}
}
