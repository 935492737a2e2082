// level/loader.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package level

import (
	"fmt"
	"os"

	"github.com/avfritz/gatc/log"
	"github.com/avfritz/gatc/util"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Loader loads level files, keeping the parsed definitions in a small LRU
// cache so repeated loads of the same file skip the disk and the JSON
// decode. Each Load builds a fresh World, so callers never share
// simulation state.
type Loader struct {
	lg    *log.Logger
	cache *lru.Cache[string, levelDef]
}

func NewLoader(lg *log.Logger) *Loader {
	cache, err := lru.New[string, levelDef](16)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return &Loader{lg: lg, cache: cache}
}

func (ld *Loader) Load(path string) (*Level, error) {
	var e util.ErrorLogger

	if def, ok := ld.cache.Get(path); ok {
		ld.lg.Debugf("%s: level definition cache hit", path)
		lvl := buildLevel(def, ld.lg, &e)
		if e.HaveErrors() {
			return nil, fmt.Errorf("%s: %s", path, e.String())
		}
		return lvl, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	e.Push(path)
	var def levelDef
	if err := util.UnmarshalJSON(b, &def); err != nil {
		e.Error(err)
	}
	if def.Name == "" {
		def.Name = path
	}

	var lvl *Level
	if !e.HaveErrors() {
		lvl = buildLevel(def, ld.lg, &e)
	}
	e.Pop()

	if e.HaveErrors() {
		e.PrintErrors(ld.lg)
		return nil, fmt.Errorf("%s: invalid level definition", path)
	}

	ld.cache.Add(path, def)
	return lvl, nil
}
