// config.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"os"
	"path"

	"github.com/avfritz/gatc/log"
	"github.com/avfritz/gatc/util"
)

type Config struct {
	Version int
	TickMS  int
}

const currentConfigVersion = 1
const defaultTickMS = 500

func configFilePath(lg *log.Logger) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		lg.Errorf("Unable to find user config dir: %v", err)
		dir = "."
	}

	dir = path.Join(dir, "gatc")
	err = os.MkdirAll(dir, 0o700)
	if err != nil {
		lg.Errorf("%s: unable to make directory for config file: %v", dir, err)
	}

	return path.Join(dir, "config.json")
}

func LoadOrMakeDefaultConfig(lg *log.Logger) *Config {
	config := &Config{Version: currentConfigVersion, TickMS: defaultTickMS}

	fn := configFilePath(lg)
	if b, err := os.ReadFile(fn); err == nil {
		if err := util.UnmarshalJSON(b, config); err != nil {
			lg.Errorf("%s: %v", fn, err)
		}
		if config.TickMS <= 0 {
			config.TickMS = defaultTickMS
		}
	}

	return config
}

func (c *Config) Save(lg *log.Logger) {
	b, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		lg.Errorf("marshaling config: %v", err)
		return
	}
	fn := configFilePath(lg)
	if err := os.WriteFile(fn, b, 0o600); err != nil {
		lg.Errorf("%s: %v", fn, err)
	}
}
