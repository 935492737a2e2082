// sim/errors.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"errors"
)

var (
	ErrExitPosOutOfBounds = errors.New("Exit position is out of bounds")
	ErrNoExitForID        = errors.New("No exit exists for id")
	ErrNoPlaneForID       = errors.New("No plane exists for id")
	ErrPlaneNextPosBad    = errors.New("Plane tried to go to a bad position")
	ErrPlaneNoFuel        = errors.New("Plane has run out of fuel")
	ErrPosFromSigned      = errors.New("Negative positions are not allowed")
	ErrPosOutOfBounds     = errors.New("Position is out of bounds")
)
