package main

import (
	"math/rand"
	"time"
)

// Direction is the four-state cardinal held in State.Heading, which W/E/S/N
// read and rotate; the sign of the Hilbert-curve advance is the separate
// State.Forward flag (see DESIGN.md's open-question decision).
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Clockwise returns the cardinal 90° clockwise from d.
func (d Direction) Clockwise() Direction { return (d + 1) % 4 }

// Opposite returns the cardinal 180° from d. `u` does not use it: `u`
// toggles State.Forward and leaves Heading unchanged.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Delta returns the one-step (dx,dy) for the cardinal.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default: // West
		return -1, 0
	}
}

// Point is a grid coordinate.
type Point struct{ X, Y int }

// State holds everything spec.md §3 names as "Interpreter state" plus the
// added step-count/limit and RNG of SPEC_FULL.md.
//
// Two distinct notions of "direction" coexist (see DESIGN.md's open-question
// decision): Forward, a boolean toggled only by `u`, determines the sign of
// the Hilbert-curve advance (+1/-1 along the linear index); Heading, a
// four-state cardinal advanced only by W/E/S/N, determines what those four
// commands' one-shot movement override computes on their *next* invocation
// (rotating 90° clockwise from whichever cardinal is current). The two
// never interact: a plain `<`/`>`/`v`/`^` override never touches Heading,
// and Forward never affects what W/E/S/N compute.
type State struct {
	Position Point
	Forward  bool
	Heading  Direction

	// override, when hasOverride is true, is a one-shot movement vector
	// set by <>v^WESN?, mirrors, and jumps; it is consumed (and toroidally
	// wrapped) by the next position advance. The `\` skip-next step is the
	// VM's skipNext flag, not an override.
	override    Point
	hasOverride bool

	CatchCell    *Point
	Quick        Value
	PreviousCmd  rune
	havePrevious bool

	ClockBase time.Time

	rng *rand.Rand

	StepCount int
	StepLimit int // 0 means unlimited
}

// NewState returns a fresh interpreter state: quick = Integer 0 (see
// DESIGN.md open question), no previous command recorded (so `.` does
// nothing until a command has run), Forward true, Heading North, clock
// base now.
func NewState(seed int64) *State {
	return &State{
		Forward:   true,
		Heading:   North,
		Quick:     zeroInt(),
		ClockBase: time.Now(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SetOverride records a one-shot movement vector, consumed by the next
// Advance.
func (s *State) SetOverride(dx, dy int) {
	s.override = Point{dx, dy}
	s.hasOverride = true
}

// RNG exposes the seeded generator to commands (`R`, `?`, `Y`).
func (s *State) RNG() *rand.Rand { return s.rng }

// Reseed replaces the generator's seed, implementing the ACETO_SEED
// environment hook of spec.md §6.
func (s *State) Reseed(seed int64) { s.rng = rand.New(rand.NewSource(seed)) }

// ResetClock implements `T`.
func (s *State) ResetClock() { s.ClockBase = time.Now() }

// Elapsed implements `t`: seconds since ClockBase.
func (s *State) Elapsed() float64 { return time.Since(s.ClockBase).Seconds() }

// Clock implements `τ`: the current wall-clock broken into components, in
// the order spec.md §4.3 pushes them (second first, year last so it ends on
// top).
func (s *State) Clock() (sec, minute, hour, day int, month time.Month, year int) {
	now := time.Now()
	return now.Second(), now.Minute(), now.Hour(), now.Day(), now.Month(), now.Year()
}
