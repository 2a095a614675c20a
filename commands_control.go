package main

import "math"

// registerControlCommands wires spec.md §4.4's movement/control-flow
// commands and §4.3's "special" commands (constants, clock, quick memory).
// `.` and the literal-opening/`\` commands are handled in vm.go/dispatch.go.
func registerControlCommands() {
	register('<', moveOverride(-1, 0))
	register('>', moveOverride(1, 0))
	register('v', moveOverride(0, -1))
	register('^', moveOverride(0, 1))

	register('W', rotateAndMove)
	register('E', rotateAndMove)
	register('S', rotateAndMove)
	register('N', rotateAndMove)

	register('u', func(vm *VM) error {
		vm.state.Forward = !vm.state.Forward
		return nil
	})

	register('?', func(vm *VM) error {
		dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		d := dirs[vm.state.RNG().Intn(len(dirs))]
		vm.state.SetOverride(d[0], d[1])
		return nil
	})

	register('|', mirrorIf(true, false))
	register('_', mirrorIf(false, true))
	register('#', mirrorIf(true, true))

	register('O', func(vm *VM) error {
		vm.jumpTo(startCell(vm, vm.state.Forward))
		return nil
	})
	register(';', func(vm *VM) error {
		vm.jumpTo(startCell(vm, !vm.state.Forward))
		return nil
	})

	register('j', func(vm *VM) error {
		s := vm.store.Active()
		k := s.Pop()
		ki, ok := k.AsInt()
		if !ok || !ki.IsInt64() {
			return errTypeMismatch
		}
		n := vm.grid.N
		d := XY2D(n, vm.state.Position.X, vm.state.Position.Y)
		d2 := wrapMod(d+int(ki.Int64()), n*n)
		x, y := D2XY(n, d2)
		vm.jumpTo(Point{X: x, Y: y})
		return nil
	})
	register('§', func(vm *VM) error {
		s := vm.store.Active()
		k := s.Pop()
		ki, ok := k.AsInt()
		if !ok || !ki.IsInt64() {
			return errTypeMismatch
		}
		n := vm.grid.N
		d2 := wrapMod(int(ki.Int64()), n*n)
		x, y := D2XY(n, d2)
		vm.jumpTo(Point{X: x, Y: y})
		return nil
	})

	register('`', func(vm *VM) error {
		s := vm.store.Active()
		if !s.Pop().Truthy() {
			vm.skipNext = true
		}
		return nil
	})

	register('X', func(vm *VM) error {
		vm.halt(&exitCodeError{Code: 0})
		return nil // unreachable: halt panics
	})

	register('@', func(vm *VM) error {
		p := vm.state.Position
		vm.state.CatchCell = &p
		return nil
	})
	register('&', func(vm *VM) error { return errUserRaised })
	register('$', func(vm *VM) error {
		if !vm.store.Active().Pop().Truthy() {
			return errUserRaised
		}
		return nil
	})

	register('P', func(vm *VM) error { vm.store.Active().Push(Float(math.Pi)); return nil })
	register('e', func(vm *VM) error { vm.store.Active().Push(Float(math.E)); return nil })
	register('R', func(vm *VM) error {
		vm.store.Active().Push(Float(vm.state.RNG().Float64()))
		return nil
	})
	register('T', func(vm *VM) error { vm.state.ResetClock(); return nil })
	register('t', func(vm *VM) error {
		vm.store.Active().Push(Float(vm.state.Elapsed()))
		return nil
	})
	register('τ', func(vm *VM) error {
		s := vm.store.Active()
		sec, minute, hour, day, month, year := vm.state.Clock()
		s.Push(IntFromInt64(int64(sec)))
		s.Push(IntFromInt64(int64(minute)))
		s.Push(IntFromInt64(int64(hour)))
		s.Push(IntFromInt64(int64(day)))
		s.Push(IntFromInt64(int64(month)))
		s.Push(IntFromInt64(int64(year)))
		return nil
	})

	register('L', func(vm *VM) error { vm.store.Active().Push(vm.state.Quick); return nil })
	register('M', func(vm *VM) error {
		vm.state.Quick = vm.store.Active().Pop()
		return nil
	})
	register('B', func(vm *VM) error {
		return vm.writeString(vm.state.Quick.String())
	})
}

func moveOverride(dx, dy int) commandFunc {
	return func(vm *VM) error {
		vm.state.SetOverride(dx, dy)
		return nil
	}
}

// rotateAndMove implements W/E/S/N: the one-shot override is whichever
// cardinal Heading currently holds, then Heading rotates 90° clockwise so
// the next W/E/S/N invocation computes the next cardinal (see DESIGN.md's
// open-question decision).
func rotateAndMove(vm *VM) error {
	dx, dy := vm.state.Heading.Delta()
	vm.state.SetOverride(dx, dy)
	vm.state.Heading = vm.state.Heading.Clockwise()
	return nil
}

func mirrorIf(flipX, flipY bool) commandFunc {
	return func(vm *VM) error {
		s := vm.store.Active()
		if !s.Pop().Truthy() {
			return nil
		}
		p := vm.state.Position
		n := vm.grid.N
		tx, ty := p.X, p.Y
		if flipX {
			tx = n - 1 - p.X
		}
		if flipY {
			ty = n - 1 - p.Y
		}
		vm.state.SetOverride(tx-p.X, ty-p.Y)
		return nil
	}
}

func startCell(vm *VM, forward bool) Point {
	if forward {
		return Point{X: 0, Y: 0}
	}
	return Point{X: vm.grid.N - 1, Y: 0}
}

// jumpTo sets a one-shot override that lands exactly on target from the
// current position, reusing the override/wrap machinery of vm.go's
// stepOnce for what spec.md §4.4 describes as direct position assignment.
func (vm *VM) jumpTo(target Point) {
	p := vm.state.Position
	vm.state.SetOverride(target.X-p.X, target.Y-p.Y)
}
