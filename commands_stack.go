package main

// registerStackCommands wires spec.md §4.2's stack and stack-store
// operations. `swap`/`dup`/`head`/`reverse` have no letter assigned by the
// prose; `d`,`s`,`h`,`x` were free of any other assignment in the corpus's
// ASCII budget and are picked mnemonically (dup, swap, head, reverse) — see
// DESIGN.md.
func registerStackCommands() {
	register('d', func(vm *VM) error { vm.store.Active().Dup(); return nil })
	register('s', func(vm *VM) error { vm.store.Active().Swap(); return nil })
	register('h', func(vm *VM) error { vm.store.Active().Head(); return nil })
	register('x', func(vm *VM) error { vm.store.Active().Reverse(); return nil })

	register('Q', func(vm *VM) error { vm.store.Active().RotateBottomToTop(); return nil })
	register('q', func(vm *VM) error { vm.store.Active().RotateTopToBottom(); return nil })
	register('Y', func(vm *VM) error { vm.store.Active().Shuffle(vm.state.RNG()); return nil })
	register('g', func(vm *VM) error { vm.store.Active().SortAsc(); return nil })
	register('G', func(vm *VM) error { vm.store.Active().SortDesc(); return nil })
	register('l', func(vm *VM) error {
		vm.store.Active().Push(IntFromInt64(int64(vm.store.Active().Len())))
		return nil
	})
	register('C', func(vm *VM) error {
		s := vm.store.Active()
		v := s.Pop()
		s.Push(Bool(s.Contains(v)))
		return nil
	})
	register('×', func(vm *VM) error { return vm.store.Active().MultiplyByTop() })

	register('ø', func(vm *VM) error { vm.store.Active().Clear(); return nil })
	register('k', func(vm *VM) error { vm.store.Active().SetSticky(true); return nil })
	register('K', func(vm *VM) error { vm.store.Active().SetSticky(false); return nil })

	// Navigation: `(` is index-1 ("left"), `)` is index+1 ("right"), per
	// spec.md §3's "left is index-1, right is index+1".
	register('(', func(vm *VM) error { vm.store.SetActive(-1); return nil })
	register(')', func(vm *VM) error { vm.store.SetActive(1); return nil })
	register('{', func(vm *VM) error { vm.store.MoveToNeighbor(-1); return nil })
	register('}', func(vm *VM) error { vm.store.MoveToNeighbor(1); return nil })
	register('[', func(vm *VM) error { vm.store.ShiftAndMove(-1); return nil })
	register(']', func(vm *VM) error { vm.store.ShiftAndMove(1); return nil })

	register('z', func(vm *VM) error {
		s := vm.store.Active()
		n := s.Pop()
		bi, ok := n.AsInt()
		if !ok {
			return errTypeMismatch
		}
		pushRange(s, bi, false)
		return nil
	})
	register('Z', func(vm *VM) error {
		s := vm.store.Active()
		n := s.Pop()
		bi, ok := n.AsInt()
		if !ok {
			return errTypeMismatch
		}
		pushRange(s, bi, true)
		return nil
	})
}
