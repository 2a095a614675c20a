package main

// registerIOCommands wires spec.md §4.3's I/O commands: print, newline,
// line read, single-character read.
func registerIOCommands() {
	register('p', func(vm *VM) error {
		return vm.writeString(vm.store.Active().Pop().String())
	})
	register('n', func(vm *VM) error {
		return vm.writeString("\n")
	})
	register('r', func(vm *VM) error {
		if err := vm.out.Flush(); err != nil {
			return err
		}
		line, err := vm.in.ReadLine()
		if err != nil {
			return err
		}
		vm.store.Active().Push(Str(line))
		return nil
	})
	register(',', func(vm *VM) error {
		if err := vm.out.Flush(); err != nil {
			return err
		}
		r, err := vm.in.ReadChar()
		if err != nil {
			return err
		}
		vm.store.Active().Push(Str(string(r)))
		return nil
	})
}
