package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/acetolang/aceto/internal/panicerr"
	"github.com/acetolang/aceto/internal/runeio"
)

// litKind tracks which literal-collection mode the step loop is in; see
// spec.md §4.3's `"` and `'` commands and §4.4 step 2.
type litKind int

const (
	litNone litKind = iota
	litString
	litChar
)

// VM is the Aceto interpreter instance: grid, stack store, runtime state,
// and I/O, grounded on gothird's VM struct field grouping (internals.go)
// though the fields themselves are entirely Aceto's own.
type VM struct {
	grid  *Grid
	store *Store
	state *State

	in  interface {
		LineReader
		CharReader
	}
	out Writer

	logfn    func(mess string, args ...interface{})
	dumpHalt bool
	closers  []io.Closer

	lit       litKind
	litBuf    []rune
	litEscape bool

	skipNext   bool
	teleported bool

	halted   bool
	haltErr  error
}

// New constructs a VM from source text and options.
func New(source string, opts ...VMOption) *VM {
	vm := &VM{
		grid:  LoadGrid(source),
		store: NewStore(),
		state: NewState(time.Now().UnixNano()),
	}
	defaultOptions.apply(vm)
	VMOptions(opts...).apply(vm)
	return vm
}

// Run executes the loaded grid to termination. A nil return means normal
// termination (including the `X` command or running off the Hilbert curve's
// end); a non-nil return wraps the terminating error, and *exitCodeError
// within it (via errors.As) carries the process exit code main.go should
// use.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("aceto", func() error {
		return vm.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	var ece *exitCodeError
	if errors.As(err, &ece) && ece.Code == 0 {
		return nil
	}
	return err
}

func (vm *VM) run(ctx context.Context) error {
	defer func() {
		if vm.out != nil {
			vm.out.Flush()
		}
	}()

	if vm.grid.N == 0 {
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if vm.state.StepLimit > 0 && vm.state.StepCount >= vm.state.StepLimit {
			vm.halt(fmt.Errorf("step limit %d exceeded", vm.state.StepLimit))
		}
		vm.state.StepCount++

		c := vm.grid.At(vm.state.Position.X, vm.state.Position.Y)
		vm.trace(c)

		vm.teleported = false
		switch vm.lit {
		case litString:
			vm.continueStringLiteral(c)
		case litChar:
			vm.continueCharLiteral(c)
		default:
			vm.dispatch(c)
		}

		if vm.teleported {
			continue
		}
		if term := vm.advance(); term {
			if vm.lit != litNone {
				return &exitCodeError{Code: 2, Err: &ParseError{Cell: vm.state.Position, Err: errParseUnterm}}
			}
			return nil
		}
	}
}

// dispatch executes the command at c, special-casing `.` (repeat previous
// command — never itself stored as previous, per spec.md §4.3).
func (vm *VM) dispatch(c rune) {
	if c == '.' {
		if vm.state.havePrevious {
			vm.execCommand(vm.state.PreviousCmd)
		}
		return
	}
	vm.execCommand(c)
}

func (vm *VM) execCommand(c rune) {
	handler, ok := lookupCommand(c)
	if !ok {
		return // any character not listed as a command is a no-op (spec.md §6)
	}
	if err := handler(vm); err != nil {
		vm.raise(c, err)
		return
	}
	vm.state.PreviousCmd = c
	vm.state.havePrevious = true
}

// raise implements spec.md §7: teleport to the catch cell if set, else halt
// with a diagnostic and exit code 1.
func (vm *VM) raise(c rune, err error) {
	ce := &CommandError{Kind: errorKindOf(err), Cell: vm.state.Position, Err: err}

	if vm.state.CatchCell != nil {
		vm.logf("@", "caught %v at (%d,%d), resuming (%d,%d)", ce.Kind, vm.state.Position.X, vm.state.Position.Y, vm.state.CatchCell.X, vm.state.CatchCell.Y)
		vm.state.Position = *vm.state.CatchCell
		vm.teleported = true
		return
	}
	vm.halt(&exitCodeError{Code: 1, Err: ce})
}

// advance implements spec.md §4.4 steps 4–5: an override (if any) consumes
// one toroidally-wrapped step; otherwise the Hilbert curve advances by ±1;
// if a skip-next flag (from `\` or a falsy backtick) was set, one further
// step is taken the same way. Returns true if the program terminated
// normally (ran off either end of the curve).
func (vm *VM) advance() bool {
	next, term := vm.stepOnce(vm.state.Position)
	if term {
		return true
	}
	if vm.skipNext {
		vm.skipNext = false
		next2, term2 := vm.stepOnce(next)
		if term2 {
			return true
		}
		next = next2
	}
	vm.state.Position = next
	return false
}

func (vm *VM) stepOnce(pos Point) (Point, bool) {
	if vm.state.hasOverride {
		ov := vm.state.override
		vm.state.hasOverride = false
		x, y := vm.grid.Wrap(pos.X+ov.X, pos.Y+ov.Y)
		return Point{X: x, Y: y}, false
	}
	n := vm.grid.N
	d := XY2D(n, pos.X, pos.Y)
	if vm.state.Forward {
		d++
	} else {
		d--
	}
	if d < 0 || d >= n*n {
		return Point{}, true
	}
	x, y := D2XY(n, d)
	return Point{X: x, Y: y}, false
}

// halt panics with a haltError, unwound by Run's panicerr.Recover — mirrors
// gothird's core.go/internals.go halt pattern.
func (vm *VM) halt(err error) {
	vm.halted = true
	vm.haltErr = err
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.logf("#", "halt: %v", err)
	if vm.dumpHalt {
		vmDumper{vm: vm, out: vm.dumpWriter()}.dump()
	}
	panic(haltError{err})
}

// dumpWriter returns where -dump output goes; stderr keeps it separate from
// the program's own stdout output.
func (vm *VM) dumpWriter() io.Writer { return os.Stderr }

func (vm *VM) logf(mark, mess string, args ...interface{}) {
	if vm.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	vm.logfn("%v %v", mark, mess)
}

func (vm *VM) trace(c rune) {
	if vm.logfn == nil {
		return
	}
	vm.logf(">", "@(%d,%d) %q stack=%v active=%d", vm.state.Position.X, vm.state.Position.Y, c, vm.store.Active().vals, vm.store.ActiveIndex())
}

// writeString writes s to the output through the ANSI-safe rune writer; a
// failure is an IOError, catchable like any other command error (spec.md
// §7).
func (vm *VM) writeString(s string) error {
	_, err := runeio.WriteANSIString(vm.out, s)
	return err
}
