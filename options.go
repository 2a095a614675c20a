package main

import (
	"bytes"
	"io"

	"github.com/acetolang/aceto/internal/flushio"
	"github.com/acetolang/aceto/internal/stdin"
)

// VMOption configures a VM at construction, grounded on gothird's
// options.go/api.go functional-options pattern (noption/options flattening),
// generalized from VM-memory options to Aceto's input/output/seed/trace/
// dump/step-limit options.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
)

// VMOptions flattens a slice of options into one, the same way gothird's
// api.go does.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(vm *VM) {}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

// WithInput wires r as the source for both `r` (line) and `,` (character)
// reads, via internal/stdin's shared scanner.
func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithOutput wires w as the destination for `p`/`n`/`B`.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee additionally mirrors output to w, mirroring gothird's withTee.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithSeed sets the PRNG seed (spec.md §6's ACETO_SEED environment hook).
func WithSeed(seed int64) VMOption { return seedOption(seed) }

// WithStepLimit bounds the number of dispatcher steps before the VM halts,
// a safety valve for embedding/testing that spec.md's reference interpreter
// has no equivalent of.
func WithStepLimit(n int) VMOption { return stepLimitOption(n) }

// WithLogf installs a trace/diagnostic sink, mirroring gothird's WithLogf.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// WithDump enables a state dump on halt (see dumper.go).
func WithDump(enabled bool) VMOption { return dumpOption(enabled) }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type seedOption int64
type stepLimitOption int
type dumpOption bool
type withLogfn func(mess string, args ...interface{})

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (i inputOption) apply(vm *VM) {
	vm.in = &stdStreams{in: stdin.NewReader(i.Reader, "<stdin>")}
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (seed seedOption) apply(vm *VM) { vm.state.Reseed(int64(seed)) }

func (n stepLimitOption) apply(vm *VM) { vm.state.StepLimit = int(n) }

func (d dumpOption) apply(vm *VM) { vm.dumpHalt = bool(d) }

func (logfn withLogfn) apply(vm *VM) { vm.logfn = logfn }
