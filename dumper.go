package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
)

// vmDumper prints a snapshot of interpreter state, grounded on gothird's
// dumper.go (vmDumper.dump/dumpStack) but reporting grid/position/store
// state instead of a Forth dictionary and memory image.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (d vmDumper) dump() {
	fmt.Fprintf(d.out, "# Aceto VM Dump\n")
	fmt.Fprintf(d.out, "  grid: %v x %v (source %v x %v)\n", d.vm.grid.N, d.vm.grid.N, d.vm.grid.SourceWidth, d.vm.grid.SourceHeight)
	fmt.Fprintf(d.out, "  position: (%v,%v)  forward=%v heading=%v\n", d.vm.state.Position.X, d.vm.state.Position.Y, d.vm.state.Forward, d.vm.state.Heading)
	if d.vm.state.CatchCell != nil {
		fmt.Fprintf(d.out, "  catch_cell: (%v,%v)\n", d.vm.state.CatchCell.X, d.vm.state.CatchCell.Y)
	} else {
		fmt.Fprintf(d.out, "  catch_cell: none\n")
	}
	fmt.Fprintf(d.out, "  quick: %v\n", d.vm.state.Quick)
	fmt.Fprintf(d.out, "  steps: %v\n", humanize.Comma(int64(d.vm.state.StepCount)))
	fmt.Fprintf(d.out, "  elapsed: %v\n", humanize.RelTime(d.vm.state.ClockBase, time.Now(), "", ""))
	d.dumpStore()
}

func (d vmDumper) dumpStore() {
	indices := make([]int, 0, len(d.vm.store.stacks))
	for i := range d.vm.store.stacks {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	fmt.Fprintf(d.out, "  stacks (active=%v):\n", d.vm.store.ActiveIndex())
	for _, i := range indices {
		s := d.vm.store.stacks[i]
		mark := " "
		if i == d.vm.store.ActiveIndex() {
			mark = "*"
		}
		fmt.Fprintf(d.out, "  %v %4v sticky=%-5v %v\n", mark, i, s.Sticky(), s.vals)
	}
}
