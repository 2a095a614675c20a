package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource loads source into a VM with a buffered output and a generous
// step limit (so a mistraced test fails with a clear error instead of
// hanging the test binary), and returns everything written to stdout plus
// whatever Run returned.
func runSource(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	vm := New(source, WithOutput(&out), WithStepLimit(10000))
	err := vm.Run(context.Background())
	return out.String(), err
}

func TestEndToEndAdditionPrint(t *testing.T) {
	// "32+p" on a single row: pushes 3, then 2, adds to 5, prints it.
	got, err := runSource(t, "32+p")
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestEndToEndSubtractionPopOrder(t *testing.T) {
	// "73-p": pushes 7 then 3; `-` pops 3 then 7 and computes 7-3.
	got, err := runSource(t, "73-p")
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

func TestEndToEndRangeAndLength(t *testing.T) {
	// "5z lp": push 5; z replaces it with 5,4,3,2,1; space is a no-op;
	// l pushes the stack's length (5); p prints it.
	got, err := runSource(t, "5z lp")
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestEndToEndStringLiteralRoundTrip(t *testing.T) {
	// A 2x2 grid: row 0 (top) = `A"`, row 1 (bottom) = `"p`. The Hilbert
	// walk visits (0,0)='"' open, (0,1)='A' content, (1,1)='"' close,
	// (1,0)='p' print, in that order.
	got, err := runSource(t, "A\"\n\"p")
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestEndToEndHilbertWalkAcrossGrid(t *testing.T) {
	// A full 4x4 grid exercising the Hilbert walk across rows, including
	// a directional override (`v`) that jumps straight to the final cell.
	src := "5+24\n*cp+\n6+ v\n37 p"
	got, err := runSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, "A6", got)
}

func TestDivideByZeroWithoutCatchHaltsWithExitCode1(t *testing.T) {
	// "10/p": pushes 1, pushes 0, `/` divides by zero with no catch cell
	// set, so the program halts instead of ever reaching `p`.
	got, err := runSource(t, "10/p")
	require.Error(t, err)
	assert.Empty(t, got, "should have halted before p")

	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, 1, ece.Code)
}

func TestCatchRecoversFromDivideByZero(t *testing.T) {
	// The program "1M@5L`00M/p" laid out along the 4x4 Hilbert walk
	// ((0,0),(1,0),(1,1),(0,1),(0,2),(0,3),(1,3),(1,2),(2,2),(2,3),(3,3)),
	// so each cell's Hilbert successor is the next character. It sets
	// quick=1, records a catch cell, then divides 5 by 0 (error). The
	// catch teleports back to `@`; this time quick is 0, so the backtick
	// skips the first `0` push, and 0/5 succeeds, printing 0.
	got, err := runSource(t, "`0/p\nL0M\n5@\n1M")
	require.NoError(t, err, "error should have been caught")
	assert.Equal(t, "0", got)
}
