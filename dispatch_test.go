package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCommandKnownASCII(t *testing.T) {
	fn, ok := lookupCommand('+')
	assert.True(t, ok)
	assert.NotNil(t, fn)
}

func TestLookupCommandKnownWide(t *testing.T) {
	fn, ok := lookupCommand('×')
	assert.True(t, ok)
	assert.NotNil(t, fn)
}

func TestLookupCommandUnknownCharacterIsNoOp(t *testing.T) {
	// spec.md §6: "Any character not listed as a command is a no-op."
	_, ok := lookupCommand('Q' + 1000)
	assert.False(t, ok)

	_, ok = lookupCommand(' ')
	assert.False(t, ok)
}

func TestDigitsPushIntegerLiteral(t *testing.T) {
	vm := New("")
	fn, ok := lookupCommand('7')
	assert.True(t, ok)
	assert.NoError(t, fn(vm))
	assert.True(t, vm.store.Active().Pop().Equal(IntFromInt64(7)))
}

func TestRotateAndMoveUsesAndAdvancesHeading(t *testing.T) {
	vm := New("")
	vm.state.Heading = North

	fn, ok := lookupCommand('W')
	require.True(t, ok)

	require.NoError(t, fn(vm))
	dx, dy := vm.state.override.X, vm.state.override.Y
	assert.Equal(t, 0, dx)
	assert.Equal(t, 1, dy, "first invocation overrides with the current heading (North)")
	assert.Equal(t, East, vm.state.Heading, "heading rotates 90 clockwise after firing")

	require.NoError(t, fn(vm))
	dx, dy = vm.state.override.X, vm.state.override.Y
	assert.Equal(t, 1, dx)
	assert.Equal(t, 0, dy, "second invocation overrides with the now-current heading (East)")
	assert.Equal(t, South, vm.state.Heading)
}
