package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadGridPadsToPowerOfTwo(t *testing.T) {
	g := LoadGrid("abc\nde")
	assert.Equal(t, 4, g.N)
	assert.Equal(t, 3, g.SourceWidth)
	assert.Equal(t, 2, g.SourceHeight)
}

func TestLoadGridOriginIsBottomLeftFirstLineOnTop(t *testing.T) {
	// "ab\ncd" : "ab" is the visually top row, "cd" the bottom row.
	g := LoadGrid("ab\ncd")
	assert.Equal(t, 'c', g.At(0, 0))
	assert.Equal(t, 'd', g.At(1, 0))
	assert.Equal(t, 'a', g.At(0, g.N-1))
	assert.Equal(t, 'b', g.At(1, g.N-1))
}

func TestLoadGridPadsWithSpaces(t *testing.T) {
	g := LoadGrid("\"Hi\n\"p")
	assert.Equal(t, 4, g.N)
	assert.Equal(t, ' ', g.At(g.N-1, g.N-1))
}

func TestLoadGridEmptySource(t *testing.T) {
	g := LoadGrid("")
	assert.GreaterOrEqual(t, g.N, 1)
}

func TestGridWrapToroidal(t *testing.T) {
	g := LoadGrid("abcd\nefgh\nijkl\nmnop")
	x, y := g.Wrap(-1, 0)
	assert.Equal(t, g.N-1, x)
	assert.Equal(t, 0, y)

	x, y = g.Wrap(g.N, g.N)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestGridAtOutOfBoundsIsSpace(t *testing.T) {
	g := LoadGrid("a")
	assert.Equal(t, ' ', g.At(-1, -1))
	assert.Equal(t, ' ', g.At(g.N, g.N))
}

func TestLoadGridSingleCellSourceFloorsAtTwo(t *testing.T) {
	// spec.md §4.1 mandates N>=2 for any non-empty source, even a single
	// character; only the fully empty source may stay at N=1.
	g := LoadGrid("a")
	assert.Equal(t, 2, g.N)
}
