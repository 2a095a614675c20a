package main

import (
	"strings"
)

// Grid is the padded, power-of-two-sided character array of spec.md §3.
// Coordinate origin (0,0) is the bottom-left; y grows upward, x rightward.
type Grid struct {
	N int
	// cells is a flat N*N vector; cells[y*N+x] is the character at (x,y),
	// with y measured from the bottom per spec.md §3.
	cells []rune

	// SourceWidth/SourceHeight record the pre-padding source dimensions,
	// used only by -dump reporting.
	SourceWidth, SourceHeight int
}

// LoadGrid splits text into lines (the first line of the text is the TOP
// row as conventionally written) and normalizes them into a square
// power-of-two grid per spec.md §4.1. It never fails; an unterminated
// string literal is detected later, while running (see errors.go's
// ParseError).
func LoadGrid(text string) *Grid {
	lines := splitLines(text)

	height := len(lines)
	width := 0
	for _, ln := range lines {
		if n := len([]rune(ln)); n > width {
			width = n
		}
	}

	// An entirely empty source (no lines at all) is the one case allowed to
	// stay at N=1; any non-empty source, even a single cell, floors at the
	// spec's mandated N>=2 (spec.md §4.1).
	isEmpty := len(lines) == 1 && lines[0] == ""
	n := nextPow2(maxInt(width, height))
	if isEmpty {
		if n < 1 {
			n = 1
		}
	} else if n < 2 {
		n = 2
	}

	g := &Grid{N: n, cells: make([]rune, n*n), SourceWidth: width, SourceHeight: height}
	for i := range g.cells {
		g.cells[i] = ' '
	}

	// lines[0] is the topmost source line; grid row y=N-1 is the top row,
	// since y grows upward from the bottom-left origin.
	for row, ln := range lines {
		y := n - 1 - row
		if y < 0 {
			break
		}
		x := 0
		for _, r := range ln {
			if x >= n {
				break
			}
			g.set(x, y, r)
			x++
		}
	}
	return g
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

func nextPow2(n int) int {
	if n < 2 {
		return n
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// At returns the character at grid coordinate (x,y).
func (g *Grid) At(x, y int) rune {
	if x < 0 || y < 0 || x >= g.N || y >= g.N {
		return ' '
	}
	return g.cells[y*g.N+x]
}

func (g *Grid) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.N || y >= g.N {
		return
	}
	g.cells[y*g.N+x] = r
}

// InBounds reports whether (x,y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.N && y < g.N
}

// Wrap reduces (x,y) modulo the grid's bounds, implementing the toroidal
// wrap-around that directional overrides use (spec.md §4.4).
func (g *Grid) Wrap(x, y int) (int, int) {
	return wrapMod(x, g.N), wrapMod(y, g.N)
}

func wrapMod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
