package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHilbertBijection(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16} {
		for d := 0; d < n*n; d++ {
			x, y := D2XY(n, d)
			require.Equal(t, d, XY2D(n, x, y), "n=%d d=%d", n, d)
		}
	}
}

func TestHilbertEndpoints(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16} {
		x, y := D2XY(n, 0)
		assert.Equal(t, 0, x, "n=%d d2xy(0).x", n)
		assert.Equal(t, 0, y, "n=%d d2xy(0).y", n)

		x, y = D2XY(n, n*n-1)
		assert.Equal(t, n-1, x, "n=%d d2xy(N*N-1).x", n)
		assert.Equal(t, 0, y, "n=%d d2xy(N*N-1).y", n)
	}
}

func TestXY2DIsInjectiveOverFullGrid(t *testing.T) {
	n := 8
	seen := make(map[int]bool, n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			d := XY2D(n, x, y)
			require.GreaterOrEqual(t, d, 0)
			require.Less(t, d, n*n)
			require.False(t, seen[d], "xy2d(%d,%d) = %d collides with an earlier cell", x, y, d)
			seen[d] = true
		}
	}
}
