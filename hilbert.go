package main

// D2XY computes the (x,y) grid coordinate for linear Hilbert index d over an
// N x N grid (N a power of two), using the standard iterative
// quadrant-rotation algorithm (Hilbert, 1891). The curve is oriented so that
// D2XY(N, 0) == (0,0) and D2XY(N, N*N-1) == (N-1, 0), per spec.md §4.1.
func D2XY(n, d int) (x, y int) {
	for s := 1; s < n; s *= 2 {
		rx := 1 & (d / 2)
		ry := 1 & (d ^ rx)
		x, y = rot(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		d /= 4
	}
	return x, y
}

// XY2D is the inverse of D2XY, used by the relative-jump command `j` and by
// the Hilbert-curve advance in vm.go's stepOnce.
func XY2D(n, x, y int) (d int) {
	for s := n / 2; s > 0; s /= 2 {
		var rx, ry int
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = rot(s, x, y, rx, ry)
	}
	return d
}

// rot performs the quadrant rotation/reflection step shared by D2XY and
// XY2D.
func rot(s, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = s - 1 - x
			y = s - 1 - y
		}
		x, y = y, x
	}
	return x, y
}
