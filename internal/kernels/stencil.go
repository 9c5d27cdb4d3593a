// Package kernels implements the CPU stencil primitives used by the mock
// accelerator backend.
//
// All kernels operate on dense row-major buffers, take pre-validated slices
// (dst and src of equal length, rows*cols == len(src) for the 2D variants)
// and allocate nothing. Boundaries are circular: the neighbor of the last
// index along an axis is index 0.
package kernels

import "github.com/cwbudde/algo-diff/internal/optypes"

// ForwardDiff computes the 1D circular forward difference
// dst[i] = src[(i+1) mod n] - src[i].
func ForwardDiff[T optypes.Float](dst, src []T) {
	n := len(src)
	if n == 0 {
		return
	}
	for i := 0; i < n-1; i++ {
		dst[i] = src[i+1] - src[i]
	}
	dst[n-1] = src[0] - src[n-1]
}

// ForwardDiffAdjoint computes dst[i] = src[(i-1) mod n] - src[i], the exact
// transpose of the circular forward-difference matrix.
func ForwardDiffAdjoint[T optypes.Float](dst, src []T) {
	n := len(src)
	if n == 0 {
		return
	}
	dst[0] = src[n-1] - src[0]
	for i := 1; i < n; i++ {
		dst[i] = src[i-1] - src[i]
	}
}

// ForwardDiff2D computes the circular gradient of a rows×cols grid.
// dstX receives the difference along the fast (column) axis, dstY along the
// slow (row) axis.
func ForwardDiff2D[T optypes.Float](dstX, dstY, src []T, rows, cols int) {
	// Fast axis: each row is an independent circular 1D stencil.
	for r := 0; r < rows; r++ {
		base := r * cols
		for c := 0; c < cols-1; c++ {
			dstX[base+c] = src[base+c+1] - src[base+c]
		}
		dstX[base+cols-1] = src[base] - src[base+cols-1]
	}
	// Slow axis: row r differences against row r+1, last row wraps to row 0.
	for r := 0; r < rows-1; r++ {
		base := r * cols
		next := base + cols
		for c := 0; c < cols; c++ {
			dstY[base+c] = src[next+c] - src[base+c]
		}
	}
	last := (rows - 1) * cols
	for c := 0; c < cols; c++ {
		dstY[last+c] = src[c] - src[last+c]
	}
}

// ForwardDiff2DAdjoint accumulates the adjoints of both gradient components:
// dst[r][c] = srcX[r][c-1] - srcX[r][c] + srcY[r-1][c] - srcY[r][c],
// with circular index wrapping on both axes.
func ForwardDiff2DAdjoint[T optypes.Float](dst, srcX, srcY []T, rows, cols int) {
	for r := 0; r < rows; r++ {
		base := r * cols
		up := base - cols
		if r == 0 {
			up = (rows - 1) * cols
		}
		for c := 0; c < cols; c++ {
			left := c - 1
			if c == 0 {
				left = cols - 1
			}
			dst[base+c] = srcX[base+left] - srcX[base+c] + srcY[up+c] - srcY[base+c]
		}
	}
}
