// Package optypes defines shared numeric type constraints for algodiff.
package optypes

// Float is the constraint for real scalar types supported by the stencil
// kernels. The space layer itself works in float64; float32 exists for
// backends with half-bandwidth device buffers.
type Float interface {
	~float32 | ~float64
}
