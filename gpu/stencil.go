package gpu

// StencilImpl bundles the backend's difference-stencil primitives for one
// precision. All buffers passed to a StencilImpl must come from the same
// context that created it and carry its precision.
//
// Each call is atomic with respect to the destination buffers: on error the
// destinations are untouched. dst and src must not alias; aliasing behavior
// is backend-defined.
type StencilImpl interface {
	Precision() PrecisionKind

	// ForwardDiff writes the circular forward difference of src into dst.
	ForwardDiff(dst, src Buffer) error

	// ForwardDiffAdjoint writes the transpose stencil of src into dst.
	ForwardDiffAdjoint(dst, src Buffer) error

	// ForwardDiff2D interprets src as a rows×cols row-major grid and writes
	// the circular difference along the fast axis into dstX and along the
	// slow axis into dstY.
	ForwardDiff2D(dstX, dstY, src Buffer, rows, cols int) error

	// ForwardDiff2DAdjoint writes the summed adjoints of both gradient
	// components into dst.
	ForwardDiff2DAdjoint(dst, srcX, srcY Buffer, rows, cols int) error

	Close() error
}
