package operator

import "errors"

var (
	// ErrUnsupportedSpace is returned at construction when a space does not
	// expose dense accelerator storage.
	ErrUnsupportedSpace = errors.New("algodiff/operator: space does not expose dense accelerator storage")

	// ErrShapeMismatch is returned at construction when a declared (rows,
	// cols) shape does not match the space's element count, or a product
	// operand has the wrong arity.
	ErrShapeMismatch = errors.New("algodiff/operator: shape does not match space size")

	// ErrSpaceMismatch is returned by Apply when an element does not belong
	// to the operator's domain or range.
	ErrSpaceMismatch = errors.New("algodiff/operator: element does not belong to the operator's domain or range")

	// ErrNilElement is returned by Apply when rhs or out is nil.
	ErrNilElement = errors.New("algodiff/operator: nil element")

	// ErrNotComposable is returned at construction when two operators'
	// domains and ranges do not line up.
	ErrNotComposable = errors.New("algodiff/operator: operator spaces do not compose")
)
