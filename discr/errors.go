package discr

import "errors"

var (
	// ErrInvalidSet is returned when set bounds are not strictly increasing.
	ErrInvalidSet = errors.New("algodiff/discr: set bounds must be strictly increasing")

	// ErrDimensionMismatch is returned when the sampling shape's rank does
	// not match the continuous set's dimension.
	ErrDimensionMismatch = errors.New("algodiff/discr: shape rank does not match set dimension")

	// ErrShapeMismatch is returned when the sampling shape does not multiply
	// out to the discrete space's size.
	ErrShapeMismatch = errors.New("algodiff/discr: shape does not match discrete space size")

	// ErrRaggedGrid is returned when nested element values are not
	// rectangular or do not match the grid shape.
	ErrRaggedGrid = errors.New("algodiff/discr: nested values do not match grid shape")
)
