package algodiff

import "errors"

// Sentinel errors returned by the space layer.
var (
	// ErrInvalidSize is returned when a space is created with a non-positive
	// dimension.
	ErrInvalidSize = errors.New("algodiff: space size must be positive")

	// ErrLengthMismatch is returned when host values do not match the size of
	// the target space.
	ErrLengthMismatch = errors.New("algodiff: value length does not match space size")

	// ErrIndexOutOfRange is returned for element or factor indices outside
	// the valid range.
	ErrIndexOutOfRange = errors.New("algodiff: index out of range")

	// ErrEmptyProduct is returned when a product space is built with no factors.
	ErrEmptyProduct = errors.New("algodiff: product space needs at least one factor")

	// ErrElementMismatch is returned when elements of incompatible spaces are
	// combined in an elementwise operation.
	ErrElementMismatch = errors.New("algodiff: elements belong to incompatible spaces")
)
