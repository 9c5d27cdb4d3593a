package gpu

import "errors"

var (
	// ErrNoBackend is returned when no accelerator backend is registered.
	ErrNoBackend = errors.New("algodiff/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("algodiff/gpu: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("algodiff/gpu: not implemented")

	// ErrInvalidLength is returned for invalid buffer sizes.
	ErrInvalidLength = errors.New("algodiff/gpu: invalid length")

	// ErrLengthMismatch is returned when a host slice or device buffer length
	// is not as required.
	ErrLengthMismatch = errors.New("algodiff/gpu: length mismatch")

	// ErrPrecisionMismatch is returned when buffers of different precisions
	// are combined, or a host slice's element type does not match the buffer.
	ErrPrecisionMismatch = errors.New("algodiff/gpu: precision mismatch")

	// ErrInvalidShape is returned when rows*cols does not match the buffer
	// length of a 2D stencil operand.
	ErrInvalidShape = errors.New("algodiff/gpu: invalid shape")
)
