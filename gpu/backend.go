package gpu

import "sync"

// Backend is implemented by accelerator backends (CUDA, ROCm, Metal, CPU mock).
// It is responsible for device discovery, buffer allocation, and execution.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific execution context tied to a device.
type Context interface {
	Device() DeviceInfo
	// NewBuffer allocates a zeroed device buffer of elemCount scalars.
	NewBuffer(elemCount int, precision PrecisionKind) (Buffer, error)
	// NewStream creates an execution stream/queue.
	NewStream() (Stream, error)
	// NewStencil creates the backend-specific stencil primitives for the
	// given precision.
	NewStencil(precision PrecisionKind) (StencilImpl, error)
	Close() error
}

// Buffer is a device buffer of dense contiguous scalars.
type Buffer interface {
	Len() int
	Precision() PrecisionKind
	// Upload copies from host to device. src must be a []float32 or
	// []float64 matching the buffer's precision, of at least Len elements.
	Upload(src any) error
	// Download copies from device to host, with the same typing rules.
	Download(dst any) error
	Close() error
}

// Stream represents an execution queue/stream.
type Stream interface {
	Synchronize() error
	Close() error
}

var (
	backendMu  sync.Mutex
	backend    Backend
	defaultCtx Context
)

// RegisterBackend registers an accelerator backend. Passing nil clears the
// backend. Any cached default context is closed.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	if defaultCtx != nil {
		_ = defaultCtx.Close()
		defaultCtx = nil
	}
	backend = b
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	backendMu.Lock()
	b := backend
	backendMu.Unlock()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

// DefaultContext returns a context on device 0 of the registered backend,
// creating and caching it on first use. Spaces share this context so that
// buffers from different spaces are interoperable.
func DefaultContext() (Context, error) {
	backendMu.Lock()
	defer backendMu.Unlock()
	if defaultCtx != nil {
		return defaultCtx, nil
	}
	if backend == nil {
		return nil, ErrNoBackend
	}
	if !backend.Available() {
		return nil, ErrBackendUnavailable
	}
	ctx, err := backend.NewContext(0)
	if err != nil {
		return nil, err
	}
	defaultCtx = ctx
	return ctx, nil
}
