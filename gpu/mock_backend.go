package gpu

import (
	"fmt"

	"github.com/cwbudde/algo-diff/internal/cpu"
	"github.com/cwbudde/algo-diff/internal/kernels"
)

// MockBackend is a CPU-backed accelerator backend for development and tests.
// It satisfies the backend interfaces but executes the stencil kernels on
// the host.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockAccelerator",
			Vendor:     "algodiff",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: cpu.DetectFeatures().Describe(),
		},
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock accelerator backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewBuffer(elemCount int, precision PrecisionKind) (Buffer, error) {
	if elemCount < 0 {
		return nil, ErrInvalidLength
	}
	switch precision {
	case PrecisionFloat32:
		return &mockBuffer{
			precision: precision,
			len:       elemCount,
			data32:    make([]float32, elemCount),
		}, nil
	case PrecisionFloat64:
		return &mockBuffer{
			precision: precision,
			len:       elemCount,
			data64:    make([]float64, elemCount),
		}, nil
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) NewStream() (Stream, error) {
	return &mockStream{}, nil
}

func (c *mockContext) NewStencil(precision PrecisionKind) (StencilImpl, error) {
	switch precision {
	case PrecisionFloat32, PrecisionFloat64:
		return &mockStencil{precision: precision}, nil
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) Close() error {
	return nil
}

type mockBuffer struct {
	precision PrecisionKind
	len       int
	data32    []float32
	data64    []float64
}

func (b *mockBuffer) Len() int {
	return b.len
}

func (b *mockBuffer) Precision() PrecisionKind {
	return b.precision
}

func (b *mockBuffer) Upload(src any) error {
	switch b.precision {
	case PrecisionFloat32:
		data, ok := src.([]float32)
		if !ok {
			return ErrPrecisionMismatch
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(b.data32, data[:b.len])
	case PrecisionFloat64:
		data, ok := src.([]float64)
		if !ok {
			return ErrPrecisionMismatch
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(b.data64, data[:b.len])
	default:
		return ErrNotImplemented
	}
	return nil
}

func (b *mockBuffer) Download(dst any) error {
	switch b.precision {
	case PrecisionFloat32:
		data, ok := dst.([]float32)
		if !ok {
			return ErrPrecisionMismatch
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(data[:b.len], b.data32)
	case PrecisionFloat64:
		data, ok := dst.([]float64)
		if !ok {
			return ErrPrecisionMismatch
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(data[:b.len], b.data64)
	default:
		return ErrNotImplemented
	}
	return nil
}

func (b *mockBuffer) Close() error {
	b.data32 = nil
	b.data64 = nil
	return nil
}

type mockStream struct{}

func (s *mockStream) Synchronize() error { return nil }
func (s *mockStream) Close() error       { return nil }

type mockStencil struct {
	precision PrecisionKind
}

func (s *mockStencil) Precision() PrecisionKind {
	return s.precision
}

func (s *mockStencil) hostBuffers(bufs ...Buffer) ([]*mockBuffer, error) {
	out := make([]*mockBuffer, len(bufs))
	n := -1
	for i, buf := range bufs {
		mb, ok := buf.(*mockBuffer)
		if !ok || mb.precision != s.precision {
			return nil, ErrPrecisionMismatch
		}
		if n < 0 {
			n = mb.len
		} else if mb.len != n {
			return nil, ErrLengthMismatch
		}
		out[i] = mb
	}
	return out, nil
}

func (s *mockStencil) ForwardDiff(dst, src Buffer) error {
	bufs, err := s.hostBuffers(dst, src)
	if err != nil {
		return err
	}
	if s.precision == PrecisionFloat32 {
		kernels.ForwardDiff(bufs[0].data32, bufs[1].data32)
	} else {
		kernels.ForwardDiff(bufs[0].data64, bufs[1].data64)
	}
	return nil
}

func (s *mockStencil) ForwardDiffAdjoint(dst, src Buffer) error {
	bufs, err := s.hostBuffers(dst, src)
	if err != nil {
		return err
	}
	if s.precision == PrecisionFloat32 {
		kernels.ForwardDiffAdjoint(bufs[0].data32, bufs[1].data32)
	} else {
		kernels.ForwardDiffAdjoint(bufs[0].data64, bufs[1].data64)
	}
	return nil
}

func (s *mockStencil) ForwardDiff2D(dstX, dstY, src Buffer, rows, cols int) error {
	bufs, err := s.hostBuffers(dstX, dstY, src)
	if err != nil {
		return err
	}
	if rows < 1 || cols < 1 || rows*cols != src.Len() {
		return ErrInvalidShape
	}
	if s.precision == PrecisionFloat32 {
		kernels.ForwardDiff2D(bufs[0].data32, bufs[1].data32, bufs[2].data32, rows, cols)
	} else {
		kernels.ForwardDiff2D(bufs[0].data64, bufs[1].data64, bufs[2].data64, rows, cols)
	}
	return nil
}

func (s *mockStencil) ForwardDiff2DAdjoint(dst, srcX, srcY Buffer, rows, cols int) error {
	bufs, err := s.hostBuffers(dst, srcX, srcY)
	if err != nil {
		return err
	}
	if rows < 1 || cols < 1 || rows*cols != dst.Len() {
		return ErrInvalidShape
	}
	if s.precision == PrecisionFloat32 {
		kernels.ForwardDiff2DAdjoint(bufs[0].data32, bufs[1].data32, bufs[2].data32, rows, cols)
	} else {
		kernels.ForwardDiff2DAdjoint(bufs[0].data64, bufs[1].data64, bufs[2].data64, rows, cols)
	}
	return nil
}

func (s *mockStencil) Close() error {
	return nil
}
