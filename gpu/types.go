package gpu

// PrecisionKind describes the scalar precision of a device buffer.
type PrecisionKind uint8

const (
	PrecisionFloat32 PrecisionKind = iota
	PrecisionFloat64
)

// String returns the Go scalar type name for the precision.
func (p PrecisionKind) String() string {
	switch p {
	case PrecisionFloat32:
		return "float32"
	case PrecisionFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// DeviceInfo describes an accelerator device.
type DeviceInfo struct {
	Name       string
	Vendor     string
	Driver     string
	MemoryMB   int
	ComputeCap string
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}
