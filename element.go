package algodiff

import (
	"math"

	"github.com/cwbudde/algo-diff/gpu"
)

// Vector is an element of a dense space. Its shape is fixed at creation;
// its contents are mutable through SetValues and through operators writing
// into its buffer. Vectors never change their owning space.
type Vector struct {
	space Space
	buf   gpu.Buffer
}

// Space returns the owning space.
func (v *Vector) Space() Space { return v.space }

// Len returns the number of scalars in the vector.
func (v *Vector) Len() int { return v.buf.Len() }

// Data returns the accelerator storage handle. Operators pass it to the
// backend's stencil primitives; callers should treat it as opaque.
func (v *Vector) Data() gpu.Buffer { return v.buf }

// SetValues uploads host values into the vector. len(values) must equal Len.
func (v *Vector) SetValues(values []float64) error {
	if len(values) != v.buf.Len() {
		return ErrLengthMismatch
	}
	return v.buf.Upload(values)
}

// Values downloads the vector's contents to a fresh host slice.
func (v *Vector) Values() ([]float64, error) {
	out := make([]float64, v.buf.Len())
	if err := v.buf.Download(out); err != nil {
		return nil, err
	}
	return out, nil
}

// At returns the i-th scalar. The whole buffer is downloaded; prefer Values
// when reading more than one entry.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.buf.Len() {
		return 0, ErrIndexOutOfRange
	}
	values, err := v.Values()
	if err != nil {
		return 0, err
	}
	return values[i], nil
}

// AllClose reports whether both vectors agree elementwise within tol.
func (v *Vector) AllClose(other *Vector, tol float64) (bool, error) {
	if other == nil || other.Len() != v.Len() {
		return false, ErrElementMismatch
	}
	a, err := v.Values()
	if err != nil {
		return false, err
	}
	b, err := other.Values()
	if err != nil {
		return false, err
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false, nil
		}
	}
	return true, nil
}

// Copy writes src's contents into dst. Both must belong to the same space
// (for tuples, recursively so).
func Copy(dst, src Element) error {
	if dst == nil || src == nil || !SameSpace(dst.Space(), src.Space()) {
		return ErrElementMismatch
	}
	switch d := dst.(type) {
	case *Vector:
		s, ok := src.(*Vector)
		if !ok {
			return ErrElementMismatch
		}
		values, err := s.Values()
		if err != nil {
			return err
		}
		return d.SetValues(values)
	case *Tuple:
		s, ok := src.(*Tuple)
		if !ok {
			return ErrElementMismatch
		}
		for i := range d.parts {
			if err := Copy(d.parts[i], s.parts[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrElementMismatch
	}
}

// Add accumulates src into dst elementwise.
func Add(dst, src Element) error {
	if dst == nil || src == nil || !SameSpace(dst.Space(), src.Space()) {
		return ErrElementMismatch
	}
	switch d := dst.(type) {
	case *Vector:
		s, ok := src.(*Vector)
		if !ok {
			return ErrElementMismatch
		}
		a, err := d.Values()
		if err != nil {
			return err
		}
		b, err := s.Values()
		if err != nil {
			return err
		}
		for i := range a {
			a[i] += b[i]
		}
		return d.SetValues(a)
	case *Tuple:
		s, ok := src.(*Tuple)
		if !ok {
			return ErrElementMismatch
		}
		for i := range d.parts {
			if err := Add(d.parts[i], s.parts[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrElementMismatch
	}
}

// Scale multiplies every scalar of e by c in place.
func Scale(e Element, c float64) error {
	switch v := e.(type) {
	case *Vector:
		values, err := v.Values()
		if err != nil {
			return err
		}
		for i := range values {
			values[i] *= c
		}
		return v.SetValues(values)
	case *Tuple:
		for _, part := range v.parts {
			if err := Scale(part, c); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrElementMismatch
	}
}

// Dot returns the euclidean inner product of two elements of the same space.
func Dot(a, b Element) (float64, error) {
	if a == nil || b == nil || !SameSpace(a.Space(), b.Space()) {
		return 0, ErrElementMismatch
	}
	switch x := a.(type) {
	case *Vector:
		y, ok := b.(*Vector)
		if !ok {
			return 0, ErrElementMismatch
		}
		xs, err := x.Values()
		if err != nil {
			return 0, err
		}
		ys, err := y.Values()
		if err != nil {
			return 0, err
		}
		var sum float64
		for i := range xs {
			sum += xs[i] * ys[i]
		}
		return sum, nil
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok {
			return 0, ErrElementMismatch
		}
		var sum float64
		for i := range x.parts {
			s, err := Dot(x.parts[i], y.parts[i])
			if err != nil {
				return 0, err
			}
			sum += s
		}
		return sum, nil
	default:
		return 0, ErrElementMismatch
	}
}
