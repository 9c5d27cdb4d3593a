package discr

import (
	algodiff "github.com/cwbudde/algo-diff"
)

// Discretization is a uniform sampling of an L2 space onto a discrete
// space. It implements algodiff.Space by delegating storage to the
// underlying Rn, and carries the grid shape that 2D stencil operators need
// to interpret flat buffers as row-major grids.
type Discretization struct {
	fspace L2
	rn     *algodiff.Rn
	shape  []int
}

// Uniform discretizes fspace onto rn with the given grid shape. The shape
// defaults to the flat [rn.Size()]; when given, its rank must match the
// continuous set's dimension and its product must equal rn.Size().
func Uniform(fspace L2, rn *algodiff.Rn, shape ...int) (*Discretization, error) {
	if len(shape) == 0 {
		shape = []int{rn.Size()}
	}
	if fspace.Set() != nil && len(shape) != fspace.Set().Dim() {
		return nil, ErrDimensionMismatch
	}
	size := 1
	for _, s := range shape {
		if s < 1 {
			return nil, ErrShapeMismatch
		}
		size *= s
	}
	if size != rn.Size() {
		return nil, ErrShapeMismatch
	}
	owned := make([]int, len(shape))
	copy(owned, shape)
	return &Discretization{fspace: fspace, rn: rn, shape: owned}, nil
}

// Size returns the number of sample points.
func (d *Discretization) Size() int { return d.rn.Size() }

// Storage returns the underlying dense space.
func (d *Discretization) Storage() *algodiff.Rn { return d.rn }

// FunctionSpace returns the continuous space being discretized.
func (d *Discretization) FunctionSpace() L2 { return d.fspace }

// Shape returns a copy of the grid shape, slow axis first.
func (d *Discretization) Shape() []int {
	out := make([]int, len(d.shape))
	copy(out, d.shape)
	return out
}

// NewElement allocates a zeroed element.
func (d *Discretization) NewElement() (algodiff.Element, error) {
	return d.rn.NewVector()
}

// Element creates an element from flat host values in row-major order.
func (d *Discretization) Element(values []float64) (*algodiff.Vector, error) {
	return d.rn.Element(values)
}

// ElementGrid creates an element from nested row values. The outer slice
// runs over the slow axis; every row must have the fast-axis length.
func (d *Discretization) ElementGrid(rows [][]float64) (*algodiff.Vector, error) {
	if len(d.shape) != 2 {
		return nil, ErrDimensionMismatch
	}
	if len(rows) != d.shape[0] {
		return nil, ErrRaggedGrid
	}
	flat := make([]float64, 0, d.rn.Size())
	for _, row := range rows {
		if len(row) != d.shape[1] {
			return nil, ErrRaggedGrid
		}
		flat = append(flat, row...)
	}
	return d.rn.Element(flat)
}

// Points returns per-axis sample coordinates, one slice per axis, each of
// length Size and aligned with the row-major element layout. Samples sit at
// cell midpoints. The coordinates are informational; no stencil reads them.
func (d *Discretization) Points() [][]float64 {
	lo, hi := d.fspace.Set().Bounds()
	axes := make([][]float64, len(d.shape))
	for k := range axes {
		axes[k] = make([]float64, d.rn.Size())
	}

	// stride[k] is how many consecutive flat indices share axis-k's index.
	strides := make([]int, len(d.shape))
	s := 1
	for k := len(d.shape) - 1; k >= 0; k-- {
		strides[k] = s
		s *= d.shape[k]
	}
	for k, n := range d.shape {
		step := (hi[k] - lo[k]) / float64(n)
		for idx := 0; idx < d.rn.Size(); idx++ {
			i := (idx / strides[k]) % n
			axes[k][idx] = lo[k] + (float64(i)+0.5)*step
		}
	}
	return axes
}
