package operator

import (
	algodiff "github.com/cwbudde/algo-diff"
	"github.com/cwbudde/algo-diff/gpu"
)

// ForwardDiff2D is the circular two-axis gradient of a rows×cols grid stored
// row-major in a dense space. Its range is the product of two copies of the
// domain: component 0 holds the difference along the fast (column) axis,
// component 1 along the slow (row) axis.
type ForwardDiff2D struct {
	domain     algodiff.Space
	rng        *algodiff.ProductSpace
	stencil    gpu.StencilImpl
	rows, cols int
}

// NewForwardDiff2D creates the gradient operator over a dense space holding
// a rows×cols grid. rows*cols must equal the space's element count.
func NewForwardDiff2D(space algodiff.Space, rows, cols int) (*ForwardDiff2D, error) {
	_, impl, err := denseStencil(space)
	if err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 || rows*cols != space.Size() {
		return nil, ErrShapeMismatch
	}
	rng, err := algodiff.Product(space, space)
	if err != nil {
		return nil, err
	}
	return &ForwardDiff2D{
		domain:  space,
		rng:     rng,
		stencil: impl,
		rows:    rows,
		cols:    cols,
	}, nil
}

func (d *ForwardDiff2D) Domain() algodiff.Space { return d.domain }
func (d *ForwardDiff2D) Range() algodiff.Space  { return d.rng }

// Shape returns the grid dimensions the operator was built for.
func (d *ForwardDiff2D) Shape() (rows, cols int) { return d.rows, d.cols }

// Apply writes both gradient components of rhs into the tuple out.
func (d *ForwardDiff2D) Apply(rhs, out algodiff.Element) error {
	if err := checkSpaces(d, rhs, out); err != nil {
		return err
	}
	src, err := denseVector(rhs)
	if err != nil {
		return err
	}
	tup, ok := out.(*algodiff.Tuple)
	if !ok || tup.Len() != 2 {
		return ErrSpaceMismatch
	}
	dx, err := tup.Vector(0)
	if err != nil {
		return err
	}
	dy, err := tup.Vector(1)
	if err != nil {
		return err
	}
	return d.stencil.ForwardDiff2D(dx.Data(), dy.Data(), src.Data(), d.rows, d.cols)
}

// Adjoint returns the paired ForwardDiff2DAdjoint: its domain is this
// operator's product-space range and its range is this operator's domain.
func (d *ForwardDiff2D) Adjoint() Operator {
	return &ForwardDiff2DAdjoint{
		domain:  d.rng,
		rng:     d.domain,
		stencil: d.stencil,
		rows:    d.rows,
		cols:    d.cols,
	}
}

// ForwardDiff2DAdjoint maps a gradient tuple back to the grid space:
// out = A_x(rhs[0]) + A_y(rhs[1]), where A_x and A_y are the 1D transpose
// stencils applied along each axis, accumulated elementwise. Composed with
// the forward gradient and negated it yields the periodic 5-point Laplacian.
type ForwardDiff2DAdjoint struct {
	domain     *algodiff.ProductSpace
	rng        algodiff.Space
	stencil    gpu.StencilImpl
	rows, cols int
}

// NewForwardDiff2DAdjoint creates the adjoint gradient over a dense space
// holding a rows×cols grid.
func NewForwardDiff2DAdjoint(space algodiff.Space, rows, cols int) (*ForwardDiff2DAdjoint, error) {
	_, impl, err := denseStencil(space)
	if err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 || rows*cols != space.Size() {
		return nil, ErrShapeMismatch
	}
	dom, err := algodiff.Product(space, space)
	if err != nil {
		return nil, err
	}
	return &ForwardDiff2DAdjoint{
		domain:  dom,
		rng:     space,
		stencil: impl,
		rows:    rows,
		cols:    cols,
	}, nil
}

func (d *ForwardDiff2DAdjoint) Domain() algodiff.Space { return d.domain }
func (d *ForwardDiff2DAdjoint) Range() algodiff.Space  { return d.rng }

// Shape returns the grid dimensions the operator was built for.
func (d *ForwardDiff2DAdjoint) Shape() (rows, cols int) { return d.rows, d.cols }

// Apply accumulates the axis adjoints of the tuple rhs into out.
func (d *ForwardDiff2DAdjoint) Apply(rhs, out algodiff.Element) error {
	if err := checkSpaces(d, rhs, out); err != nil {
		return err
	}
	tup, ok := rhs.(*algodiff.Tuple)
	if !ok || tup.Len() != 2 {
		return ErrSpaceMismatch
	}
	sx, err := tup.Vector(0)
	if err != nil {
		return err
	}
	sy, err := tup.Vector(1)
	if err != nil {
		return err
	}
	dst, err := denseVector(out)
	if err != nil {
		return err
	}
	return d.stencil.ForwardDiff2DAdjoint(dst.Data(), sx.Data(), sy.Data(), d.rows, d.cols)
}

// Adjoint returns a fresh ForwardDiff2D over the range space, restoring the
// forward pairing.
func (d *ForwardDiff2DAdjoint) Adjoint() Operator {
	return &ForwardDiff2D{
		domain:  d.rng,
		rng:     d.domain,
		stencil: d.stencil,
		rows:    d.rows,
		cols:    d.cols,
	}
}
