package operator

import (
	algodiff "github.com/cwbudde/algo-diff"
	"github.com/cwbudde/algo-diff/gpu"
)

// Operator is a linear map between two spaces fixed at construction.
//
// Apply writes the image of rhs into out without allocating; both elements
// are borrowed for the duration of the call only. rhs and out must not share
// storage. Adjoint is a pure function of the operator's identity: calling it
// twice yields behaviorally identical operators, and the double adjoint
// restores the forward operator.
type Operator interface {
	Domain() algodiff.Space
	Range() algodiff.Space
	Apply(rhs, out algodiff.Element) error
	Adjoint() Operator
}

// Call applies op to rhs into a freshly allocated range element. It is the
// non-mutating convenience form of Apply.
func Call(op Operator, rhs algodiff.Element) (algodiff.Element, error) {
	out, err := op.Range().NewElement()
	if err != nil {
		return nil, err
	}
	if err := op.Apply(rhs, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdjointCall is shorthand for Call(op.Adjoint(), rhs).
func AdjointCall(op Operator, rhs algodiff.Element) (algodiff.Element, error) {
	return Call(op.Adjoint(), rhs)
}

// checkSpaces validates Apply preconditions before any write happens.
func checkSpaces(op Operator, rhs, out algodiff.Element) error {
	if rhs == nil || out == nil {
		return ErrNilElement
	}
	if !algodiff.SameSpace(rhs.Space(), op.Domain()) {
		return ErrSpaceMismatch
	}
	if !algodiff.SameSpace(out.Space(), op.Range()) {
		return ErrSpaceMismatch
	}
	return nil
}

// denseStencil resolves a space's dense storage and creates the backend
// stencil primitives for it. Operators call it at construction so that
// unsupported spaces fail fast.
func denseStencil(space algodiff.Space) (*algodiff.Rn, gpu.StencilImpl, error) {
	ds, ok := space.(algodiff.DenseStorage)
	if !ok {
		return nil, nil, ErrUnsupportedSpace
	}
	rn := ds.Storage()
	impl, err := rn.Context().NewStencil(rn.Precision())
	if err != nil {
		return nil, nil, err
	}
	return rn, impl, nil
}

// denseVector extracts the buffer-bearing vector behind an element that has
// already passed the space check.
func denseVector(e algodiff.Element) (*algodiff.Vector, error) {
	v, ok := e.(*algodiff.Vector)
	if !ok {
		return nil, ErrSpaceMismatch
	}
	return v, nil
}
