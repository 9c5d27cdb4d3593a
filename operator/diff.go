package operator

import (
	algodiff "github.com/cwbudde/algo-diff"
	"github.com/cwbudde/algo-diff/gpu"
)

// ForwardDiff is the circular forward difference on a dense space:
// out[i] = rhs[(i+1) mod n] - rhs[i]. Domain and range coincide. The wrap
// edge is not special-cased: index n-1 differences against index 0.
type ForwardDiff struct {
	space   algodiff.Space
	stencil gpu.StencilImpl
}

// NewForwardDiff creates the operator over the given dense space.
func NewForwardDiff(space algodiff.Space) (*ForwardDiff, error) {
	_, impl, err := denseStencil(space)
	if err != nil {
		return nil, err
	}
	return &ForwardDiff{space: space, stencil: impl}, nil
}

func (d *ForwardDiff) Domain() algodiff.Space { return d.space }
func (d *ForwardDiff) Range() algodiff.Space  { return d.space }

// Apply writes the circular forward difference of rhs into out.
func (d *ForwardDiff) Apply(rhs, out algodiff.Element) error {
	if err := checkSpaces(d, rhs, out); err != nil {
		return err
	}
	src, err := denseVector(rhs)
	if err != nil {
		return err
	}
	dst, err := denseVector(out)
	if err != nil {
		return err
	}
	return d.stencil.ForwardDiff(dst.Data(), src.Data())
}

// Adjoint returns the paired ForwardDiffAdjoint over the same space.
func (d *ForwardDiff) Adjoint() Operator {
	return &ForwardDiffAdjoint{space: d.space, stencil: d.stencil}
}

// ForwardDiffAdjoint is the exact transpose of ForwardDiff:
// out[i] = rhs[(i-1) mod n] - rhs[i]. For all x, y of length n,
// ⟨ForwardDiff x, y⟩ == ⟨x, ForwardDiffAdjoint y⟩ holds exactly.
type ForwardDiffAdjoint struct {
	space   algodiff.Space
	stencil gpu.StencilImpl
}

// NewForwardDiffAdjoint creates the adjoint operator over the given dense
// space.
func NewForwardDiffAdjoint(space algodiff.Space) (*ForwardDiffAdjoint, error) {
	_, impl, err := denseStencil(space)
	if err != nil {
		return nil, err
	}
	return &ForwardDiffAdjoint{space: space, stencil: impl}, nil
}

func (d *ForwardDiffAdjoint) Domain() algodiff.Space { return d.space }
func (d *ForwardDiffAdjoint) Range() algodiff.Space  { return d.space }

// Apply writes the transpose stencil of rhs into out.
func (d *ForwardDiffAdjoint) Apply(rhs, out algodiff.Element) error {
	if err := checkSpaces(d, rhs, out); err != nil {
		return err
	}
	src, err := denseVector(rhs)
	if err != nil {
		return err
	}
	dst, err := denseVector(out)
	if err != nil {
		return err
	}
	return d.stencil.ForwardDiffAdjoint(dst.Data(), src.Data())
}

// Adjoint returns a fresh ForwardDiff; the pairing has period 2.
func (d *ForwardDiffAdjoint) Adjoint() Operator {
	return &ForwardDiff{space: d.space, stencil: d.stencil}
}
