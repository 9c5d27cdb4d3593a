package operator

import (
	algodiff "github.com/cwbudde/algo-diff"
)

// Identity is the identity operator on a space. It is its own adjoint.
type Identity struct {
	space algodiff.Space
}

// NewIdentity creates the identity operator.
func NewIdentity(space algodiff.Space) *Identity {
	return &Identity{space: space}
}

func (op *Identity) Domain() algodiff.Space { return op.space }
func (op *Identity) Range() algodiff.Space  { return op.space }

func (op *Identity) Apply(rhs, out algodiff.Element) error {
	if err := checkSpaces(op, rhs, out); err != nil {
		return err
	}
	return algodiff.Copy(out, rhs)
}

func (op *Identity) Adjoint() Operator {
	return &Identity{space: op.space}
}

// Scaled is c·A for a real scalar c. Its adjoint is c·A*.
type Scaled struct {
	op Operator
	c  float64
}

// Scale wraps op with a scalar multiplier.
func Scale(op Operator, c float64) *Scaled {
	return &Scaled{op: op, c: c}
}

func (s *Scaled) Domain() algodiff.Space { return s.op.Domain() }
func (s *Scaled) Range() algodiff.Space  { return s.op.Range() }

func (s *Scaled) Apply(rhs, out algodiff.Element) error {
	if err := s.op.Apply(rhs, out); err != nil {
		return err
	}
	return algodiff.Scale(out, s.c)
}

func (s *Scaled) Adjoint() Operator {
	return &Scaled{op: s.op.Adjoint(), c: s.c}
}

// SumOp is A+B for operators sharing domain and range. Its adjoint is A*+B*.
type SumOp struct {
	a, b Operator
}

// Sum combines two operators with matching domains and ranges.
func Sum(a, b Operator) (*SumOp, error) {
	if !algodiff.SameSpace(a.Domain(), b.Domain()) || !algodiff.SameSpace(a.Range(), b.Range()) {
		return nil, ErrNotComposable
	}
	return &SumOp{a: a, b: b}, nil
}

func (s *SumOp) Domain() algodiff.Space { return s.a.Domain() }
func (s *SumOp) Range() algodiff.Space  { return s.a.Range() }

func (s *SumOp) Apply(rhs, out algodiff.Element) error {
	if err := s.a.Apply(rhs, out); err != nil {
		return err
	}
	tmp, err := Call(s.b, rhs)
	if err != nil {
		return err
	}
	return algodiff.Add(out, tmp)
}

func (s *SumOp) Adjoint() Operator {
	return &SumOp{a: s.a.Adjoint(), b: s.b.Adjoint()}
}

// Composition is A∘B, applying B first. Its adjoint is B*∘A*.
type Composition struct {
	a, b Operator
}

// Compose chains two operators; b's range must match a's domain.
func Compose(a, b Operator) (*Composition, error) {
	if !algodiff.SameSpace(a.Domain(), b.Range()) {
		return nil, ErrNotComposable
	}
	return &Composition{a: a, b: b}, nil
}

func (c *Composition) Domain() algodiff.Space { return c.b.Domain() }
func (c *Composition) Range() algodiff.Space  { return c.a.Range() }

func (c *Composition) Apply(rhs, out algodiff.Element) error {
	if err := checkSpaces(c, rhs, out); err != nil {
		return err
	}
	tmp, err := Call(c.b, rhs)
	if err != nil {
		return err
	}
	return c.a.Apply(tmp, out)
}

func (c *Composition) Adjoint() Operator {
	return &Composition{a: c.b.Adjoint(), b: c.a.Adjoint()}
}
