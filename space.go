package algodiff

import "github.com/cwbudde/algo-diff/gpu"

// Space is a finite-dimensional vector space. Elements are created through
// the space and remember it; operators use that association to validate
// domain and range membership.
type Space interface {
	// Size returns the number of scalar degrees of freedom.
	Size() int
	// NewElement allocates a zeroed element of the space.
	NewElement() (Element, error)
}

// Element is a member of exactly one Space. Concrete types are *Vector for
// dense spaces and *Tuple for product spaces.
type Element interface {
	Space() Space
}

// DenseStorage is implemented by spaces whose elements are single dense
// accelerator buffers. Operators require it at construction time.
type DenseStorage interface {
	Space
	Storage() *Rn
}

// Rn is the dense n-dimensional real space over the registered accelerator
// backend. Creating a space allocates no storage; only its elements carry
// device buffers. An Rn is cheap to share between any number of operators.
type Rn struct {
	n    int
	ctx  gpu.Context
	prec gpu.PrecisionKind
}

// NewRn creates the dense space of dimension n on the default context of the
// registered backend.
func NewRn(n int) (*Rn, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	ctx, err := gpu.DefaultContext()
	if err != nil {
		return nil, err
	}
	return &Rn{n: n, ctx: ctx, prec: gpu.PrecisionFloat64}, nil
}

// Size returns the dimension of the space.
func (r *Rn) Size() int { return r.n }

// Context returns the accelerator context the space allocates buffers on.
func (r *Rn) Context() gpu.Context { return r.ctx }

// Precision returns the scalar precision of the space's buffers.
func (r *Rn) Precision() gpu.PrecisionKind { return r.prec }

// Storage returns the space itself, marking Rn as dense accelerator storage.
func (r *Rn) Storage() *Rn { return r }

// NewElement allocates a zeroed vector of the space.
func (r *Rn) NewElement() (Element, error) {
	return r.NewVector()
}

// NewVector allocates a zeroed vector with its concrete type.
func (r *Rn) NewVector() (*Vector, error) {
	buf, err := r.ctx.NewBuffer(r.n, r.prec)
	if err != nil {
		return nil, err
	}
	return &Vector{space: r, buf: buf}, nil
}

// Element creates a vector from host values. len(values) must equal Size.
func (r *Rn) Element(values []float64) (*Vector, error) {
	if len(values) != r.n {
		return nil, ErrLengthMismatch
	}
	v, err := r.NewVector()
	if err != nil {
		return nil, err
	}
	if err := v.SetValues(values); err != nil {
		return nil, err
	}
	return v, nil
}

// SameSpace reports whether two spaces are interchangeable for operator
// domain and range checks: the same instance, dense spaces sharing the same
// underlying Rn, or product spaces with pairwise-same factors.
func SameSpace(a, b Space) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	if pa, ok := a.(*ProductSpace); ok {
		pb, ok := b.(*ProductSpace)
		if !ok || pb.Arity() != pa.Arity() {
			return false
		}
		for i := range pa.factors {
			if !SameSpace(pa.factors[i], pb.factors[i]) {
				return false
			}
		}
		return true
	}
	da, aok := a.(DenseStorage)
	db, bok := b.(DenseStorage)
	return aok && bok && da.Storage() == db.Storage()
}
