package algodiff

// ProductSpace bundles K factor spaces into one compound space whose
// elements are ordered tuples of factor elements. The arity is fixed at
// construction.
type ProductSpace struct {
	factors []Space
	size    int
}

// Product creates the product of the given factor spaces.
func Product(factors ...Space) (*ProductSpace, error) {
	if len(factors) == 0 {
		return nil, ErrEmptyProduct
	}
	size := 0
	for _, f := range factors {
		size += f.Size()
	}
	fs := make([]Space, len(factors))
	copy(fs, factors)
	return &ProductSpace{factors: fs, size: size}, nil
}

// Size returns the total number of scalar degrees of freedom across factors.
func (p *ProductSpace) Size() int { return p.size }

// Arity returns the number of factor spaces.
func (p *ProductSpace) Arity() int { return len(p.factors) }

// Factor returns the i-th factor space.
func (p *ProductSpace) Factor(i int) (Space, error) {
	if i < 0 || i >= len(p.factors) {
		return nil, ErrIndexOutOfRange
	}
	return p.factors[i], nil
}

// NewElement allocates a zeroed tuple with one sub-element per factor.
func (p *ProductSpace) NewElement() (Element, error) {
	return p.NewTuple()
}

// NewTuple allocates a zeroed tuple with its concrete type.
func (p *ProductSpace) NewTuple() (*Tuple, error) {
	parts := make([]Element, len(p.factors))
	for i, f := range p.factors {
		e, err := f.NewElement()
		if err != nil {
			return nil, err
		}
		parts[i] = e
	}
	return &Tuple{space: p, parts: parts}, nil
}

// Tuple is an element of a ProductSpace: an ordered, fixed-arity collection
// of sub-elements, each belonging to the corresponding factor space.
type Tuple struct {
	space *ProductSpace
	parts []Element
}

// Space returns the owning product space.
func (t *Tuple) Space() Space { return t.space }

// Len returns the tuple's arity.
func (t *Tuple) Len() int { return len(t.parts) }

// At returns the i-th sub-element.
func (t *Tuple) At(i int) (Element, error) {
	if i < 0 || i >= len(t.parts) {
		return nil, ErrIndexOutOfRange
	}
	return t.parts[i], nil
}

// Vector returns the i-th sub-element as a dense vector. It fails with
// ErrElementMismatch when the factor is not a dense space.
func (t *Tuple) Vector(i int) (*Vector, error) {
	e, err := t.At(i)
	if err != nil {
		return nil, err
	}
	v, ok := e.(*Vector)
	if !ok {
		return nil, ErrElementMismatch
	}
	return v, nil
}
