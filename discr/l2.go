package discr

// L2 is the space of square-integrable functions over a Set. At this layer
// it only identifies the continuous domain being discretized; norms and
// inner products live on the discrete side.
type L2 struct {
	set Set
}

// NewL2 creates the L2 function space over the given set.
func NewL2(set Set) L2 {
	return L2{set: set}
}

// Set returns the continuous domain.
func (l L2) Set() Set { return l.set }
