package algodiff

import "github.com/cwbudde/algo-diff/internal/optypes"

// Float is the constraint for scalar types supported by the stencil kernels.
// The canonical definition is in internal/optypes.
type Float = optypes.Float
