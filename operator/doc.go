// Package operator implements linear operators between algodiff spaces.
//
// Every Operator carries its domain and range and an Adjoint that satisfies
// the inner-product identity ⟨Ax, y⟩ = ⟨x, A*y⟩ exactly: adjoints here are
// derived algebraically from the forward stencils, never estimated.
//
// The concrete operators are the circular forward difference in 1D
// (ForwardDiff, ForwardDiffAdjoint) and the two-axis gradient in 2D
// (ForwardDiff2D, ForwardDiff2DAdjoint, with a product-space range), plus
// the combinators Identity, Scale, Sum, and Compose whose adjoints follow
// the usual algebra ((cA)* = cA*, (A+B)* = A*+B*, (AB)* = B*A*).
//
// Space checks are eager: constructors fail on unsupported spaces or
// mismatched shapes, and Apply rejects elements outside the declared
// domain/range before writing anything.
package operator
