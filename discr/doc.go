// Package discr maps continuous function spaces onto algodiff's discrete
// spaces by uniform sampling.
//
// An L2 space over an Interval or Rectangle is discretized onto an existing
// Rn with Uniform, which records the grid shape. The resulting
// Discretization is itself an algodiff.Space: its elements live in the
// underlying Rn, and in 2D the shape metadata lets stencil operators
// interpret the flat buffers as row-major grids.
package discr
