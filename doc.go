// Package algodiff provides discrete vector spaces over accelerator-resident
// storage and is the foundation for the linear-operator layer in
// subpackage operator.
//
// A Space hands out Elements whose data lives in a gpu.Buffer owned by the
// registered accelerator backend. Rn is the dense n-dimensional real space;
// ProductSpace bundles factor spaces into tuple-valued elements. The discr
// subpackage maps continuous function spaces onto Rn via uniform sampling.
//
// A backend must be registered before spaces are created:
//
//	gpu.RegisterMockBackend()
//	rn, err := algodiff.NewRn(6)
package algodiff
