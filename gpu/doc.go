// Package gpu provides the accelerator backend for algodiff.
//
// This package defines the device-buffer and stencil-primitive surface that
// the space and operator layers build on, while allowing backend-specific
// execution contexts. Backends are registered at runtime; the package ships
// a CPU-backed mock backend so the full stack runs without a device.
package gpu
