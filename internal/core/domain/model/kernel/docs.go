// Package kernel provides shared domain primitives used across aggregates.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types enforce construction through factory functions so that zero
// values are detectable and never leak into persisted state.
package kernel
