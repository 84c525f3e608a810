// Package matrix implements the padded dense matrix containers and numeric
// kernels used by the squiggle inference path.
//
// Matrices are column-major and row-padded so the physical row count is a
// multiple of the vector width (4 float32 lanes). The padding keeps every
// column 16-byte aligned for SIMD-friendly traversal; kernels iterate the
// logical rows only unless stated otherwise.
//
// Failure is signalled with a nil container rather than an error value: a
// constructor that cannot allocate logs one diagnostic and returns nil, and
// every kernel accepts a nil input and forwards nil (or a NaN/-1 sentinel for
// scalar results). A single failure therefore halts the rest of a computation
// chain without further checks at each step; the caller of the chain skips
// that unit of work.
//
// Validation helpers are debug tooling. Building with the "nochecks" tag
// compiles their bodies away while keeping the same signatures.
package matrix
