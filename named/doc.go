// Package named augments the dense matrix backend with persistent, per-axis
// name metadata and redefines the algebraic surface so that axis names are
// validated for compatibility and propagated deterministically into results.
//
// The named package provides:
//
//   - Matrix and Vector wrappers pairing a raw value with an ordered,
//     fixed-length sequence of axis names; a distinguished Wildcard name is
//     transparent during compatibility checks.
//   - A pure, allocation-free name-compatibility checker and output-name
//     deriver for products, inversion and symmetric statistical reductions.
//   - A stateless operation dispatcher (MulMM/MulMV/MulVM, Dot, MulTV,
//     Inverse, Correlation, Covariance, CovarianceWith) that validates names
//     before any numeric work, delegates computation to the matrix backend on
//     the raw values unchanged, and re-wraps results with derived names.
//   - A Registry for promoting foreign operand types into named wrappers so
//     they participate in the same product dispatch.
//
// The point of the exercise is catching dimension-mismatch bugs at call time:
// multiplying two matrices whose contracted axes carry different semantic
// names fails with a structured NameMismatchError before a single
// multiplication happens, and numeric results are never changed — only named.
//
// Every operation is a pure, synchronous function of its operands; there is no
// shared mutable state (the Registry is write-once configuration guarded for
// concurrent use). Unwrap/rewrap is zero-copy: only the fixed-size name
// metadata is freshly built per result.
package named
