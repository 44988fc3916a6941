// Package namedmat is linear algebra with named axes — matrices and vectors
// that remember what their dimensions mean, and refuse products that would
// silently contract the wrong ones.
//
// 🚀 What is namedmat?
//
//	A small, deterministic library that brings together:
//		• Dense backend: multiply, invert, transpose, LU, covariance, correlation
//		• Named wrappers: per-axis names with a transparent wildcard
//		• Compatibility checking: name conflicts fail before any arithmetic
//		• Name derivation: products, inverses and reductions name their results
//		• Interop: a registry that promotes foreign types into the dispatch
//		• Persistence: JSON/YAML documents in a self-describing zstd container
//
// ✨ Why choose namedmat?
//
//   - Semantic safety – a transposed operand fails loudly even when shapes agree
//   - Zero-copy wrappers – names live beside the data, never inside it
//   - Deterministic – fixed loop orders, reproducible results, no global state
//   - Extensible – register your own types and covariance estimators
//
// Everything is organized under three subpackages:
//
//	matrix/ — the raw dense backend and its numeric kernels
//	named/  — wrappers, checker, deriver, dispatcher, registry, batching
//	codec/  — document forms and the framed storage container
//
// Quick start:
//
//	a := named.MustWrap(denseA, "obs", "gene")
//	b := named.MustWrap(denseB, "gene", "pc")
//	scores, err := named.MulMM(a, b) // named.Matrix[obs x pc]
//
// See examples/ for full scenarios.
package namedmat
