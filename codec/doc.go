// Package codec serializes named matrices and vectors.
//
// Two layers:
//
//   - Codec is a pluggable document serializer (JSON and YAML ship in the
//     box, ByName looks one up) over flat, shape-validated document forms
//     that carry the axis names next to the row-major data.
//   - A framed binary container (Write/Read) wraps one encoded document with
//     a magic header, the codec name and an optional zstd-compressed payload,
//     so files are self-describing and a reader needs no out-of-band
//     configuration.
package codec
