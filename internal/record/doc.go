// Package record provides the report record type and its canonical
// serialization.
//
// This package is the foundational layer: every other internal package
// may import record; record imports nothing internal.
//
// Key design constraints:
//   - NO float types anywhere - use int64 for numbers
//   - Object keys encode in declaration order, never sorted
//   - Encoding is byte-deterministic for identical input
package record
