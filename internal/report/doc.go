// Package report implements the report builder, the heart of tally.
//
// A report run is a single linear pass: validate the count, enumerate
// count sequential integers as lines, append the greeting when items is
// non-empty, append the canonical record serialization, return the
// lines. One conditional branch, no suspension, no retry.
//
// Determinism constraints:
//   - Validation happens before any line is produced; a failed run
//     returns zero lines, never a partial report.
//   - Each run owns its record and (optionally) its greeter; nothing
//     is shared across runs.
//   - Lines depend only on (count, items). No clocks, no randomness.
package report
