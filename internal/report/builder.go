package report

import (
	"fmt"
	"strconv"

	"github.com/roach88/tally/internal/greet"
	"github.com/roach88/tally/internal/record"
)

// DefaultIdentity is the identity greeted when items are present.
const DefaultIdentity = "world"

// Run builds the full report for one record and returns every line it
// emits, in order:
//
//  1. one line per enumerated integer 0..count-1, ascending
//  2. the greeting, when items is non-empty
//  3. the canonical serialization of {count, items}
//
// count < 0 fails with InvalidCountError and returns zero lines.
// Printing is the caller's concern; Run's contract is the ordered lines.
func Run(count int64, items []int64) ([]string, error) {
	if count < 0 {
		return nil, &InvalidCountError{Count: count}
	}

	lines := make([]string, 0, count+2)
	for n := range Enumerate(count) {
		lines = append(lines, strconv.FormatInt(n, 10))
	}

	if len(items) > 0 {
		g, err := greet.New(DefaultIdentity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, g.Greet())
	}

	rec := record.Record{Count: count, Items: items}
	canonical, err := rec.Canonical()
	if err != nil {
		return nil, fmt.Errorf("serializing record: %w", err)
	}
	lines = append(lines, string(canonical))

	return lines, nil
}
