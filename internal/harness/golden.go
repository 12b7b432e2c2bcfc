package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/tally/internal/record"
)

// snapshot converts a scenario execution to a canonical record.Object
// for byte-deterministic golden comparison. Field order is fixed.
func snapshot(s *Scenario, r *Result) record.Object {
	return record.Object{
		{Key: "name", Value: record.String(s.Name)},
		{Key: "count", Value: record.Int(s.Count)},
		{Key: "items", Value: record.Ints(s.Items)},
		{Key: "lines", Value: record.Strings(r.Lines)},
	}
}

// RunWithGolden executes a scenario and compares a canonical snapshot
// of its output against a golden file. The golden file is stored in
// testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Only success scenarios have golden files; error scenarios are
// checked with Check. Returns error if the run itself fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, s *Scenario) error {
	t.Helper()

	result := Run(s)
	if result.Err != nil {
		return result.Err
	}

	data, err := record.MarshalCanonical(snapshot(s, result))
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)

	return nil
}
