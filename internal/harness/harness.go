package harness

import (
	"fmt"

	"github.com/roach88/tally/internal/greet"
	"github.com/roach88/tally/internal/report"
)

// Result captures one scenario execution.
type Result struct {
	// Lines is the ordered output of the run. Empty when Err is set.
	Lines []string

	// Err is the validation error the run failed with, if any.
	Err error
}

// Run executes the scenario against the report builder.
// The builder's error (if any) is captured in the result, not
// returned: expectation checking is Check's job.
func Run(s *Scenario) *Result {
	lines, err := report.Run(s.Count, s.Items)
	return &Result{Lines: lines, Err: err}
}

// Check compares a result against the scenario's expectations.
// Returns nil when the result matches; a descriptive error otherwise.
func Check(s *Scenario, r *Result) error {
	if s.WantError != "" {
		if r.Err == nil {
			return fmt.Errorf("expected %s error, run succeeded with %d lines", s.WantError, len(r.Lines))
		}
		if !errHasCode(r.Err, s.WantError) {
			return fmt.Errorf("expected %s error, got: %v", s.WantError, r.Err)
		}
		if len(r.Lines) != 0 {
			return fmt.Errorf("failed run must produce zero lines, got %d", len(r.Lines))
		}
		return nil
	}

	if r.Err != nil {
		return fmt.Errorf("expected success, run failed: %w", r.Err)
	}
	if len(r.Lines) != len(s.Lines) {
		return fmt.Errorf("expected %d lines, got %d", len(s.Lines), len(r.Lines))
	}
	for i, want := range s.Lines {
		if r.Lines[i] != want {
			return fmt.Errorf("line %d: expected %q, got %q", i, want, r.Lines[i])
		}
	}
	return nil
}

// errHasCode maps a builder error to a scenario error code.
func errHasCode(err error, code string) bool {
	switch code {
	case WantInvalidCount:
		return report.IsInvalidCount(err)
	case WantInvalidIdentity:
		return greet.IsInvalidIdentity(err)
	default:
		return false
	}
}
