// Package harness provides conformance testing for report runs.
//
// The harness loads scenarios, executes them against the report
// builder, and checks the emitted lines as executable contract tests.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	count: 3
//	items: [1, 2, 3]
//	lines:
//	  - "0"
//	  - "1"
//	  - "2"
//	  - "Hello, world"
//	  - '{"count": 3, "items": [1, 2, 3]}'
//
// A failing scenario replaces lines with the expected error code:
//
//	want_error: INVALID_COUNT
//
// # Golden Files
//
// RunWithGolden compares a canonical snapshot of the emitted lines
// against testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
