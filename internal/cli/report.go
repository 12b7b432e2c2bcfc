package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/report"
)

// SampleCount is the enumeration count of a bare invocation.
const SampleCount = 3

// SampleItems returns the record items of a bare invocation.
// A fresh slice each call, so no run can mutate another's input.
func SampleItems() []int64 {
	return []int64{1, 2, 3}
}

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Count int64
	Items string
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Emit an enumeration report",
		Long: `Emit an enumeration report.

Prints one line per enumerated integer, a greeting when the record's
items are non-empty, and finally the canonical serialization of the
record itself.

Example:
  tally report
  tally report --count 5 --items 4,5
  tally report --count 0 --items ""`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(opts.Items)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --items", err)
			}
			return emitReport(opts.RootOptions, opts.Count, items, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Count, "count", SampleCount, "number of integers to enumerate")
	cmd.Flags().StringVar(&opts.Items, "items", "1,2,3", "comma-separated record items (empty for none)")

	return cmd
}

// emitReport runs the report builder and writes the result in the
// configured format. Validation failures carry ExitCommandError so the
// process exits nonzero without printing a partial report.
func emitReport(opts *RootOptions, count int64, items []int64, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	runToken := uuid.NewString()
	slog.Debug("report starting", "run", runToken, "count", count, "items", len(items))

	lines, err := report.Run(count, items)
	if err != nil {
		return WrapExitError(ExitCommandError, "report failed", err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   runToken,
	}
	if err := formatter.Success(lines); err != nil {
		return WrapExitError(ExitFailure, "writing report", err)
	}

	slog.Debug("report complete", "run", runToken, "lines", len(lines))
	return nil
}

// parseItems splits a comma-separated flag value into record items.
// An empty value means no items (and therefore no greeting).
func parseItems(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	items := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", p, err)
		}
		items = append(items, n)
	}
	return items, nil
}
