package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ctsq/internal/selection"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Listing string
}

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Queries  int            `json:"queries"`
	Overlaps []OverlapEntry `json:"overlaps"`
}

// OverlapEntry is one overlapping pair.
type OverlapEntry struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Ordering string `json:"ordering"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [queries...]",
		Short: "Report duplicate or nested queries",
		Long: `Report every pair of queries where one equals or contains the other.
Queries come from the arguments and, with --listing, from the cases of a
listing file. Exits with status 1 if any pair overlaps.

Example:
  ctsq check --listing webgpu.yaml 'webgpu:api,*'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Listing, "listing", "", "listing file (.yaml, .json or .cue)")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	qs, err := gatherQueries(args, opts.Listing)
	if err != nil {
		return commandError(formatter, "", "cannot check queries", err)
	}

	overlaps := selection.Overlaps(qs)
	if len(overlaps) == 0 {
		if formatter.Format == "json" {
			return formatter.Success(CheckResult{Queries: len(qs), Overlaps: []OverlapEntry{}})
		}
		fmt.Fprintf(formatter.Writer, "✓ %d queries, no overlaps\n", len(qs))
		return nil
	}

	failure := NewExitError(ExitFailure, fmt.Sprintf("%d overlapping pair(s)", len(overlaps)))

	if formatter.Format == "json" {
		entries := make([]OverlapEntry, len(overlaps))
		for i, o := range overlaps {
			entries[i] = OverlapEntry{A: o.A.String(), B: o.B.String(), Ordering: o.Ordering.String()}
		}
		response := CLIResponse{
			Status: "error",
			Data:   CheckResult{Queries: len(qs), Overlaps: entries},
			Error: &CLIError{
				Code:    ErrCodeOverlap,
				Message: failure.Message,
			},
		}
		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return failure
	}

	fmt.Fprintf(formatter.Writer, "✗ %s\n\n", failure.Message)
	for _, o := range overlaps {
		fmt.Fprintf(formatter.Writer, "  %s\n", o)
	}
	return failure
}
