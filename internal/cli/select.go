package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ctsq/internal/selection"
)

// SelectOptions holds flags for the select command.
type SelectOptions struct {
	*RootOptions
	Listing string
	Jobs    int
}

// SelectResult is the JSON payload of the select command.
type SelectResult struct {
	Filters  []string `json:"filters"`
	Cases    int      `json:"cases"`
	Selected []string `json:"selected"`
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SelectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "select <filter>...",
		Short: "Print the listing cases selected by filters",
		Long: `Print every case of a listing that at least one filter query selects,
in listing order. A filter selects a case if it equals or strictly
contains it.

Example:
  ctsq select 'webgpu:api,operation,buffers:map:mode="read";*' --listing webgpu.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Listing, "listing", "", "listing file (required)")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "parallel workers (default: number of CPUs)")
	_ = cmd.MarkFlagRequired("listing")

	return cmd
}

func runSelect(opts *SelectOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	filters, err := parseQueries(args)
	if err != nil {
		return commandError(formatter, ErrCodeQuery, "invalid filter", err)
	}
	cases, err := loadListingQueries(opts.Listing)
	if err != nil {
		return commandError(formatter, ErrCodeListing, "cannot load listing", err)
	}

	selected, err := selection.Select(commandContext(cmd), filters, cases, selection.Options{Workers: opts.Jobs})
	if err != nil {
		return commandError(formatter, ErrCodeGeneric, "selection interrupted", err)
	}
	formatter.VerboseLog("selected %d of %d cases", len(selected), len(cases))

	if formatter.Format == "json" {
		return formatter.Success(SelectResult{
			Filters:  queryStrings(filters),
			Cases:    len(cases),
			Selected: queryStrings(selected),
		})
	}

	for _, q := range selected {
		fmt.Fprintln(formatter.Writer, q)
	}
	return nil
}
