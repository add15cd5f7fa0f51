package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ctsq/internal/compare"
	"github.com/roach88/ctsq/internal/params"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Numeric bool
}

// CompareResult is the JSON payload of the compare command.
type CompareResult struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Ordering string `json:"ordering"`
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print how two queries are ordered",
		Long: `Print the ordering of query a relative to query b: StrictSuperset if a
selects every case b does and more, StrictSubset for the reverse, Equal if
they select the same cases, and Unordered otherwise.

Example:
  ctsq compare 'webgpu:api,*' 'webgpu:api,operation:map:*'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Numeric, "numeric", false, "treat +0 and -0 param values as equal")

	return cmd
}

func runCompare(opts *CompareOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	qs, err := parseQueries(args)
	if err != nil {
		return commandError(formatter, ErrCodeQuery, "invalid query", err)
	}

	c := compare.Default
	if opts.Numeric {
		c = compare.Comparator{ParamEqual: params.NumericEqual}
	}
	ord := c.Queries(qs[0], qs[1])

	if formatter.Format == "json" {
		return formatter.Success(CompareResult{
			A:        qs[0].String(),
			B:        qs[1].String(),
			Ordering: ord.String(),
		})
	}

	fmt.Fprintln(formatter.Writer, ord)
	return nil
}
