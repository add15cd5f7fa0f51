package cli

import (
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/ctsq/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
}

// RunEntry is the JSON form of a stored run.
type RunEntry struct {
	ID        string `json:"id"`
	Seq       int64  `json:"seq"`
	Label     string `json:"label,omitempty"`
	CreatedAt string `json:"created_at"`
	Results   int    `json:"results"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs",
		Long: `List the runs in a result database, oldest first.

Example:
  ctsq runs --db results.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runs, err := st.ListRuns(commandContext(cmd))
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to list runs", err)
	}

	if formatter.Format == "json" {
		entries := make([]RunEntry, len(runs))
		for i, r := range runs {
			entries[i] = RunEntry{
				ID:        r.ID,
				Seq:       r.Seq,
				Label:     r.Label,
				CreatedAt: r.CreatedAt.Format(time.RFC3339),
				Results:   r.Results,
			}
		}
		return formatter.Success(entries)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tID\tLABEL\tRESULTS\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", r.Seq, r.ID, r.Label, r.Results, r.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
