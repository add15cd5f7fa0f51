package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ctsq/internal/query"
	"github.com/roach88/ctsq/internal/results"
	"github.com/roach88/ctsq/internal/store"
)

// ResultsOptions holds flags for the results command.
type ResultsOptions struct {
	*RootOptions
	Database string
	Run      string
}

// ResultEntry is the JSON form of a stored result.
type ResultEntry struct {
	Query  string   `json:"query"`
	Tags   []string `json:"tags"`
	Status string   `json:"status"`
}

// ResultsOutput is the JSON payload of the results command.
type ResultsOutput struct {
	RunID   string         `json:"run_id"`
	Filter  string         `json:"filter,omitempty"`
	Results []ResultEntry  `json:"results"`
	Counts  map[string]int `json:"counts"`
}

// NewResultsCommand creates the results command.
func NewResultsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResultsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "results [filter]",
		Short: "Print stored results",
		Long: `Print the results of a stored run in the results file format. Without
--run the latest run is used. With a filter query only the results it
selects are printed.

Example:
  ctsq results --db results.db 'webgpu:api,*'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResults(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "run id (default: latest run)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runResults(opts *ResultsOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := commandContext(cmd)

	var filter query.Query
	if len(args) == 1 {
		q, err := query.Parse(args[0])
		if err != nil {
			return commandError(formatter, ErrCodeQuery, "invalid filter", err)
		}
		filter = q
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runID := opts.Run
	if runID == "" {
		run, err := st.LatestRun(ctx)
		if err != nil {
			return commandError(formatter, ErrCodeStore, "no run to show", err)
		}
		runID = run.ID
	}

	list, err := st.ReadResults(ctx, runID, filter)
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to read results", err)
	}

	if formatter.Format == "json" {
		out := ResultsOutput{
			RunID:   runID,
			Results: make([]ResultEntry, len(list)),
			Counts:  make(map[string]int),
		}
		if filter != nil {
			out.Filter = filter.String()
		}
		for i, r := range list {
			tags := []string(r.Tags)
			if tags == nil {
				tags = []string{}
			}
			out.Results[i] = ResultEntry{Query: r.Query.String(), Tags: tags, Status: string(r.Status)}
		}
		for status, n := range list.Counts() {
			out.Counts[string(status)] = n
		}
		return formatter.Success(out)
	}

	if err := results.Write(formatter.Writer, list); err != nil {
		return err
	}
	formatter.VerboseLog("%d results from run %s", len(list), runID)
	return nil
}
