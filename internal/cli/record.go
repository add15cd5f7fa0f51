package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ctsq/internal/store"
)

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
	Database string
	Results  string
	Label    string

	// RunIDGenerator allows overriding run ids (for testing).
	// If nil, the store's UUIDv7 generator is used.
	RunIDGenerator store.RunIDGenerator
}

// RecordResult is the JSON payload of the record command.
type RecordResult struct {
	RunID    string `json:"run_id"`
	Label    string `json:"label,omitempty"`
	Results  int    `json:"results"`
	Inserted int    `json:"inserted"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Store a results file as a new run",
		Long: `Read a results file, one "<query> <tags> <status>" line per result, and
store it as a new run in a SQLite database (created if missing). Prints
the run id.

Example:
  ctsq record --db results.db --results nightly.txt --label nightly`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Results, "results", "", "results file (required)")
	cmd.Flags().StringVar(&opts.Label, "label", "", "label for the run")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("results")

	return cmd
}

func runRecord(opts *RecordOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := commandContext(cmd)

	list, err := readResultsFile(opts.Results)
	if err != nil {
		return commandError(formatter, ErrCodeResults, "cannot read results", err)
	}

	var storeOpts []store.Option
	if opts.RunIDGenerator != nil {
		storeOpts = append(storeOpts, store.WithRunIDGenerator(opts.RunIDGenerator))
	}
	st, err := store.Open(opts.Database, storeOpts...)
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	run, err := st.CreateRun(ctx, opts.Label)
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to create run", err)
	}
	inserted, err := st.WriteResults(ctx, run.ID, list)
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to write results", err)
	}
	slog.Info("recorded run", "run", run.ID, "results", len(list), "inserted", inserted)

	if formatter.Format == "json" {
		return formatter.Success(RecordResult{
			RunID:    run.ID,
			Label:    run.Label,
			Results:  len(list),
			Inserted: inserted,
		})
	}

	fmt.Fprintln(formatter.Writer, run.ID)
	formatter.VerboseLog("%d results, %d new", len(list), inserted)
	return nil
}
