package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/ctsq/internal/listing"
	"github.com/roach88/ctsq/internal/query"
	"github.com/roach88/ctsq/internal/results"
)

var errNoInput = errors.New("no queries given")

// parseQueries parses each argument as a query.
func parseQueries(args []string) ([]query.Query, error) {
	out := make([]query.Query, 0, len(args))
	for _, arg := range args {
		q, err := query.Parse(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// loadListingQueries loads a listing file and expands it into cases.
func loadListingQueries(path string) ([]query.Query, error) {
	l, err := listing.Load(path)
	if err != nil {
		return nil, err
	}
	qs, err := l.Queries()
	if err != nil {
		return nil, err
	}
	slog.Debug("expanded listing", "path", path, "cases", len(qs))
	return qs, nil
}

// gatherQueries returns the queries named by args followed by the cases
// of the listing, if one is given.
func gatherQueries(args []string, listingPath string) ([]query.Query, error) {
	qs, err := parseQueries(args)
	if err != nil {
		return nil, err
	}
	if listingPath != "" {
		cases, err := loadListingQueries(listingPath)
		if err != nil {
			return nil, err
		}
		qs = append(qs, cases...)
	}
	if len(qs) == 0 {
		return nil, errNoInput
	}
	return qs, nil
}

// readResultsFile parses a results file.
func readResultsFile(path string) (results.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := results.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// commandContext returns the command's context, or Background if unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func queryStrings(qs []query.Query) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.String()
	}
	return out
}
