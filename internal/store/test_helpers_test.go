package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/ctsq/internal/results"
	"github.com/roach88/ctsq/internal/testutil"
)

// createTestStore creates a new store in a temp dir with deterministic
// run ids and clock.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path,
		WithRunIDGenerator(testutil.NewFixedRunIDGenerator()),
		WithClock(testutil.NewStepClock(time.Second)),
	)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustResults parses result lines.
func mustResults(t *testing.T, lines ...string) results.List {
	t.Helper()
	l, err := results.ReadAll(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return l
}

func resultStrings(l results.List) []string {
	out := make([]string, len(l))
	for i, r := range l {
		out[i] = r.String()
	}
	return out
}

func createRunWith(t *testing.T, s *Store, lines ...string) Run {
	t.Helper()
	ctx := context.Background()
	run, err := s.CreateRun(ctx, "")
	require.NoError(t, err)
	_, err = s.WriteResults(ctx, run.ID, mustResults(t, lines...))
	require.NoError(t, err)
	return run
}
