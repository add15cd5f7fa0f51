package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ctsq/internal/testutil"
)

// record stores a results file with deterministic run ids and returns
// the command output.
func record(t *testing.T, format, dbPath, resultsPath, label string, gen *testutil.FixedRunIDGenerator) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	opts := &RecordOptions{
		RootOptions: &RootOptions{Format: format},
		Database:    dbPath,
		Results:     resultsPath,
		Label:       label,
	}
	if gen != nil {
		opts.RunIDGenerator = gen
	}
	err := runRecord(opts, cmd)
	return buf.String(), err
}

func TestRecord_Text(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")

	out, err := record(t, "text", dbPath, "testdata/results.txt", "nightly", testutil.NewFixedRunIDGenerator("run-a"))
	require.NoError(t, err)
	assert.Equal(t, "run-a\n", out)
}

func TestRecord_JSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")

	out, err := record(t, "json", dbPath, "testdata/results.txt", "nightly", testutil.NewFixedRunIDGenerator("run-a"))
	require.NoError(t, err)

	var got RecordResult
	decodeResponse(t, []byte(out), &got)
	assert.Equal(t, RecordResult{RunID: "run-a", Label: "nightly", Results: 4, Inserted: 4}, got)
}

func TestRecord_DefaultRunIDIsUUID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")

	cmd, buf := newTestCommand(NewRecordCommand, "text", "--db", dbPath, "--results", "testdata/results.txt")
	require.NoError(t, cmd.Execute())

	id := strings.TrimSpace(buf.String())
	assert.Len(t, id, 36)
}

func TestRecord_MissingResultsFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")

	out, err := record(t, "text", dbPath, "testdata/missing.txt", "", nil)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]")
}

func TestRecord_MissingFlags(t *testing.T) {
	cmd, _ := newTestCommand(NewRecordCommand, "text", "--results", "testdata/results.txt")

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Contains(t, err.Error(), "db")
}

func TestResults_LatestRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	gen := testutil.NewFixedRunIDGenerator("run-a", "run-b")
	_, err := record(t, "text", dbPath, "testdata/results.txt", "", gen)
	require.NoError(t, err)
	_, err = record(t, "text", dbPath, "testdata/results.txt", "", gen)
	require.NoError(t, err)

	cmd, buf := newTestCommand(NewResultsCommand, "text", "--db", dbPath, `webgpu:api,operation,buffers:map:*`)
	require.NoError(t, cmd.Execute())

	want := `webgpu:api,operation,buffers:map:mode="read";size=4 linux PASS
webgpu:api,operation,buffers:map:mode="read";size=8 linux FAIL
`
	assert.Equal(t, want, buf.String())
}

func TestResults_JSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	_, err := record(t, "text", dbPath, "testdata/results.txt", "", testutil.NewFixedRunIDGenerator("run-a"))
	require.NoError(t, err)

	cmd, buf := newTestCommand(NewResultsCommand, "json", "--db", dbPath, "--run", "run-a", `webgpu:shader,*`)
	require.NoError(t, cmd.Execute())

	var got ResultsOutput
	decodeResponse(t, buf.Bytes(), &got)
	assert.Equal(t, ResultsOutput{
		RunID:  "run-a",
		Filter: `webgpu:shader,*`,
		Results: []ResultEntry{{
			Query:  `webgpu:shader,execution:negation:vectorize=2`,
			Tags:   []string{"linux", "nvidia"},
			Status: "CRASH",
		}},
		Counts: map[string]int{"CRASH": 1},
	}, got)
}

func TestResults_UnknownRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	_, err := record(t, "text", dbPath, "testdata/results.txt", "", nil)
	require.NoError(t, err)

	cmd, buf := newTestCommand(NewResultsCommand, "text", "--db", dbPath, "--run", "nope")
	err = cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E005]")
}

func TestResults_EmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")

	cmd, buf := newTestCommand(NewResultsCommand, "text", "--db", dbPath)
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "no run to show")
}

func TestRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	gen := testutil.NewFixedRunIDGenerator("run-a", "run-b")
	_, err := record(t, "text", dbPath, "testdata/results.txt", "first", gen)
	require.NoError(t, err)
	_, err = record(t, "text", dbPath, "testdata/results.txt", "", gen)
	require.NoError(t, err)

	cmd, buf := newTestCommand(NewRunsCommand, "json", "--db", dbPath)
	require.NoError(t, cmd.Execute())

	var got []RunEntry
	decodeResponse(t, buf.Bytes(), &got)
	require.Len(t, got, 2)
	assert.Equal(t, "run-a", got[0].ID)
	assert.Equal(t, "first", got[0].Label)
	assert.Equal(t, 4, got[0].Results)
	assert.Equal(t, "run-b", got[1].ID)
	assert.Equal(t, int64(2), got[1].Seq)
}

func TestRuns_Text(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	_, err := record(t, "text", dbPath, "testdata/results.txt", "first", testutil.NewFixedRunIDGenerator("run-a"))
	require.NoError(t, err)

	cmd, buf := newTestCommand(NewRunsCommand, "text", "--db", dbPath)
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "SEQ"))
	assert.Contains(t, lines[1], "run-a")
	assert.Contains(t, lines[1], "first")
}
