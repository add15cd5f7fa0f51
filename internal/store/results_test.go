package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ctsq/internal/query"
)

var sampleLines = []string{
	`webgpu:api,buffers:map:mode="read" linux PASS`,
	`webgpu:api,buffers:map:mode="write" linux FAIL`,
	`webgpu:api,buffers:map:mode="write" mac PASS`,
	`webgpu:shader,unary:negation:vectorize=2  SKIP`,
	`other:api,buffers:map:mode="read" linux CRASH`,
}

func TestWriteAndReadResults(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "")
	require.NoError(t, err)

	n, err := s.WriteResults(ctx, run.ID, mustResults(t, sampleLines...))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	got, err := s.ReadResults(ctx, run.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, sampleLines, resultStrings(got))
}

func TestWriteResults_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run, err := s.CreateRun(ctx, "")
	require.NoError(t, err)

	_, err = s.WriteResults(ctx, run.ID, mustResults(t, sampleLines...))
	require.NoError(t, err)

	// Same query and tags with another status is still a duplicate.
	n, err := s.WriteResults(ctx, run.ID, mustResults(t,
		`webgpu:api,buffers:map:mode="read" linux FAIL`,
		`webgpu:api,buffers:map:mode="read" mac PASS`,
	))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.ReadResults(ctx, run.ID, nil)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, `webgpu:api,buffers:map:mode="read" linux PASS`, got[0].String())
	assert.Equal(t, `webgpu:api,buffers:map:mode="read" mac PASS`, got[5].String())
}

func TestWriteResults_PrivateParamsAreSameCase(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run, err := s.CreateRun(ctx, "")
	require.NoError(t, err)

	n, err := s.WriteResults(ctx, run.ID, mustResults(t,
		`s:a:t:_seed=1;x=1 linux PASS`,
		`s:a:t:_seed=2;x=1 linux PASS`,
	))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWriteResults_UnknownRun(t *testing.T) {
	s := createTestStore(t)

	_, err := s.WriteResults(context.Background(), "missing", mustResults(t, sampleLines[0]))
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestReadResults_Filter(t *testing.T) {
	s := createTestStore(t)
	run := createRunWith(t, s, sampleLines...)
	ctx := context.Background()

	tests := []struct {
		filter string
		want   []string
	}{
		{`webgpu:*`, sampleLines[:4]},
		{`webgpu:api,*`, sampleLines[:3]},
		{`webgpu:api,buffers:map:mode="write";*`, sampleLines[1:3]},
		{`webgpu:api,buffers:map:mode="read"`, sampleLines[:1]},
		{`other:*`, sampleLines[4:]},
		{`webgpu:api,textures,*`, nil},
		{`missing:*`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got, err := s.ReadResults(ctx, run.ID, query.MustParse(tt.filter))
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, resultStrings(got))
		})
	}
}

func TestReadResults_RunsAreSeparate(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run1 := createRunWith(t, s, sampleLines[0])
	run2 := createRunWith(t, s, sampleLines[1])

	got, err := s.ReadResults(ctx, run1.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, sampleLines[:1], resultStrings(got))

	got, err = s.ReadResults(ctx, run2.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, sampleLines[1:2], resultStrings(got))
}

func TestReadResults_UnknownRun(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadResults(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrRunNotFound)
}
