package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_ArgsAndListing(t *testing.T) {
	cmd, buf := newTestCommand(NewTreeCommand, "text",
		"--listing", "testdata/listing.yaml",
		`webgpu:api,*`, `webgpu:api,operation,buffers:map:mode="read";*`)
	require.NoError(t, cmd.Execute())

	want := `webgpu:api,*
  webgpu:api,operation,buffers:map:mode="read";*
    webgpu:api,operation,buffers:map:mode="read";size=4
    webgpu:api,operation,buffers:map:mode="read";size=8
  webgpu:api,operation,buffers:map:mode="write";size=4
  webgpu:api,operation,buffers:map:mode="write";size=8
  webgpu:api,operation,buffers:unmap:
webgpu:shader,execution:negation:vectorize=2
webgpu:shader,execution:negation:vectorize=4
`
	assert.Equal(t, want, buf.String())
}

func TestTree_JSON(t *testing.T) {
	cmd, buf := newTestCommand(NewTreeCommand, "json", `s:*`, `s:a:t:`, `s:b:t:`)
	require.NoError(t, cmd.Execute())

	var got []TreeNode
	decodeResponse(t, buf.Bytes(), &got)
	assert.Equal(t, []TreeNode{{
		Query: `s:*`,
		Children: []TreeNode{
			{Query: `s:a:t:`},
			{Query: `s:b:t:`},
		},
	}}, got)
}

func TestTree_NoInput(t *testing.T) {
	cmd, buf := newTestCommand(NewTreeCommand, "text")

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E007]")
}

func TestTree_BadListing(t *testing.T) {
	cmd, buf := newTestCommand(NewTreeCommand, "text", "--listing", "testdata/missing.yaml")

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Error [E003]")
}
