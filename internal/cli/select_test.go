package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_Text(t *testing.T) {
	cmd, buf := newTestCommand(NewSelectCommand, "text",
		"--listing", "testdata/listing.yaml",
		`webgpu:shader,*`, `webgpu:api,operation,buffers:map:size=8;*`)
	require.NoError(t, cmd.Execute())

	want := `webgpu:api,operation,buffers:map:mode="read";size=8
webgpu:api,operation,buffers:map:mode="write";size=8
webgpu:shader,execution:negation:vectorize=2
webgpu:shader,execution:negation:vectorize=4
`
	assert.Equal(t, want, buf.String())
}

func TestSelect_JSON(t *testing.T) {
	cmd, buf := newTestCommand(NewSelectCommand, "json",
		"--listing", "testdata/listing.yaml", "-j", "2",
		`webgpu:api,operation,buffers:unmap:*`)
	require.NoError(t, cmd.Execute())

	var got SelectResult
	decodeResponse(t, buf.Bytes(), &got)
	assert.Equal(t, SelectResult{
		Filters:  []string{`webgpu:api,operation,buffers:unmap:*`},
		Cases:    7,
		Selected: []string{`webgpu:api,operation,buffers:unmap:`},
	}, got)
}

func TestSelect_NothingSelected(t *testing.T) {
	cmd, buf := newTestCommand(NewSelectCommand, "text",
		"--listing", "testdata/listing.yaml", `webgpu:api,textures,*`)
	require.NoError(t, cmd.Execute())
	assert.Empty(t, buf.String())
}

func TestSelect_MissingListingFlag(t *testing.T) {
	cmd, _ := newTestCommand(NewSelectCommand, "text", `webgpu:*`)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Contains(t, err.Error(), "listing")
}

func TestSelect_InvalidFilter(t *testing.T) {
	cmd, buf := newTestCommand(NewSelectCommand, "text", "--listing", "testdata/listing.yaml", `webgpu`)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Error [E002]")
}
