package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContentMarkdown(t *testing.T) {
	out, err := RenderContent("# Review\n\nA **great** game.")

	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>great</strong>")
}

func TestRenderContentStripsScripts(t *testing.T) {
	out, err := RenderContent("hello <script>alert(1)</script> world")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestRenderContentTables(t *testing.T) {
	out, err := RenderContent("| a | b |\n|---|---|\n| 1 | 2 |")

	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}
