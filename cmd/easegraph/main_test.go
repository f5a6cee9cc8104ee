package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/ease/define"
)

func TestLibrary(t *testing.T) {
	r, err := library("interpolations", "")
	require.NoError(t, err)
	assert.Equal(t, 140, r.Len())

	r, err = library("equations", "../../define/testdata/curves.json")
	require.NoError(t, err)
	assert.Equal(t, 156, r.Len())
	_, ok := r.Lookup("Hop.OUT")
	assert.True(t, ok)

	_, err = library("physics", "")
	assert.Error(t, err)

	_, err = library("equations", "nonexistent.yaml")
	assert.Equal(t, define.EMISSING, define.Code(err))
}

func TestWriteGraphs(t *testing.T) {
	r, err := library("equations", "")
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "graphs")
	require.NoError(t, writeGraphs(r, dir, -1))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, r.Len()+1)

	svg, err := os.ReadFile(filepath.Join(dir, "Quad.OUT.svg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<svg"), "got %.40q", svg)
	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `src="Quad.OUT.svg"`)
}
