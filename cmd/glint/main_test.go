package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFile_ExecutesProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.glint")
	require.NoError(t, os.WriteFile(path, []byte(`println("hi")`), 0o644))

	assert.NoError(t, runFile(path))
}

func TestRunFile_MissingFileIsError(t *testing.T) {
	assert.Error(t, runFile(filepath.Join(t.TempDir(), "missing.glint")))
}

func TestNewRootCmd_HasRunAndReplSubcommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["run"])
	assert.True(t, names["repl"])
}
