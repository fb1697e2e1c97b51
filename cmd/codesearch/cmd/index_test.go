package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCmd_RefreshesAndReportsStats(t *testing.T) {
	orig, origDB := projectRoot, dbPath
	defer func() { projectRoot, dbPath = orig, origDB }()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# Hello\n\nworld\n"), 0o644))

	projectRoot = dir
	dbPath = ""

	var stdout bytes.Buffer
	cmd := newIndexCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "indexed")
}

func TestIndexInfoCmd_PrintsPaths(t *testing.T) {
	orig, origDB := projectRoot, dbPath
	defer func() { projectRoot, dbPath = orig, origDB }()

	dir := t.TempDir()
	projectRoot = dir
	dbPath = ""

	var stdout bytes.Buffer
	cmd := newIndexInfoCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "db path:")
}
