package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_FindsIndexedContent(t *testing.T) {
	orig, origDB := projectRoot, dbPath
	defer func() { projectRoot, dbPath = orig, origDB }()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "FileStructure.md"), []byte("# Layout\n\nwidgets live in widgets.py\n"), 0o644))

	projectRoot = dir
	dbPath = ""

	var stdout bytes.Buffer
	cmd := newSearchCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--json", "widgets"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "FileStructure.md")
}
