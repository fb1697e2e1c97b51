package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineCmd_FindsPythonFunction(t *testing.T) {
	orig, origDB := projectRoot, dbPath
	defer func() { projectRoot, dbPath = orig, origDB }()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widgets.py"), []byte("def build():\n    pass\n"), 0o644))

	projectRoot = dir
	dbPath = ""

	var stdout bytes.Buffer
	cmd := newDefineCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--json", "--language", "python", "build"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "widgets.py")
}

func TestRefsCmd_RequiresLanguageFlag(t *testing.T) {
	cmd := newRefsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"build"})

	assert.Error(t, cmd.Execute())
}
