package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPythonFiles_SkipsDefaultSkipDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "x = 1\n")
	writeFile(t, dir, "node_modules/vendored.py", "y = 2\n")
	writeFile(t, dir, "sub/b.py", "z = 3\n")

	files := pythonFiles(dir)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.NotContains(t, f, "node_modules")
	}
}

func TestTypeScriptFiles_FallsBackWhenNoTSConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "const x = 1\n")
	writeFile(t, dir, "dist/bundle.js", "var y = 1\n")

	files := typeScriptFiles(dir)
	require.Len(t, files, 1)
	assert.True(t, filepath.Base(files[0]) == "a.ts")
}

func TestTypeScriptFiles_UsesTSConfigDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tsconfig.json", "{}\n")
	writeFile(t, dir, "src/a.ts", "const x = 1\n")

	files := typeScriptFiles(dir)
	require.Len(t, files, 1)
}

func TestFindTSConfigDir_WalksUpward(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "tsconfig.json"), []byte("{}"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	dir, ok := findTSConfigDir(nested)
	require.True(t, ok)
	assert.Equal(t, root, dir)
}
