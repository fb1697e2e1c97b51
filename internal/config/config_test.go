package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New("/proj")
	assert.Equal(t, "/proj", cfg.ProjectRoot)
	assert.Equal(t, filepath.Join("/proj", DefaultDBFileName), cfg.Store.DBPath)
	assert.Equal(t, ".md", cfg.Server.DefaultSearchExtensions)
	assert.Equal(t, 5, cfg.Server.DefaultSearchLimit)
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultDBFileName), cfg.Store.DBPath)
}

func TestLoad_MergesYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
paths:
  extra_skip_dirs: ["vendor"]
  extra_indexable_extensions: [".rs"]
server:
  default_search_extensions: "*"
  default_search_limit: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".codesearch.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "*", cfg.Server.DefaultSearchExtensions)
	assert.Equal(t, 10, cfg.Server.DefaultSearchLimit)
	assert.Contains(t, cfg.Paths.ExtraSkipDirs, "vendor")
	assert.Contains(t, cfg.Paths.ExtraIndexable, ".rs")
}

func TestLoad_DBPathOverrideWins(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir, "custom.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.db"), cfg.Store.DBPath)
}

func TestSkipDirs_IncludesDefaultsAndExtras(t *testing.T) {
	cfg := New("/proj")
	cfg.Paths.ExtraSkipDirs = []string{"vendor"}
	set := cfg.SkipDirs()
	assert.Contains(t, set, ".git")
	assert.Contains(t, set, "vendor")
}

func TestIndexableExtensions_IncludesDefaultsAndExtras(t *testing.T) {
	cfg := New("/proj")
	cfg.Paths.ExtraIndexable = []string{".rs"}
	set := cfg.IndexableExtensions()
	assert.Contains(t, set, ".py")
	assert.Contains(t, set, ".rs")
}
