// Package config loads and defaults codesearch's project configuration.
//
// Layering (lowest to highest precedence): compiled-in defaults, an optional
// .codesearch.yaml in the project root, CODESEARCH_* environment variables,
// then CLI flags applied by the caller.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSkipDirs are directories never descended into during a scan.
var DefaultSkipDirs = []string{
	".git", "node_modules", "__pycache__", ".venv", "dist", "build",
	".next", ".cache", "coverage",
}

// DefaultIndexableExtensions are the file extensions eligible for indexing.
var DefaultIndexableExtensions = []string{
	".py", ".ts", ".tsx", ".js", ".jsx", ".md", ".txt", ".json", ".yaml", ".yml", ".toml",
}

// DefaultDBFileName is the default index database file name.
const DefaultDBFileName = ".code_search.db"

// PathsConfig allows a project to extend (never shrink) the default
// skip-dir and indexable-extension sets.
type PathsConfig struct {
	ExtraSkipDirs  []string `yaml:"extra_skip_dirs"`
	ExtraIndexable []string `yaml:"extra_indexable_extensions"`
}

// StoreConfig configures the Index Store location.
type StoreConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the MCP server front end.
type ServerConfig struct {
	// DefaultSearchExtensions is the default extensions filter applied when
	// a search request omits one.
	DefaultSearchExtensions string `yaml:"default_search_extensions"`
	// DefaultSearchLimit is the default result limit for a search request.
	DefaultSearchLimit int `yaml:"default_search_limit"`
}

// Config is the complete codesearch configuration.
type Config struct {
	ProjectRoot string       `yaml:"-"`
	Paths       PathsConfig  `yaml:"paths"`
	Store       StoreConfig  `yaml:"store"`
	Server      ServerConfig `yaml:"server"`
}

// New returns a Config with compiled-in defaults for the given project root.
func New(projectRoot string) *Config {
	return &Config{
		ProjectRoot: projectRoot,
		Store:       StoreConfig{DBPath: filepath.Join(projectRoot, DefaultDBFileName)},
		Server: ServerConfig{
			DefaultSearchExtensions: ".md",
			DefaultSearchLimit:      5,
		},
	}
}

// Load reads .codesearch.yaml from projectRoot if present, merging it over
// the compiled-in defaults. Environment variables are then applied. A
// missing config file is not an error.
func Load(projectRoot string, dbPathOverride string) (*Config, error) {
	cfg := New(projectRoot)

	path := filepath.Join(projectRoot, ".codesearch.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		var onDisk Config
		if uerr := yaml.Unmarshal(data, &onDisk); uerr != nil {
			return nil, uerr
		}
		cfg.Paths = onDisk.Paths
		if onDisk.Store.DBPath != "" {
			cfg.Store.DBPath = resolvePath(projectRoot, onDisk.Store.DBPath)
		}
		if onDisk.Server.DefaultSearchExtensions != "" {
			cfg.Server.DefaultSearchExtensions = onDisk.Server.DefaultSearchExtensions
		}
		if onDisk.Server.DefaultSearchLimit > 0 {
			cfg.Server.DefaultSearchLimit = onDisk.Server.DefaultSearchLimit
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("CODESEARCH_DB_PATH"); v != "" {
		cfg.Store.DBPath = resolvePath(projectRoot, v)
	}

	if dbPathOverride != "" {
		cfg.Store.DBPath = resolvePath(projectRoot, dbPathOverride)
	}

	return cfg, nil
}

// SkipDirs returns the effective skip-dir set: defaults plus any extras.
func (c *Config) SkipDirs() map[string]struct{} {
	set := make(map[string]struct{}, len(DefaultSkipDirs)+len(c.Paths.ExtraSkipDirs))
	for _, d := range DefaultSkipDirs {
		set[d] = struct{}{}
	}
	for _, d := range c.Paths.ExtraSkipDirs {
		set[d] = struct{}{}
	}
	return set
}

// IndexableExtensions returns the effective indexable-extension set.
func (c *Config) IndexableExtensions() map[string]struct{} {
	set := make(map[string]struct{}, len(DefaultIndexableExtensions)+len(c.Paths.ExtraIndexable))
	for _, e := range DefaultIndexableExtensions {
		set[e] = struct{}{}
	}
	for _, e := range c.Paths.ExtraIndexable {
		set[e] = struct{}{}
	}
	return set
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
