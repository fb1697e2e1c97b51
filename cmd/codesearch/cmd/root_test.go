package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "index", "search", "define", "refs", "doctor"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestResolvedProjectRoot_DefaultsToCwd(t *testing.T) {
	orig := projectRoot
	defer func() { projectRoot = orig }()

	projectRoot = "."
	root, err := resolvedProjectRoot()
	assert.NoError(t, err)
	assert.NotEmpty(t, root)
}

func TestResolvedProjectRoot_UsesFlag(t *testing.T) {
	orig := projectRoot
	defer func() { projectRoot = orig }()

	projectRoot = "/some/explicit/path"
	root, err := resolvedProjectRoot()
	assert.NoError(t, err)
	assert.Equal(t, "/some/explicit/path", root)
}
