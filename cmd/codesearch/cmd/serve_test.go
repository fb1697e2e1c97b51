package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServeCmd_Shape(t *testing.T) {
	cmd := newServeCmd()
	assert.Equal(t, "serve", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
