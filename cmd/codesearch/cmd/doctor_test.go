package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorCmd_BasicExecution(t *testing.T) {
	orig := projectRoot
	projectRoot = t.TempDir()
	defer func() { projectRoot = orig }()

	var stdout bytes.Buffer
	cmd := newDoctorCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	_ = cmd.Execute()
	assert.NotEmpty(t, stdout.String())
	assert.Contains(t, stdout.String(), "codesearch system check")
}

func TestDoctorCmd_JSONOutput(t *testing.T) {
	orig := projectRoot
	projectRoot = t.TempDir()
	defer func() { projectRoot = orig }()

	var stdout bytes.Buffer
	cmd := newDoctorCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--json"})

	_ = cmd.Execute()
	assert.Contains(t, stdout.String(), `"status"`)
}
