package preflight

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPass, "PASS"},
		{StatusWarn, "WARN"},
		{StatusFail, "FAIL"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestResult_IsCritical(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected bool
	}{
		{"required pass is not critical", Result{Status: StatusPass, Required: true}, false},
		{"required fail is critical", Result{Status: StatusFail, Required: true}, true},
		{"optional fail is not critical", Result{Status: StatusFail, Required: false}, false},
		{"required warn is not critical", Result{Status: StatusWarn, Required: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.IsCritical())
		})
	}
}

func TestNewWithOptions(t *testing.T) {
	buf := &bytes.Buffer{}
	checker := New(WithVerbose(true), WithOutput(buf))
	assert.True(t, checker.verbose)
	assert.Equal(t, buf, checker.output)
}

func TestCheckWritePermissions_Writable(t *testing.T) {
	tmpDir := t.TempDir()
	checker := New()
	result := checker.CheckWritePermissions(tmpDir)
	assert.Equal(t, StatusPass, result.Status)
	assert.Equal(t, "write_permissions", result.Name)
	assert.True(t, result.Required)
}

func TestCheckWritePermissions_ReadOnly(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("skipping read-only test when running as root")
	}
	tmpDir := t.TempDir()
	readOnlyDir := filepath.Join(tmpDir, "readonly")
	require.NoError(t, os.Mkdir(readOnlyDir, 0555))
	defer func() { _ = os.Chmod(readOnlyDir, 0755) }()

	checker := New()
	result := checker.CheckWritePermissions(readOnlyDir)
	assert.Equal(t, StatusFail, result.Status)
	assert.Contains(t, result.Message, "permission denied")
}

func TestHasCriticalFailures(t *testing.T) {
	checker := New()
	tests := []struct {
		name     string
		results  []Result
		expected bool
	}{
		{"no results", nil, false},
		{"all pass", []Result{{Status: StatusPass, Required: true}}, false},
		{"optional failure", []Result{{Status: StatusFail, Required: false}}, false},
		{"required failure", []Result{{Status: StatusFail, Required: true}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checker.HasCriticalFailures(tt.results))
		})
	}
}

func TestSummaryStatus(t *testing.T) {
	checker := New()
	tests := []struct {
		name     string
		results  []Result
		expected string
	}{
		{"all pass", []Result{{Status: StatusPass}}, "ready"},
		{"with warnings", []Result{{Status: StatusPass}, {Status: StatusWarn}}, "ready_with_warnings"},
		{"critical failure", []Result{{Status: StatusFail, Required: true}}, "failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checker.SummaryStatus(tt.results))
		})
	}
}

func TestRunAll_ReturnsAllChecks(t *testing.T) {
	tmpDir := t.TempDir()
	checker := New()
	results := checker.RunAll(context.Background(), tmpDir)

	names := make(map[string]bool, len(results))
	for _, r := range results {
		names[r.Name] = true
	}
	assert.True(t, names["disk_space"])
	assert.True(t, names["write_permissions"])
	assert.True(t, names["file_descriptors"])
	assert.True(t, names["index_store"])
	assert.True(t, names["symbol_resolver"])
}

func TestPrintResults(t *testing.T) {
	buf := &bytes.Buffer{}
	checker := New(WithOutput(buf))
	checker.PrintResults([]Result{
		{Name: "disk_space", Status: StatusPass, Message: "50 GB free"},
		{Name: "symbol_resolver", Status: StatusWarn, Message: "unavailable"},
	})
	out := buf.String()
	assert.Contains(t, out, "[PASS]")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "disk_space")
}
