package search

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line " + strconv.Itoa(i+1)
	}
	return strings.Join(lines, "\n")
}

func TestTrimSnippet_CentersOnFirstHit(t *testing.T) {
	content := buildLines(40)
	content = strings.Replace(content, "line 20", "line 20 needle", 1)

	trimmed, start, end := trimSnippet(content, 1, []string{"needle"})

	assert.Equal(t, 11, start) // 20-9
	assert.Equal(t, 30, end)   // 20+10
	assert.Contains(t, trimmed, "needle")
}

func TestTrimSnippet_NoHitReturnsFirstTwentyLines(t *testing.T) {
	content := buildLines(40)

	trimmed, start, end := trimSnippet(content, 1, []string{"absent"})

	assert.Equal(t, 1, start)
	assert.Equal(t, 20, end)
	assert.Contains(t, trimmed, "line 1")
	assert.NotContains(t, trimmed, "line 21")
}

func TestTrimSnippet_ClampsNearFileStart(t *testing.T) {
	content := buildLines(5)
	content = strings.Replace(content, "line 1", "line 1 needle", 1)

	_, start, end := trimSnippet(content, 1, []string{"needle"})

	assert.Equal(t, 1, start)
	assert.Equal(t, 5, end)
}
