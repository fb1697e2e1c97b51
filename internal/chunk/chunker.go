package chunk

import (
	"bytes"
	"path/filepath"
	"strings"
)

// DocBoostFiles names basenames whose chunks are treated as primary project
// documentation and get is_doc_file = true.
var DocBoostFiles = map[string]struct{}{
	"FileStructure.md":    {},
	"IntegrationGuide.md": {},
}

// binarySniffWindow is the number of leading bytes inspected for a NUL byte.
const binarySniffWindow = 8192

// Chunk splits path's content into typed fragments. It never returns an
// error: syntactically invalid input falls back to a whole-file chunk, and
// binary content (a NUL byte within the first 8 KiB) yields zero chunks.
func Chunk(path string, content []byte) []Chunk {
	if isBinary(content) {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	isDoc := isDocBoost(path)

	var chunks []Chunk
	switch ext {
	case ".md":
		chunks = chunkMarkdown(content)
	case ".py":
		chunks = chunkPython(content)
	case ".ts", ".tsx", ".js", ".jsx":
		chunks = chunkTypeScript(content)
	case ".txt":
		chunks = chunkWhole(content, TypeTextFile)
	case ".json", ".yaml", ".yml", ".toml":
		chunks = chunkWhole(content, TypeConfigFile)
	default:
		chunks = chunkWhole(content, TypeTextFile)
	}

	for i := range chunks {
		chunks[i].FilePath = path
		chunks[i].IsDocFile = isDoc
	}
	return chunks
}

func isBinary(content []byte) bool {
	window := content
	if len(window) > binarySniffWindow {
		window = window[:binarySniffWindow]
	}
	return bytes.IndexByte(window, 0) >= 0
}

func isDocBoost(path string) bool {
	_, ok := DocBoostFiles[filepath.Base(path)]
	return ok
}

// splitLines splits content into lines for 1-based inclusive line ranges: a
// trailing newline does not create a phantom empty final line.
func splitLines(content []byte) []string {
	s := string(content)
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func joinLines(lines []string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(lines[start-1:end], "\n")
}
