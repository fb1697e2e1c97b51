package chunk

import (
	"regexp"
	"strings"
)

// headingPattern matches a Markdown heading line: 1-6 '#' then whitespace
// then non-empty text.
var headingPattern = regexp.MustCompile(`^#{1,6}\s+.+$`)

// chunkMarkdown sections a Markdown file by heading: each chunk spans from a
// heading line (inclusive) to the line before the next heading or EOF.
// Content before the first heading becomes its own chunk only if
// non-whitespace. A file with no heading at all yields a single whole-file
// chunk with empty SymbolName.
func chunkMarkdown(content []byte) []Chunk {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil
	}

	headingLines := make([]int, 0) // 1-based line numbers of headings
	for i, line := range lines {
		if headingPattern.MatchString(line) {
			headingLines = append(headingLines, i+1)
		}
	}

	if len(headingLines) == 0 {
		return []Chunk{{
			ChunkType: TypeMarkdownSection,
			Content:   joinLines(lines, 1, len(lines)),
			LineStart: 1,
			LineEnd:   len(lines),
		}}
	}

	var chunks []Chunk

	if preambleEnd := headingLines[0] - 1; preambleEnd >= 1 {
		preamble := joinLines(lines, 1, preambleEnd)
		if hasNonWhitespace(preamble) {
			chunks = append(chunks, Chunk{
				ChunkType: TypeMarkdownSection,
				Content:   preamble,
				LineStart: 1,
				LineEnd:   preambleEnd,
			})
		}
	}

	for i, start := range headingLines {
		end := len(lines)
		if i+1 < len(headingLines) {
			end = headingLines[i+1] - 1
		}
		chunks = append(chunks, Chunk{
			ChunkType:  TypeMarkdownSection,
			SymbolName: headingTitle(lines[start-1]),
			Content:    joinLines(lines, start, end),
			LineStart:  start,
			LineEnd:    end,
		})
	}

	return chunks
}

var leadingHashesAndSpace = regexp.MustCompile(`^#{1,6}\s+`)

func headingTitle(line string) string {
	return strings.TrimSpace(leadingHashesAndSpace.ReplaceAllString(line, ""))
}

func hasNonWhitespace(s string) bool {
	return strings.TrimSpace(s) != ""
}
