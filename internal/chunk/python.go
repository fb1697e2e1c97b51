package chunk

import (
	"regexp"
	"strings"
)

var (
	pyDefPattern   = regexp.MustCompile(`^def\s+(\w+)`)
	pyClassPattern = regexp.MustCompile(`^class\s+(\w+)`)
)

// chunkPython sections a Python file into one chunk per top-level def/class
// declaration plus an aggregated module chunk for everything else.
func chunkPython(content []byte) []Chunk {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil
	}

	type decl struct {
		chunkType  Type
		symbol     string
		start, end int // 1-based inclusive
	}

	var decls []decl
	covered := make([]bool, len(lines)+1) // 1-based index

	for i := 0; i < len(lines); {
		line := lines[i]
		var chunkType Type
		var symbol string
		if m := pyDefPattern.FindStringSubmatch(line); m != nil {
			chunkType, symbol = TypePythonFunction, m[1]
		} else if m := pyClassPattern.FindStringSubmatch(line); m != nil {
			chunkType, symbol = TypePythonClass, m[1]
		} else {
			i++
			continue
		}

		start := i + 1 // 1-based
		end := start
		j := i + 1
		for j < len(lines) {
			l := lines[j]
			trimmed := strings.TrimSpace(l)
			if trimmed == "" {
				j++
				continue
			}
			if isIndented(l) {
				end = j + 1
				j++
				continue
			}
			break // top-level non-blank line: stop
		}

		decls = append(decls, decl{chunkType: chunkType, symbol: symbol, start: start, end: end})
		for k := start; k <= end; k++ {
			covered[k] = true
		}
		i = j
	}

	var chunks []Chunk
	for _, d := range decls {
		chunks = append(chunks, Chunk{
			ChunkType:  d.chunkType,
			SymbolName: d.symbol,
			Content:    joinLines(lines, d.start, d.end),
			LineStart:  d.start,
			LineEnd:    d.end,
		})
	}

	if len(decls) == 0 {
		return []Chunk{{
			ChunkType: TypePythonModule,
			Content:   joinLines(lines, 1, len(lines)),
			LineStart: 1,
			LineEnd:   len(lines),
		}}
	}

	var moduleLines []string
	first, last := -1, -1
	for idx := 1; idx <= len(lines); idx++ {
		if covered[idx] {
			continue
		}
		if first == -1 {
			first = idx
		}
		last = idx
		moduleLines = append(moduleLines, lines[idx-1])
	}
	if first != -1 {
		chunks = append(chunks, Chunk{
			ChunkType: TypePythonModule,
			Content:   strings.Join(moduleLines, "\n"),
			LineStart: first,
			LineEnd:   last,
		})
	}

	return chunks
}

func isIndented(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}
