package chunk

import (
	"regexp"
	"strings"
)

var tsDeclPatterns = []struct {
	re   *regexp.Regexp
	kind Type
}{
	{regexp.MustCompile(`^export\s+(?:async\s+)?function\s+(\w+)`), TypeTypeScriptFunction},
	{regexp.MustCompile(`^export\s+(?:default\s+)?class\s+(\w+)`), TypeTypeScriptClass},
	{regexp.MustCompile(`^export\s+interface\s+(\w+)`), TypeTypeScriptIface},
	{regexp.MustCompile(`^export\s+type\s+(\w+)\s*=`), TypeTypeScriptType},
	{regexp.MustCompile(`^export\s+(?:const|let|var)\s+(\w+)`), TypeTypeScriptVariable},
}

// matchTSDecl returns (kind, symbolName, true) if line is a top-level
// exported declaration line.
func matchTSDecl(line string) (Type, string, bool) {
	for _, p := range tsDeclPatterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			return p.kind, m[1], true
		}
	}
	return "", "", false
}

// chunkTypeScript sections a TypeScript/JavaScript file into one chunk per
// top-level exported declaration plus an aggregated module chunk.
func chunkTypeScript(content []byte) []Chunk {
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
	covered := make([]bool, len(lines)+1)

	for i := 0; i < len(lines); {
		kind, symbol, ok := matchTSDecl(lines[i])
		if !ok {
			i++
			continue
		}

		start := i + 1
		endIdx := i // 0-based index of last line included
		j := i + 1
		for j < len(lines) {
			if _, _, isDecl := matchTSDecl(lines[j]); isDecl {
				break
			}
			if strings.TrimSpace(lines[j]) == "}" {
				nextBlankOrEOF := j+1 >= len(lines) || strings.TrimSpace(lines[j+1]) == ""
				if nextBlankOrEOF {
					endIdx = j
					j++
					break
				}
			}
			endIdx = j
			j++
		}

		end := endIdx + 1
		decls = append(decls, decl{chunkType: kind, symbol: symbol, start: start, end: end})
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
			ChunkType: TypeTypeScriptModule,
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
			ChunkType: TypeTypeScriptModule,
			Content:   strings.Join(moduleLines, "\n"),
			LineStart: first,
			LineEnd:   last,
		})
	}

	return chunks
}
