package search

import "strings"

// trimSnippet returns content windowed to roughly twenty lines centred on
// the first line containing any of terms (case-insensitive), along with the
// absolute 1-based line numbers of that window relative to baseLine (the
// chunk's original LineStart). If no line matches, the first twenty lines
// are returned.
func trimSnippet(content string, baseLine int, terms []string) (trimmed string, windowStart, windowEnd int) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return content, baseLine, baseLine
	}

	hit := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, t := range terms {
			if t != "" && strings.Contains(lower, t) {
				hit = i
				break
			}
		}
		if hit != -1 {
			break
		}
	}

	var start, end int
	if hit == -1 {
		start, end = 0, 19
	} else {
		start, end = hit-9, hit+10
	}
	if start < 0 {
		start = 0
	}
	if end > len(lines)-1 {
		end = len(lines) - 1
	}

	windowStart = baseLine + start
	windowEnd = baseLine + end
	trimmed = strings.Join(lines[start:end+1], "\n")
	return trimmed, windowStart, windowEnd
}
