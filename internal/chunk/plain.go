package chunk

// chunkWhole produces a single chunk covering the whole file, with an empty
// SymbolName. Used for plain text and config files with no internal
// structure worth sectioning.
func chunkWhole(content []byte, t Type) []Chunk {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil
	}
	return []Chunk{{
		ChunkType: t,
		Content:   joinLines(lines, 1, len(lines)),
		LineStart: 1,
		LineEnd:   len(lines),
	}}
}
