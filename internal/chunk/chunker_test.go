package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk_ConfigFile(t *testing.T) {
	chunks := Chunk("package.json", []byte("{\n  \"name\": \"x\"\n}\n"))
	require.Len(t, chunks, 1)
	assert.Equal(t, TypeConfigFile, chunks[0].ChunkType)
	assert.Empty(t, chunks[0].SymbolName)
	assert.Equal(t, 1, chunks[0].LineStart)
	assert.Equal(t, 3, chunks[0].LineEnd)
}

func TestChunk_TextFile(t *testing.T) {
	chunks := Chunk("notes.txt", []byte("line one\nline two\n"))
	require.Len(t, chunks, 1)
	assert.Equal(t, TypeTextFile, chunks[0].ChunkType)
}

func TestChunk_EmptyFileProducesNoChunks(t *testing.T) {
	chunks := Chunk("empty.md", []byte(""))
	assert.Empty(t, chunks)
}

func TestChunk_SetsFilePath(t *testing.T) {
	chunks := Chunk("a/b/c.md", []byte("# H\nbody\n"))
	require.NotEmpty(t, chunks)
	assert.Equal(t, "a/b/c.md", chunks[0].FilePath)
}
