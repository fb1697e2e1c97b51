package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTypeScript_FunctionAndModule(t *testing.T) {
	src := `import React from 'react'

const helper = 1

export function ModelSelector(props) {
  return null
}

export interface Props {
  name: string
}
`
	chunks := Chunk("components/ModelSelector.tsx", []byte(src))

	var fn, iface, mod *Chunk
	for i := range chunks {
		switch chunks[i].ChunkType {
		case TypeTypeScriptFunction:
			fn = &chunks[i]
		case TypeTypeScriptIface:
			iface = &chunks[i]
		case TypeTypeScriptModule:
			mod = &chunks[i]
		}
	}
	require.NotNil(t, fn)
	require.NotNil(t, iface)
	require.NotNil(t, mod)

	assert.Equal(t, "ModelSelector", fn.SymbolName)
	assert.Equal(t, 5, fn.LineStart)
	assert.Equal(t, 7, fn.LineEnd)

	assert.Equal(t, "Props", iface.SymbolName)
	assert.Contains(t, mod.Content, "import React")
	assert.Contains(t, mod.Content, "const helper = 1")
}

func TestChunkTypeScript_NoDeclarations(t *testing.T) {
	chunks := Chunk("plain.ts", []byte("const a = 1\nconsole.log(a)\n"))
	require.Len(t, chunks, 1)
	assert.Equal(t, TypeTypeScriptModule, chunks[0].ChunkType)
}
