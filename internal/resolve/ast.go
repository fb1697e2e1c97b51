package resolve

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Point is a 0-indexed row/column position in source.
type Point struct {
	Row    uint32
	Column uint32
}

// Node is one node of a parsed AST, detached from the tree-sitter C bindings
// so the rest of the resolver can walk it without holding a parser handle.
type Node struct {
	Type       string
	StartByte  uint32
	EndByte    uint32
	StartPoint Point
	EndPoint   Point
	Children   []*Node
	Parent     *Node
}

// Content returns the source slice covered by n.
func (n *Node) Content(source []byte) string {
	if n.StartByte >= n.EndByte || int(n.EndByte) > len(source) {
		return ""
	}
	return string(source[n.StartByte:n.EndByte])
}

// FindChildByType returns the first direct child of the given type.
func (n *Node) FindChildByType(nodeType string) *Node {
	for _, c := range n.Children {
		if c.Type == nodeType {
			return c
		}
	}
	return nil
}

// Walk performs a depth-first traversal, calling fn on every node including
// n itself. fn returning false prunes that subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Tree is a parsed file's AST plus its source bytes.
type Tree struct {
	Root   *Node
	Source []byte
}

// grammarFor maps a file extension to its tree-sitter grammar. Only the
// extensions the python and typescript backends need are registered.
func grammarFor(ext string) (*sitter.Language, bool) {
	switch ext {
	case ".py":
		return python.GetLanguage(), true
	case ".ts":
		return typescript.GetLanguage(), true
	case ".tsx":
		return tsx.GetLanguage(), true
	case ".js", ".jsx":
		return javascript.GetLanguage(), true
	default:
		return nil, false
	}
}

// Parse parses source as the grammar registered for ext.
func Parse(ctx context.Context, source []byte, ext string) (*Tree, error) {
	lang, ok := grammarFor(ext)
	if !ok {
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(lang)

	tsTree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	if tsTree == nil {
		return nil, fmt.Errorf("parse source: nil tree")
	}

	root := convertNode(tsTree.RootNode(), nil)
	return &Tree{Root: root, Source: source}, nil
}

func convertNode(tsNode *sitter.Node, parent *Node) *Node {
	if tsNode == nil {
		return nil
	}
	node := &Node{
		Type:      tsNode.Type(),
		StartByte: tsNode.StartByte(),
		EndByte:   tsNode.EndByte(),
		StartPoint: Point{
			Row:    tsNode.StartPoint().Row,
			Column: tsNode.StartPoint().Column,
		},
		EndPoint: Point{
			Row:    tsNode.EndPoint().Row,
			Column: tsNode.EndPoint().Column,
		},
		Parent:   parent,
		Children: make([]*Node, 0, int(tsNode.ChildCount())),
	}
	for i := 0; i < int(tsNode.ChildCount()); i++ {
		child := tsNode.Child(i)
		if child != nil {
			node.Children = append(node.Children, convertNode(child, node))
		}
	}
	return node
}
