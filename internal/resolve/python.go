package resolve

import (
	"bytes"
	"context"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

type pythonBackend struct {
	cache *lru.Cache[string, *Tree]
}

func newPythonBackend(cache *lru.Cache[string, *Tree]) *pythonBackend {
	return &pythonBackend{cache: cache}
}

func (b *pythonBackend) parse(ctx context.Context, path string) (*Tree, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if tree, ok := b.cache.Get(path); ok && bytes.Equal(tree.Source, source) {
		return tree, nil
	}
	tree, err := Parse(ctx, source, ".py")
	if err != nil {
		return nil, err
	}
	b.cache.Add(path, tree)
	return tree, nil
}

// GetDefinition enumerates every def/class whose name equals symbol
// (top-level or nested), plus every top-level-or-nested assignment whose
// left-hand side is exactly the bare name symbol.
func (b *pythonBackend) GetDefinition(ctx context.Context, projectRoot, symbol string) ([]Location, error) {
	var locs []Location
	for _, path := range pythonFiles(projectRoot) {
		if ctx.Err() != nil {
			return locs, nil
		}
		tree, err := b.parse(ctx, path)
		if err != nil {
			continue
		}
		tree.Root.Walk(func(n *Node) bool {
			switch n.Type {
			case "function_definition", "class_definition":
				if name := n.FindChildByType("identifier"); name != nil && name.Content(tree.Source) == symbol {
					kind := "function_definition"
					if n.Type == "class_definition" {
						kind = "class_definition"
					}
					locs = append(locs, locationFromNode(path, name, tree.Source, kind))
				}
			case "assignment":
				if len(n.Children) > 0 && n.Children[0].Type == "identifier" && n.Children[0].Content(tree.Source) == symbol {
					locs = append(locs, locationFromNode(path, n.Children[0], tree.Source, "variable_definition"))
				}
			}
			return true
		})
	}
	return locs, nil
}

// GetReferences reports every identifier token equal to symbol, excluding
// string/comment content (tree-sitter never emits identifier nodes for
// those) and attribute accesses (x.symbol, where symbol is the attribute
// rather than a free name).
func (b *pythonBackend) GetReferences(ctx context.Context, projectRoot, symbol string) ([]Location, error) {
	var locs []Location
	for _, path := range pythonFiles(projectRoot) {
		if ctx.Err() != nil {
			return locs, nil
		}
		tree, err := b.parse(ctx, path)
		if err != nil {
			continue
		}
		tree.Root.Walk(func(n *Node) bool {
			if n.Type != "identifier" || n.Content(tree.Source) != symbol {
				return true
			}
			if isAttributeAccess(n) {
				return true
			}
			locs = append(locs, locationFromNode(path, n, tree.Source, "reference"))
			return true
		})
	}
	return locs, nil
}

// isAttributeAccess reports whether n is the attribute half of `x.n`
// (tree-sitter-python's attribute node: object '.' attribute).
func isAttributeAccess(n *Node) bool {
	p := n.Parent
	if p == nil || p.Type != "attribute" {
		return false
	}
	return len(p.Children) > 0 && p.Children[len(p.Children)-1] == n
}

func locationFromNode(path string, n *Node, source []byte, kind string) Location {
	line := int(n.StartPoint.Row) + 1
	col := int(n.StartPoint.Column)
	return Location{
		FilePath: path,
		Line:     line,
		Column:   col,
		Context:  strings.TrimSpace(lineAt(source, int(n.StartPoint.Row))),
		Kind:     kind,
	}
}

func lineAt(source []byte, row int) string {
	lines := strings.Split(string(source), "\n")
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}
