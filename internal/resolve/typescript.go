package resolve

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

type typeScriptBackend struct {
	cache *lru.Cache[string, *Tree]
}

func newTypeScriptBackend(cache *lru.Cache[string, *Tree]) *typeScriptBackend {
	return &typeScriptBackend{cache: cache}
}

func (b *typeScriptBackend) parse(ctx context.Context, path string) (*Tree, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if tree, ok := b.cache.Get(path); ok && bytes.Equal(tree.Source, source) {
		return tree, nil
	}
	tree, err := Parse(ctx, source, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	b.cache.Add(path, tree)
	return tree, nil
}

// declKinds maps a top-level declaration node type to the resolver kind it
// produces.
var declKinds = map[string]string{
	"function_declaration":  "function_definition",
	"class_declaration":     "class_definition",
	"interface_declaration": "interface_definition",
	"type_alias_declaration": "type_definition",
}

// GetDefinition enumerates top-level function/class/interface/type/variable
// declarations whose declared name equals symbol.
func (b *typeScriptBackend) GetDefinition(ctx context.Context, projectRoot, symbol string) ([]Location, error) {
	var locs []Location
	for _, path := range typeScriptFiles(projectRoot) {
		if ctx.Err() != nil {
			return locs, nil
		}
		tree, err := b.parse(ctx, path)
		if err != nil {
			continue
		}
		for _, top := range tree.Root.Children {
			decl := unwrapExport(top)
			if decl == nil {
				continue
			}
			if kind, ok := declKinds[decl.Type]; ok {
				// TypeScript names classes, interfaces and type aliases with
				// type_identifier nodes; functions (and JS classes) use identifier.
				name := decl.FindChildByType("identifier")
				if name == nil {
					name = decl.FindChildByType("type_identifier")
				}
				if name != nil && name.Content(tree.Source) == symbol {
					locs = append(locs, locationFromNode(path, name, tree.Source, kind))
				}
				continue
			}
			if decl.Type == "lexical_declaration" || decl.Type == "variable_declaration" {
				for _, declarator := range decl.Children {
					if declarator.Type != "variable_declarator" {
						continue
					}
					if name := declarator.FindChildByType("identifier"); name != nil && name.Content(tree.Source) == symbol {
						locs = append(locs, locationFromNode(path, name, tree.Source, "variable_definition"))
					}
				}
			}
		}
	}
	return locs, nil
}

// unwrapExport returns n itself, or if n is an export_statement, the first
// child that is an actual declaration node.
func unwrapExport(n *Node) *Node {
	if n.Type != "export_statement" {
		return n
	}
	for _, c := range n.Children {
		switch c.Type {
		case "function_declaration", "class_declaration", "interface_declaration",
			"type_alias_declaration", "lexical_declaration", "variable_declaration":
			return c
		}
	}
	return nil
}

// GetReferences reports every identifier token equal to symbol, with kind
// derived from the parent syntactic node.
func (b *typeScriptBackend) GetReferences(ctx context.Context, projectRoot, symbol string) ([]Location, error) {
	var locs []Location
	for _, path := range typeScriptFiles(projectRoot) {
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
			locs = append(locs, locationFromNode(path, n, tree.Source, classifyReference(n)))
			return true
		})
	}
	return locs, nil
}

// classifyReference derives a reference kind from the identifier's parent
// node type.
func classifyReference(n *Node) string {
	p := n.Parent
	if p == nil {
		return "unknown"
	}
	switch p.Type {
	case "call_expression":
		return "function_call"
	case "variable_declarator":
		return "variable_definition"
	case "function_declaration":
		return "function_definition"
	case "class_declaration":
		return "class_definition"
	case "interface_declaration":
		return "interface_definition"
	case "type_alias_declaration":
		return "type_definition"
	default:
		return "reference"
	}
}
