package search

import (
	"context"
	"strings"

	"github.com/aman-cerp/codesearch/internal/chunk"
	"github.com/aman-cerp/codesearch/internal/store"
)

// Result is one ranked, display-ready search hit.
type Result struct {
	FilePath   string
	ChunkType  chunk.Type
	SymbolName string
	Content    string
	LineStart  int
	LineEnd    int
	Score      float64
}

// Engine executes search requests against a Store.
type Engine struct {
	store             store.Store
	defaultExtensions string
	defaultLimit      int
}

// NewEngine wraps store with query construction, ranking, and snippet
// trimming, using the package defaults for an omitted extensions filter or
// result limit.
func NewEngine(s store.Store) *Engine {
	return NewEngineWithDefaults(s, DefaultExtensions, DefaultLimit)
}

// NewEngineWithDefaults is like NewEngine but lets a project's
// configuration override the extensions filter and result limit applied
// when a search request omits them.
func NewEngineWithDefaults(s store.Store, defaultExtensions string, defaultLimit int) *Engine {
	if defaultExtensions == "" {
		defaultExtensions = DefaultExtensions
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return &Engine{store: s, defaultExtensions: defaultExtensions, defaultLimit: defaultLimit}
}

// Search implements the query→ranked-results contract: non-empty free-form
// query, an extensions filter (suffix, comma-separated suffixes, or "*"),
// and a 1..100 result limit.
func (e *Engine) Search(ctx context.Context, query, extensions string, limit int) ([]Result, error) {
	matchExpr, err := BuildMatchExpr(query)
	if err != nil {
		return nil, err
	}
	lim, err := NormalizeLimit(limit, e.defaultLimit)
	if err != nil {
		return nil, err
	}
	exts := NormalizeExtensions(extensions, e.defaultExtensions)
	terms := QueryTerms(query)

	scored, err := e.store.Search(ctx, matchExpr, exts, lim)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(scored))
	for _, sc := range scored {
		content := sc.Content
		lineStart, lineEnd := sc.LineStart, sc.LineEnd
		if strings.HasSuffix(sc.FilePath, ".md") {
			content, lineStart, lineEnd = trimSnippet(sc.Content, sc.LineStart, terms)
		}
		results = append(results, Result{
			FilePath:   sc.FilePath,
			ChunkType:  sc.ChunkType,
			SymbolName: sc.SymbolName,
			Content:    content,
			LineStart:  lineStart,
			LineEnd:    lineEnd,
			Score:      sc.Score,
		})
	}
	return results, nil
}
