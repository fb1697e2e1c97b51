// Package mcpservice exposes the indexer, search engine, and symbol
// resolver as MCP tools over stdio.
package mcpservice

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aman-cerp/codesearch/internal/indexer"
	"github.com/aman-cerp/codesearch/internal/resolve"
	"github.com/aman-cerp/codesearch/internal/search"
	"github.com/aman-cerp/codesearch/pkg/version"
)

// Server is the MCP front end binding one project's indexer, search engine,
// and symbol resolver to the four codesearch tool operations.
type Server struct {
	mcp      *mcp.Server
	indexer  *indexer.Indexer
	engine   *search.Engine
	resolver *resolve.Resolver
	root     string
	logger   *slog.Logger
}

// NewServer wires the three core components into an MCP server.
func NewServer(ix *indexer.Indexer, engine *search.Engine, resolver *resolve.Resolver, projectRoot string) *Server {
	s := &Server{
		indexer:  ix,
		engine:   engine,
		resolver: resolver,
		root:     projectRoot,
		logger:   slog.Default(),
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "codesearch",
		Version: version.Version,
	}, nil)

	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "code_search_search",
		Description: "Full-text search over the indexed project, ranked by BM25 with a boost for primary documentation files.",
	}, s.handleSearch)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "code_search_get_definition",
		Description: "Find where a Python or TypeScript symbol is declared.",
	}, s.handleGetDefinition)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "code_search_get_references",
		Description: "Find every usage of a Python or TypeScript symbol.",
	}, s.handleGetReferences)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "code_search_rebuild_index",
		Description: "Clear and fully rebuild the project's search index.",
	}, s.handleRebuildIndex)

	s.logger.Debug("codesearch MCP tools registered", slog.Int("count", 4))
}

// refreshBeforeQuery implements the interface rule that every operation
// triggers refresh() before executing its body, except rebuild_index which
// triggers a full rebuild() instead.
func (s *Server) refreshBeforeQuery(ctx context.Context) error {
	_, err := s.indexer.Refresh(ctx)
	return err
}

// SearchInput is the input schema for code_search_search.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"free-form search text; whitespace splits terms"`
	Extensions string `json:"extensions,omitempty" jsonschema:"suffix, comma-separated suffixes, or '*' for no filter; defaults to the project's configured extensions (.md unless overridden)"`
	Limit      int    `json:"limit,omitempty" jsonschema:"result count 1..100; defaults to the project's configured limit (5 unless overridden)"`
}

// SearchOutput is the output schema for code_search_search.
type SearchOutput struct {
	Results []SearchResult `json:"results"`
}

// SearchResult is one ranked search hit.
type SearchResult struct {
	FilePath   string  `json:"file_path"`
	ChunkType  string  `json:"chunk_type"`
	SymbolName string  `json:"symbol_name,omitempty"`
	Content    string  `json:"content"`
	LineStart  int     `json:"line_start"`
	LineEnd    int     `json:"line_end"`
	Score      float64 `json:"score"`
}

func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	if err := s.refreshBeforeQuery(ctx); err != nil {
		return nil, SearchOutput{}, mapError(err)
	}

	results, err := s.engine.Search(ctx, input.Query, input.Extensions, input.Limit)
	if err != nil {
		return nil, SearchOutput{}, mapError(err)
	}

	out := SearchOutput{Results: make([]SearchResult, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, SearchResult{
			FilePath:   r.FilePath,
			ChunkType:  string(r.ChunkType),
			SymbolName: r.SymbolName,
			Content:    r.Content,
			LineStart:  r.LineStart,
			LineEnd:    r.LineEnd,
			Score:      r.Score,
		})
	}
	return nil, out, nil
}

// SymbolInput is the input schema shared by get_definition and get_references.
type SymbolInput struct {
	Symbol   string `json:"symbol" jsonschema:"the symbol name to resolve"`
	Language string `json:"language" jsonschema:"python or typescript"`
}

// LocationOutput is the output schema shared by get_definition and get_references.
type LocationOutput struct {
	Results []Location `json:"results"`
}

// Location is one definition or reference hit.
type Location struct {
	FilePath string `json:"file_path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Context  string `json:"context"`
	Kind     string `json:"kind"`
}

func (s *Server) handleGetDefinition(ctx context.Context, _ *mcp.CallToolRequest, input SymbolInput) (*mcp.CallToolResult, LocationOutput, error) {
	if err := s.refreshBeforeQuery(ctx); err != nil {
		return nil, LocationOutput{}, mapError(err)
	}
	locs, err := s.resolver.GetDefinition(ctx, s.root, input.Symbol, input.Language)
	if err != nil {
		return nil, LocationOutput{}, mapError(err)
	}
	return nil, toLocationOutput(locs), nil
}

func (s *Server) handleGetReferences(ctx context.Context, _ *mcp.CallToolRequest, input SymbolInput) (*mcp.CallToolResult, LocationOutput, error) {
	if err := s.refreshBeforeQuery(ctx); err != nil {
		return nil, LocationOutput{}, mapError(err)
	}
	locs, err := s.resolver.GetReferences(ctx, s.root, input.Symbol, input.Language)
	if err != nil {
		return nil, LocationOutput{}, mapError(err)
	}
	return nil, toLocationOutput(locs), nil
}

func toLocationOutput(locs []resolve.Location) LocationOutput {
	out := LocationOutput{Results: make([]Location, 0, len(locs))}
	for _, l := range locs {
		out.Results = append(out.Results, Location{
			FilePath: l.FilePath,
			Line:     l.Line,
			Column:   l.Column,
			Context:  l.Context,
			Kind:     l.Kind,
		})
	}
	return out
}

// RebuildIndexInput is the (empty) input schema for code_search_rebuild_index.
type RebuildIndexInput struct{}

// RebuildIndexOutput is the output schema for code_search_rebuild_index.
type RebuildIndexOutput struct {
	IndexedFiles int `json:"indexed_files"`
	Chunks       int `json:"chunks"`
	ElapsedMs    int `json:"elapsed_ms"`
}

func (s *Server) handleRebuildIndex(ctx context.Context, _ *mcp.CallToolRequest, _ RebuildIndexInput) (*mcp.CallToolResult, RebuildIndexOutput, error) {
	start := time.Now()
	stats, err := s.indexer.Rebuild(ctx)
	if err != nil {
		return nil, RebuildIndexOutput{}, mapError(err)
	}
	return nil, RebuildIndexOutput{
		IndexedFiles: stats.IndexedFiles,
		Chunks:       stats.Chunks,
		ElapsedMs:    int(time.Since(start).Milliseconds()),
	}, nil
}

// Serve runs the MCP server over stdio until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("codesearch MCP server starting", slog.String("transport", "stdio"))
	err := s.mcp.Run(ctx, &mcp.StdioTransport{})
	if err != nil && err != context.Canceled {
		s.logger.Error("codesearch MCP server stopped with error", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("codesearch MCP server stopped")
	return nil
}
