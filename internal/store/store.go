// Package store maintains a persistent, single-writer, full-text index of
// chunk rows with BM25 ranking and a per-row doc-boost.
package store

import (
	"context"

	"github.com/aman-cerp/codesearch/internal/chunk"
)

// FileMeta is one row per indexed file.
type FileMeta struct {
	Path       string
	MtimeNanos int64
	ChunkCount int
}

// ScoredChunk is a chunk row plus its search score. Lower (more negative)
// Score is a better match; the doc-boost multiplier preserves that
// orientation (it scales a negative number by 3, making it more negative,
// i.e. better).
type ScoredChunk struct {
	chunk.Chunk
	Score float64
}

// Store is the persistence contract for indexed file chunks.
type Store interface {
	// GetFileMeta returns the stored metadata for path, or nil if absent.
	GetFileMeta(ctx context.Context, path string) (*FileMeta, error)

	// UpsertFile atomically replaces path's chunks and FileMeta row:
	// delete all existing chunks for path, insert the given ones, upsert
	// FileMeta. Single transaction.
	UpsertFile(ctx context.Context, path string, mtimeNanos int64, chunks []chunk.Chunk) error

	// DeleteFile atomically deletes path's FileMeta row and owned chunks.
	DeleteFile(ctx context.Context, path string) error

	// AllPaths returns every indexed file path currently in the store.
	AllPaths(ctx context.Context) (map[string]struct{}, error)

	// Search executes a full-text query with BM25 ranking and doc-boost.
	// extensions is either nil/empty (no filter) or a set of file-name
	// suffixes that file_path must satisfy (OR logic, case-sensitive).
	// Results are ordered by Score ascending (best match first).
	Search(ctx context.Context, queryExpr string, extensions []string, limit int) ([]ScoredChunk, error)

	// Clear drops all rows (used by rebuild()).
	Clear(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
