// Package indexer keeps the persistent chunk index in sync with the
// project tree: a mtime-diffing refresh plus a clear-then-refresh rebuild.
package indexer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aman-cerp/codesearch/internal/chunk"
	"github.com/aman-cerp/codesearch/internal/config"
	"github.com/aman-cerp/codesearch/internal/store"
)

// Stats summarizes one refresh or rebuild pass.
type Stats struct {
	IndexedFiles int
	Chunks       int
}

// Indexer walks a project root and maintains its Store entry.
type Indexer struct {
	root  string
	cfg   *config.Config
	store store.Store
}

// New builds an Indexer over root, using cfg's skip-dir and indexable
// extension sets (defaults extended per project configuration).
func New(root string, cfg *config.Config, s store.Store) *Indexer {
	return &Indexer{root: root, cfg: cfg, store: s}
}

type diskFile struct {
	path       string // relative, forward-slashed
	mtimeNanos int64
}

// scanDisk walks the project root, skipping directories in the skip set and
// collecting files whose extension is indexable.
func (ix *Indexer) scanDisk() ([]diskFile, error) {
	skipDirs := ix.cfg.SkipDirs()
	exts := ix.cfg.IndexableExtensions()

	var files []diskFile
	err := filepath.WalkDir(ix.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			slog.Warn("codesearch_scan_entry_unreadable", slog.String("path", path), slog.String("error", err.Error()))
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != ix.root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := exts[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			slog.Warn("codesearch_stat_failed", slog.String("path", path), slog.String("error", err.Error()))
			return nil
		}
		rel, err := filepath.Rel(ix.root, path)
		if err != nil {
			rel = path
		}
		files = append(files, diskFile{
			path:       filepath.ToSlash(rel),
			mtimeNanos: info.ModTime().UnixNano(),
		})
		return nil
	})
	return files, err
}

// Refresh implements the mtime-diff algorithm: deletes FileMeta rows whose
// path no longer exists on disk, then re-chunks and upserts every file
// whose on-disk mtime differs from (or is absent from) the stored one.
// Unchanged files are left untouched. Per-file read or chunking failures
// are logged and skipped, leaving that file's existing rows in place.
func (ix *Indexer) Refresh(ctx context.Context) (Stats, error) {
	diskFiles, err := ix.scanDisk()
	if err != nil {
		return Stats{}, err
	}

	onDisk := make(map[string]int64, len(diskFiles))
	for _, f := range diskFiles {
		onDisk[f.path] = f.mtimeNanos
	}

	indexed, err := ix.store.AllPaths(ctx)
	if err != nil {
		return Stats{}, err
	}

	for path := range indexed {
		if _, ok := onDisk[path]; !ok {
			if err := ix.store.DeleteFile(ctx, path); err != nil {
				slog.Warn("codesearch_delete_stale_failed", slog.String("path", path), slog.String("error", err.Error()))
			}
		}
	}

	toUpdate := make([]diskFile, 0, len(diskFiles))
	for _, f := range diskFiles {
		meta, err := ix.store.GetFileMeta(ctx, f.path)
		if err != nil {
			slog.Warn("codesearch_file_meta_read_failed", slog.String("path", f.path), slog.String("error", err.Error()))
			continue
		}
		if meta == nil || meta.MtimeNanos != f.mtimeNanos {
			toUpdate = append(toUpdate, f)
		}
	}

	chunksByPath := make([][]chunk.Chunk, len(toUpdate))
	failed := make([]bool, len(toUpdate))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, f := range toUpdate {
		i, f := i, f
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			content, err := os.ReadFile(filepath.Join(ix.root, f.path))
			if err != nil {
				slog.Warn("codesearch_read_failed", slog.String("path", f.path), slog.String("error", err.Error()))
				failed[i] = true
				return nil
			}
			chunksByPath[i] = chunk.Chunk(f.path, content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for i, f := range toUpdate {
		if failed[i] {
			// Read or chunking failed: leave this file's existing rows (if
			// any) in place rather than overwriting them with zero chunks.
			continue
		}
		if err := ix.store.UpsertFile(ctx, f.path, f.mtimeNanos, chunksByPath[i]); err != nil {
			slog.Warn("codesearch_upsert_failed", slog.String("path", f.path), slog.String("error", err.Error()))
			continue
		}
	}

	finalPaths, err := ix.store.AllPaths(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats.IndexedFiles = len(finalPaths)
	for path := range finalPaths {
		meta, err := ix.store.GetFileMeta(ctx, path)
		if err == nil && meta != nil {
			stats.Chunks += meta.ChunkCount
		}
	}

	return stats, nil
}

// Rebuild clears the store entirely, then performs a full Refresh.
func (ix *Indexer) Rebuild(ctx context.Context) (Stats, error) {
	if err := ix.store.Clear(ctx); err != nil {
		return Stats{}, err
	}
	return ix.Refresh(ctx)
}
