package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite" // pure-Go SQLite driver, no CGO

	"github.com/aman-cerp/codesearch/internal/chunk"
)

// schemaVersion is bumped whenever the expected table/column shape changes.
// On open, a mismatch (or missing tables) means the store is dropped and
// recreated from scratch.
const schemaVersion = 2

// SQLiteStore implements Store on top of SQLite's FTS5 extension, using the
// pure-Go modernc.org/sqlite driver so the binary stays CGO-free.
type SQLiteStore struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
	lock *flock.Flock
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (creating if necessary) the Index Store at path. An empty path
// opens an in-memory store, primarily for tests.
func Open(path string) (*SQLiteStore, error) {
	var dsn string
	var lock *flock.Flock

	if path == "" {
		dsn = ":memory:"
	} else {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create store directory: %w", err)
			}
		}
		dsn = path + "?_pragma=busy_timeout(5000)"
		lock = flock.New(path + ".lock")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Single connection: writes serialize through one handle; readers
	// observe either the pre- or post-commit state, never a torn write.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, path: path, lock: lock}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil && path != "" {
			_ = db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if err := s.withWriteLock(s.ensureSchema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// ensureSchema verifies the on-disk schema matches schemaVersion, dropping
// and recreating everything when it does not. Treated as routine recovery,
// not surfaced as an error to the caller.
func (s *SQLiteStore) ensureSchema() error {
	var version int
	err := s.db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if err == nil && version == schemaVersion {
		return nil
	}
	if err != nil && err != sql.ErrNoRows {
		slog.Warn("codesearch_store_schema_unreadable", slog.String("error", err.Error()))
	}

	for _, stmt := range []string{
		`DROP TABLE IF EXISTS file_meta`,
		`DROP TABLE IF EXISTS chunks_fts`,
		`DROP TABLE IF EXISTS schema_version`,
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("drop stale schema: %w", err)
		}
	}

	schema := `
	CREATE TABLE file_meta (
		path TEXT PRIMARY KEY,
		mtime_ns INTEGER NOT NULL,
		chunk_count INTEGER NOT NULL
	);

	CREATE VIRTUAL TABLE chunks_fts USING fts5(
		file_path,
		chunk_type,
		symbol_name,
		content,
		line_start UNINDEXED,
		line_end UNINDEXED,
		is_doc_file UNINDEXED,
		tokenize='unicode61'
	);

	CREATE TABLE schema_version (version INTEGER NOT NULL);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := s.db.Exec(`INSERT INTO schema_version(version) VALUES (?)`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

func (s *SQLiteStore) withWriteLock(fn func() error) error {
	if s.lock != nil {
		if err := s.lock.Lock(); err != nil {
			return fmt.Errorf("acquire store lock: %w", err)
		}
		defer func() { _ = s.lock.Unlock() }()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// GetFileMeta implements Store.
func (s *SQLiteStore) GetFileMeta(ctx context.Context, path string) (*FileMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var fm FileMeta
	fm.Path = path
	err := s.db.QueryRowContext(ctx,
		`SELECT mtime_ns, chunk_count FROM file_meta WHERE path = ?`, path,
	).Scan(&fm.MtimeNanos, &fm.ChunkCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fm, nil
}

// UpsertFile implements Store.
func (s *SQLiteStore) UpsertFile(ctx context.Context, path string, mtimeNanos int64, chunks []chunk.Chunk) error {
	return s.withWriteLock(func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, `DELETE FROM chunks_fts WHERE file_path = ?`, path); err != nil {
			return fmt.Errorf("delete existing chunks: %w", err)
		}

		insert, err := tx.PrepareContext(ctx, `
			INSERT INTO chunks_fts(file_path, chunk_type, symbol_name, content, line_start, line_end, is_doc_file)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer insert.Close()

		for _, c := range chunks {
			docFlag := 0
			if c.IsDocFile {
				docFlag = 1
			}
			if _, err := insert.ExecContext(ctx, path, string(c.ChunkType), c.SymbolName, c.Content, c.LineStart, c.LineEnd, docFlag); err != nil {
				return fmt.Errorf("insert chunk: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO file_meta(path, mtime_ns, chunk_count) VALUES (?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET mtime_ns = excluded.mtime_ns, chunk_count = excluded.chunk_count
		`, path, mtimeNanos, len(chunks)); err != nil {
			return fmt.Errorf("upsert file_meta: %w", err)
		}

		return tx.Commit()
	})
}

// DeleteFile implements Store.
func (s *SQLiteStore) DeleteFile(ctx context.Context, path string) error {
	return s.withWriteLock(func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, `DELETE FROM chunks_fts WHERE file_path = ?`, path); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM file_meta WHERE path = ?`, path); err != nil {
			return err
		}
		return tx.Commit()
	})
}

// AllPaths implements Store.
func (s *SQLiteStore) AllPaths(ctx context.Context) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT path FROM file_meta`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths[p] = struct{}{}
	}
	return paths, rows.Err()
}

// Search implements Store. queryExpr is an already-sanitized FTS5 MATCH
// expression built by the search engine; extensions is either empty (no
// filter) or a set of file-name suffixes ORed together.
func (s *SQLiteStore) Search(ctx context.Context, queryExpr string, extensions []string, limit int) ([]ScoredChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString(`
		SELECT file_path, chunk_type, symbol_name, content, line_start, line_end, is_doc_file,
		       bm25(chunks_fts) * (CASE WHEN is_doc_file THEN 3.0 ELSE 1.0 END) AS score
		FROM chunks_fts
		WHERE chunks_fts MATCH ?
	`)
	args := []any{queryExpr}

	if len(extensions) > 0 {
		sb.WriteString(" AND (")
		for i, ext := range extensions {
			if i > 0 {
				sb.WriteString(" OR ")
			}
			sb.WriteString("file_path GLOB ?")
			args = append(args, "*"+globEscape(ext))
		}
		sb.WriteString(")")
	}

	sb.WriteString(" ORDER BY score ASC LIMIT ?")
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer rows.Close()

	var results []ScoredChunk
	for rows.Next() {
		var sc ScoredChunk
		var chunkType string
		var docFlag int
		if err := rows.Scan(&sc.FilePath, &chunkType, &sc.SymbolName, &sc.Content, &sc.LineStart, &sc.LineEnd, &docFlag, &sc.Score); err != nil {
			return nil, err
		}
		sc.ChunkType = chunk.Type(chunkType)
		sc.IsDocFile = docFlag != 0
		results = append(results, sc)
	}
	return results, rows.Err()
}

// globEscape neutralizes SQLite GLOB metacharacters (*, ?, [) in a suffix
// pattern so an extension like "*.md" can't be (mis)used as a wildcard.
// GLOB has no ESCAPE clause (unlike LIKE), so each metacharacter is instead
// wrapped in a single-character class, which GLOB matches literally.
func globEscape(s string) string {
	replacer := strings.NewReplacer("*", `[*]`, "?", `[?]`, "[", `[[]`)
	return replacer.Replace(s)
}

// Clear implements Store.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.withWriteLock(func() error {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM chunks_fts`); err != nil {
			return err
		}
		_, err := s.db.ExecContext(ctx, `DELETE FROM file_meta`)
		return err
	})
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
