// Package output renders CLI results as either a human-readable table (TTY)
// or JSON (piped output or --json).
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aman-cerp/codesearch/internal/resolve"
	"github.com/aman-cerp/codesearch/internal/search"
)

// Writer formats codesearch results for the CLI.
type Writer struct {
	out  io.Writer
	json bool
}

// New creates a Writer. forceJSON overrides TTY detection; otherwise JSON is
// used automatically when out is not an interactive terminal.
func New(out io.Writer, forceJSON bool) *Writer {
	return &Writer{out: out, json: forceJSON || !IsTTY(out)}
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SearchResults renders a search result set.
func (w *Writer) SearchResults(results []search.Result) error {
	if w.json {
		return w.writeJSON(struct {
			Results []search.Result `json:"results"`
		}{results})
	}
	if len(results) == 0 {
		fmt.Fprintln(w.out, "no results")
		return nil
	}
	for i, r := range results {
		fmt.Fprintf(w.out, "%d. %s:%d-%d  [%s]", i+1, r.FilePath, r.LineStart, r.LineEnd, r.ChunkType)
		if r.SymbolName != "" {
			fmt.Fprintf(w.out, "  %s", r.SymbolName)
		}
		fmt.Fprintf(w.out, "  (score %.3f)\n", r.Score)
		fmt.Fprintln(w.out, indent(r.Content))
		fmt.Fprintln(w.out)
	}
	return nil
}

// Locations renders a definition/reference result set.
func (w *Writer) Locations(locs []resolve.Location) error {
	if w.json {
		return w.writeJSON(struct {
			Results []resolve.Location `json:"results"`
		}{locs})
	}
	if len(locs) == 0 {
		fmt.Fprintln(w.out, "no results")
		return nil
	}
	for _, l := range locs {
		fmt.Fprintf(w.out, "%s:%d:%d  [%s]  %s\n", l.FilePath, l.Line, l.Column, l.Kind, l.Context)
	}
	return nil
}

// RebuildStats renders a rebuild_index result.
func (w *Writer) RebuildStats(indexedFiles, chunks, elapsedMs int) error {
	if w.json {
		return w.writeJSON(struct {
			IndexedFiles int `json:"indexed_files"`
			Chunks       int `json:"chunks"`
			ElapsedMs    int `json:"elapsed_ms"`
		}{indexedFiles, chunks, elapsedMs})
	}
	fmt.Fprintf(w.out, "indexed %d files, %d chunks, in %dms\n", indexedFiles, chunks, elapsedMs)
	return nil
}

// IndexInfo renders index size/location for `codesearch index info`.
func (w *Writer) IndexInfo(dbPath string, indexedFiles, chunks int, dbSizeBytes int64) error {
	return w.writeJSON(struct {
		DBPath       string `json:"db_path"`
		IndexedFiles int    `json:"indexed_files"`
		Chunks       int    `json:"chunks"`
		DBSizeBytes  int64  `json:"db_size_bytes"`
	}{dbPath, indexedFiles, chunks, dbSizeBytes})
}

func (w *Writer) writeJSON(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func indent(content string) string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
