package resolve

import (
	"os"
	"path/filepath"

	"github.com/aman-cerp/codesearch/internal/config"
)

// walkSkippingDirs walks root depth-first, calling fn for every regular file
// whose extension is in allowedExts, skipping any directory named in the
// default skip-dir set.
func walkSkippingDirs(root string, allowedExts map[string]struct{}, fn func(path string)) error {
	skip := make(map[string]struct{}, len(config.DefaultSkipDirs))
	for _, d := range config.DefaultSkipDirs {
		skip[d] = struct{}{}
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // best-effort: unreadable entries are skipped
		}
		if d.IsDir() {
			if _, isSkipped := skip[d.Name()]; isSkipped && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := allowedExts[filepath.Ext(path)]; ok {
			fn(path)
		}
		return nil
	})
}

// pythonFiles returns every .py file under root.
func pythonFiles(root string) []string {
	var files []string
	_ = walkSkippingDirs(root, map[string]struct{}{".py": {}}, func(path string) {
		files = append(files, path)
	})
	return files
}

var tsExts = map[string]struct{}{".ts": {}, ".tsx": {}, ".js": {}, ".jsx": {}}

// typeScriptFiles discovers source files via a tsconfig.json found by
// walking upward from root; if none is found, it falls back to walking the
// whole tree for .ts/.tsx/.js/.jsx files, minus skip dirs.
func typeScriptFiles(root string) []string {
	if dir, ok := findTSConfigDir(root); ok {
		var files []string
		_ = walkSkippingDirs(dir, tsExts, func(path string) {
			files = append(files, path)
		})
		return files
	}

	var files []string
	_ = walkSkippingDirs(root, tsExts, func(path string) {
		files = append(files, path)
	})
	return files
}

// findTSConfigDir walks upward from start looking for a directory
// containing tsconfig.json, stopping at the filesystem root.
func findTSConfigDir(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "tsconfig.json")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
