// Package search builds safe full-text queries, applies extension and
// limit defaults, and trims prose snippets for display.
package search

import (
	"strings"

	cserrors "github.com/aman-cerp/codesearch/internal/errors"
)

// DefaultExtensions is the extensions filter applied when a request omits one.
const DefaultExtensions = ".md"

// DefaultLimit is the result count applied when a request omits one.
const DefaultLimit = 5

// MaxLimit is the largest accepted limit.
const MaxLimit = 100

// sanitizeChars are stripped from each query term because they carry special
// meaning in the full-text query grammar: quotes, parens, the prefix-match
// '*' and the column-filter ':'. The boolean keywords AND/OR/NOT are dropped
// as whole terms by isBooleanKeyword.
var sanitizeChars = strings.NewReplacer(
	`"`, "",
	"(", "",
	")", "",
	"*", "",
	":", "",
)

// BuildMatchExpr splits query on whitespace, sanitizes each term, and joins
// the survivors with explicit AND semantics for an FTS5 MATCH expression.
// Returns an InvalidArgument error if no term survives sanitization.
func BuildMatchExpr(query string) (string, error) {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		t := sanitizeChars.Replace(f)
		t = strings.TrimSpace(t)
		if isBooleanKeyword(t) {
			continue
		}
		if t != "" {
			terms = append(terms, `"`+t+`"`)
		}
	}
	if len(terms) == 0 {
		return "", cserrors.InvalidArgument("query has no usable terms after sanitization")
	}
	return strings.Join(terms, " AND "), nil
}

func isBooleanKeyword(s string) bool {
	switch strings.ToUpper(s) {
	case "AND", "OR", "NOT":
		return true
	}
	return false
}

// NormalizeExtensions expands the extensions argument into either nil (no
// filter, the wildcard case) or a slice of suffixes to OR together. When
// extensions is empty, defaultExtensions is used instead (callers pass
// DefaultExtensions unless a project configures its own default).
func NormalizeExtensions(extensions, defaultExtensions string) []string {
	extensions = strings.TrimSpace(extensions)
	if extensions == "" {
		extensions = defaultExtensions
	}
	if extensions == "*" {
		return nil
	}
	parts := strings.Split(extensions, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// NormalizeLimit applies defaultLimit when limit is 0 and validates the
// 1..100 range.
func NormalizeLimit(limit, defaultLimit int) (int, error) {
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return 0, cserrors.InvalidArgument("limit must be between 1 and 100")
	}
	return limit, nil
}

// QueryTerms extracts the sanitized lowercase terms from query, for use by
// snippet trimming's hit-line search.
func QueryTerms(query string) []string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		t := sanitizeChars.Replace(f)
		t = strings.TrimSpace(t)
		if t != "" && !isBooleanKeyword(t) {
			terms = append(terms, strings.ToLower(t))
		}
	}
	return terms
}
