package preflight

import (
	"context"
	"fmt"

	"github.com/aman-cerp/codesearch/internal/resolve"
	"github.com/aman-cerp/codesearch/internal/store"
)

// CheckStoreOpens verifies the index database can be opened (schema
// creation succeeds, the write lock is acquirable) without leaving it open.
func (c *Checker) CheckStoreOpens(projectRoot string) Result {
	r := Result{Name: "index_store", Required: true}

	s, err := store.Open(projectRoot + "/.code_search.db")
	if err != nil {
		r.Status = StatusFail
		r.Message = fmt.Sprintf("cannot open index store: %v", err)
		return r
	}
	defer s.Close()

	r.Status = StatusPass
	r.Message = "OK"
	return r
}

// CheckResolverBackends verifies the Python and TypeScript symbol-resolver
// backends (tree-sitter grammars plus the shared AST cache) construct
// cleanly. A failure here is non-critical: search still works without it.
func (c *Checker) CheckResolverBackends(_ context.Context) Result {
	r := Result{Name: "symbol_resolver", Required: false}

	if _, err := resolve.NewResolver(); err != nil {
		r.Status = StatusWarn
		r.Message = fmt.Sprintf("definition/reference lookups unavailable: %v", err)
		return r
	}

	r.Status = StatusPass
	r.Message = "python and typescript backends ready"
	return r
}
