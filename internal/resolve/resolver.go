package resolve

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	cserrors "github.com/aman-cerp/codesearch/internal/errors"
)

// Location is one definition or reference hit.
type Location struct {
	FilePath string
	Line     int // 1-based
	Column   int // 0-based
	Context  string
	Kind     string
}

// Backend enumerates definitions and references for one language.
type Backend interface {
	GetDefinition(ctx context.Context, projectRoot, symbol string) ([]Location, error)
	GetReferences(ctx context.Context, projectRoot, symbol string) ([]Location, error)
}

// DefaultTimeout bounds a single backend call.
const DefaultTimeout = 30 * time.Second

// astCacheSize bounds the number of parsed files kept warm across calls.
const astCacheSize = 256

// Resolver dispatches get_definition/get_references by language and applies
// the per-call wall-clock budget.
type Resolver struct {
	python     Backend
	typescript Backend
	timeout    time.Duration
}

// NewResolver builds a Resolver with a shared AST cache across its backends.
func NewResolver() (*Resolver, error) {
	cache, err := lru.New[string, *Tree](astCacheSize)
	if err != nil {
		return nil, cserrors.Wrap(cserrors.KindInternal, "create ast cache", err)
	}
	return &Resolver{
		python:     newPythonBackend(cache),
		typescript: newTypeScriptBackend(cache),
		timeout:    DefaultTimeout,
	}, nil
}

// GetDefinition resolves symbol's declaration sites in language.
func (r *Resolver) GetDefinition(ctx context.Context, projectRoot, symbol, language string) ([]Location, error) {
	backend, err := r.backendFor(language)
	if err != nil {
		return nil, err
	}
	return r.callWithTimeout(ctx, func(ctx context.Context) ([]Location, error) {
		return backend.GetDefinition(ctx, projectRoot, symbol)
	})
}

// GetReferences resolves symbol's usage sites in language.
func (r *Resolver) GetReferences(ctx context.Context, projectRoot, symbol, language string) ([]Location, error) {
	backend, err := r.backendFor(language)
	if err != nil {
		return nil, err
	}
	return r.callWithTimeout(ctx, func(ctx context.Context) ([]Location, error) {
		return backend.GetReferences(ctx, projectRoot, symbol)
	})
}

func (r *Resolver) backendFor(language string) (Backend, error) {
	switch language {
	case "python":
		return r.python, nil
	case "typescript":
		return r.typescript, nil
	default:
		return nil, cserrors.InvalidArgument("unsupported language: " + language)
	}
}

// callWithTimeout bounds fn to r.timeout, returning a BackendTimeout error
// with an empty result list if it does not finish in time. The backend
// itself keeps running until it next checks ctx.Done() — only the symbol
// resolver honours cancellation among the core's components.
func (r *Resolver) callWithTimeout(ctx context.Context, fn func(context.Context) ([]Location, error)) ([]Location, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type outcome struct {
		locs []Location
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		locs, err := fn(ctx)
		done <- outcome{locs, err}
	}()

	select {
	case o := <-done:
		return o.locs, o.err
	case <-ctx.Done():
		return nil, cserrors.New(cserrors.KindBackendTimeout, "resolver backend exceeded its time budget")
	}
}
