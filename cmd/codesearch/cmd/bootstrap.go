package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/aman-cerp/codesearch/internal/config"
	"github.com/aman-cerp/codesearch/internal/indexer"
	"github.com/aman-cerp/codesearch/internal/resolve"
	"github.com/aman-cerp/codesearch/internal/search"
	"github.com/aman-cerp/codesearch/internal/store"
)

// app bundles the wired-up components a subcommand needs.
type app struct {
	cfg      *config.Config
	store    store.Store
	indexer  *indexer.Indexer
	engine   *search.Engine
	resolver *resolve.Resolver
}

func newApp() (*app, error) {
	root, err := resolvedProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	cfg, err := config.Load(root, dbPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	s, err := store.Open(cfg.Store.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open index store: %w", err)
	}

	resolver, err := resolve.NewResolver()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("build symbol resolver: %w", err)
	}

	return &app{
		cfg:     cfg,
		store:   s,
		indexer: indexer.New(root, cfg, s),
		engine: search.NewEngineWithDefaults(s,
			cfg.Server.DefaultSearchExtensions, cfg.Server.DefaultSearchLimit),
		resolver: resolver,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
