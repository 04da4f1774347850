package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pinguimprofissional/hosts/internal/config"
	"github.com/pinguimprofissional/hosts/internal/hosts"
	"github.com/pinguimprofissional/hosts/internal/source"

	"go.uber.org/zap"
)

// ErrNoSources is returned by Merge for an empty source list.
var ErrNoSources = config.ErrNoSources

type MergeResult struct {
	Path    string
	Lines   int // raw lines downloaded
	Entries int // entries written
	Failed  int // sources that contributed nothing because of an error
}

// Merge downloads every source, normalizes and deduplicates the entries and
// writes the sorted hosts file to cfg.OutputPath. A source that fails to
// download is logged and skipped.
func Merge(ctx context.Context, log *zap.Logger, cfg config.Merge, src source.Fetcher) (MergeResult, error) {
	if len(cfg.Sources) == 0 {
		return MergeResult{}, ErrNoSources
	}

	batches := source.FetchAll(ctx, log.Named("source"), src, cfg.Sources, cfg.Workers)

	res := MergeResult{Path: cfg.OutputPath}
	lines := make([][]string, 0, len(batches))
	for _, b := range batches {
		if b.Err != nil {
			res.Failed++
			continue
		}
		res.Lines += len(b.Lines)
		lines = append(lines, b.Lines)
	}

	target := cfg.Target
	if target == "" {
		target = hosts.DefaultTarget
	}
	entries := hosts.Dedupe(hosts.NormalizeAll(lines, target))
	hosts.Sort(entries)

	if err := hosts.WriteFile(cfg.OutputPath, func(w io.Writer) error {
		return hosts.WriteHosts(w, entries)
	}); err != nil {
		return MergeResult{}, err
	}
	res.Entries = len(entries)

	log.Info("hosts file written",
		zap.String("path", res.Path),
		zap.Int("entries", res.Entries),
		zap.Int("lines", res.Lines),
		zap.Int("failed_sources", res.Failed),
	)
	return res, nil
}

type DedupeResult struct {
	Path  string
	Lines int // unique lines written
}

// Dedupe rewrites cfg.Input into cfg.Output without exact duplicate lines,
// sorted case-insensitively.
func Dedupe(log *zap.Logger, cfg config.Dedupe) (DedupeResult, error) {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return DedupeResult{}, fmt.Errorf("open input: %w", err)
	}
	lines, err := hosts.ReadLines(f)
	f.Close()
	if err != nil {
		return DedupeResult{}, fmt.Errorf("read %s: %w", cfg.Input, err)
	}

	unique := hosts.UniqueLines(lines)
	if err := hosts.WriteFile(cfg.Output, func(w io.Writer) error {
		return hosts.WriteLines(w, unique)
	}); err != nil {
		return DedupeResult{}, err
	}

	log.Debug("dedupe done",
		zap.String("input", cfg.Input),
		zap.Int("read", len(lines)),
		zap.Int("unique", len(unique)),
	)
	return DedupeResult{Path: cfg.Output, Lines: len(unique)}, nil
}
