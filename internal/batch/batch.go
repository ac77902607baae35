// Package batch extracts every exam paper in a directory, a bounded number
// of files at a time.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/superrjump/extractor/internal/config"
	"github.com/superrjump/extractor/pkg/models"
	"github.com/superrjump/extractor/pkg/pdf"
)

// Runner parses all PDFs matching the configured glob in one directory.
type Runner struct {
	cfg    *config.Config
	log    *zap.Logger
	source pdf.TextSource
}

// Option configures a Runner.
type Option func(*Runner)

// WithTextSource replaces the default PDF text source.
func WithTextSource(src pdf.TextSource) Option {
	return func(r *Runner) { r.source = src }
}

// NewRunner creates a batch runner.
func NewRunner(cfg *config.Config, log *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		log:    log,
		source: pdf.NewLibraryTextSource(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run extracts every matching file in dir and returns the per-file results
// in sorted path order. A file that fails to parse is logged and skipped
// rather than aborting the batch.
func (r *Runner) Run(dir string) ([]*models.Extraction, error) {
	paths, err := filepath.Glob(filepath.Join(dir, r.cfg.BatchGlob))
	if err != nil {
		return nil, fmt.Errorf("bad batch glob %q: %w", r.cfg.BatchGlob, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files matching %q in %s", r.cfg.BatchGlob, dir)
	}
	sort.Strings(paths)

	results := make([]*models.Extraction, len(paths))
	var g errgroup.Group
	g.SetLimit(r.cfg.Concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			parser := pdf.NewParser(path, pdf.WithTextSource(r.source), pdf.WithLogger(r.log))
			extraction, err := parser.Parse()
			if err != nil {
				r.log.Warn("skipping file", zap.String("path", path), zap.Error(err))
				return nil
			}
			results[i] = extraction
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]*models.Extraction, 0, len(results))
	for _, res := range results {
		if res != nil {
			merged = append(merged, res)
		}
	}
	return merged, nil
}

// Merge flattens per-file extractions into one result, keeping questions in
// file order. The merged strategy is "fallback" only when every file fell
// back, since that is the only case where no header pattern matched at all.
func Merge(extractions []*models.Extraction, source string) *models.Extraction {
	merged := &models.Extraction{
		ID:        uuid.NewString(),
		Source:    source,
		Strategy:  models.StrategyFallback,
		Questions: []models.QuestionRecord{},
	}
	for _, ex := range extractions {
		if ex.Strategy == models.StrategyPattern {
			merged.Strategy = models.StrategyPattern
		}
		merged.Questions = append(merged.Questions, ex.Questions...)
	}
	merged.TotalCount = len(merged.Questions)
	merged.ExtractedAt = pdf.CurrentTimestamp()
	return merged
}
