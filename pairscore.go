// Package pairscore compares the two integer columns of an input file.
//
// A Pipeline reads the columns, then computes the total distance between the
// sorted columns and the similarity score of the left column weighted by how
// often each value appears in the right column.
package pairscore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/botirk38/pairscore/internal/logging"
	"github.com/botirk38/pairscore/internal/metrics"
	"github.com/botirk38/pairscore/options"
	"github.com/botirk38/pairscore/reader"
	"github.com/botirk38/pairscore/similarity"
	"github.com/botirk38/pairscore/sorter"
	"github.com/botirk38/pairscore/types"
)

// Pipeline runs both scoring paths over a pair of columns.
type Pipeline struct {
	store    types.CountStore
	sort     sorter.Func
	distance similarity.DistanceFunc
	logger   *logging.Logger
	metrics  *metrics.Metrics
}

// DistanceResult is the outcome of the sorted-distance path.
type DistanceResult struct {
	SortedLeft  []int `json:"sorted_left" yaml:"sorted_left"`
	SortedRight []int `json:"sorted_right" yaml:"sorted_right"`
	Pairs       int   `json:"pairs" yaml:"pairs"`
	Total       int   `json:"total" yaml:"total"`
}

// Report collects everything a full run produces.
type Report struct {
	Input      string         `json:"input" yaml:"input"`
	Lines      int            `json:"lines" yaml:"lines"`
	Distance   DistanceResult `json:"distance" yaml:"distance"`
	Similarity int            `json:"similarity" yaml:"similarity"`
}

// New creates a Pipeline with functional options. The Pipeline owns the
// configured store; if New fails, the store is closed.
func New(opts ...options.Option) (*Pipeline, error) {
	cfg := options.NewConfig()

	p, err := build(cfg, opts)
	if err != nil {
		if cfg.Store != nil {
			_ = cfg.Store.Close()
		}
		return nil, err
	}
	return p, nil
}

func build(cfg *options.Config, opts []options.Option) (*Pipeline, error) {
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p, err := NewPipeline(cfg.Store, cfg.Sorter, cfg.Distance)
	if err != nil {
		return nil, err
	}
	p.logger = cfg.Logger
	p.metrics = cfg.Metrics
	return p, nil
}

// NewPipeline creates a Pipeline from its parts. It logs nothing and records no metrics.
func NewPipeline(store types.CountStore, sortFn sorter.Func, distance similarity.DistanceFunc) (*Pipeline, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if sortFn == nil {
		return nil, errors.New("sorter cannot be nil")
	}
	if distance == nil {
		return nil, errors.New("distance function cannot be nil")
	}

	return &Pipeline{
		store:    store,
		sort:     sortFn,
		distance: distance,
		logger:   logging.Nop(),
	}, nil
}

// Read loads the columns from path.
func (p *Pipeline) Read(path string) (types.NumberLists, error) {
	start := time.Now()
	lists, err := reader.ReadFile(path)
	p.metrics.ObserveStage("read", time.Since(start), err)
	if err != nil {
		p.logger.Debug("read input failed", "path", path, "error", err)
		return lists, err
	}

	p.metrics.AddPairs(lists.Count)
	p.logger.Debug("read input", "path", path, "lines", lists.Lines, "pairs", lists.Count)
	return lists, nil
}

// Distance sorts copies of both columns and sums their pairwise absolute differences.
// lists is left unmodified.
func (p *Pipeline) Distance(ctx context.Context, lists types.NumberLists) (DistanceResult, error) {
	start := time.Now()
	result, err := p.runDistance(ctx, lists)
	p.metrics.ObserveStage("distance", time.Since(start), err)
	if err != nil {
		return DistanceResult{}, err
	}

	p.metrics.SetScore("distance", result.Total)
	p.logger.Debug("computed distance", "pairs", result.Pairs, "total", result.Total)
	return result, nil
}

func (p *Pipeline) runDistance(ctx context.Context, lists types.NumberLists) (DistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return DistanceResult{}, err
	}

	l, r := columns(lists)
	left := slices.Clone(l)
	right := slices.Clone(r)
	p.sort(left)
	p.sort(right)

	total, err := p.distance(left, right)
	if err != nil {
		return DistanceResult{}, fmt.Errorf("distance: %w", err)
	}

	return DistanceResult{
		SortedLeft:  left,
		SortedRight: right,
		Pairs:       len(left),
		Total:       total,
	}, nil
}

// columns returns the populated prefix of both columns, never more than Count
// or the shorter column.
func columns(lists types.NumberLists) ([]int, []int) {
	n := min(lists.Count, len(lists.Left), len(lists.Right))
	if n < 0 {
		n = 0
	}
	return lists.Left[:n], lists.Right[:n]
}

// Similarity counts the right column into the store, then scores the left
// column against those counts. The store is flushed first.
func (p *Pipeline) Similarity(ctx context.Context, lists types.NumberLists) (int, error) {
	start := time.Now()
	score, err := p.runSimilarity(ctx, lists)
	p.metrics.ObserveStage("similarity", time.Since(start), err)
	if err != nil {
		return 0, err
	}

	p.metrics.SetScore("similarity", score)
	p.logger.Debug("computed similarity", "pairs", lists.Count, "score", score)
	return score, nil
}

func (p *Pipeline) runSimilarity(ctx context.Context, lists types.NumberLists) (int, error) {
	if err := p.store.Flush(ctx); err != nil {
		return 0, fmt.Errorf("flush counts: %w", err)
	}

	left, right := columns(lists)
	if err := similarity.CountFrequencies(ctx, p.store, right); err != nil {
		return 0, fmt.Errorf("similarity: %w", err)
	}

	score, err := similarity.WeightedSimilarity(ctx, p.store, left)
	if err != nil {
		return 0, fmt.Errorf("similarity: %w", err)
	}
	return score, nil
}

// Run reads path and computes both scores.
func (p *Pipeline) Run(ctx context.Context, path string) (Report, error) {
	lists, err := p.Read(path)
	if err != nil {
		return Report{}, err
	}

	report := Report{Input: path, Lines: lists.Lines}

	if report.Distance, err = p.Distance(ctx, lists); err != nil {
		return Report{}, err
	}
	if report.Similarity, err = p.Similarity(ctx, lists); err != nil {
		return Report{}, err
	}

	p.logger.Info("scored input", "path", path, "distance", report.Distance.Total, "similarity", report.Similarity)
	return report, nil
}

// Close releases the underlying store.
func (p *Pipeline) Close() error {
	return p.store.Close()
}
