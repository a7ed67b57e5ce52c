package chain

import (
	"errors"
	"fmt"
	"log/slog"

	apperrors "chainplan/internal/errors"
	"chainplan/internal/model"
)

const (
	// MinPlans is the shortest chain worth building.
	MinPlans = 2
	// MaxPlans keeps every index within the four digits of the output names.
	MaxPlans = 9999
)

var (
	ErrTooFewPlans   = errors.New("need at least two files to chain")
	ErrTooManyPlans  = errors.New("too many input files")
	ErrMissingOutput = errors.New("output pattern is required")
)

// Result summarizes a completed run.
type Result struct {
	Chain     model.Chain `json:"chain"`
	Written   int         `json:"written"`    // Output files written
	Reads     int         `json:"reads"`      // Plans read from disk
	CacheHits int         `json:"cache_hits"` // Positions served from the plan cache
}

// Build validates the run and computes every link of the chain without
// touching the filesystem.
func Build(plans []string, pattern string) (model.Chain, error) {
	switch {
	case len(plans) < MinPlans:
		return model.Chain{}, usageError(ErrTooFewPlans, "chain_too_short",
			fmt.Sprintf("pass at least %d plan files", MinPlans))
	case len(plans) > MaxPlans:
		return model.Chain{}, usageError(ErrTooManyPlans, "chain_too_long",
			fmt.Sprintf("split the run into chains of at most %d plans", MaxPlans))
	case pattern == "":
		return model.Chain{}, usageError(ErrMissingOutput, "output_missing",
			"set the output filename pattern with -o/--output")
	}

	outputs := OutputNames(pattern, len(plans))
	next := successors(outputs)

	links := make([]model.Link, len(plans))
	for i, input := range plans {
		links[i] = model.Link{
			Index:  i,
			Input:  input,
			Output: outputs[i],
			Next:   next[i],
		}
	}
	return model.Chain{Pattern: pattern, Links: links}, nil
}

// Builder writes chains to disk.
type Builder struct {
	logger   *slog.Logger
	readPlan func(string) (string, error)
}

// NewBuilder returns a Builder that logs to logger.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{
		logger:   logger,
		readPlan: model.ReadPlan,
	}
}

// Run builds the chain for plans and writes every output in order.
func (b *Builder) Run(plans []string, pattern string) (Result, error) {
	c, err := Build(plans, pattern)
	if err != nil {
		return Result{}, err
	}
	return b.Write(c)
}

// Write materializes a built chain. It stops at the first failure; outputs
// written before it stay on disk.
func (b *Builder) Write(c model.Chain) (Result, error) {
	cache, err := b.newCache(c)
	if err != nil {
		return Result{}, err
	}
	return b.WriteWith(c, cache)
}

// WriteWith writes c resolving plans through cache, so plans already read by
// Preview are not read again.
func (b *Builder) WriteWith(c model.Chain, cache *PlanCache) (Result, error) {
	result := Result{Chain: c}
	for _, link := range c.Links {
		text, err := cache.Resolve(link.Input)
		if err != nil {
			return b.finish(result, cache), err
		}
		if err := WritePlan(text, link.Output, link.Next); err != nil {
			return b.finish(result, cache), err
		}
		result.Written++
		b.logger.Debug("wrote chained plan",
			"index", link.Index,
			"input", link.Input,
			"output", link.Output,
			"next", link.Next.String(),
		)
	}

	result = b.finish(result, cache)
	b.logger.Info("chain written",
		"plans", result.Written,
		"reads", result.Reads,
		"cache_hits", result.CacheHits,
	)
	return result, nil
}

func (b *Builder) finish(result Result, cache *PlanCache) Result {
	result.Reads = cache.Reads()
	result.CacheHits = cache.Hits()
	return result
}

// Preview resolves the content every output will hold without writing
// anything. Pass the returned cache to WriteWith to write exactly what was
// previewed.
func (b *Builder) Preview(c model.Chain) ([]string, *PlanCache, error) {
	cache, err := b.newCache(c)
	if err != nil {
		return nil, nil, err
	}

	contents := make([]string, len(c.Links))
	for i, link := range c.Links {
		text, err := cache.Resolve(link.Input)
		if err != nil {
			return nil, nil, err
		}
		contents[i] = model.Render(text, link.Next)
	}
	return contents, cache, nil
}

func (b *Builder) newCache(c model.Chain) (*PlanCache, error) {
	cache, err := NewPlanCache(c.DistinctInputs(), b.logger)
	if err != nil {
		return nil, err
	}
	cache.readPlan = b.readPlan
	return cache, nil
}

func usageError(cause error, code, hint string) error {
	return apperrors.Wrap(cause, apperrors.CategoryUsage, code, hint)
}
