package chain

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	apperrors "chainplan/internal/errors"
	"chainplan/internal/model"
)

// PlanCache holds the normalized text of every plan read during one run.
// A path is read from disk the first time it is resolved and served from
// memory afterwards, so repeated chain positions write identical content.
type PlanCache struct {
	entries  *lru.Cache[string, string]
	readPlan func(string) (string, error)
	logger   *slog.Logger

	reads int
	hits  int
}

// NewPlanCache returns a cache able to hold capacity distinct plans. The
// capacity must cover every distinct input of the run; a smaller value would
// let entries be evicted and re-read.
func NewPlanCache(capacity int, logger *slog.Logger) (*PlanCache, error) {
	if capacity < 1 {
		capacity = 1
	}
	entries, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, err
	}
	return &PlanCache{
		entries:  entries,
		readPlan: model.ReadPlan,
		logger:   logger,
	}, nil
}

// Resolve returns the normalized text of the plan at path.
func (c *PlanCache) Resolve(path string) (string, error) {
	if text, ok := c.entries.Get(path); ok {
		c.hits++
		c.logger.Debug("plan cache hit", "plan", path)
		return text, nil
	}

	text, err := c.readPlan(path)
	if err != nil {
		return "", apperrors.Wrap(
			fmt.Errorf("read plan: %w", err),
			apperrors.CategoryIOFailure,
			"plan_read_failed",
			"check that the plan file exists and is readable",
		)
	}
	c.reads++
	c.entries.Add(path, text)
	c.logger.Debug("plan read", "plan", path, "bytes", len(text))
	return text, nil
}

// Reads returns how many plans were read from disk.
func (c *PlanCache) Reads() int {
	return c.reads
}

// Hits returns how many resolutions were served from memory.
func (c *PlanCache) Hits() int {
	return c.hits
}

// Len returns the number of cached plans.
func (c *PlanCache) Len() int {
	return c.entries.Len()
}
