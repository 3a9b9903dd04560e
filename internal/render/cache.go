package render

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"jumptree/internal/history"
)

// Cache memoizes drawn diagrams keyed by workspace and record revision,
// so re-showing an unchanged tree skips the layout passes.
type Cache struct {
	lru *lru.Cache[string, *Diagram]
}

// NewCache creates a cache holding up to size diagrams.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, *Diagram](size)
	if err != nil {
		return nil, fmt.Errorf("creating diagram cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

// Get draws the record's diagram, reusing the cached one when the record
// has not mutated since it was drawn.
func (c *Cache) Get(workspaceID string, rec *history.Record) *Diagram {
	key := fmt.Sprintf("%s@%d", workspaceID, rec.Rev())
	if d, ok := c.lru.Get(key); ok {
		return d
	}
	d := Draw(rec)
	c.lru.Add(key, d)
	return d
}
