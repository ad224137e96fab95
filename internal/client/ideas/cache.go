// Package ideas holds the client-side cache of the idea list. The remote
// service is the system of record; the cache is read-mostly and refreshed
// wholesale.
package ideas

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
	"github.com/dmitrijs2005/ideatrack/internal/common"
	"github.com/dmitrijs2005/ideatrack/internal/logging"
)

// API is the remote surface the cache depends on.
type API interface {
	ListIdeas(ctx context.Context) ([]models.Idea, error)
	UpdateIdeaStatus(ctx context.Context, id string, status models.IdeaStatus) error
}

// Cache holds the full list of ideas visible to the current session, in
// server order. Loads are not deduplicated: concurrent calls may complete out
// of order and the last response to settle wins, which is a staleness risk,
// not a crash risk.
type Cache struct {
	mu    sync.RWMutex
	items []models.Idea

	api API
	log logging.Logger
}

func NewCache(api API, log logging.Logger) *Cache {
	return &Cache{api: api, log: log}
}

// Load fetches the current list and replaces the cache wholesale.
func (c *Cache) Load(ctx context.Context) error {
	items, err := c.api.ListIdeas(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ideas: %w", err)
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	c.log.Debug(ctx, "idea cache refreshed", "count", len(items))
	return nil
}

// Clear empties the cache synchronously, so a subsequent user on the same
// device never observes a prior session's ideas.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// UpdateStatus issues the remote status mutation. The local copy is left
// untouched: callers reload to observe the server-confirmed change.
func (c *Cache) UpdateStatus(ctx context.Context, id string, status models.IdeaStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidStatus, status)
	}
	if err := c.api.UpdateIdeaStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update idea %s: %w", id, err)
	}
	return nil
}

// All returns a copy of the cached list in display order.
func (c *Cache) All() []models.Idea {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Idea, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the cached idea with the given identifier.
func (c *Cache) Get(id string) (models.Idea, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, idea := range c.items {
		if idea.ID == id {
			return idea, true
		}
	}
	return models.Idea{}, false
}

// ByStatus returns the cached ideas in the given pipeline stage.
func (c *Cache) ByStatus(status models.IdeaStatus) []models.Idea {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Idea
	for _, idea := range c.items {
		if idea.Status == status {
			out = append(out, idea)
		}
	}
	return out
}

// BySubmitter returns the cached ideas submitted by the given employee.
func (c *Cache) BySubmitter(employeeNumber string) []models.Idea {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Idea
	for _, idea := range c.items {
		if idea.SubmittedBy.EmployeeNumber == employeeNumber {
			out = append(out, idea)
		}
	}
	return out
}

// Len reports the number of cached ideas.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
