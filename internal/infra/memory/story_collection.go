package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"awareness-hub-service/internal/domain"
)

// StoryCollection is an in-memory implementation of app.StoryCollection
// (useful for tests and demos without Postgres).
type StoryCollection struct {
	mu      sync.RWMutex
	stories map[string]domain.Story
}

func NewStoryCollection() *StoryCollection {
	return &StoryCollection{stories: make(map[string]domain.Story)}
}

func (c *StoryCollection) Add(_ context.Context, story domain.Story) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if story.ID == "" {
		story.ID = uuid.NewString()
	}
	c.stories[story.ID] = story
	return story.ID, nil
}

func (c *StoryCollection) List(_ context.Context) ([]domain.Story, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Story, 0, len(c.stories))
	for _, story := range c.stories {
		out = append(out, story)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (c *StoryCollection) UpdateStatus(_ context.Context, id string, status domain.StoryStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	story, ok := c.stories[id]
	if !ok {
		return domain.ErrStoryNotFound
	}
	story.Status = status
	c.stories[id] = story
	return nil
}

func (c *StoryCollection) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.stories[id]; !ok {
		return domain.ErrStoryNotFound
	}
	delete(c.stories, id)
	return nil
}
