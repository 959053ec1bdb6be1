package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"awareness-hub-service/internal/domain"
)

// PodcastCollection is an in-memory implementation of app.PodcastCollection.
type PodcastCollection struct {
	mu       sync.RWMutex
	podcasts map[string]domain.Podcast
}

func NewPodcastCollection() *PodcastCollection {
	return &PodcastCollection{podcasts: make(map[string]domain.Podcast)}
}

func (c *PodcastCollection) Add(_ context.Context, podcast domain.Podcast) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if podcast.ID == "" {
		podcast.ID = uuid.NewString()
	}
	c.podcasts[podcast.ID] = podcast
	return podcast.ID, nil
}

func (c *PodcastCollection) List(_ context.Context) ([]domain.Podcast, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Podcast, 0, len(c.podcasts))
	for _, podcast := range c.podcasts {
		out = append(out, podcast)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (c *PodcastCollection) Get(_ context.Context, id string) (domain.Podcast, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	podcast, ok := c.podcasts[id]
	if !ok {
		return domain.Podcast{}, domain.ErrPodcastNotFound
	}
	return podcast, nil
}

func (c *PodcastCollection) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.podcasts[id]; !ok {
		return domain.ErrPodcastNotFound
	}
	delete(c.podcasts, id)
	return nil
}
