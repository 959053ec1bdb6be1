package app

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"awareness-hub-service/internal/domain"
)

// PodcastCollection is the document collection backing the directory.
type PodcastCollection interface {
	Add(ctx context.Context, podcast domain.Podcast) (string, error)
	// List returns all episodes ordered by createdAt descending.
	List(ctx context.Context) ([]domain.Podcast, error)
	Get(ctx context.Context, id string) (domain.Podcast, error)
	Delete(ctx context.Context, id string) error
}

// BlobStore holds uploaded audio. Upload returns the URL the episode is
// served from; Delete takes that same URL back.
type BlobStore interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// PublishPodcastInput carries the episode metadata from the admin form.
type PublishPodcastInput struct {
	Title       string `json:"title"`
	Host        string `json:"host"`
	Guest       string `json:"guest"`
	Duration    string `json:"duration"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PodcastService manages the podcast directory: audio goes to the blob
// store, metadata to the document collection.
type PodcastService struct {
	podcasts PodcastCollection
	blobs    BlobStore
	now      func() time.Time
}

func NewPodcastService(podcasts PodcastCollection, blobs BlobStore) *PodcastService {
	return &PodcastService{podcasts: podcasts, blobs: blobs, now: time.Now}
}

// Publish uploads the audio and stores the episode document. The blob is
// written first so a failed insert never leaves a dangling directory
// entry; an orphaned blob is cleaned up best-effort.
func (s *PodcastService) Publish(ctx context.Context, in PublishPodcastInput, audio io.Reader, filename string) (domain.Podcast, error) {
	name := "podcasts/" + uuid.NewString() + path.Ext(filename)
	url, err := s.blobs.Upload(ctx, name, audio)
	if err != nil {
		return domain.Podcast{}, fmt.Errorf("upload audio: %w", err)
	}

	podcast := domain.Podcast{
		Title:       in.Title,
		Host:        in.Host,
		Guest:       in.Guest,
		Duration:    in.Duration,
		Date:        in.Date,
		Description: in.Description,
		Category:    in.Category,
		AudioURL:    url,
		CreatedAt:   s.now(),
	}
	id, err := s.podcasts.Add(ctx, podcast)
	if err != nil {
		_ = s.blobs.Delete(ctx, url)
		return domain.Podcast{}, fmt.Errorf("save podcast: %w", err)
	}
	podcast.ID = id
	return podcast, nil
}

// List returns the directory, newest first.
func (s *PodcastService) List(ctx context.Context) ([]domain.Podcast, error) {
	episodes, err := s.podcasts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}
	return episodes, nil
}

// Delete removes the episode document and then its audio. Losing the
// blob delete only strands a file; the directory entry is already gone.
func (s *PodcastService) Delete(ctx context.Context, id string) error {
	podcast, err := s.podcasts.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.podcasts.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.blobs.Delete(ctx, podcast.AudioURL)
	return nil
}
