package app_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"awareness-hub-service/internal/app"
	"awareness-hub-service/internal/domain"
	"awareness-hub-service/internal/infra/memory"
)

func TestPodcastPublishAndDelete(t *testing.T) {
	ctx := context.Background()
	blobs := &recordingBlobStore{}
	service := app.NewPodcastService(memory.NewPodcastCollection(), blobs)

	podcast, err := service.Publish(ctx, app.PublishPodcastInput{
		Title:    "Living with HIV today",
		Host:     "Dr. Rao",
		Category: "medical",
		Duration: "42:10",
	}, strings.NewReader("audio-bytes"), "episode-1.mp3")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if podcast.ID == "" || podcast.AudioURL == "" {
		t.Fatalf("expected id and audio url, got %+v", podcast)
	}
	if len(blobs.uploads) != 1 || !strings.HasSuffix(blobs.uploads[0], ".mp3") {
		t.Fatalf("expected one mp3 upload, got %v", blobs.uploads)
	}

	episodes, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(episodes) != 1 || episodes[0].Title != "Living with HIV today" {
		t.Fatalf("unexpected directory: %+v", episodes)
	}

	if err := service.Delete(ctx, podcast.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(blobs.deletes) != 1 || blobs.deletes[0] != podcast.AudioURL {
		t.Fatalf("expected audio blob deleted, got %v", blobs.deletes)
	}
	if err := service.Delete(ctx, podcast.ID); !errors.Is(err, domain.ErrPodcastNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

type recordingBlobStore struct {
	uploads []string
	deletes []string
}

func (s *recordingBlobStore) Upload(_ context.Context, name string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.uploads = append(s.uploads, name)
	return "/media/" + name, nil
}

func (s *recordingBlobStore) Delete(_ context.Context, url string) error {
	s.deletes = append(s.deletes, url)
	return nil
}
