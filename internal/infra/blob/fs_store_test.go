package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	url, err := store.Upload(ctx, "podcasts/ep1.mp3", strings.NewReader("audio"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "/media/podcasts/ep1.mp3" {
		t.Fatalf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(store.Root(), "podcasts", "ep1.mp3"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "audio" {
		t.Fatalf("unexpected content %q", data)
	}

	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), "podcasts", "ep1.mp3")); !os.IsNotExist(err) {
		t.Fatalf("expected blob gone, stat err = %v", err)
	}
	// deleting twice is fine
	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestRejectsEscapingNames(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Upload(context.Background(), "../outside.mp3", strings.NewReader("x")); err == nil {
		t.Fatal("expected path escape to be rejected")
	}
}
