package memory

import (
	"context"
	"testing"
	"time"

	"awareness-hub-service/internal/domain"
)

func TestStoryCollectionOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	collection := NewStoryCollection()

	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		_, err := collection.Add(ctx, domain.Story{
			ID:        id,
			BodyText:  "body",
			Status:    domain.StoryPending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	stories, err := collection.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stories) != 3 || stories[0].ID != "new" || stories[2].ID != "old" {
		t.Fatalf("expected newest-first ordering, got %+v", stories)
	}
}

func TestStoryCollectionStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	collection := NewStoryCollection()

	id, err := collection.Add(ctx, domain.Story{BodyText: "body", Status: domain.StoryPending, CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}

	if err := collection.UpdateStatus(ctx, id, domain.StoryApproved); err != nil {
		t.Fatalf("update: %v", err)
	}
	stories, _ := collection.List(ctx)
	if stories[0].Status != domain.StoryApproved {
		t.Fatalf("expected approved, got %s", stories[0].Status)
	}

	if err := collection.UpdateStatus(ctx, "missing", domain.StoryApproved); err != domain.ErrStoryNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := collection.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := collection.Delete(ctx, id); err != domain.ErrStoryNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
