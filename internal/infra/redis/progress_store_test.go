package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestProgressStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewProgressStore(client)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "game_myth-or-fact_score"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "game_myth-or-fact_score", "3"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, "game_myth-or-fact_score")
	if err != nil || !ok || value != "3" {
		t.Fatalf("expected 3, got %q ok=%v err=%v", value, ok, err)
	}

	if got := mr.Exists("game_myth-or-fact_score"); !got {
		t.Fatalf("expected key in redis")
	}
}
