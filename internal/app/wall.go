package app

import (
	"sync"

	"awareness-hub-service/internal/domain"
)

// Wall fans published-story snapshots out to connected readers. Each
// moderation action pushes a fresh snapshot; slow readers lose stale
// frames rather than blocking the broadcast.
type Wall struct {
	mu          sync.Mutex
	subscribers map[chan []domain.Story]struct{}
}

func NewWall() *Wall {
	return &Wall{subscribers: make(map[chan []domain.Story]struct{})}
}

// Subscribe registers a reader. The caller must invoke the returned
// cancel function to avoid leaks.
func (w *Wall) Subscribe() (<-chan []domain.Story, func()) {
	ch := make(chan []domain.Story, 4)

	w.mu.Lock()
	w.subscribers[ch] = struct{}{}
	w.mu.Unlock()

	cancel := func() {
		w.mu.Lock()
		if _, ok := w.subscribers[ch]; ok {
			delete(w.subscribers, ch)
			close(ch)
		}
		w.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers a snapshot to every subscriber, replacing an unread
// stale frame when a reader's buffer is full.
func (w *Wall) Broadcast(stories []domain.Story) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for ch := range w.subscribers {
		select {
		case ch <- stories:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- stories
		}
	}
}
