package memory

import (
	"sync"

	"awareness-hub-service/internal/domain"
)

// AttemptRegistry holds in-flight attempts keyed by attempt id. Attempts
// never outlive the process; abandoning one simply leaves it here until
// the entry is replaced or the process exits.
type AttemptRegistry struct {
	mu       sync.RWMutex
	attempts map[string]*domain.Attempt
}

func NewAttemptRegistry() *AttemptRegistry {
	return &AttemptRegistry{attempts: make(map[string]*domain.Attempt)}
}

func (r *AttemptRegistry) Put(attempt *domain.Attempt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[attempt.ID] = attempt
}

func (r *AttemptRegistry) Get(id string) (*domain.Attempt, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attempt, ok := r.attempts[id]
	return attempt, ok
}

func (r *AttemptRegistry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, id)
}
