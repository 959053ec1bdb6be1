package app

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"awareness-hub-service/internal/domain"
)

// MinStoryLength is the minimum body length accepted at submission.
const MinStoryLength = 50

// StoryCollection is the remote authoritative document collection. The
// local published view is a read-through cache with no authority of its
// own: every moderation action invalidates it.
type StoryCollection interface {
	Add(ctx context.Context, story domain.Story) (string, error)
	// List returns all stories ordered by createdAt descending.
	List(ctx context.Context) ([]domain.Story, error)
	UpdateStatus(ctx context.Context, id string, status domain.StoryStatus) error
	Delete(ctx context.Context, id string) error
}

// SubmitStoryInput carries the fields a submitter controls. Status is
// never among them; every new story starts pending.
type SubmitStoryInput struct {
	Nickname       string            `json:"nickname"`
	AgeRange       string            `json:"ageRange"`
	Region         string            `json:"region"`
	Language       string            `json:"language"`
	BodyText       string            `json:"bodyText"`
	Theme          domain.StoryTheme `json:"theme"`
	Tags           []string          `json:"tags"`
	TriggerWarning bool              `json:"triggerWarning"`
}

// StoryService manages the story lifecycle and the published wall view.
type StoryService struct {
	stories StoryCollection
	seeds   []domain.Story
	wall    *Wall
	now     func() time.Time

	// Reaction tallies are deliberately in-process only: they reset on
	// restart and are merged into listings at read time.
	reactMu   sync.Mutex
	reactions map[string]map[domain.ReactionKind]int

	cacheTTL  time.Duration
	sf        singleflight.Group
	cacheMu   sync.RWMutex
	cached    []domain.Story
	expiresAt time.Time
	rnd       *rand.Rand
}

func NewStoryService(stories StoryCollection, seeds []domain.Story, wall *Wall, cacheTTL time.Duration) *StoryService {
	return newStoryServiceWithClock(stories, seeds, wall, cacheTTL, time.Now)
}

// NewStoryServiceWithClock is test-only for deterministic timestamps.
func NewStoryServiceWithClock(stories StoryCollection, seeds []domain.Story, wall *Wall, cacheTTL time.Duration, now func() time.Time) *StoryService {
	return newStoryServiceWithClock(stories, seeds, wall, cacheTTL, now)
}

func newStoryServiceWithClock(stories StoryCollection, seeds []domain.Story, wall *Wall, cacheTTL time.Duration, now func() time.Time) *StoryService {
	return &StoryService{
		stories:   stories,
		seeds:     seeds,
		wall:      wall,
		now:       now,
		reactions: make(map[string]map[domain.ReactionKind]int),
		cacheTTL:  cacheTTL,
		rnd:       rand.New(rand.NewSource(now().UnixNano())),
	}
}

// Submit validates and stores a new story. The story enters the system
// pending with zeroed reactions; this is the only way a story is created.
func (s *StoryService) Submit(ctx context.Context, in SubmitStoryInput) (string, error) {
	if utf8.RuneCountInString(in.BodyText) < MinStoryLength {
		return "", fmt.Errorf("%w: need at least %d characters", domain.ErrStoryTooShort, MinStoryLength)
	}
	language := in.Language
	if language == "" {
		language = "en"
	}

	story := domain.Story{
		Nickname:       in.Nickname,
		AgeRange:       in.AgeRange,
		Region:         in.Region,
		Language:       language,
		BodyText:       in.BodyText,
		Theme:          in.Theme,
		Tags:           in.Tags,
		TriggerWarning: in.TriggerWarning,
		Status:         domain.StoryPending,
		CreatedAt:      s.now(),
		Reactions: map[domain.ReactionKind]int{
			domain.ReactStayStrong:     0,
			domain.ReactWeStandWithYou: 0,
			domain.ReactYouInspireMe:   0,
		},
	}
	id, err := s.stories.Add(ctx, story)
	if err != nil {
		return "", fmt.Errorf("submit story: %w", err)
	}
	return id, nil
}

// ListByStatus fetches the full remote collection and filters by status.
// An empty status returns everything. Every call re-fetches; there is no
// caching guarantee on the moderation view.
func (s *StoryService) ListByStatus(ctx context.Context, status domain.StoryStatus) ([]domain.Story, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDecision, status)
	}
	all, err := s.stories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	if status == "" {
		return all, nil
	}
	filtered := all[:0:0]
	for _, story := range all {
		if story.Status == status {
			filtered = append(filtered, story)
		}
	}
	return filtered, nil
}

// Decide sets a story's moderation status. Deciding an already-decided
// story overwrites it, so a moderator can reverse a call (including back
// to pending to unpublish).
func (s *StoryService) Decide(ctx context.Context, storyID string, decision domain.StoryStatus) error {
	if !domain.ValidStatus(decision) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidDecision, decision)
	}
	if err := s.stories.UpdateStatus(ctx, storyID, decision); err != nil {
		return err
	}
	s.invalidate()
	s.pushWall(ctx)
	return nil
}

// Remove deletes a story outright, whatever its status. There is no
// soft-delete or recovery path.
func (s *StoryService) Remove(ctx context.Context, storyID string) error {
	if err := s.stories.Delete(ctx, storyID); err != nil {
		return err
	}
	s.invalidate()
	s.pushWall(ctx)
	return nil
}

// React bumps a reaction tally for a story. The counters are best-effort
// and local to this process; they are not written to the collection.
func (s *StoryService) React(storyID string, kind domain.ReactionKind) error {
	if !domain.ValidReaction(kind) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownReaction, kind)
	}
	s.reactMu.Lock()
	if s.reactions[storyID] == nil {
		s.reactions[storyID] = make(map[domain.ReactionKind]int)
	}
	s.reactions[storyID][kind]++
	s.reactMu.Unlock()
	return nil
}

// Published returns the wall view: seed stories merged with the remote
// approved set, remote winning on id collisions, newest first. The merge
// is cached briefly with stampede protection; moderation actions
// invalidate it.
func (s *StoryService) Published(ctx context.Context) ([]domain.Story, error) {
	now := s.now()

	s.cacheMu.RLock()
	if s.cached != nil && s.expiresAt.After(now) {
		base := s.cached
		s.cacheMu.RUnlock()
		return s.overlayReactions(base), nil
	}
	s.cacheMu.RUnlock()

	result, err, _ := s.sf.Do("published", func() (interface{}, error) {
		now := s.now()
		s.cacheMu.RLock()
		if s.cached != nil && s.expiresAt.After(now) {
			base := s.cached
			s.cacheMu.RUnlock()
			return base, nil
		}
		s.cacheMu.RUnlock()

		approved, err := s.ListByStatus(ctx, domain.StoryApproved)
		if err != nil {
			return nil, err
		}
		merged := MergeForDisplay(approved, s.seeds)
		sort.Slice(merged, func(i, j int) bool {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		})

		ttl := s.ttlWithJitter()
		s.cacheMu.Lock()
		s.cached = merged
		s.expiresAt = now.Add(ttl)
		s.cacheMu.Unlock()
		return merged, nil
	})
	if err != nil {
		return nil, err
	}
	return s.overlayReactions(result.([]domain.Story)), nil
}

// MergeForDisplay combines the built-in seed set with remote approved
// stories, de-duplicating by id with remote entries winning. Ordering is
// the caller's job.
func MergeForDisplay(remoteApproved, seeds []domain.Story) []domain.Story {
	remoteIDs := make(map[string]struct{}, len(remoteApproved))
	out := make([]domain.Story, 0, len(remoteApproved)+len(seeds))
	for _, story := range remoteApproved {
		remoteIDs[story.ID] = struct{}{}
		out = append(out, story)
	}
	for _, seed := range seeds {
		if _, shadowed := remoteIDs[seed.ID]; !shadowed {
			out = append(out, seed)
		}
	}
	return out
}

// overlayReactions adds the in-process tallies on top of the stored
// counts without mutating the cached slice.
func (s *StoryService) overlayReactions(stories []domain.Story) []domain.Story {
	s.reactMu.Lock()
	defer s.reactMu.Unlock()

	out := make([]domain.Story, len(stories))
	for i, story := range stories {
		counts := make(map[domain.ReactionKind]int, len(story.Reactions))
		for kind, n := range story.Reactions {
			counts[kind] = n
		}
		for kind, n := range s.reactions[story.ID] {
			counts[kind] += n
		}
		story.Reactions = counts
		out[i] = story
	}
	return out
}

func (s *StoryService) invalidate() {
	s.cacheMu.Lock()
	s.cached = nil
	s.cacheMu.Unlock()
}

// pushWall refreshes connected wall readers after a moderation change.
// Failures here only cost liveness; readers reload on reconnect.
func (s *StoryService) pushWall(ctx context.Context) {
	if s.wall == nil {
		return
	}
	published, err := s.Published(ctx)
	if err != nil {
		return
	}
	s.wall.Broadcast(published)
}

func (s *StoryService) ttlWithJitter() time.Duration {
	if s.cacheTTL <= 0 {
		return 0
	}
	// rnd is only touched from inside the singleflight'd rebuild.
	jitterMax := int64(s.cacheTTL) / 10
	return s.cacheTTL + time.Duration(s.rnd.Int63n(jitterMax+1))
}
