package app

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"awareness-hub-service/internal/domain"
)

// ProgressStore abstracts the persistent key-value store holding best
// scores (in-memory, Redis, etc).
type ProgressStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// AttemptRegistry holds in-flight attempts between requests. Attempts are
// ephemeral and never reach a persistent store.
type AttemptRegistry interface {
	Put(attempt *domain.Attempt)
	Get(id string) (*domain.Attempt, bool)
	Delete(id string)
}

// GameService runs quiz attempts and gates access to the next quiz in the
// catalog based on recorded best scores.
type GameService struct {
	quizzes  []domain.Quiz
	byID     map[string]int
	progress ProgressStore
	attempts AttemptRegistry

	// mu guards rnd and all mutation of registered attempts. Callers
	// only ever see snapshot copies.
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGameService(catalog []domain.Quiz, progress ProgressStore, attempts AttemptRegistry) *GameService {
	quizzes := make([]domain.Quiz, len(catalog))
	copy(quizzes, catalog)
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].Order < quizzes[j].Order })

	byID := make(map[string]int, len(quizzes))
	for i, q := range quizzes {
		byID[q.ID] = i
	}
	return &GameService{
		quizzes:  quizzes,
		byID:     byID,
		progress: progress,
		attempts: attempts,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GameSummary is the catalog view exposed to players.
type GameSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Order         int    `json:"order"`
	RequiredScore int    `json:"requiredScore"`
	Questions     int    `json:"questions"`
	BestScore     int    `json:"bestScore"`
	Unlocked      bool   `json:"unlocked"`
}

// Games lists the catalog in unlock order with per-quiz progress.
func (s *GameService) Games(ctx context.Context) ([]GameSummary, error) {
	out := make([]GameSummary, 0, len(s.quizzes))
	for _, q := range s.quizzes {
		unlocked, err := s.IsUnlocked(ctx, q.Order)
		if err != nil {
			return nil, err
		}
		best, err := s.bestScore(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, GameSummary{
			ID:            q.ID,
			Title:         q.Title,
			Order:         q.Order,
			RequiredScore: q.RequiredScore,
			Questions:     len(q.Questions),
			BestScore:     best,
			Unlocked:      unlocked,
		})
	}
	return out, nil
}

// IsUnlocked reports whether the quiz at the given catalog position is
// playable. The first quiz always is; every later quiz requires the
// preceding quiz's best score to meet its threshold.
func (s *GameService) IsUnlocked(ctx context.Context, order int) (bool, error) {
	if order < 0 || order >= len(s.quizzes) {
		return false, domain.ErrQuizNotFound
	}
	if order == 0 {
		return true, nil
	}
	best, err := s.bestScore(ctx, s.quizzes[order-1].ID)
	if err != nil {
		return false, err
	}
	return best >= s.quizzes[order].RequiredScore, nil
}

// StartAttempt begins a fresh play-through of an unlocked quiz. The
// question order is reshuffled on every call.
func (s *GameService) StartAttempt(ctx context.Context, quizID string) (*domain.Attempt, error) {
	idx, ok := s.byID[quizID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuizNotFound, quizID)
	}
	unlocked, err := s.IsUnlocked(ctx, s.quizzes[idx].Order)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuizLocked, quizID)
	}

	attempt := &domain.Attempt{
		ID:            uuid.NewString(),
		QuizID:        quizID,
		QuestionOrder: s.shuffledOrder(len(s.quizzes[idx].Questions)),
	}
	s.attempts.Put(attempt)
	snapshot := *attempt
	return &snapshot, nil
}

// shuffledOrder produces a uniformly random permutation of [0, n) via
// Fisher-Yates.
func (s *GameService) shuffledOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	s.mu.Lock()
	for i := n - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	s.mu.Unlock()
	return order
}

// Attempt returns a snapshot of an in-flight attempt by id.
func (s *GameService) Attempt(id string) (*domain.Attempt, error) {
	attempt, ok := s.attempts.Get(id)
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	s.mu.Lock()
	snapshot := *attempt
	s.mu.Unlock()
	return &snapshot, nil
}

// CurrentQuestion returns the question the attempt's cursor points at, in
// shuffled order.
func (s *GameService) CurrentQuestion(attempt *domain.Attempt) (domain.Question, bool) {
	idx, ok := s.byID[attempt.QuizID]
	if !ok {
		return domain.Question{}, false
	}
	quiz := s.quizzes[idx]
	if attempt.Position >= len(attempt.QuestionOrder) {
		return domain.Question{}, false
	}
	return quiz.Questions[attempt.QuestionOrder[attempt.Position]], true
}

// SubmitAnswer records the player's pick for the current question. Each
// question accepts exactly one answer; a correct pick adds one point. The
// cursor does not move.
func (s *GameService) SubmitAnswer(ctx context.Context, attemptID string, optionIdx int) (*domain.Attempt, bool, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return nil, false, domain.ErrAttemptNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt.Position >= len(attempt.QuestionOrder) {
		return nil, false, domain.ErrAttemptFinished
	}
	if attempt.AnsweredCurrent {
		return nil, false, domain.ErrAlreadyAnswered
	}

	question, ok := s.CurrentQuestion(attempt)
	if !ok {
		return nil, false, domain.ErrAttemptFinished
	}
	if optionIdx < 0 || optionIdx >= len(question.Options) {
		return nil, false, domain.ErrInvalidOption
	}

	attempt.AnsweredCurrent = true
	correct := optionIdx == question.CorrectIdx
	if correct {
		attempt.Score++
	}
	snapshot := *attempt
	return &snapshot, correct, nil
}

// Advance moves the cursor to the next question, or finishes the attempt
// when the last question has been answered. A finished attempt records
// its score and is dropped from the registry; the returned result is
// non-nil only in that case.
func (s *GameService) Advance(ctx context.Context, attemptID string) (*domain.Attempt, *domain.AttemptResult, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return nil, nil, domain.ErrAttemptNotFound
	}

	s.mu.Lock()
	if !attempt.AnsweredCurrent {
		s.mu.Unlock()
		return nil, nil, domain.ErrMustAnswerFirst
	}

	if attempt.Position+1 < len(attempt.QuestionOrder) {
		attempt.Position++
		attempt.AnsweredCurrent = false
		snapshot := *attempt
		s.mu.Unlock()
		return &snapshot, nil, nil
	}

	attempt.Position = len(attempt.QuestionOrder)
	snapshot := *attempt
	s.mu.Unlock()

	// The store write happens outside the lock; on failure the attempt
	// stays registered so the caller can advance again.
	if err := s.RecordCompletion(ctx, snapshot.QuizID, snapshot.Score); err != nil {
		return nil, nil, err
	}
	s.attempts.Delete(snapshot.ID)
	return &snapshot, &domain.AttemptResult{
		QuizID:    snapshot.QuizID,
		Score:     snapshot.Score,
		Questions: len(snapshot.QuestionOrder),
	}, nil
}

// RecordCompletion persists max(stored, finalScore) for the quiz. This is
// the only write path to the progress store; a stored best never drops.
func (s *GameService) RecordCompletion(ctx context.Context, quizID string, finalScore int) error {
	best, err := s.bestScore(ctx, quizID)
	if err != nil {
		return err
	}
	if finalScore <= best {
		return nil
	}
	return s.progress.Set(ctx, progressKey(quizID), strconv.Itoa(finalScore))
}

func (s *GameService) bestScore(ctx context.Context, quizID string) (int, error) {
	raw, ok, err := s.progress.Get(ctx, progressKey(quizID))
	if err != nil {
		return 0, fmt.Errorf("read progress: %w", err)
	}
	if !ok {
		return 0, nil
	}
	best, err := strconv.Atoi(raw)
	if err != nil {
		// Garbage in the store counts as no progress.
		return 0, nil
	}
	return best, nil
}

func progressKey(quizID string) string {
	return "game_" + quizID + "_score"
}
