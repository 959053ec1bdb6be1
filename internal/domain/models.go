package domain

import "time"

// Option is one selectable answer for a question.
type Option struct {
	Text string `json:"text"`
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []Option `json:"options"` // length >= 2
	CorrectIdx  int      `json:"correctIdx"`
	Explanation string   `json:"explanation"`
}

// Quiz is an ordered set of questions with an unlock threshold relative
// to the quiz before it in the catalog sequence.
type Quiz struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Order         int        `json:"order"`
	RequiredScore int        `json:"requiredScore"` // on the preceding quiz; ignored at order 0
	Questions     []Question `json:"questions"`
}

// Attempt is one play-through of a quiz. It lives only for the duration
// of the play session and is never persisted.
type Attempt struct {
	ID              string
	QuizID          string
	QuestionOrder   []int // permutation of question indices, fresh per attempt
	Position        int
	Score           int
	AnsweredCurrent bool
}

// AttemptResult is the terminal outcome of a finished attempt.
type AttemptResult struct {
	QuizID    string `json:"quizId"`
	Score     int    `json:"score"`
	Questions int    `json:"questions"`
}

// ProgressRecord holds the best score ever achieved on a quiz. BestScore
// never decreases across attempts.
type ProgressRecord struct {
	QuizID    string `json:"quizId"`
	BestScore int    `json:"bestScore"`
}

// StoryStatus is a story's moderation state.
type StoryStatus string

const (
	StoryPending  StoryStatus = "pending"
	StoryApproved StoryStatus = "approved"
	StoryRejected StoryStatus = "rejected"
)

// ValidStatus reports whether s is one of the known moderation states.
func ValidStatus(s StoryStatus) bool {
	switch s {
	case StoryPending, StoryApproved, StoryRejected:
		return true
	}
	return false
}

// StoryTheme categorizes a story for filtering on the wall.
type StoryTheme string

const (
	ThemeDiagnosis    StoryTheme = "diagnosis"
	ThemeTreatment    StoryTheme = "treatment"
	ThemeStigma       StoryTheme = "stigma"
	ThemeSuccess      StoryTheme = "success"
	ThemeMentalHealth StoryTheme = "mentalHealth"
	ThemeSupport      StoryTheme = "support"
)

// ReactionKind names a reaction counter on a story.
type ReactionKind string

const (
	ReactStayStrong     ReactionKind = "stayStrong"
	ReactWeStandWithYou ReactionKind = "weStandWithYou"
	ReactYouInspireMe   ReactionKind = "youInspireMe"
)

// ValidReaction reports whether k is a known reaction kind.
func ValidReaction(k ReactionKind) bool {
	switch k {
	case ReactStayStrong, ReactWeStandWithYou, ReactYouInspireMe:
		return true
	}
	return false
}

// Story is an anonymous first-person submission with a moderation status.
// Status starts at pending; only moderation actions change it.
type Story struct {
	ID             string               `json:"id"`
	Nickname       string               `json:"nickname,omitempty"`
	AgeRange       string               `json:"ageRange,omitempty"`
	Region         string               `json:"region,omitempty"`
	Language       string               `json:"language"`
	BodyText       string               `json:"bodyText"`
	Theme          StoryTheme           `json:"theme"`
	Tags           []string             `json:"tags,omitempty"`
	TriggerWarning bool                 `json:"triggerWarning,omitempty"`
	Status         StoryStatus          `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	Reactions      map[ReactionKind]int `json:"reactions"`
}

// Podcast is one episode in the podcast directory.
type Podcast struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Host        string    `json:"host"`
	Guest       string    `json:"guest,omitempty"`
	Duration    string    `json:"duration"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	AudioURL    string    `json:"audioUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
