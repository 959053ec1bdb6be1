package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz id is not in the catalog.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizLocked is returned when the preceding quiz's best score is below the threshold.
	ErrQuizLocked = errors.New("quiz locked")
	// ErrAttemptNotFound indicates an unknown or expired attempt id.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrAlreadyAnswered is returned when the current question was already answered.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrMustAnswerFirst is returned when advancing before answering.
	ErrMustAnswerFirst = errors.New("current question not answered")
	// ErrAttemptFinished is returned when acting on a completed attempt.
	ErrAttemptFinished = errors.New("attempt already finished")
	// ErrInvalidOption indicates an option index outside the question's options.
	ErrInvalidOption = errors.New("option index out of range")

	// ErrStoryNotFound indicates the story id does not exist in the collection.
	ErrStoryNotFound = errors.New("story not found")
	// ErrStoryTooShort is returned when a submission body is under the minimum length.
	ErrStoryTooShort = errors.New("story body too short")
	// ErrInvalidDecision indicates an unknown moderation status.
	ErrInvalidDecision = errors.New("invalid moderation decision")
	// ErrUnknownReaction indicates an unrecognized reaction kind.
	ErrUnknownReaction = errors.New("unknown reaction kind")

	// ErrPodcastNotFound indicates the podcast id does not exist.
	ErrPodcastNotFound = errors.New("podcast not found")
)
