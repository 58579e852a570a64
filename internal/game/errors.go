package game

import "errors"

var (
	// ErrDomainExhausted is returned when more distinct cards are requested than exist.
	ErrDomainExhausted = errors.New("not enough distinct cards")

	// ErrAttemptLimitExceeded is returned when random sampling did not find
	// enough distinct cards within MaxGenerateAttempts draws.
	ErrAttemptLimitExceeded = errors.New("card sampling attempt limit exceeded")

	// ErrDistractorCollision is returned when the two distractors of a round
	// could not be made distinct within MaxDistractorAttempts.
	ErrDistractorCollision = errors.New("distractors kept colliding")
)
