// Package game implements the card model and puzzle logic of GoSet: generating
// random cards, completing a set from two cards and building multiple-choice
// rounds with plausible wrong answers.
package game

// PromptCards is the number of cards shown to the player in each round.
const PromptCards = 2

// NumOptions is the number of options offered in each round: the answer plus
// two distractors.
const NumOptions = 3

// MaxGenerateAttempts bounds the number of random samples Generate takes
// before giving up with ErrAttemptLimitExceeded.
var MaxGenerateAttempts = 10_000

// MaxDistractorAttempts bounds how many times StartRound regenerates the second
// distractor while it collides with the first one.
var MaxDistractorAttempts = 100
