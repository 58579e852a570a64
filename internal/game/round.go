package game

import (
	"fmt"
	"strings"
)

// Option is one of the cards the player can pick in a round.
type Option struct {
	Card     Card `json:"card"`
	IsAnswer bool `json:"isAnswer"`
}

// Round is one prompt-and-answer cycle: two prompt cards and three options,
// exactly one of which completes a set with the prompts.
type Round struct {
	Prompts [PromptCards]Card  `json:"prompts"`
	Options [NumOptions]Option `json:"options"`
	Answer  Card               `json:"-"`
}

// StartRound deals a new round.
//
// It draws two distinct prompt cards, solves the answer, builds two distinct
// distractors from the answer and shuffles the three options.
func (d *Dealer) StartRound() (*Round, error) {
	prompts, err := d.Generate(PromptCards)
	if err != nil {
		return nil, fmt.Errorf("failed to deal prompt cards: %w", err)
	}
	answer := Solve(prompts[0], prompts[1])

	dist1 := d.Distract(answer)
	dist2 := d.Distract(answer)
	for attempt := 1; dist2 == dist1; attempt++ {
		if attempt >= MaxDistractorAttempts {
			return nil, fmt.Errorf("distractor %s repeated %d times: %w", dist1, attempt, ErrDistractorCollision)
		}
		dist2 = d.Distract(answer)
	}

	r := &Round{
		Prompts: [PromptCards]Card{prompts[0], prompts[1]},
		Answer:  answer,
	}
	options := []Option{
		{Card: answer, IsAnswer: true},
		{Card: dist1},
		{Card: dist2},
	}
	d.shuffle(options)
	copy(r.Options[:], options)
	return r, nil
}

// Check reports whether option i is the answer.
func (r *Round) Check(i int) (bool, error) {
	if i < 0 || i >= len(r.Options) {
		return false, fmt.Errorf("option %d out of range [0, %d)", i, len(r.Options))
	}
	return r.Options[i].Card == r.Answer, nil
}

// AnswerIndex returns the position of the answer among the options.
func (r *Round) AnswerIndex() int {
	for i, o := range r.Options {
		if o.IsAnswer {
			return i
		}
	}
	return -1
}

func (r *Round) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Round: prompts=[%s, %s], options: ", r.Prompts[0], r.Prompts[1])
	for i, o := range r.Options {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d) %s", i+1, o.Card)
		if o.IsAnswer {
			sb.WriteString(" (*)")
		}
	}
	return sb.String()
}
