package mcp

import (
	"encoding/json"

	"github.com/janpfeifer/GoSet/internal/game"
	"github.com/janpfeifer/GoSet/internal/session"
)

// RoundView is a round as shown to the player: the answer is not revealed.
type RoundView struct {
	Number  int         `json:"number"`
	Prompts []game.Card `json:"prompts"`
	Options []game.Card `json:"options"`
	Solved  bool        `json:"solved"`
}

// StatusView is the JSON envelope returned by the game tools.
type StatusView struct {
	Started  bool       `json:"started"`
	Score    int        `json:"score"`
	TimeLeft int        `json:"time_left"`
	Over     bool       `json:"over"`
	Round    *RoundView `json:"round,omitempty"`
}

// SelectView is the response of select_option.
type SelectView struct {
	Correct bool       `json:"correct"`
	Score   int        `json:"score"`
	Message string     `json:"message"`
	Status  StatusView `json:"status"`
}

// CheckView is the response of check_set. IsSet is only present when three
// cards were given.
type CheckView struct {
	IsSet      *bool     `json:"is_set,omitempty"`
	Completion game.Card `json:"completion"` // Card completing a set with the first two
}

func newStatusView(snap session.Snapshot) StatusView {
	v := StatusView{
		Started:  snap.Started,
		Score:    snap.Session.Score,
		TimeLeft: snap.Session.TimeLeft,
		Over:     snap.Session.Over,
	}
	if snap.Round != nil {
		rv := &RoundView{
			Number:  snap.RoundNumber,
			Prompts: snap.Round.Prompts[:],
			Solved:  snap.Solved,
		}
		for _, o := range snap.Round.Options {
			rv.Options = append(rv.Options, o.Card)
		}
		v.Round = rv
	}
	return v
}

func respondJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error":"failed to marshal response"}`
	}
	return string(data)
}
