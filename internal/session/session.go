// Package session runs a timed GoSet game on top of the game package: it keeps
// the score and the countdown, deals rounds and reacts to the player's picks.
package session

// Session is the mutable state of one game: score and remaining time.
type Session struct {
	Score    int  `json:"score"`     // May go negative
	TimeLeft int  `json:"time_left"` // Seconds
	Over     bool `json:"over"`      // Frozen once the countdown reaches zero
}

// Reset starts a fresh session with the given number of seconds.
func (s *Session) Reset(seconds int) {
	*s = Session{TimeLeft: seconds}
}

// Tick takes one second off the clock and reports whether the session is over.
func (s *Session) Tick() bool {
	if s.Over {
		return true
	}
	if s.TimeLeft > 0 {
		s.TimeLeft--
	}
	if s.TimeLeft == 0 {
		s.Over = true
	}
	return s.Over
}

// Add changes the score by delta, unless the session is over, and returns the new score.
func (s *Session) Add(delta int) int {
	if !s.Over {
		s.Score += delta
	}
	return s.Score
}
