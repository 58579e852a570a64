package session

import "testing"

func TestSessionCountdown(t *testing.T) {
	var s Session
	s.Reset(3)
	for want := 2; want >= 0; want-- {
		over := s.Tick()
		if s.TimeLeft != want {
			t.Fatalf("Expected %d seconds left, got %d", want, s.TimeLeft)
		}
		if over != (want == 0) {
			t.Errorf("At %d seconds left: over=%t", want, over)
		}
	}
	if !s.Tick() || s.TimeLeft != 0 {
		t.Errorf("Ticking a finished session should keep it at 0 and over, got %+v", s)
	}
}

func TestSessionScore(t *testing.T) {
	var s Session
	s.Reset(10)
	if got := s.Add(-1); got != -1 {
		t.Errorf("Score should go negative, got %d", got)
	}
	if got := s.Add(2); got != 1 {
		t.Errorf("Expected score 1, got %d", got)
	}
	s.Over = true
	if got := s.Add(5); got != 1 {
		t.Errorf("Score of a finished session must not change, got %d", got)
	}
	s.Reset(10)
	if s.Score != 0 || s.Over || s.TimeLeft != 10 {
		t.Errorf("Reset did not clear the session: %+v", s)
	}
}
