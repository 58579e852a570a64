package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/janpfeifer/GoSet/internal/config"
	"github.com/janpfeifer/GoSet/internal/game"
	"k8s.io/klog/v2"
)

var (
	ErrNotStarted  = errors.New("game not started")
	ErrGameOver    = errors.New("game is over")
	ErrNoRound     = errors.New("no round in play")
	ErrRoundSolved = errors.New("round already solved, next round is coming")
	ErrBadOption   = errors.New("invalid option")
)

// Selection is the outcome of picking an option.
type Selection struct {
	Correct bool `json:"correct"`
	Score   int  `json:"score"`
}

// Snapshot is a copy of the game state, safe to hand to a renderer.
type Snapshot struct {
	Session     Session     `json:"session"`
	Started     bool        `json:"started"`
	Round       *game.Round `json:"round,omitempty"`
	RoundNumber int         `json:"round_number"` // Rounds dealt since Start
	Solved      bool        `json:"solved"`       // Current round answered, waiting for the next one
}

// Game orchestrates a timed game: it owns the Session and the current Round,
// and is driven by the host through Start, Select, Tick and Run.
//
// Game is safe for concurrent use: the countdown, the next-round timer and
// player input typically run on different goroutines.
type Game struct {
	cfg    config.Config
	dealer *game.Dealer

	mu          sync.Mutex
	session     Session
	started     bool
	round       *game.Round
	roundNumber int
	solved      bool
	nextTimer   *time.Timer // Pending next-round deal after a correct answer
	listener    func(Snapshot)
}

// New creates a game with the given configuration, dealing from dealer.
func New(cfg config.Config, dealer *game.Dealer) *Game {
	return &Game{cfg: cfg, dealer: dealer}
}

// NewFromConfig creates a game dealing from a dealer seeded with cfg.Seed, or
// with a random seed if it is 0. The seed is logged so a game can be replayed.
func NewFromConfig(cfg config.Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	klog.Infof("Dealer seed: %d", seed)
	return New(cfg, game.NewSeededDealer(seed))
}

// SetListener registers fn to be called with a fresh Snapshot after every
// state change. fn is called without the game lock held.
func (g *Game) SetListener(fn func(Snapshot)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listener = fn
}

// Start (re)starts the game: resets score and clock and deals the first round.
func (g *Game) Start() error {
	g.mu.Lock()
	g.stopTimerLocked()
	g.session.Reset(g.cfg.Seconds())
	g.started = true
	g.roundNumber = 0
	err := g.dealLocked()
	klog.Infof("Game started: %d seconds", g.session.TimeLeft)
	g.unlockAndNotify()
	return err
}

// NextRound abandons the current round, if any, and deals a new one.
func (g *Game) NextRound() error {
	g.mu.Lock()
	if err := g.playableLocked(); err != nil {
		g.mu.Unlock()
		return err
	}
	g.stopTimerLocked()
	err := g.dealLocked()
	g.unlockAndNotify()
	return err
}

// Select picks option i of the current round.
//
// A correct pick adds the reward and schedules the next round after the
// configured delay; a wrong pick subtracts the penalty and leaves the round in
// play.
func (g *Game) Select(i int) (Selection, error) {
	g.mu.Lock()
	if err := g.playableLocked(); err != nil {
		g.mu.Unlock()
		return Selection{}, err
	}
	if g.round == nil {
		g.mu.Unlock()
		return Selection{}, ErrNoRound
	}
	if g.solved {
		g.mu.Unlock()
		return Selection{}, ErrRoundSolved
	}
	correct, err := g.round.Check(i)
	if err != nil {
		g.mu.Unlock()
		return Selection{}, fmt.Errorf("%w: %v", ErrBadOption, err)
	}

	var sel Selection
	if correct {
		sel = Selection{Correct: true, Score: g.session.Add(g.cfg.Reward)}
		g.solved = true
		g.scheduleNextLocked()
	} else {
		sel = Selection{Score: g.session.Add(-g.cfg.Penalty)}
	}
	klog.V(1).Infof("Round %d: option %d correct=%t, score=%d", g.roundNumber, i+1, sel.Correct, sel.Score)
	g.unlockAndNotify()
	return sel, nil
}

// Tick takes one second off the clock and reports whether the game is over.
// A game that has not started counts as over.
func (g *Game) Tick() bool {
	g.mu.Lock()
	if !g.started || g.session.Over {
		g.mu.Unlock()
		return true
	}
	over := g.session.Tick()
	if over {
		g.stopTimerLocked()
		klog.Infof("Game over: score %d after %d rounds", g.session.Score, g.roundNumber)
	}
	g.unlockAndNotify()
	return over
}

// Run ticks the clock once per second until the game is over or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if g.Tick() {
				return nil
			}
		}
	}
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	snap := Snapshot{
		Session:     g.session,
		Started:     g.started,
		RoundNumber: g.roundNumber,
		Solved:      g.solved,
	}
	if g.round != nil {
		r := *g.round
		snap.Round = &r
	}
	return snap
}

func (g *Game) playableLocked() error {
	if !g.started {
		return ErrNotStarted
	}
	if g.session.Over {
		return ErrGameOver
	}
	return nil
}

// dealLocked deals a new round, starting over from scratch on failure up to
// cfg.RoundRetries times.
func (g *Game) dealLocked() error {
	g.round, g.solved = nil, false
	var err error
	for attempt := 1; attempt <= g.cfg.RoundRetries; attempt++ {
		var r *game.Round
		r, err = g.dealer.StartRound()
		if err == nil {
			g.round = r
			g.roundNumber++
			klog.V(1).Infof("Round %d dealt: %s", g.roundNumber, r)
			return nil
		}
		klog.Warningf("Failed to deal round (attempt %d of %d): %v", attempt, g.cfg.RoundRetries, err)
	}
	return fmt.Errorf("failed to deal round after %d attempts: %w", g.cfg.RoundRetries, err)
}

// scheduleNextLocked arms the next-round timer. A timer only deals while it is
// still g.nextTimer: stopping or re-arming it makes the callback a no-op, even
// if it already fired and is waiting for the lock.
func (g *Game) scheduleNextLocked() {
	g.stopTimerLocked()
	var timer *time.Timer
	timer = time.AfterFunc(g.cfg.NextRoundDelay, func() {
		g.mu.Lock()
		if g.nextTimer != timer || g.session.Over || !g.solved {
			g.mu.Unlock()
			return
		}
		g.nextTimer = nil
		if err := g.dealLocked(); err != nil {
			klog.Errorf("Next round: %v", err)
		}
		g.unlockAndNotify()
	})
	g.nextTimer = timer
}

func (g *Game) stopTimerLocked() {
	if g.nextTimer != nil {
		g.nextTimer.Stop()
		g.nextTimer = nil
	}
}

// unlockAndNotify releases the lock and passes a snapshot to the listener.
func (g *Game) unlockAndNotify() {
	listener := g.listener
	var snap Snapshot
	if listener != nil {
		snap = g.snapshotLocked()
	}
	g.mu.Unlock()
	if listener != nil {
		listener(snap)
	}
}
