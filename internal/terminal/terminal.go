// Package terminal plays a GoSet game on a line-oriented terminal.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/janpfeifer/GoSet/internal/game"
	"github.com/janpfeifer/GoSet/internal/session"
	"k8s.io/klog/v2"
)

// Player connects a game to an input and an output stream.
type Player struct {
	game *session.Game
	in   io.Reader
	out  io.Writer

	mu        sync.Mutex // Serializes writes to out
	lastRound int        // Last round number rendered
	lastOver  bool
}

// NewPlayer creates a Player reading commands from in and printing to out.
func NewPlayer(g *session.Game, in io.Reader, out io.Writer) *Player {
	return &Player{game: g, in: in, out: out}
}

// Play runs games until the player quits, the input ends or ctx is done.
//
// Input is read on its own goroutine, which only ends when a read returns.
// If in is an io.Closer, Play closes it on return to unblock that read;
// otherwise the goroutine lingers in a pending read until the input ends.
func (p *Player) Play(ctx context.Context) error {
	if c, ok := p.in.(io.Closer); ok {
		defer c.Close()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			klog.Errorf("Reading input: %v", err)
		}
	}()

	p.game.SetListener(p.onUpdate)
	defer p.game.SetListener(nil)
	p.printf("Find the card that completes a set: for each of count, shape, fill and color,\n" +
		"the three cards must be all the same or all different. Type 1, 2 or 3; s skips; q quits.\n")

	for {
		runCtx, stopRun := context.WithCancel(ctx)
		over := make(chan struct{})
		p.resetView()
		if err := p.game.Start(); err != nil {
			stopRun()
			return fmt.Errorf("failed to start game: %w", err)
		}
		go func() {
			defer close(over)
			_ = p.game.Run(runCtx)
		}()

		quit, err := p.playGame(ctx, lines, over)
		stopRun()
		<-over
		if quit || err != nil {
			p.printf("Bye! Final score: %d\n", p.game.Snapshot().Session.Score)
			return err
		}

		p.printf("Press Enter to play again, q to quit.\n")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok || strings.EqualFold(line, "q") {
				p.printf("Bye!\n")
				return nil
			}
		}
	}
}

// playGame handles input until the game is over. It reports whether the player quit.
func (p *Player) playGame(ctx context.Context, lines <-chan string, over <-chan struct{}) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case <-over:
			return false, nil
		case line, ok := <-lines:
			if !ok {
				return true, nil
			}
			if quit := p.handleLine(line); quit {
				return true, nil
			}
		}
	}
}

func (p *Player) handleLine(line string) bool {
	switch strings.ToLower(line) {
	case "":
		p.render(p.game.Snapshot(), true)
		return false
	case "q", "quit":
		return true
	case "s", "skip":
		if err := p.game.NextRound(); err != nil {
			p.printf("Cannot skip: %v\n", err)
		}
		return false
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > game.NumOptions {
		p.printf("Type a number from 1 to %d.\n", game.NumOptions)
		return false
	}
	sel, err := p.game.Select(n - 1)
	switch {
	case errors.Is(err, session.ErrRoundSolved):
		p.printf("Already solved, next round coming...\n")
	case err != nil:
		p.printf("Cannot select: %v\n", err)
	case sel.Correct:
		p.printf("Correct! Score: %d\n", sel.Score)
	default:
		p.printf("Wrong! Score: %d\n", sel.Score)
	}
	return false
}

func (p *Player) onUpdate(snap session.Snapshot) {
	p.render(snap, false)
}

// render prints the round when it changed, or always if force is set.
func (p *Player) render(snap session.Snapshot, force bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if snap.Session.Over {
		if !p.lastOver {
			p.lastOver = true
			fmt.Fprintf(p.out, "\nTime's up! Final score: %d\n", snap.Session.Score)
		}
		return
	}
	if !force && snap.RoundNumber == p.lastRound {
		return
	}
	p.lastRound = snap.RoundNumber
	fmt.Fprint(p.out, FormatSnapshot(snap))
}

func (p *Player) resetView() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastRound, p.lastOver = 0, false
}

func (p *Player) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

// FormatSnapshot renders the round in play with score and time left.
func FormatSnapshot(snap session.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n--- Round %d | score %d | %ds left ---\n",
		snap.RoundNumber, snap.Session.Score, snap.Session.TimeLeft)
	if snap.Round == nil {
		sb.WriteString("No round in play: type s to deal one.\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "  %s\n  %s\n", snap.Round.Prompts[0], snap.Round.Prompts[1])
	for i, o := range snap.Round.Options {
		fmt.Fprintf(&sb, "%d) %s\n", i+1, o.Card)
	}
	return sb.String()
}
