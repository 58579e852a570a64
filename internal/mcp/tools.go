// Package mcp exposes a GoSet game as MCP tools, so an agent can play it over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/janpfeifer/GoSet/internal/game"
	"github.com/janpfeifer/GoSet/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"k8s.io/klog/v2"
)

// Tools serves one game session (one per stdio process) through MCP tools.
type Tools struct {
	game *session.Game
	ctx  context.Context // Lifetime of the countdown goroutines

	mu     sync.Mutex
	cancel context.CancelFunc // Stops the countdown of the running game
}

// NewTools creates the tool set for g. Countdowns run until ctx is done.
func NewTools(ctx context.Context, g *session.Game) *Tools {
	return &Tools{game: g, ctx: ctx}
}

// Register adds all game tools to the MCP server.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(startGameTool(), t.handleStartGame)
	s.AddTool(getRoundTool(), t.handleGetRound)
	s.AddTool(selectOptionTool(), t.handleSelectOption)
	s.AddTool(nextRoundTool(), t.handleNextRound)
	s.AddTool(checkSetTool(), t.handleCheckSet)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start (or restart) a timed GoSet game. Each round shows two prompt cards and three options; "+
			"exactly one option completes a set with the prompts: for each of count, shape, fill and color the three cards "+
			"are either all the same or all different. Correct picks score +1, wrong picks -1, until the clock runs out."),
	)
}

func getRoundTool() mcp.Tool {
	return mcp.NewTool("get_round",
		mcp.WithDescription("Get the current round, score and remaining time without making a move. Read-only."),
	)
}

func selectOptionTool() mcp.Tool {
	return mcp.NewTool("select_option",
		mcp.WithDescription("Pick one of the three options of the current round. After a correct pick the next round "+
			"is dealt after a short delay; call get_round to see it."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the option to pick")),
	)
}

func nextRoundTool() mcp.Tool {
	return mcp.NewTool("next_round",
		mcp.WithDescription("Skip the current round and deal a new one. The score is not changed."),
	)
}

func checkSetTool() mcp.Tool {
	return mcp.NewTool("check_set",
		mcp.WithDescription("Check whether three cards form a set, and compute the card completing a set with the first two. "+
			`Cards are a JSON array like [{"count":1,"shape":"oval","fill":"empty","color":"red"}, ...]; `+
			"shapes: squiggle, oval, diamond; fills: empty, filled, hatched; colors: red, green, blue. "+
			"is_set is only returned when three cards are given. Read-only."),
		mcp.WithString("cards", mcp.Required(), mcp.Description("JSON array of 2 or 3 cards")),
	)
}

// --- Tool handlers ---

func (t *Tools) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	if err := t.game.Start(); err != nil {
		t.cancel = nil
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	runCtx, cancel := context.WithCancel(t.ctx)
	t.cancel = cancel
	go func() {
		if err := t.game.Run(runCtx); err != nil && runCtx.Err() == nil {
			klog.Errorf("Countdown stopped: %v", err)
		}
	}()
	return mcp.NewToolResultText(respondJSON(newStatusView(t.game.Snapshot()))), nil
}

func (t *Tools) handleGetRound(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := t.game.Snapshot()
	if !snap.Started {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(newStatusView(snap))), nil
}

func (t *Tools) handleSelectOption(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index := request.GetInt("index", -1)
	sel, err := t.game.Select(index)
	if err != nil {
		return mcp.NewToolResultErrorf("Cannot select option %d: %v", index, err), nil
	}
	resp := SelectView{
		Correct: sel.Correct,
		Score:   sel.Score,
		Message: "Wrong: that option does not complete a set. Try another one.",
		Status:  newStatusView(t.game.Snapshot()),
	}
	if sel.Correct {
		resp.Message = "Correct! The next round is being dealt."
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *Tools) handleNextRound(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.game.NextRound(); err != nil {
		return mcp.NewToolResultErrorf("Cannot deal a new round: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(newStatusView(t.game.Snapshot()))), nil
}

func (t *Tools) handleCheckSet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cards, err := parseCards(request.GetString("cards", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid cards: %v", err), nil
	}
	resp := CheckView{Completion: game.Solve(cards[0], cards[1])}
	if len(cards) == 3 {
		isSet := game.IsSet(cards[0], cards[1], cards[2])
		resp.IsSet = &isSet
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func parseCards(s string) ([]game.Card, error) {
	var cards []game.Card
	if err := json.Unmarshal([]byte(s), &cards); err != nil {
		return nil, err
	}
	if len(cards) < 2 || len(cards) > 3 {
		return nil, fmt.Errorf("expected 2 or 3 cards, got %d", len(cards))
	}
	return cards, nil
}
