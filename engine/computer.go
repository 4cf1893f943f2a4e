package engine

import (
	"inarow/game"
	"inarow/searcher"
	"inarow/searcher/agent"
)

// ComputerPlayer adapts an agent to the Player interface.
type ComputerPlayer struct {
	symbol game.Symbol
	agent  agent.Agent
}

func NewComputerPlayer(symbol game.Symbol, a agent.Agent) *ComputerPlayer {
	return &ComputerPlayer{symbol: symbol, agent: a}
}

func (c *ComputerPlayer) Symbol() game.Symbol {
	return c.symbol
}

func (c *ComputerPlayer) FindMove(board *game.Board) (game.Move, searcher.SearchMetrics, error) {
	return c.agent.FindMove(board, c.symbol)
}
