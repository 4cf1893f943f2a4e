package agent

import (
	"inarow/game"
	"inarow/searcher"
)

type evaluationAgent struct {
	minimax *searcher.Minimax
}

// NewEvaluationAgent returns an agent that plays the best move found by minimax.
func NewEvaluationAgent(minimax *searcher.Minimax) Agent {
	return evaluationAgent{minimax: minimax}
}

func (a evaluationAgent) FindMove(board *game.Board, player game.Symbol) (game.Move, searcher.SearchMetrics, error) {
	return a.minimax.FindMoveFor(board, player)
}
