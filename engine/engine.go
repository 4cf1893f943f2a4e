package engine

import (
	"inarow/game"
	"inarow/searcher"
)

// Player chooses moves for one symbol.
type Player interface {
	Symbol() game.Symbol
	FindMove(board *game.Board) (game.Move, searcher.SearchMetrics, error)
}

type MoveMetrics struct {
	Step   int
	Player game.Symbol
	searcher.SearchMetrics
}

// Result describes a finished game. Winner is game.Empty for a draw.
type Result struct {
	Winner      game.Symbol
	Moves       int
	Board       *game.Board
	MoveMetrics []MoveMetrics
}
