package agent

import (
	"inarow/game"
	"inarow/searcher"
)

type Agent interface {
	// FindMove returns the move chosen for player and the metrics of the search that found it
	FindMove(board *game.Board, player game.Symbol) (game.Move, searcher.SearchMetrics, error)
}

// Request is the body of a POST /findmove.
type Request struct {
	Board       []string `json:"board"`
	LengthToWin int      `json:"lengthToWin"`
	MaxLevels   int      `json:"maxLevels,omitempty"`
	Player      string   `json:"player,omitempty"` // "O" (default) or "X"
}

// Response is the body returned by POST /findmove.
type Response struct {
	Row     int                    `json:"row"`
	Col     int                    `json:"col"`
	Metrics searcher.SearchMetrics `json:"metrics"`
}
