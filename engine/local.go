package engine

import (
	"fmt"
	"io"

	"inarow/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board   *game.Board
	Players [2]Player
	Out     io.Writer // Receives the board after every move, if set
}

// LocalEngine sets up a game on board in which first moves before second.
func LocalEngine(board *game.Board, first, second Player) *Engine {
	if first.Symbol() == second.Symbol() {
		panic("players must use different symbols")
	}
	if first.Symbol() == game.Empty || second.Symbol() == game.Empty {
		panic("players must not use the empty symbol")
	}

	return &Engine{
		Board:   board,
		Players: [2]Player{first, second},
	}
}

// Run executes the game loop until a player wins or the board is full.
func (e *Engine) Run() (Result, error) {
	log.Info().Msgf("player %s is starting", e.Players[0].Symbol())
	e.show()

	var moveMetrics []MoveMetrics
	step := 0
	for !e.Board.GameOver() {
		player := e.Players[step%2]

		move, metrics, err := player.FindMove(e.Board.Copy())
		if err != nil {
			return Result{}, errors.Wrapf(err, "player %s failed to move", player.Symbol())
		}
		if !inBounds(e.Board, move) || !e.Board.SquareIsEmpty(move.Row, move.Col) {
			fallback := e.Board.LegalMoves()[0]
			log.Warn().Msgf("player %s returned invalid move %v => forcing %v", player.Symbol(), move, fallback)
			move = fallback
		}

		e.Board.SavePlay(move.Row, move.Col, player.Symbol())
		step++
		moveMetrics = append(moveMetrics, MoveMetrics{
			Step:          step,
			Player:        player.Symbol(),
			SearchMetrics: metrics,
		})
		log.Info().Msgf("move %d: player %s played %v", step, player.Symbol(), move)
		e.show()
	}

	winner := e.Board.Winner()
	if winner == game.Empty {
		log.Info().Msgf("game ended in a draw after %d moves", step)
	} else {
		log.Info().Msgf("game ended with winner %s after %d moves", winner, step)
	}

	return Result{
		Winner:      winner,
		Moves:       step,
		Board:       e.Board,
		MoveMetrics: moveMetrics,
	}, nil
}

func (e *Engine) show() {
	if e.Out != nil {
		fmt.Fprintf(e.Out, "\n%s\n", e.Board)
	}
}

func inBounds(b *game.Board, move game.Move) bool {
	return move.Row >= 0 && move.Row < b.Size() && move.Col >= 0 && move.Col < b.Size()
}
