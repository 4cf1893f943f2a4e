package engine

import (
	"bufio"
	"fmt"
	"io"

	"inarow/game"
	"inarow/searcher"

	"github.com/pkg/errors"
)

var ErrInputClosed = errors.New("input closed")

// HumanPlayer reads moves as "row col" lines.
type HumanPlayer struct {
	symbol  game.Symbol
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanPlayer(symbol game.Symbol, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		symbol:  symbol,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *HumanPlayer) Symbol() game.Symbol {
	return h.symbol
}

// FindMove prompts until it reads an empty square on the board.
func (h *HumanPlayer) FindMove(board *game.Board) (game.Move, searcher.SearchMetrics, error) {
	for {
		fmt.Fprintf(h.out, "Enter row and column for %s (0-%d): ", h.symbol, board.Size()-1)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.Move{}, searcher.SearchMetrics{}, errors.Wrap(err, "failed to read move")
			}
			return game.Move{}, searcher.SearchMetrics{}, ErrInputClosed
		}

		var move game.Move
		if _, err := fmt.Sscan(h.scanner.Text(), &move.Row, &move.Col); err != nil {
			fmt.Fprintln(h.out, "Please enter two numbers separated by a space.")
			continue
		}
		if !inBounds(board, move) {
			fmt.Fprintf(h.out, "Square %v is outside the board.\n", move)
			continue
		}
		if !board.SquareIsEmpty(move.Row, move.Col) {
			fmt.Fprintf(h.out, "Square %v is taken.\n", move)
			continue
		}
		return move, searcher.SearchMetrics{}, nil
	}
}
