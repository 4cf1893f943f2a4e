package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Board is a square grid on which players try to place LengthToWin symbols in a row.
type Board struct {
	size        int
	lengthToWin int
	cells       []Symbol // Row-major
}

var ErrInvalidBoard = errors.New("invalid board")

// NewBoard returns an empty size x size board.
func NewBoard(size, lengthToWin int) (*Board, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidBoard, "size %d must be positive", size)
	}
	if lengthToWin < 1 || lengthToWin > size {
		return nil, errors.Wrapf(ErrInvalidBoard, "length to win %d must be between 1 and %d", lengthToWin, size)
	}

	b := &Board{
		size:        size,
		lengthToWin: lengthToWin,
		cells:       make([]Symbol, size*size),
	}
	for i := range b.cells {
		b.cells[i] = Empty
	}
	return b, nil
}

// ParseBoard builds a board from one string per row, using ' ', 'X' and 'O'.
func ParseBoard(rows []string, lengthToWin int) (*Board, error) {
	b, err := NewBoard(len(rows), lengthToWin)
	if err != nil {
		return nil, err
	}
	for row, line := range rows {
		if len(line) != b.size {
			return nil, errors.Wrapf(ErrInvalidBoard, "row %d has %d squares, want %d", row, len(line), b.size)
		}
		for col := 0; col < b.size; col++ {
			symbol := Symbol(line[col])
			if symbol != Empty && symbol != Human && symbol != Computer {
				return nil, errors.Wrapf(ErrInvalidBoard, "unknown symbol %q at (%d, %d)", line[col], row, col)
			}
			b.cells[row*b.size+col] = symbol
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) LengthToWin() int {
	return b.lengthToWin
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Symbol, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:        b.size,
		lengthToWin: b.lengthToWin,
		cells:       cells,
	}
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the symbol on a square, or Empty outside the board.
func (b *Board) At(row, col int) Symbol {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

// SavePlay stores symbol on a square. Squares outside the board are ignored.
func (b *Board) SavePlay(row, col int, symbol Symbol) {
	if b.inBounds(row, col) {
		b.cells[row*b.size+col] = symbol
	}
}

func (b *Board) SquareIsEmpty(row, col int) bool {
	return b.inBounds(row, col) && b.cells[row*b.size+col] == Empty
}

// LegalMoves lists the empty squares in row-major order.
func (b *Board) LegalMoves() []Move {
	moves := []Move{}
	for i, symbol := range b.cells {
		if symbol == Empty {
			moves = append(moves, Move{Row: i / b.size, Col: i % b.size})
		}
	}
	return moves
}

// Play returns a copy of the board with symbol placed on the move's square.
func (b *Board) Play(move Move, symbol Symbol) *Board {
	next := b.Copy()
	next.SavePlay(move.Row, move.Col, symbol)
	return next
}

// Key serializes the board into a canonical string: every square, row by row.
func (b *Board) Key() string {
	return string(b.cells)
}

func (b *Board) String() string {
	var sb strings.Builder
	separator := strings.Repeat("-", 4*b.size-1)
	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}
		for col := 0; col < b.size; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteByte(' ')
			sb.WriteByte(byte(b.At(row, col)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows returns one string per row, the format read by ParseBoard.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	for row := range rows {
		rows[row] = string(b.cells[row*b.size : (row+1)*b.size])
	}
	return rows
}
