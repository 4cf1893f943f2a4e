package game

// Directions scanned for runs: horizontal, vertical and both diagonals.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Wins reports whether symbol has at least LengthToWin squares in a row.
func (b *Board) Wins(symbol Symbol) bool {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.At(row, col) != symbol {
				continue
			}
			for _, d := range directions {
				if b.runFrom(row, col, d[0], d[1], symbol) >= b.lengthToWin {
					return true
				}
			}
		}
	}
	return false
}

// runFrom counts consecutive symbols starting at row, col and stepping by dr, dc.
func (b *Board) runFrom(row, col, dr, dc int, symbol Symbol) int {
	count := 0
	for b.inBounds(row, col) && b.At(row, col) == symbol && count < b.lengthToWin {
		count++
		row += dr
		col += dc
	}
	return count
}

func (b *Board) isFull() bool {
	for _, symbol := range b.cells {
		if symbol == Empty {
			return false
		}
	}
	return true
}

// IsDraw reports whether the board is full and nobody has won.
func (b *Board) IsDraw() bool {
	return b.isFull() && !b.Wins(Human) && !b.Wins(Computer)
}

// Evaluate scores the board from the computer's perspective.
func (b *Board) Evaluate() int {
	switch {
	case b.Wins(Computer):
		return ComputerWins
	case b.Wins(Human):
		return HumanWins
	case b.isFull():
		return Draw
	default:
		return Undecided
	}
}

// Winner returns the winning symbol, or Empty if nobody has won.
func (b *Board) Winner() Symbol {
	switch {
	case b.Wins(Computer):
		return Computer
	case b.Wins(Human):
		return Human
	default:
		return Empty
	}
}

// GameOver reports whether the game ended in a win or a draw.
func (b *Board) GameOver() bool {
	return b.Evaluate() != Undecided
}
