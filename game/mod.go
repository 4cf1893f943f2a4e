package game

// Symbol is the content of a board square.
type Symbol byte

const (
	Empty    Symbol = ' '
	Human    Symbol = 'X'
	Computer Symbol = 'O'
)

// Opponent returns the symbol that plays after s.
func (s Symbol) Opponent() Symbol {
	switch s {
	case Human:
		return Computer
	case Computer:
		return Human
	default:
		return Empty
	}
}

func (s Symbol) String() string {
	return string(s)
}

// Scores produced by Board.Evaluate, from the computer's perspective.
// All scores are non-negative so a cache can reserve -1 for misses.
const (
	HumanWins    = 0
	Undecided    = 1
	Draw         = 2
	ComputerWins = 3
)

// State is the view of a game position the engine and searchers rely on.
type State interface {
	Size() int
	SquareIsEmpty(row, col int) bool
	SavePlay(row, col int, symbol Symbol)
	LegalMoves() []Move
	Evaluate() int
	Key() string
}
