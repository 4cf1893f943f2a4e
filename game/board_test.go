package game

import (
	"testing"

	"inarow/dictionary"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lengthToWin int, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows, lengthToWin)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("creates an empty board", func(t *testing.T) {
		b, err := NewBoard(4, 3)

		require.NoError(t, err)
		require.Equal(t, 4, b.Size())
		require.Equal(t, 3, b.LengthToWin())
		require.Len(t, b.LegalMoves(), 16)
		require.Equal(t, "                ", b.Key())
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		_, err := NewBoard(0, 1)
		require.ErrorIs(t, err, ErrInvalidBoard)

		_, err = NewBoard(3, 4)
		require.ErrorIs(t, err, ErrInvalidBoard)

		_, err = NewBoard(3, 0)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("reads rows", func(t *testing.T) {
		b := mustParse(t, 3, "XO ", " X ", "  O")

		require.Equal(t, Human, b.At(0, 0))
		require.Equal(t, Computer, b.At(0, 1))
		require.True(t, b.SquareIsEmpty(0, 2))
		require.Equal(t, "XO  X   O", b.Key())
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := ParseBoard([]string{"XO", "   ", "   "}, 3)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects unknown symbols", func(t *testing.T) {
		_, err := ParseBoard([]string{"XZ ", "   ", "   "}, 3)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestSavePlay(t *testing.T) {
	t.Run("stores symbols and ignores squares outside the board", func(t *testing.T) {
		b, err := NewBoard(3, 3)
		require.NoError(t, err)

		b.SavePlay(1, 1, Computer)
		b.SavePlay(-1, 0, Human)
		b.SavePlay(0, 3, Human)

		require.False(t, b.SquareIsEmpty(1, 1))
		require.Equal(t, "    O    ", b.Key())
	})

	t.Run("squares outside the board are never empty", func(t *testing.T) {
		b, err := NewBoard(3, 3)
		require.NoError(t, err)

		require.False(t, b.SquareIsEmpty(-1, 0))
		require.False(t, b.SquareIsEmpty(0, 3))
		require.False(t, b.SquareIsEmpty(3, 3))
		require.True(t, b.SquareIsEmpty(2, 2))
	})

	t.Run("play returns a copy", func(t *testing.T) {
		b, err := NewBoard(3, 3)
		require.NoError(t, err)

		next := b.Play(Move{Row: 2, Col: 0}, Human)

		require.True(t, b.SquareIsEmpty(2, 0), "Original board should not change")
		require.Equal(t, Human, next.At(2, 0))
	})
}

func TestWins(t *testing.T) {
	tests := []struct {
		name        string
		rows        []string
		lengthToWin int
		symbol      Symbol
		want        bool
	}{
		{"horizontal", []string{"   ", "OOO", "X X"}, 3, Computer, true},
		{"vertical", []string{"X O", "X O", "X  "}, 3, Human, true},
		{"main diagonal", []string{"O X", " OX", "  O"}, 3, Computer, true},
		{"anti diagonal", []string{"O X", " X ", "XO "}, 3, Human, true},
		{"broken run", []string{"XOX", "   ", "   "}, 2, Human, false},
		{"run shorter than needed", []string{"XX  ", "    ", "    ", "    "}, 3, Human, false},
		{"short run on a larger board", []string{"    ", " OO ", "    ", "    "}, 2, Computer, true},
		{"anti diagonal near the edge", []string{"   X", "  X ", " X  ", "    "}, 3, Human, true},
		{"longer run than needed", []string{"OOOO", "    ", "    ", "    "}, 3, Computer, true},
		{"other symbol", []string{"OOO", "   ", "   "}, 3, Human, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.lengthToWin, tt.rows...)

			require.Equal(t, tt.want, b.Wins(tt.symbol))
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"computer wins", []string{"OOO", "XX ", "   "}, ComputerWins},
		{"human wins", []string{"XXX", "OO ", "   "}, HumanWins},
		{"draw", []string{"XOX", "XOO", "OXX"}, Draw},
		{"undecided", []string{"XO ", "   ", "   "}, Undecided},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, 3, tt.rows...)

			require.Equal(t, tt.want, b.Evaluate())
			require.Equal(t, tt.want != Undecided, b.GameOver())
			require.Equal(t, tt.want == Draw, b.IsDraw())
		})
	}

	t.Run("winner", func(t *testing.T) {
		require.Equal(t, Computer, mustParse(t, 3, "OOO", "XX ", "   ").Winner())
		require.Equal(t, Human, mustParse(t, 3, "XXX", "OO ", "   ").Winner())
		require.Equal(t, Empty, mustParse(t, 3, "XOX", "XOO", "OXX").Winner())
	})
}

func TestString(t *testing.T) {
	b := mustParse(t, 2, "XO", " X")

	require.Equal(t, " X | O \n-------\n   | X \n", b.String())
}

func TestConfigurationCache(t *testing.T) {
	t.Run("stores and finds the current configuration", func(t *testing.T) {
		d := dictionary.New(11)
		b := mustParse(t, 3, "XO ", "   ", "   ")

		require.Equal(t, dictionary.NotFound, RepeatedConfiguration(b, d))
		AddConfiguration(b, d, Undecided)
		require.Equal(t, Undecided, RepeatedConfiguration(b, d))

		b.SavePlay(2, 2, Human)
		require.Equal(t, dictionary.NotFound, RepeatedConfiguration(b, d), "New configuration should miss")
	})

	t.Run("keeps the first score of a repeated configuration", func(t *testing.T) {
		d := dictionary.New(11)
		b := mustParse(t, 3, "XO ", "   ", "   ")

		AddConfiguration(b, d, Draw)
		collided := AddConfiguration(b, d, HumanWins)

		require.False(t, collided)
		require.Equal(t, Draw, RepeatedConfiguration(b, d))
		require.Equal(t, 1, d.NumRecords())
	})

	t.Run("default dictionary uses a prime size", func(t *testing.T) {
		require.Equal(t, 10007, NewDictionary().Capacity())
	})
}

func TestSymbol(t *testing.T) {
	require.Equal(t, Computer, Human.Opponent())
	require.Equal(t, Human, Computer.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
	require.Equal(t, "X", Human.String())
}

func TestRows(t *testing.T) {
	rows := []string{"XO ", " X ", "  O"}
	b := mustParse(t, 3, rows...)

	require.Equal(t, rows, b.Rows())
}
