package engine

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inarow/game"
	"inarow/meta"
	"inarow/searcher"
	"inarow/searcher/agent"

	"github.com/stretchr/testify/require"
)

type stubPlayer struct {
	symbol game.Symbol
	move   game.Move
}

func (s stubPlayer) Symbol() game.Symbol {
	return s.symbol
}

func (s stubPlayer) FindMove(*game.Board) (game.Move, searcher.SearchMetrics, error) {
	return s.move, searcher.SearchMetrics{}, nil
}

func newBoard(t *testing.T) *game.Board {
	t.Helper()
	b, err := game.NewBoard(3, 3)
	require.NoError(t, err)
	return b
}

func computer(symbol game.Symbol, seed uint64) *ComputerPlayer {
	minimax := searcher.NewMinimax(searcher.WithSeed(seed), searcher.WithMetrics())
	return NewComputerPlayer(symbol, agent.NewEvaluationAgent(minimax))
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics when both players share a symbol", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(newBoard(t), computer(game.Computer, 1), computer(game.Computer, 2))
		})
	})

	t.Run("panics on the empty symbol", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(newBoard(t), computer(game.Empty, 1), computer(game.Computer, 2))
		})
	})
}

func TestRun(t *testing.T) {
	t.Run("two perfect computers draw", func(t *testing.T) {
		e := LocalEngine(newBoard(t), computer(game.Computer, 1), computer(game.Human, 2))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Empty, result.Winner)
		require.Equal(t, 9, result.Moves)
		require.Len(t, result.MoveMetrics, 9)
		require.Equal(t, game.Computer, result.MoveMetrics[0].Player)
		require.Equal(t, game.Human, result.MoveMetrics[1].Player)
		require.Greater(t, result.MoveMetrics[0].Records, 0, "Computer moves should report cache metrics")
		require.True(t, result.Board.IsDraw())
	})

	t.Run("human never beats the computer", func(t *testing.T) {
		var script strings.Builder
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				fmt.Fprintf(&script, "%d %d\n", row, col)
			}
		}
		var out bytes.Buffer
		human := NewHumanPlayer(game.Human, strings.NewReader(script.String()), &out)
		e := LocalEngine(newBoard(t), human, computer(game.Computer, 3))
		e.Out = &out

		result, err := e.Run()

		require.NoError(t, err)
		require.NotEqual(t, game.Human, result.Winner)
		require.Contains(t, out.String(), "Enter row and column for X")
		require.Contains(t, out.String(), "---", "Board should be printed")
	})

	t.Run("forces a legal move when a player returns an invalid one", func(t *testing.T) {
		b, err := game.ParseBoard([]string{"XX ", "OO ", "   "}, 3)
		require.NoError(t, err)
		e := LocalEngine(b, stubPlayer{symbol: game.Computer, move: game.Move{Row: 5, Col: 5}}, stubPlayer{symbol: game.Human})

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Computer, result.MoveMetrics[0].Player)
		require.Equal(t, game.Computer, b.At(0, 2), "First legal square should be used")
	})

	t.Run("stops when human input ends", func(t *testing.T) {
		human := NewHumanPlayer(game.Human, strings.NewReader(""), &bytes.Buffer{})
		e := LocalEngine(newBoard(t), human, computer(game.Computer, 1))

		_, err := e.Run()

		require.ErrorIs(t, err, ErrInputClosed)
	})
}

func TestHumanPlayer(t *testing.T) {
	t.Run("re-prompts on invalid input", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHumanPlayer(game.Human, strings.NewReader("foo\n5 5\n0 0\n"), &out)

		move, _, err := h.FindMove(newBoard(t))

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 0}, move)
		require.Contains(t, out.String(), "two numbers")
		require.Contains(t, out.String(), "outside the board")
	})

	t.Run("re-prompts on taken squares", func(t *testing.T) {
		var out bytes.Buffer
		b := newBoard(t)
		b.SavePlay(0, 0, game.Computer)
		h := NewHumanPlayer(game.Human, strings.NewReader("0 0\n1 1\n"), &out)

		move, _, err := h.FindMove(b)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 1, Col: 1}, move)
		require.Contains(t, out.String(), "is taken")
	})
}

func TestRemotePlayer(t *testing.T) {
	t.Run("plays through the move server", func(t *testing.T) {
		server := httptest.NewServer(agent.NewServer(meta.Default()))
		defer server.Close()
		remote := NewRemotePlayer(game.Computer, server.URL+"/", 0, server.Client())
		e := LocalEngine(newBoard(t), remote, computer(game.Human, 4))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Empty, result.Winner, "Two perfect players should draw")
		require.Greater(t, result.MoveMetrics[0].Records, 0, "Remote metrics should be decoded")
	})

	t.Run("default client has a timeout", func(t *testing.T) {
		remote := NewRemotePlayer(game.Computer, "http://localhost:8080", 0, nil)

		require.Equal(t, RemoteTimeout, remote.client.Timeout)
	})

	t.Run("gives up on a slow server", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)
		client := server.Client()
		client.Timeout = 50 * time.Millisecond
		remote := NewRemotePlayer(game.Computer, server.URL, 2, client)

		_, _, err := remote.FindMove(newBoard(t))

		require.ErrorContains(t, err, "failed to reach")
	})

	t.Run("reports server errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()
		remote := NewRemotePlayer(game.Computer, server.URL, 2, server.Client())

		_, _, err := remote.FindMove(newBoard(t))

		require.ErrorContains(t, err, "status 500")
		require.ErrorContains(t, err, "boom")
	})
}
