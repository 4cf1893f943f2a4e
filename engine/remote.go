package engine

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"inarow/game"
	"inarow/searcher"
	"inarow/searcher/agent"

	"github.com/pkg/errors"
)

// RemoteTimeout bounds each move request of a RemotePlayer built without a client.
const RemoteTimeout = 30 * time.Second

// RemotePlayer asks a move server for every move.
type RemotePlayer struct {
	symbol    game.Symbol
	url       string
	maxLevels int
	client    *http.Client
}

// NewRemotePlayer returns a player backed by the move server at baseURL.
// A maxLevels of 0 lets the server use its own default. A nil client is
// replaced by one that gives up after RemoteTimeout.
func NewRemotePlayer(symbol game.Symbol, baseURL string, maxLevels int, client *http.Client) *RemotePlayer {
	if client == nil {
		client = &http.Client{Timeout: RemoteTimeout}
	}
	return &RemotePlayer{
		symbol:    symbol,
		url:       strings.TrimSuffix(baseURL, "/") + "/findmove",
		maxLevels: maxLevels,
		client:    client,
	}
}

func (p *RemotePlayer) Symbol() game.Symbol {
	return p.symbol
}

// FindMove posts the board to /findmove on the server side.
func (p *RemotePlayer) FindMove(board *game.Board) (game.Move, searcher.SearchMetrics, error) {
	body, err := json.Marshal(agent.Request{
		Board:       board.Rows(),
		LengthToWin: board.LengthToWin(),
		MaxLevels:   p.maxLevels,
		Player:      p.symbol.String(),
	})
	if err != nil {
		return game.Move{}, searcher.SearchMetrics{}, errors.Wrap(err, "failed to encode request")
	}

	resp, err := p.client.Post(p.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return game.Move{}, searcher.SearchMetrics{}, errors.Wrapf(err, "failed to reach %s", p.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Move{}, searcher.SearchMetrics{}, errors.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var r agent.Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return game.Move{}, searcher.SearchMetrics{}, errors.Wrap(err, "failed to decode move")
	}
	return game.Move{Row: r.Row, Col: r.Col}, r.Metrics, nil
}
