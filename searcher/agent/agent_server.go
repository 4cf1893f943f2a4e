package agent

import (
	"encoding/json"
	"fmt"
	"net/http"

	"inarow/game"
	"inarow/meta"
	"inarow/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type server struct {
	cfg meta.Config
}

// NewServer returns the handler of the move server. Every request runs its
// own search with its own configuration cache. Requests may lower the search
// depth below cfg.MaxLevels but not raise it, and boards larger than
// cfg.MaxBoardSize are rejected.
func NewServer(cfg meta.Config) http.Handler {
	s := &server{cfg: cfg}

	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", s.handleFindMove)
	return mux
}

// ListenAndServe starts the move server on addr.
func ListenAndServe(addr string, cfg meta.Config) error {
	log.Info().Msgf("starting agent server on %s...", addr)
	return http.ListenAndServe(addr, NewServer(cfg))
}

func (s *server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, meta.MaxRequestBytes)
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	board, err := game.ParseBoard(req.Board, req.LengthToWin)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if board.Size() > s.cfg.MaxBoardSize {
		http.Error(w, fmt.Sprintf("bad request: board size %d exceeds %d", board.Size(), s.cfg.MaxBoardSize), http.StatusBadRequest)
		return
	}
	if req.MaxLevels > s.cfg.MaxLevels {
		http.Error(w, fmt.Sprintf("bad request: maxLevels %d exceeds %d", req.MaxLevels, s.cfg.MaxLevels), http.StatusBadRequest)
		return
	}
	player, err := parsePlayer(req.Player)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	levels := s.cfg.MaxLevels
	if req.MaxLevels > 0 {
		levels = req.MaxLevels
	}
	minimax := searcher.NewMinimax(
		searcher.WithMaxLevels(levels),
		searcher.WithDictionarySize(s.cfg.DictionarySize),
		searcher.WithMetrics(),
	)

	move, metrics, err := NewEvaluationAgent(minimax).FindMove(board, player)
	if errors.Is(err, searcher.ErrNoMoves) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debug().Msgf("served move %v for %s with %d cache hits", move, player, metrics.Hits)

	w.Header().Set("Content-Type", "application/json")
	resp := Response{Row: move.Row, Col: move.Col, Metrics: metrics}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}

func parsePlayer(s string) (game.Symbol, error) {
	switch s {
	case "", string(game.Computer):
		return game.Computer, nil
	case string(game.Human):
		return game.Human, nil
	default:
		return game.Empty, errors.Errorf("unknown player %q", s)
	}
}
