package searcher

import (
	"time"

	"inarow/dictionary"
	"inarow/game"
	"inarow/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrNoMoves = errors.New("no legal moves")

type Option func(m *Minimax)

// Minimax searches the game tree to a fixed depth, caching the score of every
// configuration it evaluates so transpositions are scored once per search.
type Minimax struct {
	maxLevels      int
	dictionarySize int
	rng            *rand.Rand
	metrics        MetricsCollector
}

func WithMaxLevels(levels int) Option {
	return func(m *Minimax) {
		if levels > 0 {
			m.maxLevels = levels
		}
	}
}

// WithDictionarySize sets the size hint of the cache created for each search.
func WithDictionarySize(size int) Option {
	return func(m *Minimax) {
		if size > 0 {
			m.dictionarySize = size
		}
	}
}

// WithSeed makes tie-breaking between equally scored moves reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxLevels:      meta.MaxLevels,
		dictionarySize: meta.DictionarySize,
		metrics:        NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *Minimax) MaxLevels() int {
	return m.maxLevels
}

func (m *Minimax) DictionarySize() int {
	return m.dictionarySize
}

// FindMove returns the best move for the computer.
func (m *Minimax) FindMove(state game.State) (game.Move, SearchMetrics, error) {
	return m.FindMoveFor(state, game.Computer)
}

// FindMoveFor returns the best move for player: the computer maximizes the
// score and the human minimizes it. The state is modified during the search
// and restored before returning.
func (m *Minimax) FindMoveFor(state game.State, player game.Symbol) (game.Move, SearchMetrics, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, SearchMetrics{}, ErrNoMoves
	}

	table := dictionary.New(m.dictionarySize)
	m.metrics.Start()

	best := worst(player)
	var ties []game.Move
	for _, move := range moves {
		score := m.child(state, move, player, 0, table)
		switch {
		case better(player, score, best):
			best = score
			ties = append(ties[:0], move)
		case score == best:
			ties = append(ties, move)
		}
	}
	move := ties[m.rng.Intn(len(ties))]

	metrics := m.metrics.Complete(table)
	log.Debug().Msgf("player %s picked %v with score %d among %d best moves (%d cached configurations)",
		player, move, best, len(ties), table.NumRecords())
	return move, metrics, nil
}

// search returns the score of state with player to move, level plies below the root.
func (m *Minimax) search(state game.State, player game.Symbol, level int, table *dictionary.Dictionary) int {
	if score := state.Evaluate(); score != game.Undecided || level == m.maxLevels {
		return score
	}

	best := worst(player)
	for _, move := range state.LegalMoves() {
		if score := m.child(state, move, player, level, table); better(player, score, best) {
			best = score
		}
	}
	return best
}

// child scores the configuration reached by playing move, from the cache when
// it has been seen before.
func (m *Minimax) child(state game.State, move game.Move, player game.Symbol, level int, table *dictionary.Dictionary) int {
	state.SavePlay(move.Row, move.Col, player)
	defer state.SavePlay(move.Row, move.Col, game.Empty)

	if score := game.RepeatedConfiguration(state, table); score != dictionary.NotFound {
		m.metrics.AddHit()
		return score
	}

	m.metrics.AddMiss()
	score := m.search(state, player.Opponent(), level+1, table)
	if game.AddConfiguration(state, table, score) {
		m.metrics.AddCollision()
	}
	return score
}

// worst returns a score below (computer) or above (human) every reachable score.
func worst(player game.Symbol) int {
	if player == game.Computer {
		return game.HumanWins - 1
	}
	return game.ComputerWins + 1
}

func better(player game.Symbol, score, than int) bool {
	if player == game.Computer {
		return score > than
	}
	return score < than
}
