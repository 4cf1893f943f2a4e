package metrics

import (
	"time"

	"inarow/game"
	"inarow/searcher"
)

// AgentConfig describes one computer player taking part in an experiment.
type AgentConfig struct {
	ID             int
	MaxLevels      int
	DictionarySize int
}

type GameMetric struct {
	StartingPlayer game.Symbol
	Winner         game.Symbol // game.Empty for a draw
	StartTime      time.Time
	Duration       time.Duration
	TotalMoves     int
}

type MoveMetric struct {
	Step   int
	Player game.Symbol
	searcher.SearchMetrics
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
