package experiments

import (
	"time"

	"inarow/engine"
	"inarow/experiments/metrics"
	"inarow/game"
	"inarow/searcher"
	"inarow/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Experiment pits pairs of computer players against each other on one board shape.
type Experiment struct {
	Name        string
	BoardSize   int
	LengthToWin int
	Games       int // Per match up
	Configs     []metrics.AgentConfig
	MatchUps    [][2]metrics.AgentConfig
}

// DepthExperiment pairs a shallow baseline against deeper searchers on a 4x4 board.
func DepthExperiment() Experiment {
	baseline := metrics.AgentConfig{ID: 0, MaxLevels: 1, DictionarySize: 9973}
	configs := []metrics.AgentConfig{
		{ID: 1, MaxLevels: 2, DictionarySize: 9973},
		{ID: 2, MaxLevels: 3, DictionarySize: 9973},
		{ID: 3, MaxLevels: 4, DictionarySize: 9973},
	}

	// Each matchup pairs the baseline agent against a deeper agent
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Experiment{
		Name:        "depth",
		BoardSize:   4,
		LengthToWin: 3,
		Games:       4,
		Configs:     append(configs, baseline),
		MatchUps:    matchUps,
	}
}

// DictionarySizeExperiment plays full-depth 3x3 games with tables of growing
// initial size, to compare resizes and collisions.
func DictionarySizeExperiment() Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, MaxLevels: 9, DictionarySize: 1},
		{ID: 2, MaxLevels: 9, DictionarySize: 97},
		{ID: 3, MaxLevels: 9, DictionarySize: 9973},
	}

	// Same config for both players for the same playing strength
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return Experiment{
		Name:        "dictionary_size",
		BoardSize:   3,
		LengthToWin: 3,
		Games:       2,
		Configs:     configs,
		MatchUps:    matchUps,
	}
}

// Run plays every game of the experiment and stores the records under root.
// It returns the directory holding the CSV files.
func Run(root string, e Experiment) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchUp := range e.MatchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(e.MatchUps), config1, config2)

		for i := 0; i < e.Games; i++ {
			// Alternate the starting agent
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			gameMetric, moveMetrics, err := runGame(e.BoardSize, e.LengthToWin, first, second)
			if err != nil {
				return "", errors.Wrapf(err, "matchup %d game %d", mi+1, i+1)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(e.MatchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", e.Name)

	writer, err := metrics.NewWriter(root, e.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(e.Configs); err != nil {
		return "", errors.Wrap(err, "failed to store agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", errors.Wrap(err, "failed to store game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", errors.Wrap(err, "failed to store move records")
	}
	log.Info().Msgf("stored experiment records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game in which first moves as the computer symbol and second as the human symbol.
func runGame(size, lengthToWin int, first, second metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.NewBoard(size, lengthToWin)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	e := engine.LocalEngine(board,
		engine.NewComputerPlayer(game.Computer, agent.NewEvaluationAgent(createMinimax(first))),
		engine.NewComputerPlayer(game.Human, agent.NewEvaluationAgent(createMinimax(second))),
	)

	start := time.Now()
	result, err := e.Run()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	moveMetrics := make([]metrics.MoveMetric, len(result.MoveMetrics))
	for i, mm := range result.MoveMetrics {
		moveMetrics[i] = metrics.MoveMetric{
			Step:          mm.Step,
			Player:        mm.Player,
			SearchMetrics: mm.SearchMetrics,
		}
	}
	gameMetric := metrics.GameMetric{
		StartingPlayer: game.Computer,
		Winner:         result.Winner,
		StartTime:      start,
		Duration:       time.Since(start),
		TotalMoves:     result.Moves,
	}
	return gameMetric, moveMetrics, nil
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.MaxLevels > 0 {
		options = append(options, searcher.WithMaxLevels(config.MaxLevels))
	}
	if config.DictionarySize > 0 {
		options = append(options, searcher.WithDictionarySize(config.DictionarySize))
	}

	return searcher.NewMinimax(options...)
}
