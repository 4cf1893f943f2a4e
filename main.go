package main

import (
	"flag"
	"os"

	"inarow/engine"
	"inarow/experiments"
	"inarow/game"
	"inarow/meta"
	"inarow/searcher"
	"inarow/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	boardSize := flag.Int("size", 0, "Board size (overrides config)")
	lengthToWin := flag.Int("length", 0, "Symbols in a row needed to win (overrides config)")
	maxLevels := flag.Int("levels", 0, "Game tree levels explored per computer move (overrides config)")
	computerFirst := flag.Bool("computer-first", false, "Let the computer make the first move")
	serve := flag.String("serve", "", "Serve computer moves over HTTP on this address instead of playing")
	experiment := flag.String("experiment", "", "Run a self-play experiment: depth or dictionary_size")
	outDir := flag.String("out", "experiments", "Directory for experiment records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := meta.Default()
	if *configPath != "" {
		var err error
		if cfg, err = meta.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *boardSize > 0 {
		cfg.BoardSize = *boardSize
	}
	if *lengthToWin > 0 {
		cfg.LengthToWin = *lengthToWin
	}
	if *maxLevels > 0 {
		cfg.MaxLevels = *maxLevels
	}
	if *computerFirst {
		cfg.ComputerFirst = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	switch {
	case *serve != "":
		if err := agent.ListenAndServe(*serve, cfg); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}
	case *experiment != "":
		runExperiment(*experiment, *outDir)
	default:
		play(cfg)
	}
}

func play(cfg meta.Config) {
	board, err := game.NewBoard(cfg.BoardSize, cfg.LengthToWin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create board")
	}

	minimax := searcher.NewMinimax(
		searcher.WithMaxLevels(cfg.MaxLevels),
		searcher.WithDictionarySize(cfg.DictionarySize),
		searcher.WithMetrics(),
	)
	computer := engine.NewComputerPlayer(game.Computer, agent.NewEvaluationAgent(minimax))
	human := engine.NewHumanPlayer(game.Human, os.Stdin, os.Stdout)

	var e *engine.Engine
	if cfg.ComputerFirst {
		e = engine.LocalEngine(board, computer, human)
	} else {
		e = engine.LocalEngine(board, human, computer)
	}
	e.Out = os.Stdout

	result, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	switch result.Winner {
	case game.Computer:
		os.Stdout.WriteString("Computer wins\n")
	case game.Human:
		os.Stdout.WriteString("You win\n")
	default:
		os.Stdout.WriteString("Game is a draw\n")
	}
}

func runExperiment(name, outDir string) {
	var e experiments.Experiment
	switch name {
	case "depth":
		e = experiments.DepthExperiment()
	case "dictionary_size":
		e = experiments.DictionarySizeExperiment()
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}

	if _, err := experiments.Run(outDir, e); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
