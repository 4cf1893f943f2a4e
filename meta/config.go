package meta

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a game, read from YAML and overridable by flags.
type Config struct {
	BoardSize      int    `yaml:"boardSize"`
	LengthToWin    int    `yaml:"lengthToWin"`
	MaxLevels      int    `yaml:"maxLevels"`
	DictionarySize int    `yaml:"dictionarySize"`
	ComputerFirst  bool   `yaml:"computerFirst"`
	MaxBoardSize   int    `yaml:"maxBoardSize"` // Largest board accepted by the move server
	Addr           string `yaml:"addr"`
	LogLevel       string `yaml:"logLevel"`
}

// Default returns the configuration built from the package constants.
func Default() Config {
	return Config{
		BoardSize:      BoardSize,
		LengthToWin:    LengthToWin,
		MaxLevels:      MaxLevels,
		DictionarySize: DictionarySize,
		MaxBoardSize:   MaxBoardSize,
		Addr:           Addr,
		LogLevel:       LogLevel.String(),
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.BoardSize < 1 {
		return errors.Errorf("boardSize must be positive, got %d", c.BoardSize)
	}
	if c.LengthToWin < 1 || c.LengthToWin > c.BoardSize {
		return errors.Errorf("lengthToWin must be between 1 and boardSize %d, got %d", c.BoardSize, c.LengthToWin)
	}
	if c.MaxLevels < 1 {
		return errors.Errorf("maxLevels must be positive, got %d", c.MaxLevels)
	}
	if c.MaxLevels > c.BoardSize*c.BoardSize {
		return errors.Errorf("maxLevels must not exceed the %d squares of the board, got %d", c.BoardSize*c.BoardSize, c.MaxLevels)
	}
	if c.DictionarySize < 1 || c.DictionarySize > MaxDictionarySize {
		return errors.Errorf("dictionarySize must be between 1 and %d, got %d", MaxDictionarySize, c.DictionarySize)
	}
	if c.MaxBoardSize < 1 {
		return errors.Errorf("maxBoardSize must be positive, got %d", c.MaxBoardSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid logLevel %q", c.LogLevel)
	}
	return level, nil
}
